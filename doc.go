// Package louvre triangulates a single, possibly self-intersecting, 2D
// polygon ring into a set of non-overlapping CCW triangles.
//
// The pipeline runs in four stages: build a CCW vertex ring from the flat
// input coordinates (ring.go), detect pairwise segment intersections
// (intersect.go), link intersection records into simple cycles (linker.go,
// cycle.go), then ear-clip each cycle into triangles (earcut.go).
// Triangulate, in triangulate.go, drives all four stages and is the only
// entry point callers need.
package louvre
