package louvre

import "github.com/acheul/go-louvre/internal/bitset"

// point is a lightweight cycle-ring record rebuilt by the extractor for
// ear-clipping. Its i indexes into new_data (the stage-E output), not the
// original input. Like vertex and sect, prev/next are indices into a
// per-cycle arena.
type point struct {
	i      int
	x, y   float64
	reflex bool
	prev, next int
}

// simpleCycle is a handle into the point arena: any member of the cycle's
// ring plus its length.
type simpleCycle struct {
	arena []point
	head  int
	len   int
}

// appendPoint links a new point onto the end of a growing cycle ring
// (nilIdx as last starts a fresh one-element ring), returning the arena
// and the new point's position.
func appendPoint(arena []point, i int, x, y float64, last int) ([]point, int) {
	p := point{i: i, x: x, y: y, reflex: true, prev: nilIdx, next: nilIdx}
	idx := len(arena)
	arena = append(arena, p)
	if last == nilIdx {
		arena[idx].prev = idx
		arena[idx].next = idx
	} else {
		arena[idx].next = arena[last].next
		arena[idx].prev = last
		arena[arena[last].next].prev = idx
		arena[last].next = idx
	}
	return arena, idx
}

// decompSimple handles the no-intersections case: the whole ring is
// already a single simple cycle. It rebuilds it as a point ring in ring
// order starting from vertex 0. order is the stage-C sorted vertex
// order shared with the rest of the pipeline; decompSimple only uses
// it as a seed, then walks ring links to find vertex 0.
func decompSimple(verts []vertex, order []int) ([]float64, []simpleCycle) {
	var newData []float64
	v := order[0]
	for verts[v].i != 0 {
		v = verts[v].next
	}

	var arena []point
	last := nilIdx
	vi := verts[v].i
	for {
		arena, last = appendPoint(arena, verts[v].i, verts[v].x, verts[v].y, last)
		newData = append(newData, verts[v].x, verts[v].y)
		v = verts[v].next
		if verts[v].i == vi {
			break
		}
	}

	return newData, []simpleCycle{{arena: arena, head: last, len: len(verts)}}
}

// decompSimples handles the intersections-present case with the two
// extraction passes described in stage E: primal cycles seeded from ring
// vertices, then residual loops from any intersection record still
// unconsumed. validSects is mutated in place as records are consumed.
// Both passes walk order, the same stage-C sorted vertex order used to
// detect intersections and seed updateSects, not raw ring order: the
// two orders visit the same vertices but number the emitted cycles'
// point identities differently, and downstream new_data must match the
// sorted traversal.
func decompSimples(verts []vertex, sects []sect, validSects bitset.Set, order []int) ([]float64, []simpleCycle) {
	validVerts := bitset.New(len(verts), true)

	var newData []float64
	var cycles []simpleCycle
	idx := 0

	// first pass: primal cycles seeded at each still-valid ring vertex
	for _, e := range order {
		v := e
		if !validVerts.Get(v) {
			continue
		}

		var local []float64
		vi := verts[v].i
		for {
			local = append(local, verts[v].x, verts[v].y)
			validVerts.Set(v, false)

			if verts[v].nextSect == nilIdx {
				v = verts[v].next
			} else {
				s := verts[v].nextSect
				for {
					local = append(local, sects[s].x, sects[s].y)
					dual := sects[s].dual
					validSects.Set(dual, false)

					if sects[dual].next == nilIdx {
						v = verts[sects[s].other].next
						break
					}
					s = sects[dual].next
				}
			}
			if verts[v].i == vi {
				break
			}
		}

		idx = emitCycle(local, &newData, &cycles, idx)
	}

	// second pass: residual loops from any intersection record still valid
	for _, e := range order {
		v := e
		vi := verts[v].i
		for {
			if verts[v].nextSect == nilIdx {
				v = verts[v].next
			} else {
				s := verts[v].nextSect
				for {
					if validSects.Get(s) {
						idx = decompRemainSect(sects, validSects, s, &newData, &cycles, idx)
					}
					dual := sects[s].dual
					if sects[dual].next == nilIdx {
						v = verts[sects[s].other].next
						break
					}
					s = sects[dual].next
				}
			}
			if verts[v].i == vi {
				break
			}
		}
	}

	return newData, cycles
}

// emitCycle classifies a freshly-collected local coordinate loop by
// signed area and, unless degenerate, appends it to new_data and cycles
// in CCW order, returning the next free point identity.
func emitCycle(local []float64, newData *[]float64, cycles *[]simpleCycle, idx int) int {
	switch signedArea(local, 2) {
	case Zero:
		return idx
	case CCW:
		var arena []point
		last := nilIdx
		for e := 0; e < len(local); e += 2 {
			arena, last = appendPoint(arena, idx, local[e], local[e+1], last)
			idx++
		}
		*newData = append(*newData, local...)
		*cycles = append(*cycles, simpleCycle{arena: arena, head: last, len: len(local) / 2})
		return idx
	default: // CW
		var arena []point
		var reordered []float64
		last := nilIdx
		for e := len(local) - 2; e >= 0; e -= 2 {
			arena, last = appendPoint(arena, idx, local[e], local[e+1], last)
			idx++
			reordered = append(reordered, local[e], local[e+1])
		}
		*newData = append(*newData, reordered...)
		*cycles = append(*cycles, simpleCycle{arena: arena, head: last, len: len(local) / 2})
		return idx
	}
}

// decompRemainSect walks a residual intersection chain s -> s.dual.next ->
// ... -> s, accumulating coordinates. It emits the chain only if it
// closes successfully and its direction agrees with its own sign bit.
func decompRemainSect(sects []sect, validSects bitset.Set, s int, newData *[]float64, cycles *[]simpleCycle, idx int) int {
	start := s
	si := sects[start].i
	var local []float64
	success := true

	for {
		local = append(local, sects[s].x, sects[s].y)
		validSects.Set(s, false)

		if sects[s].next == nilIdx {
			success = false
			break
		}
		s = sects[sects[s].next].dual
		if sects[sects[s].dual].i == si {
			break
		}
	}

	if !success {
		return idx
	}

	switch signedArea(local, 2) {
	case Zero:
		return idx
	case CCW:
		if !sects[s].sign {
			return idx
		}
		var arena []point
		last := nilIdx
		for e := 0; e < len(local); e += 2 {
			arena, last = appendPoint(arena, idx, local[e], local[e+1], last)
			idx++
		}
		*newData = append(*newData, local...)
		*cycles = append(*cycles, simpleCycle{arena: arena, head: last, len: len(local) / 2})
		return idx
	default: // CW
		if sects[s].sign {
			return idx
		}
		var arena []point
		var reordered []float64
		last := nilIdx
		for e := len(local) - 2; e >= 0; e -= 2 {
			arena, last = appendPoint(arena, idx, local[e], local[e+1], last)
			idx++
			reordered = append(reordered, local[e], local[e+1])
		}
		*newData = append(*newData, reordered...)
		*cycles = append(*cycles, simpleCycle{arena: arena, head: last, len: len(local) / 2})
		return idx
	}
}
