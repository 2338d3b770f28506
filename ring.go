package louvre

import "github.com/aurelien-rainone/assertgo"

const nilIdx = -1

// vertex is both a point (the segment's start) and the directed segment
// from that point to the next vertex. The ring is a cyclic doubly-linked
// list realized as indices into a single arena slice rather than raw
// pointers: prev/next/nextSect are arena indices, nilIdx standing in for
// a null link. A vertex's arena index always equals its i.
type vertex struct {
	i int
	x, y float64

	// per-segment bounding box and scan direction, used by the
	// intersection sweep to prune non-overlapping pairs.
	topdown             bool
	top, bottom         float64
	left, right         float64

	sign bool
	sects []int // indices into the sect arena attached to this segment

	prev, next int
	nextSect   int
}

// buildRing normalizes a flat coordinate buffer into a CCW vertex ring.
// The input slice itself is left untouched; normalization (truncation,
// duplicate stripping) happens against a local copy, mirroring the
// source's in-place Vec mutation without requiring callers to hand over
// a resizable slice.
func buildRing(data []float64, dim int) []vertex {
	buf := append([]float64(nil), data...)

	// truncate any trailing partial coordinate
	n := len(buf) - len(buf)%dim
	buf = buf[:n]

	// strip a trailing duplicate of the first point, repeatedly
	for len(buf) >= dim {
		last := len(buf) - dim
		if buf[0] == buf[last] && buf[1] == buf[last+1] {
			buf = buf[:last]
		} else {
			break
		}
	}

	// fewer than three points cannot form a ring
	if len(buf) < 3*dim {
		return nil
	}

	switch signedArea(buf, dim) {
	case CCW, Zero:
		return fillRing(true, buf, dim)
	default:
		return fillRing(false, buf, dim)
	}
}

// fillRing builds the vertex arena in forward order (order=true) or
// reverse order (order=false), so the resulting ring always winds CCW.
func fillRing(order bool, buf []float64, dim int) []vertex {
	n := len(buf)
	verts := make([]vertex, 0, n/dim)

	link := func(i int, x0, y0, x1, y1 float64) {
		v := vertex{i: i, x: x0, y: y0, prev: nilIdx, next: nilIdx, nextSect: nilIdx}
		v.topdown = true
		v.top, v.bottom = y0, y1
		v.left, v.right = x0, x1
		if y1 > y0 {
			v.topdown = false
			v.top, v.bottom = y1, y0
		} else if y1 == y0 && x0 > x1 {
			v.topdown = false
		}
		if x0 > x1 {
			v.left, v.right = x1, x0
		}
		verts = append(verts, v)
	}

	if order {
		x0, y0 := buf[0], buf[1]
		e := 0
		for i := dim; i < n; i += dim {
			x1, y1 := buf[i], buf[i+1]
			link(e, x0, y0, x1, y1)
			x0, y0 = x1, y1
			e++
		}
		link(n/dim-1, x0, y0, buf[0], buf[1])
	} else {
		x0, y0 := buf[n-dim], buf[n-dim+1]
		e := 0
		for i := n - dim; i > 0; {
			i -= dim
			x1, y1 := buf[i], buf[i+1]
			link(e, x0, y0, x1, y1)
			x0, y0 = x1, y1
			e++
		}
		link(n/dim-1, x0, y0, buf[n-dim], buf[n-dim+1])
	}

	count := len(verts)
	assert.True(count == n/dim, "ring vertex count should match input point count")
	for idx := range verts {
		verts[idx].prev = (idx - 1 + count) % count
		verts[idx].next = (idx + 1) % count
	}
	return verts
}

// equalPos reports whether two vertices share the same coordinates.
func equalPos(a, b vertex) bool {
	return a.x == b.x && a.y == b.y
}

// isAdjacent reports whether ring vertices i and j, out of n total,
// are neighbours, accounting for the wrap-around edge n-1 -> 0.
func isAdjacent(i, j, n int) bool {
	if i == 0 || j == 0 {
		if i+j == n-1 {
			return true
		}
	}
	d := i - j
	if d < 0 {
		d = -d
	}
	return d == 1
}
