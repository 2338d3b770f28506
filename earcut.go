package louvre

import "github.com/aurelien-rainone/assertgo"

// isPointInside reports whether point (px,py) lies inside or on the
// boundary of triangle (ax,ay)-(bx,by)-(cx,cy). Each half-plane test uses
// >= 0 rather than > 0, so a point sitting exactly on an edge still
// counts as inside: it would otherwise let an ear clip through a point
// that should have blocked it.
func isPointInside(ax, ay, bx, by, cx, cy, px, py float64) bool {
	d1 := area(ax, ay, bx, by, px, py)
	d2 := area(bx, by, cx, cy, px, py)
	d3 := area(cx, cy, ax, ay, px, py)

	hasCCW := d1 == CCW || d2 == CCW || d3 == CCW
	hasCW := d1 == CW || d2 == CW || d3 == CW
	return !(hasCCW && hasCW)
}

// isReflex reports whether the interior angle at p (given its ring
// neighbours) turns clockwise: a CCW ring is convex at p exactly when the
// turn prev->p->next is itself CCW.
func isReflex(arena []point, p int) bool {
	prev, next := arena[p].prev, arena[p].next
	return area(arena[prev].x, arena[prev].y, arena[p].x, arena[p].y, arena[next].x, arena[next].y) != CCW
}

// isEar reports whether the triangle (prev, p, next) can be safely
// clipped: p must not be reflex, and no reflex ring vertex other than the
// triangle's own corners may lie inside or on that triangle.
func isEar(arena []point, p int) bool {
	if arena[p].reflex {
		return false
	}
	prev, next := arena[p].prev, arena[p].next

	q := arena[next].next
	for q != prev {
		if arena[q].reflex && isPointInside(
			arena[prev].x, arena[prev].y, arena[p].x, arena[p].y, arena[next].x, arena[next].y,
			arena[q].x, arena[q].y) {
			return false
		}
		q = arena[q].next
	}
	return true
}

// earClip triangulates a single simple cycle by repeatedly clipping ears.
// On success it returns out extended with each clipped triangle's three
// point identities (indices into new_data), three per triangle, and true.
// A cycle that gets stuck (no ear found with more than 3 points left) is
// abandoned whole: out comes back unchanged and the second result is
// false, so the caller can skip it and log a warning instead of emitting
// a partially-clipped, inconsistent triangle set. The last three points
// are emitted as a triangle only when they wind CCW, so three collinear
// points yield no triangle.
func earClip(cycle simpleCycle, out []int) ([]int, bool) {
	assert.True(cycle.len >= 3, "a simple cycle should always have at least 3 points")
	arena := cycle.arena
	remaining := cycle.len
	p := cycle.head

	for idx := range arena {
		arena[idx].reflex = isReflex(arena, idx)
	}

	var tris []int
	for remaining > 3 {
		start := p
		found := false
		for {
			if isEar(arena, p) {
				prev, next := arena[p].prev, arena[p].next
				tris = append(tris, arena[prev].i, arena[p].i, arena[next].i)

				arena[prev].next = next
				arena[next].prev = prev
				remaining--

				arena[prev].reflex = isReflex(arena, prev)
				arena[next].reflex = isReflex(arena, next)

				p = next
				found = true
				break
			}
			p = arena[p].next
			if p == start {
				break
			}
		}
		if !found {
			return out, false
		}
	}

	if remaining == 3 && !isReflex(arena, p) {
		prev, next := arena[p].prev, arena[p].next
		tris = append(tris, arena[prev].i, arena[p].i, arena[next].i)
	}
	return append(out, tris...), true
}
