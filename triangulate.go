package louvre

import "sort"

// Triangulate decomposes a single polygon ring, packed as dim-stride flat
// coordinates in data, into non-overlapping CCW triangles. It returns a
// rebuilt coordinate buffer and a list of triangle vertex indices into
// that buffer (three per triangle). ctx may be nil; every diagnostic call
// against it is then a no-op.
//
// The call is total: malformed or degenerate input never produces an
// error, only an empty or reduced result. A cycle that cannot be
// ear-clipped is abandoned and logged as a LogWarning, not returned as an
// error.
func Triangulate(ctx *BuildContext, data []float64, dim int) (newData []float64, indices []int) {
	ctx.StartTimer(TimerTotal)
	defer ctx.StopTimer(TimerTotal)

	ctx.StartTimer(TimerBuildRing)
	verts := buildRing(data, dim)
	ctx.StopTimer(TimerBuildRing)
	if len(verts) < 3 {
		ctx.Progressf("ring has fewer than 3 vertices, nothing to triangulate")
		return nil, nil
	}

	order := make([]int, len(verts))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		va, vb := verts[order[a]], verts[order[b]]
		if va.top != vb.top {
			return va.top > vb.top
		}
		return order[a] < order[b]
	})

	ctx.StartTimer(TimerIntersect)
	sects, validSects, hasIntersections := detectIntersections(verts, order)
	ctx.StopTimer(TimerIntersect)

	var cycles []simpleCycle
	if !hasIntersections {
		ctx.Progressf("no self-intersections found, ring is already a simple cycle")
		newData, cycles = decompSimple(verts, order)
	} else {
		ctx.StartTimer(TimerLink)
		updateSects(verts, sects, order[0])
		ctx.StopTimer(TimerLink)

		ctx.StartTimer(TimerDecompose)
		newData, cycles = decompSimples(verts, sects, validSects, order)
		ctx.StopTimer(TimerDecompose)
		ctx.Progressf("decomposed into %d simple cycle(s)", len(cycles))
	}

	ctx.StartTimer(TimerEarClip)
	for _, cycle := range cycles {
		if cycle.len < 3 {
			continue
		}
		var ok bool
		indices, ok = earClip(cycle, indices)
		if !ok {
			ctx.Warningf("abandoned a cycle of length %d: no ear found", cycle.len)
		}
	}
	ctx.StopTimer(TimerEarClip)

	return newData, indices
}
