package louvre

import (
	"math"
	"sort"
)

// redunSect is an ephemeral per-cluster candidate direction used only
// while resolving a coincident-intersection cluster: which outgoing
// segment should a traversal take when several crossings land on the
// exact same point.
type redunSect struct {
	i          int // index into the cluster slice being resolved
	dir        bool
	angle      float64
	isStraight bool
}

// newRedunSects builds the two candidates (outgoing, and its opposite)
// contributed by one record of a coincident-intersection cluster: vx,vy
// is the key segment's host vertex, px,py the shared intersection point,
// ox,oy the crossing partner's next vertex. The angle is measured via the
// law of cosines between the incoming direction (v -> intersection), the
// outgoing direction (partner's host -> partner's next) and the closing
// side, folded into [0, 2*pi) so it is always taken from the CCW-left
// turn.
func newRedunSects(idx int, vx, vy, px, py, ox, oy float64) (redunSect, redunSect) {
	localWind := area(vx, vy, px, py, ox, oy)
	a2 := (ox-px)*(ox-px) + (oy-py)*(oy-py)
	b2 := (vx-px)*(vx-px) + (vy-py)*(vy-py)
	c2 := (ox-vx)*(ox-vx) + (oy-vy)*(oy-vy)

	deno := 2 * math.Sqrt(a2) * math.Sqrt(b2)
	if deno == 0 {
		deno += 1e-10
	}
	cosC := (a2 + b2 - c2) / deno
	angle := math.Acos(cosC)
	if localWind == CW {
		angle = 2*math.Pi - angle
	}
	angle2 := angle + math.Pi
	if angle2 > 2*math.Pi {
		angle2 -= 2 * math.Pi
	}

	return redunSect{i: idx, dir: true, angle: angle},
		redunSect{i: idx, dir: false, angle: angle2}
}

// topTurn classifies the initial traversal sign at v: walking past any
// coincident-position neighbours, it reads the local turn (prev, v,
// next). CCW or Zero seeds sign=true; CW seeds sign=false.
func topTurn(verts []vertex, v int) bool {
	prev := verts[v].prev
	for equalPos(verts[v], verts[prev]) {
		prev = verts[prev].prev
		if verts[v].i == verts[prev].i {
			break
		}
	}
	next := verts[v].next
	for equalPos(verts[v], verts[next]) {
		next = verts[next].next
		if verts[v].i == verts[next].i || verts[next].i == verts[prev].i {
			break
		}
	}

	switch area(verts[prev].x, verts[prev].y, verts[v].x, verts[v].y, verts[next].x, verts[next].y) {
	case CW:
		return false
	default:
		return true
	}
}

// updateSects walks the ring starting at seed, assigning each vertex its
// traversal sign, sorting its attached intersection records along the
// segment direction, and linking them into the deterministic next-chain
// that the cycle extractor follows. seed must be the topmost vertex by
// segment top (stage C's sort order, position 0).
func updateSects(verts []vertex, sects []sect, seed int) {
	sign := topTurn(verts, seed)
	v := seed
	startI := verts[v].i

	for {
		verts[v].sign = sign

		if len(verts[v].sects) > 0 {
			list := append([]int(nil), verts[v].sects...)
			if verts[v].topdown {
				sort.SliceStable(list, func(a, b int) bool { return sectLess(sects[list[a]], sects[list[b]]) })
			} else {
				sort.SliceStable(list, func(a, b int) bool { return sectLess(sects[list[b]], sects[list[a]]) })
			}

			// (1) re-gather by coincident position
			var groups [][]int
			groups = append(groups, []int{list[0]})
			for k := 1; k < len(list); k++ {
				cur, prevIdx := list[k], list[k-1]
				if sects[cur].x == sects[prevIdx].x && sects[cur].y == sects[prevIdx].y {
					last := len(groups) - 1
					groups[last] = append(groups[last], cur)
				} else {
					groups = append(groups, []int{cur})
				}
			}

			// (2) select a path among redundant clusters / singletons
			var linkSects [][]int
			for _, group := range groups {
				if len(group) == 1 {
					sign = !sign
					sects[group[0]].sign = sign
					linkSects = append(linkSects, []int{group[0]})
					continue
				}

				var candidates []redunSect
				for e, s := range group {
					other := sects[s].other
					otherNext := verts[other].next
					r1, r2 := newRedunSects(e, verts[v].x, verts[v].y, sects[s].x, sects[s].y,
						verts[otherNext].x, verts[otherNext].y)
					candidates = append(candidates, r1, r2)
				}
				candidates = append(candidates, redunSect{i: 0, dir: true, angle: math.Pi / 2, isStraight: true})

				if sign {
					sort.SliceStable(candidates, func(a, b int) bool { return redunLess(candidates[a], candidates[b]) })
				} else {
					sort.SliceStable(candidates, func(a, b int) bool { return redunLess(candidates[b], candidates[a]) })
				}

				key := 0
				chosen := candidates[0]
				for _, r := range candidates {
					chosen = r
					if r.dir {
						key++
					} else {
						key--
					}
					if key == 1 {
						break
					}
				}

				if !chosen.isStraight {
					if len(group)%2 == 1 {
						sign = !sign
					}
					chosenSect := group[chosen.i]
					set := []int{chosenSect}
					sects[chosenSect].sign = sign
					for _, s := range group {
						if sects[s].other != sects[chosenSect].other {
							sects[s].sign = sign
							set = append(set, s)
						}
					}
					linkSects = append(linkSects, set)
				}
			}

			// (3) link the chosen link-sets in order, and link v to the first
			if len(linkSects) > 0 {
				verts[v].nextSect = linkSects[0][0]
				for k := 1; k < len(linkSects); k++ {
					for _, s0 := range linkSects[k-1] {
						sects[s0].next = linkSects[k][0]
					}
				}
			}
		}

		v = verts[v].next
		if verts[v].i == startI {
			break
		}
	}
}

// sectLess orders intersection records by larger-y then smaller-x, the
// direction used to walk a topdown segment front to back.
func sectLess(a, b sect) bool {
	if a.y != b.y {
		return a.y > b.y
	}
	return a.x < b.x
}

// redunLess orders candidates ascending by angle, with dir=true sorting
// before dir=false at an exact angular tie (the only tie that occurs in
// practice is the synthetic straight candidate).
func redunLess(a, b redunSect) bool {
	if a.angle != b.angle {
		return a.angle < b.angle
	}
	if a.dir == b.dir {
		return false
	}
	return a.dir
}
