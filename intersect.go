package louvre

import "github.com/acheul/go-louvre/internal/bitset"

// sect is an intersection record: a single point where two non-adjacent
// segments cross. Always created in dual pairs, one attached to each
// crossing segment. Like vertex, it lives in a per-call arena; dual, next
// and other are arena indices (dual/next into the sect arena, other into
// the vertex arena), nilIdx standing in for null. Liveness is tracked
// separately in a parallel bitset.Set, not as a field here.
type sect struct {
	i int // shared identity of a dual pair: N + running counter
	x, y float64

	dual  int
	next  int
	other int

	sign bool
}

// detectIntersections runs the sweep-accelerated pairwise segment test
// described in stage C. order holds vertex-arena indices sorted by
// segment top descending. It returns the populated sect arena, a
// parallel valid bitset (every bit set, since every record starts live),
// and whether any intersection was recorded.
func detectIntersections(verts []vertex, order []int) ([]sect, bitset.Set, bool) {
	n := len(order)
	var sects []sect

	for i := 0; i < n-1; i++ {
		v0 := order[i]
		for j := i + 1; j < n; j++ {
			v1 := order[j]

			if isAdjacent(v0, v1, len(verts)) {
				continue
			}
			if verts[v0].bottom > verts[v1].top {
				break
			}
			if !(verts[v0].left <= verts[v1].right && verts[v0].right >= verts[v1].left) {
				continue
			}

			n0 := verts[v0].next
			n1 := verts[v1].next
			px, py, t, u, ok := intersectSegments(
				verts[v0].x, verts[v0].y, verts[n0].x, verts[n0].y,
				verts[v1].x, verts[v1].y, verts[n1].x, verts[n1].y,
			)
			if !ok {
				continue
			}

			switch {
			case t == 0:
				if grazeIsGenuine(verts, v0, v1, px, py) {
					insertSect(verts, &sects, v0, v1, px, py, len(verts)+len(sects)/2)
				}
			case u == 0:
				if grazeIsGenuine(verts, v1, v0, px, py) {
					insertSect(verts, &sects, v0, v1, px, py, len(verts)+len(sects)/2)
				}
			default:
				insertSect(verts, &sects, v0, v1, px, py, len(verts)+len(sects)/2)
			}
		}
	}

	return sects, bitset.New(len(sects), true), len(sects) > 0
}

// grazeIsGenuine resolves the case where a crossing sits exactly on
// walk's segment start (t=0 in the sweep, or u=0 with walk/fixed
// exchanged). It walks walk's predecessors backward across zero-area
// collinear runs until the triangle formed with the intersection point
// has a non-zero winding, then compares that winding against the one
// formed on the other side of the crossing. A match means the touch is a
// genuine transverse crossing rather than a vertex merely grazing the
// other segment.
func grazeIsGenuine(verts []vertex, walk, fixed int, px, py float64) bool {
	prev := verts[walk].prev
	stopI := verts[verts[walk].next].i

	w := area(verts[prev].x, verts[prev].y, px, py, verts[fixed].x, verts[fixed].y)
	for w == Zero {
		prev = verts[prev].prev
		if verts[prev].i == stopI {
			break
		}
		w = area(verts[prev].x, verts[prev].y, px, py, verts[fixed].x, verts[fixed].y)
	}
	if verts[prev].i == stopI {
		return false
	}

	wn := verts[walk].next
	fn := verts[fixed].next
	return w == area(verts[wn].x, verts[wn].y, px, py, verts[fn].x, verts[fn].y)
}

// insertSect appends a dual pair of intersection records, one attached to
// v0's segment and one to v1's, both at the shared crossing point.
func insertSect(verts []vertex, sects *[]sect, v0, v1 int, px, py float64, id int) {
	i1 := len(*sects)
	i2 := i1 + 1
	*sects = append(*sects,
		sect{i: id, x: px, y: py, dual: i2, next: nilIdx, other: v1, sign: true},
		sect{i: id, x: px, y: py, dual: i1, next: nilIdx, other: v0, sign: true},
	)
	verts[v0].sects = append(verts[v0].sects, i1)
	verts[v1].sects = append(verts[v1].sects, i2)
}
