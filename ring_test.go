package louvre

import "testing"

func TestBuildRingOrdersCCW(t *testing.T) {
	// a clockwise-wound unit square (y-down convention) should come back
	// reversed into CCW order.
	cw := []float64{0, 0, 0, 1, 1, 1, 1, 0}
	verts := buildRing(cw, 2)
	if len(verts) != 4 {
		t.Fatalf("got %d vertices, want 4", len(verts))
	}
	flat := make([]float64, 0, 8)
	v := 0
	for i := 0; i < 4; i++ {
		flat = append(flat, verts[v].x, verts[v].y)
		v = verts[v].next
	}
	if got := signedArea(flat, 2); got != CCW {
		t.Fatalf("ring winding: got %v, want CCW", got)
	}
}

func TestBuildRingStripsTrailingDuplicate(t *testing.T) {
	withDup := []float64{0, 0, 1, 0, 1, 1, 0, 0}
	verts := buildRing(withDup, 2)
	if len(verts) != 3 {
		t.Fatalf("got %d vertices, want 3 (duplicate closing point stripped)", len(verts))
	}
}

func TestBuildRingDegenerateReturnsNil(t *testing.T) {
	if verts := buildRing([]float64{0, 0, 1, 1}, 2); verts != nil {
		t.Fatalf("a 2-point ring should be degenerate, got %d vertices", len(verts))
	}
}

func TestIsAdjacentWrapsAround(t *testing.T) {
	if !isAdjacent(0, 4, 5) {
		t.Fatalf("vertex 0 and the last vertex of a 5-ring should be adjacent")
	}
	if isAdjacent(0, 2, 5) {
		t.Fatalf("vertex 0 and vertex 2 of a 5-ring should not be adjacent")
	}
	if !isAdjacent(2, 3, 5) {
		t.Fatalf("consecutive interior vertices should be adjacent")
	}
}
