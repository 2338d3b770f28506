package louvre

import "testing"

func TestIsPointInsideBoundaryCounts(t *testing.T) {
	// (0.5, 0) sits exactly on the edge from (0,0) to (1,0).
	if !isPointInside(0, 0, 1, 0, 0, 1, 0.5, 0) {
		t.Fatalf("a point on the boundary should count as inside")
	}
	if isPointInside(0, 0, 1, 0, 0, 1, 2, 2) {
		t.Fatalf("a point well outside the triangle should not count as inside")
	}
}

func TestEarClipSquareProducesTwoTriangles(t *testing.T) {
	square := []float64{0, 0, 1, 0, 1, 1, 0, 1}
	verts := buildRing(square, 2)
	order := make([]int, len(verts))
	for i := range order {
		order[i] = i
	}
	_, cycles := decompSimple(verts, order)
	out, ok := earClip(cycles[0], nil)
	if !ok {
		t.Fatalf("earClip on a simple square should succeed")
	}
	if len(out) != 6 {
		t.Fatalf("got %d indices, want 6 (2 triangles)", len(out))
	}
}
