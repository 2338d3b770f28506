package louvre

import "testing"

func TestAreaBasic(t *testing.T) {
	// (0,0) (1,0) (0,1), y-down convention: this turn is CCW.
	if got := area(0, 0, 1, 0, 0, 1); got != CCW {
		t.Fatalf("area: got %v, want CCW", got)
	}
	if got := area(0, 1, 1, 0, 0, 0); got != CW {
		t.Fatalf("area: got %v, want CW", got)
	}
	if got := area(0, 0, 1, 1, 2, 2); got != Zero {
		t.Fatalf("area: got %v, want Zero", got)
	}
}

func TestAreaReversal(t *testing.T) {
	cases := [][6]float64{
		{0, 0, 1, 0, 0, 1},
		{-1, -1, 1, 1, 1, 0},
		{3, 0, 3, 4, -1, 0},
	}
	for _, c := range cases {
		fwd := area(c[0], c[1], c[2], c[3], c[4], c[5])
		rev := area(c[4], c[5], c[2], c[3], c[0], c[1])
		switch fwd {
		case CCW:
			if rev != CW {
				t.Fatalf("reversal: fwd=%v rev=%v", fwd, rev)
			}
		case CW:
			if rev != CCW {
				t.Fatalf("reversal: fwd=%v rev=%v", fwd, rev)
			}
		case Zero:
			if rev != Zero {
				t.Fatalf("reversal: fwd=%v rev=%v", fwd, rev)
			}
		}
	}
}

func TestSignedAreaSquareIsCCW(t *testing.T) {
	// a unit square built counter-clockwise under the y-down convention.
	square := []float64{0, 0, 1, 0, 1, 1, 0, 1}
	if got := signedArea(square, 2); got != CCW {
		t.Fatalf("signedArea: got %v, want CCW", got)
	}
}

func TestSignedAreaReversalFlips(t *testing.T) {
	square := []float64{0, 0, 0, 1, 1, 1, 1, 0}
	reversed := []float64{1, 0, 1, 1, 0, 1, 0, 0}
	if signedArea(square, 2) == signedArea(reversed, 2) {
		t.Fatalf("reversing point order should flip the winding")
	}
}

func TestIntersectSegmentsCross(t *testing.T) {
	px, py, _, _, ok := intersectSegments(-1, -1, 1, 1, -1, 1, 1, -1)
	if !ok {
		t.Fatalf("expected a crossing")
	}
	if px != 0 || py != 0 {
		t.Fatalf("got (%v,%v), want (0,0)", px, py)
	}
}

func TestIntersectSegmentsCollinearNeverCrosses(t *testing.T) {
	_, _, _, _, ok := intersectSegments(0, 0, 1, 0, 2, 0, 3, 0)
	if ok {
		t.Fatalf("collinear segments should never report a crossing")
	}
}

func TestIntersectSegmentsExcludesUpperBound(t *testing.T) {
	// the second segment's start sits exactly at the first segment's end
	// (t=1 on the first segment): this must not count as a crossing since
	// it belongs to the adjacent segment instead.
	_, _, _, _, ok := intersectSegments(0, 0, 1, 0, 1, 0, 1, 1)
	if ok {
		t.Fatalf("a crossing landing at t=1 should be excluded")
	}
}
