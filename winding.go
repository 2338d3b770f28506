package louvre

// Winding is the three-valued result of a signed-area classification.
// A signed number would let the zero-area case slip through unnoticed at
// a call site; Winding makes it an explicit third outcome.
type Winding int

const (
	// CCW marks a counter-clockwise (negative signed-area) winding.
	CCW Winding = iota
	// CW marks a clockwise (positive signed-area) winding.
	CW
	// Zero marks a degenerate, collinear or zero-area case.
	Zero
)

func (w Winding) String() string {
	switch w {
	case CCW:
		return "CCW"
	case CW:
		return "CW"
	default:
		return "Zero"
	}
}

// area classifies the signed area of triangle (a,b,c). The sign convention
// matches a y-down screen coordinate system: negative is CCW.
func area(ax, ay, bx, by, cx, cy float64) Winding {
	result := (by-ay)*(cx-bx) - (bx-ax)*(cy-by)
	switch {
	case result > 0:
		return CW
	case result < 0:
		return CCW
	default:
		return Zero
	}
}

// signedArea classifies the signed area of the closed polyline packed into
// data with the given coordinate stride.
func signedArea(data []float64, dim int) Winding {
	var sum float64
	j := len(data) - dim
	for i := 0; i < len(data); i += dim {
		sum += (data[i] - data[j]) * (data[i+1] + data[j+1])
		j = i
	}
	switch {
	case sum > 0:
		return CW
	case sum < 0:
		return CCW
	default:
		return Zero
	}
}

// intersectSegments finds the crossing point of segment (x1,y1)-(x2,y2) and
// segment (x3,y3)-(x4,y4), parametrized as p1 + t*(p2-p1) and p3 + u*(p4-p3).
// Collinear pairs (zero denominator) deliberately never intersect. An
// intersection landing exactly at t=1 or u=1 is excluded since it belongs to
// the adjacent segment instead.
func intersectSegments(x1, y1, x2, y2, x3, y3, x4, y4 float64) (px, py, t, u float64, ok bool) {
	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if denom == 0 {
		return 0, 0, 0, 0, false
	}

	t = (x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)
	t /= denom
	if !(0 <= t && t < 1) {
		return 0, 0, 0, 0, false
	}

	u = (x1-x3)*(y1-y2) - (y1-y3)*(x1-x2)
	u /= denom
	if !(0 <= u && u < 1) {
		return 0, 0, 0, 0, false
	}

	px = x1 + t*(x2-x1)
	py = y1 + t*(y2-y1)
	return px, py, t, u, true
}
