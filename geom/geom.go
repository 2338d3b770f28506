// Package geom loads flat 2D polygon-ring coordinates from a Wavefront
// OBJ stream, the same format the rest of the reference stack uses for
// mesh geometry.
package geom

import (
	"fmt"
	"io"

	"github.com/aurelien-rainone/gobj"
	"github.com/aurelien-rainone/gogeo/f32/d3"
)

// Load reads an OBJ-formatted ring from r and returns it as flat (x,y)
// pairs in vertex order, along with its axis-aligned bounds. Only the
// first two coordinates of each vertex are kept; Z, if present, is
// dropped, since the core triangulator works in 2D.
func Load(r io.Reader) (data []float64, bounds d3.Rectangle, err error) {
	obj, err := gobj.Decode(r)
	if err != nil {
		return nil, d3.Rectangle{}, fmt.Errorf("geom: decode: %w", err)
	}

	verts := obj.Verts()
	if len(verts) == 0 {
		return nil, d3.Rectangle{}, fmt.Errorf("geom: no vertices in stream")
	}

	data = make([]float64, 0, len(verts)*2)
	minX, minY := verts[0].X(), verts[0].Y()
	maxX, maxY := minX, minY
	for _, v := range verts {
		x, y := v.X(), v.Y()
		data = append(data, x, y)
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	bounds = d3.Rect(float32(minX), float32(minY), 0, float32(maxX), float32(maxY), 0)
	return data, bounds, nil
}
