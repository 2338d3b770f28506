package geom

import (
	"strings"
	"testing"
)

const square = "v 0 0 0\nv 0 3 0\nv 3 3 0\nv 3 0 0\n"

func TestLoadFlattensVertices(t *testing.T) {
	data, bounds, err := Load(strings.NewReader(square))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []float64{0, 0, 0, 3, 3, 3, 3, 0}
	if len(data) != len(want) {
		t.Fatalf("got %d coords, want %d", len(data), len(want))
	}
	for i := range want {
		if data[i] != want[i] {
			t.Fatalf("coord %d: got %v, want %v", i, data[i], want[i])
		}
	}
	if bounds.Max.X() != 3 || bounds.Max.Y() != 3 {
		t.Fatalf("unexpected bounds max: %v", bounds.Max)
	}
}

func TestLoadEmptyStreamErrors(t *testing.T) {
	if _, _, err := Load(strings.NewReader("")); err == nil {
		t.Fatalf("expected an error for a stream with no vertices")
	}
}
