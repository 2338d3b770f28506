package louvre

import (
	"reflect"
	"testing"

	"github.com/aurelien-rainone/math32"
)

func TestTriangulateREADMEExample(t *testing.T) {
	data := []float64{0, 0, 0, 3, 3, 0, 3, 4, -1, 0}
	newData, indices := Triangulate(nil, data, 2)

	wantData := []float64{3, 0, 3, 4, 1, 2, 0, 0, 0, 1, -1, 0, 0, 1, 1, 2, 0, 3}
	wantIndices := []int{1, 2, 0, 4, 5, 3, 7, 8, 6}

	if !approxEqualData(newData, wantData) {
		t.Fatalf("new_data:\n got  %v\n want %v", newData, wantData)
	}
	if !reflect.DeepEqual(indices, wantIndices) {
		t.Fatalf("indices:\n got  %v\n want %v", indices, wantIndices)
	}
}

func TestTriangulateCollinearIsEmpty(t *testing.T) {
	data := []float64{0, 0, 1, 1, 2, 2}
	_, indices := Triangulate(nil, data, 2)
	if len(indices) != 0 {
		t.Fatalf("collinear ring should yield no triangles, got %v", indices)
	}
}

func TestTriangulateBowtieSplitsIntoTwoTriangles(t *testing.T) {
	data := []float64{-1, 0, -1, -1, 1, 1, 1, 0}
	newData, indices := Triangulate(nil, data, 2)
	if len(indices)%3 != 0 {
		t.Fatalf("indices length should be a multiple of 3, got %d", len(indices))
	}
	if len(indices) != 6 {
		t.Fatalf("a single self-crossing quad should split into 2 triangles, got %d", len(indices)/3)
	}

	for tri := 0; tri < len(indices); tri += 3 {
		a, b, c := indices[tri], indices[tri+1], indices[tri+2]
		w := area(newData[2*a], newData[2*a+1], newData[2*b], newData[2*b+1], newData[2*c], newData[2*c+1])
		if w != CCW {
			t.Fatalf("triangle %d should be CCW, got %v", tri/3, w)
		}
	}
}

func TestTriangulateFewerThanThreePointsIsEmpty(t *testing.T) {
	newData, indices := Triangulate(nil, []float64{0, 0, 1, 1}, 2)
	if newData != nil || indices != nil {
		t.Fatalf("fewer than 3 points should yield empty output, got data=%v indices=%v", newData, indices)
	}
}

func TestTriangulateUsesNilContextSafely(t *testing.T) {
	ctx := (*BuildContext)(nil)
	ctx.StartTimer(TimerTotal)
	ctx.Progressf("should not panic")
	if ctx.LogCount() != 0 {
		t.Fatalf("nil context should report zero log entries")
	}
}

func approxEqualData(got, want []float64) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if !math32.Approx(float32(got[i]), float32(want[i])) {
			return false
		}
	}
	return true
}
