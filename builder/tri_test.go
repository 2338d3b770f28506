package builder

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestWriteTriRoundTripsHeader(t *testing.T) {
	result := Result{
		Vertices: []float64{0, 0, 1, 0, 1, 1},
		Indices:  []int{0, 1, 2},
	}

	var buf bytes.Buffer
	if err := WriteTri(&buf, result); err != nil {
		t.Fatalf("WriteTri: %v", err)
	}

	var hdr triHeader
	if err := binary.Read(&buf, binary.LittleEndian, &hdr); err != nil {
		t.Fatalf("reading back header: %v", err)
	}
	if hdr.Magic != triMagic {
		t.Fatalf("got magic %x, want %x", hdr.Magic, triMagic)
	}
	if hdr.Version != triVersion {
		t.Fatalf("got version %d, want %d", hdr.Version, triVersion)
	}
	if hdr.VertexCount != 3 {
		t.Fatalf("got vertex count %d, want 3", hdr.VertexCount)
	}
	if hdr.IndexCount != 3 {
		t.Fatalf("got index count %d, want 3", hdr.IndexCount)
	}

	wantPayload := 3*2*4 + 3*4 // 3 (x,y) float32 pairs + 3 int32 indices
	if buf.Len() != wantPayload {
		t.Fatalf("got %d leftover payload bytes, want %d", buf.Len(), wantPayload)
	}
}

func TestWriteTriRejectsOddVertexBuffer(t *testing.T) {
	result := Result{Vertices: []float64{0, 0, 1}}
	var buf bytes.Buffer
	if err := WriteTri(&buf, result); err == nil {
		t.Fatalf("expected an error for an odd-length vertex buffer")
	}
}
