package builder

import (
	"encoding/binary"
	"fmt"
	"io"
)

// triMagic and triVersion identify the .tri binary format, the same
// magic+version+count header idiom the reference navmesh serializer
// uses for its tile sets.
const (
	triMagic   int32 = 'L'<<24 | 'V'<<16 | 'T'<<8 | 'R' // 'LVTR'
	triVersion int32 = 1
)

// triHeader is written first, fixed-width, matching the teacher's
// magic/version/count header struct.
type triHeader struct {
	Magic       int32
	Version     int32
	VertexCount int32
	IndexCount  int32
}

// WriteTri encodes result as the .tri binary format: a fixed-width
// header followed by the vertex and index payloads, little-endian
// throughout.
func WriteTri(w io.Writer, result Result) error {
	if len(result.Vertices)%2 != 0 {
		return fmt.Errorf("builder: odd vertex buffer length %d", len(result.Vertices))
	}

	hdr := triHeader{
		Magic:       triMagic,
		Version:     triVersion,
		VertexCount: int32(len(result.Vertices) / 2),
		IndexCount:  int32(len(result.Indices)),
	}
	if err := binary.Write(w, binary.LittleEndian, hdr); err != nil {
		return fmt.Errorf("builder: write header: %w", err)
	}

	verts := make([]float32, len(result.Vertices))
	for i, v := range result.Vertices {
		verts[i] = float32(v)
	}
	if err := binary.Write(w, binary.LittleEndian, verts); err != nil {
		return fmt.Errorf("builder: write vertices: %w", err)
	}

	indices := make([]int32, len(result.Indices))
	for i, v := range result.Indices {
		indices[i] = int32(v)
	}
	if err := binary.Write(w, binary.LittleEndian, indices); err != nil {
		return fmt.Errorf("builder: write indices: %w", err)
	}

	return nil
}
