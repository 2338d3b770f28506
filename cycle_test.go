package louvre

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecompSimpleRebuildsFullRing(t *testing.T) {
	square := []float64{0, 0, 1, 0, 1, 1, 0, 1}
	verts := buildRing(square, 2)
	order := make([]int, len(verts))
	for i := range order {
		order[i] = i
	}
	newData, cycles := decompSimple(verts, order)

	assert.Len(t, cycles, 1, "a ring with no intersections decomposes into exactly one cycle")
	assert.Equal(t, len(verts), cycles[0].len, "the single cycle should carry every ring vertex")
	assert.Len(t, newData, len(verts)*2, "new_data should carry one (x,y) pair per vertex")
}

func TestEmitCycleDropsDegenerateLoop(t *testing.T) {
	var newData []float64
	var cycles []simpleCycle
	idx := emitCycle([]float64{0, 0, 1, 1, 2, 2}, &newData, &cycles, 0)

	assert.Zero(t, idx, "a zero-area loop should not consume any point identities")
	assert.Empty(t, cycles, "a zero-area loop should not be emitted as a cycle")
}

func TestEmitCycleReordersClockwiseLoopToCCW(t *testing.T) {
	cw := []float64{0, 0, 0, 1, 1, 1, 1, 0}
	var newData []float64
	var cycles []simpleCycle
	idx := emitCycle(cw, &newData, &cycles, 0)

	assert.Equal(t, 4, idx)
	assert.Len(t, cycles, 1)
	assert.Equal(t, CCW, signedArea(newData, 2), "emitCycle should always hand back a CCW-wound loop")
}
