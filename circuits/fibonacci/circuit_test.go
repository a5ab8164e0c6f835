package fibonacci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateLogSize(t *testing.T) {
	assert.Equal(t, uint32(2), CalculateLogSize(0))
	assert.Equal(t, uint32(2), CalculateLogSize(2))
	assert.Equal(t, uint32(2), CalculateLogSize(5))
	assert.Equal(t, uint32(3), CalculateLogSize(9))
	assert.Equal(t, uint32(4), CalculateLogSize(10))
	assert.Equal(t, uint32(7), CalculateLogSize(100))
}

func TestGenTrace(t *testing.T) {
	cols, target, logSize := GenTrace(10)

	assert.Equal(t, uint32(4), logSize)
	assert.Equal(t, uint32(55), target.Uint32())
	for _, col := range cols {
		require.Len(t, col, 1<<logSize)
	}
	// Every row satisfies c = a + b, padding rows trivially.
	for row := range cols[0] {
		assert.Equal(t, cols[0][row].Add(cols[1][row]), cols[2][row], "row %d", row)
	}
	assert.Equal(t, uint32(0), cols[0][0].Uint32())
	assert.Equal(t, uint32(1), cols[1][0].Uint32())
	assert.Equal(t, uint32(1), cols[2][0].Uint32())
}

func TestComponentCapabilities(t *testing.T) {
	comp := &Component{LogNRows: 5}

	assert.Equal(t, uint32(5), comp.LogSize())
	assert.Equal(t, uint32(6), comp.MaxConstraintLogDegreeBound())
	assert.True(t, comp.ClaimedSum().IsZero())
	assert.Empty(t, comp.PreprocessedColumns())

	offsets := comp.MaskOffsets()
	require.Len(t, offsets, 2)
	assert.Empty(t, offsets[0])
	require.Len(t, offsets[1], N_COLUMNS)
	for _, col := range offsets[1] {
		assert.Equal(t, []int64{0}, col)
	}

	bounds := comp.TraceLogDegreeBounds()
	require.Len(t, bounds, 2)
	assert.Empty(t, bounds[0])
	assert.Equal(t, []uint32{5, 5, 5}, bounds[1])
}
