package fibonacci

import (
	"math/bits"

	"github.com/neotheprogramist/stwo-sol-verifier/stark"
)

// The circuit proves knowledge of a Fibonacci run over three trace columns
// a, b, c with the single constraint c = a + b per row.
const N_COLUMNS = 3

// Component is the verifier-side view of the Fibonacci circuit.
type Component struct {
	LogNRows uint32
}

func (me *Component) LogSize() uint32 {
	return me.LogNRows
}

func (me *Component) MaxConstraintLogDegreeBound() uint32 {
	return me.LogNRows + 1
}

func (me *Component) ClaimedSum() stark.QM31 {
	return stark.QM31{}
}

// MaskOffsets reads every trace column at the current row only; the
// preprocessed tree is empty.
func (me *Component) MaskOffsets() [][][]int64 {
	trace := make([][]int64, N_COLUMNS)
	for i := range trace {
		trace[i] = []int64{0}
	}
	return [][][]int64{{}, trace}
}

func (me *Component) PreprocessedColumns() []string {
	return nil
}

func (me *Component) TraceLogDegreeBounds() [][]uint32 {
	trace := make([]uint32, N_COLUMNS)
	for i := range trace {
		trace[i] = me.LogNRows
	}
	return [][]uint32{{}, trace}
}

// CalculateLogSize returns the minimum trace log size able to hold the
// computation of f(targetN).
func CalculateLogSize(targetN int) uint32 {
	minRows := targetN - 1
	if minRows < 1 {
		minRows = 1
	}
	logSize := uint32(bits.Len(uint(minRows - 1)))
	if logSize < 2 {
		logSize = 2
	}
	return logSize
}

// GenTrace fills the three columns with the Fibonacci run and returns them
// along with f(targetN) and the trace log size. Rows past the computation
// stay zero.
func GenTrace(targetN int) ([N_COLUMNS][]stark.M31, stark.M31, uint32) {
	logSize := CalculateLogSize(targetN)
	nRows := 1 << logSize

	var cols [N_COLUMNS][]stark.M31
	for i := range cols {
		cols[i] = make([]stark.M31, nRows)
	}

	a := stark.NewM31(0)
	b := stark.NewM31(1)
	var target stark.M31

	computeRows := targetN - 1
	if computeRows > nRows {
		computeRows = nRows
	}
	for row := 0; row < computeRows; row++ {
		c := a.Add(b)
		cols[0][row] = a
		cols[1][row] = b
		cols[2][row] = c
		if row+2 == targetN {
			target = c
		}
		a, b = b, c
	}
	return cols, target, logSize
}
