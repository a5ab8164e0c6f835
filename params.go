package stwoverifier

import (
	"errors"
	"math/big"

	"github.com/neotheprogramist/stwo-sol-verifier/stark"
)

var ErrNoComponents = errors.New("no constraint components supplied")

type ComponentInfo struct {
	MaxConstraintLogDegreeBound uint32
	LogSize                     uint32
	MaskOffsets                 [][][]int32
	PreprocessedColumns         []*big.Int
}

type ComponentParams struct {
	LogSize    uint32
	ClaimedSum QM31
	Info       ComponentInfo
}

type VerificationParams struct {
	ComponentParams                     []ComponentParams
	NPreprocessedColumns                *big.Int
	ComponentsCompositionLogDegreeBound uint32
}

// FromComponents builds the per-component verification parameters. Records
// keep the order components were supplied in, which the caller must keep
// equal to the order of the trace commitments on chain. Preprocessed columns
// are referenced by position, not id: the contract only ever indexes them.
func (me *VerificationParams) FromComponents(components []stark.Component, nPreprocessedColumns int) error {
	if len(components) == 0 {
		return ErrNoComponents
	}

	params := make([]ComponentParams, 0, len(components))
	for _, comp := range components {
		offsets := comp.MaskOffsets()
		maskOffsets := make([][][]int32, len(offsets))
		for t, tree := range offsets {
			maskOffsets[t] = make([][]int32, len(tree))
			for c, column := range tree {
				maskOffsets[t][c] = make([]int32, len(column))
				for o, offset := range column {
					maskOffsets[t][c][o] = int32(offset)
				}
			}
		}

		preprocessed := make([]*big.Int, len(comp.PreprocessedColumns()))
		for idx := range preprocessed {
			preprocessed[idx] = big.NewInt(int64(idx))
		}

		params = append(params, ComponentParams{
			LogSize:    comp.LogSize(),
			ClaimedSum: qm31ToWire(comp.ClaimedSum()),
			Info: ComponentInfo{
				MaxConstraintLogDegreeBound: comp.MaxConstraintLogDegreeBound(),
				LogSize:                     comp.LogSize(),
				MaskOffsets:                 maskOffsets,
				PreprocessedColumns:         preprocessed,
			},
		})
	}

	aggregate := stark.Components{
		Components:           components,
		NPreprocessedColumns: nPreprocessedColumns,
	}

	me.ComponentParams = params
	me.NPreprocessedColumns = big.NewInt(int64(nPreprocessedColumns))
	me.ComponentsCompositionLogDegreeBound = aggregate.CompositionLogDegreeBound()
	return nil
}
