package stark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type boundComponent uint32

func (me boundComponent) LogSize() uint32                     { return uint32(me) }
func (me boundComponent) MaxConstraintLogDegreeBound() uint32 { return uint32(me) + 1 }
func (me boundComponent) ClaimedSum() QM31                    { return QM31{} }
func (me boundComponent) MaskOffsets() [][][]int64            { return nil }
func (me boundComponent) PreprocessedColumns() []string       { return nil }
func (me boundComponent) TraceLogDegreeBounds() [][]uint32    { return nil }

func TestCompositionLogDegreeBound(t *testing.T) {
	components := Components{
		Components: []Component{boundComponent(4), boundComponent(9), boundComponent(6)},
	}
	assert.Equal(t, uint32(10), components.CompositionLogDegreeBound())

	empty := Components{}
	assert.Equal(t, uint32(0), empty.CompositionLogDegreeBound())
}
