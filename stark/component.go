package stark

// Component is a constraint evaluation unit of the proven circuit. The
// verifier side only ever sees this capability set; concrete circuits live
// in their own packages and implement it.
type Component interface {
	LogSize() uint32
	MaxConstraintLogDegreeBound() uint32
	ClaimedSum() QM31
	// MaskOffsets nests per tree, per column, the signed row offsets the
	// constraints read.
	MaskOffsets() [][][]int64
	// PreprocessedColumns returns the ids of the preprocessed columns the
	// component references, in trace order.
	PreprocessedColumns() []string
	// TraceLogDegreeBounds nests per tree the log degree bound of each
	// committed column.
	TraceLogDegreeBounds() [][]uint32
}

// Components aggregates the full component set of a proof.
type Components struct {
	Components           []Component
	NPreprocessedColumns int
}

// CompositionLogDegreeBound is the degree bound of the combined constraint
// polynomial: the maximum constraint bound over all components.
func (me *Components) CompositionLogDegreeBound() uint32 {
	var bound uint32
	for _, c := range me.Components {
		if b := c.MaxConstraintLogDegreeBound(); b > bound {
			bound = b
		}
	}
	return bound
}
