package trmap

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// SimpleWeightConverter builds a WeightConverter out of a plain per-weight
// conversion function, for the common case where the destination weight
// of a transition depends only on its own source weight, not on its
// labels or state.
type SimpleWeightConverter struct {
	// Conv maps a source weight to the destination semiring.
	Conv func(semiring.Weight) semiring.Weight
	// DstZero is the destination semiring's additive identity.
	DstZero semiring.Weight
}

// Convert implements WeightConverter.
func (c SimpleWeightConverter) Convert(tr fst.Transition) fst.Transition {
	tr.Weight = c.Conv(tr.Weight)
	return tr
}

// FinalConvert implements WeightConverter.
func (c SimpleWeightConverter) FinalConvert(w semiring.Weight) semiring.Weight {
	return c.Conv(w)
}

// Zero implements WeightConverter.
func (c SimpleWeightConverter) Zero() semiring.Weight { return c.DstZero }

var _ WeightConverter = SimpleWeightConverter{}

// AsWeightConverter adapts a TrMapper that never changes labels (Ilabel
// and Olabel must pass through ArcMap/FinalArcMap unchanged) into a
// same-semiring WeightConverter, so TrMap-shaped rewrites can feed into
// WeightConvert-based pipelines (e.g. a Quantize stage run through
// WeightConvert to produce a fresh immutable VectorFst rather than
// mutating in place).
func AsWeightConverter(m TrMapper, dstZero semiring.Weight) WeightConverter {
	return trMapperAdapter{m: m, dstZero: dstZero}
}

type trMapperAdapter struct {
	m       TrMapper
	dstZero semiring.Weight
}

func (a trMapperAdapter) Convert(tr fst.Transition) fst.Transition { return a.m.ArcMap(tr) }

func (a trMapperAdapter) FinalConvert(w semiring.Weight) semiring.Weight {
	return a.m.FinalArcMap(fst.FinalTransition{Ilabel: fst.Eps, Olabel: fst.Eps, Weight: w}).Weight
}

func (a trMapperAdapter) Zero() semiring.Weight { return a.dstZero }

var _ WeightConverter = trMapperAdapter{}
