package trmap

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// QuantizeMapper rounds every weight to the nearest multiple of Delta via
// semiring.Quantizable, making float-valued weights usable as map keys.
// A weight whose concrete type does not implement Quantizable passes
// through unchanged.
type QuantizeMapper struct {
	Delta float64
}

// NewQuantizeMapper constructs a QuantizeMapper with the given step. A
// Delta of 0 is replaced with semiring.KDelta.
func NewQuantizeMapper(delta float64) QuantizeMapper {
	if delta == 0 {
		delta = semiring.KDelta
	}
	return QuantizeMapper{Delta: delta}
}

func (m QuantizeMapper) quantize(w semiring.Weight) semiring.Weight {
	if q, ok := w.(semiring.Quantizable); ok {
		return q.Quantize(m.Delta)
	}
	return w
}

// ArcMap implements TrMapper.
func (m QuantizeMapper) ArcMap(tr fst.Transition) fst.Transition {
	tr.Weight = m.quantize(tr.Weight)
	return tr
}

// FinalArcMap implements TrMapper.
func (m QuantizeMapper) FinalArcMap(ft fst.FinalTransition) fst.FinalTransition {
	ft.Weight = m.quantize(ft.Weight)
	return ft
}

// FinalAction implements TrMapper.
func (m QuantizeMapper) FinalAction() FinalAction { return MapNoSuperfinal }

var _ TrMapper = QuantizeMapper{}
