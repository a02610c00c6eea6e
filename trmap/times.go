package trmap

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// TimesMapper multiplies every transition weight and every final weight
// by a fixed constant on the right: w ⊗ Constant. A zero final weight is
// left alone (Times on a zero is zero anyway, but skipping it avoids
// manufacturing a spurious non-zero final state when Constant itself
// happens to be zero's own representation under some semiring).
type TimesMapper struct {
	Constant semiring.Weight
}

// NewTimesMapper constructs a TimesMapper that multiplies every weight by
// constant.
func NewTimesMapper(constant semiring.Weight) TimesMapper {
	return TimesMapper{Constant: constant}
}

// ArcMap implements TrMapper.
func (m TimesMapper) ArcMap(tr fst.Transition) fst.Transition {
	tr.Weight = tr.Weight.Times(m.Constant)
	return tr
}

// FinalArcMap implements TrMapper.
func (m TimesMapper) FinalArcMap(ft fst.FinalTransition) fst.FinalTransition {
	if ft.Weight.IsZero() {
		return ft
	}
	ft.Weight = ft.Weight.Times(m.Constant)
	return ft
}

// FinalAction implements TrMapper.
func (m TimesMapper) FinalAction() FinalAction { return MapNoSuperfinal }

var _ TrMapper = TimesMapper{}
