package trmap

import "github.com/katalvlaran/wfst/fst"

// InvertMapper swaps each transition's input and output labels,
// exchanging an acceptor's two projections. Final weights carry no
// labels and pass through unchanged.
type InvertMapper struct{}

// ArcMap implements TrMapper.
func (InvertMapper) ArcMap(tr fst.Transition) fst.Transition {
	tr.Ilabel, tr.Olabel = tr.Olabel, tr.Ilabel
	return tr
}

// FinalArcMap implements TrMapper.
func (InvertMapper) FinalArcMap(ft fst.FinalTransition) fst.FinalTransition { return ft }

// FinalAction implements TrMapper.
func (InvertMapper) FinalAction() FinalAction { return MapNoSuperfinal }

var _ TrMapper = InvertMapper{}
