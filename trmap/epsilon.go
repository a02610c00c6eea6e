package trmap

import "github.com/katalvlaran/wfst/fst"

// InputEpsilonMapper rewrites every transition's input label to Eps,
// turning an FST into one whose input projection accepts the empty
// string on every arc. Used to build the output-only projection of a
// transducer.
type InputEpsilonMapper struct{}

// ArcMap implements TrMapper.
func (InputEpsilonMapper) ArcMap(tr fst.Transition) fst.Transition {
	tr.Ilabel = fst.Eps
	return tr
}

// FinalArcMap implements TrMapper.
func (InputEpsilonMapper) FinalArcMap(ft fst.FinalTransition) fst.FinalTransition { return ft }

// FinalAction implements TrMapper.
func (InputEpsilonMapper) FinalAction() FinalAction { return MapNoSuperfinal }

var _ TrMapper = InputEpsilonMapper{}

// OutputEpsilonMapper rewrites every transition's output label to Eps,
// the input-projection counterpart of InputEpsilonMapper.
type OutputEpsilonMapper struct{}

// ArcMap implements TrMapper.
func (OutputEpsilonMapper) ArcMap(tr fst.Transition) fst.Transition {
	tr.Olabel = fst.Eps
	return tr
}

// FinalArcMap implements TrMapper.
func (OutputEpsilonMapper) FinalArcMap(ft fst.FinalTransition) fst.FinalTransition { return ft }

// FinalAction implements TrMapper.
func (OutputEpsilonMapper) FinalAction() FinalAction { return MapNoSuperfinal }

var _ TrMapper = OutputEpsilonMapper{}
