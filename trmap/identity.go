package trmap

import "github.com/katalvlaran/wfst/fst"

// IdentityMapper leaves every transition and final weight unchanged. It
// exists as a base to embed when only one of ArcMap/FinalArcMap needs
// overriding, and as a no-op TrMap target for tests.
type IdentityMapper struct{}

// ArcMap implements TrMapper.
func (IdentityMapper) ArcMap(tr fst.Transition) fst.Transition { return tr }

// FinalArcMap implements TrMapper.
func (IdentityMapper) FinalArcMap(ft fst.FinalTransition) fst.FinalTransition { return ft }

// FinalAction implements TrMapper.
func (IdentityMapper) FinalAction() FinalAction { return MapNoSuperfinal }

var _ TrMapper = IdentityMapper{}
