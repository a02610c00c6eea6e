package compose

import "github.com/katalvlaran/wfst/fst"

// StateTuple is a composite composition state: a pair of component
// state ids plus the filter's coordinate. It is comparable, so it can
// key a statetable.StateTable directly.
type StateTuple struct {
	SA fst.StateId
	SB fst.StateId
	FS FilterState
}
