package cache

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// Cache is the memoization surface a lazyfst.LazyFst stores its
// operator's results in. Each slot (start, a state's transitions, a
// state's final weight) may be written at most once; once written
// (value or error), every subsequent read of that slot must observe the
// exact same result.
type Cache interface {
	// HasStart reports whether the start slot has been written.
	HasStart() bool
	// SetStart writes the start slot. Calling it twice is a programmer
	// error; callers must check HasStart first.
	SetStart(s fst.StateId, err error)
	// Start reads the start slot. Undefined if !HasStart().
	Start() (fst.StateId, error)

	// HasTrs reports whether s's transitions slot has been written.
	HasTrs(s fst.StateId) bool
	// SetTrs writes s's transitions slot.
	SetTrs(s fst.StateId, trs []fst.Transition, err error)
	// Trs reads s's transitions slot. Undefined if !HasTrs(s).
	Trs(s fst.StateId) ([]fst.Transition, error)

	// HasFinal reports whether s's final-weight slot has been written.
	HasFinal(s fst.StateId) bool
	// SetFinal writes s's final-weight slot.
	SetFinal(s fst.StateId, w semiring.Weight, err error)
	// Final reads s's final-weight slot. Undefined if !HasFinal(s).
	Final(s fst.StateId) (semiring.Weight, error)
}
