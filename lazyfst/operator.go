package lazyfst

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// Operator is the "how to compute" half of a lazy FST. Implementations
// must be deterministic: repeated calls with the same id must return
// results that compare equal (ComputeStart takes no id — there is one
// start per FST).
type Operator interface {
	// ComputeStart returns the initial composite state, or
	// fst.NoStateId if the operator's FST has none.
	ComputeStart() (fst.StateId, error)

	// ComputeTrs returns the outgoing transitions of state id.
	ComputeTrs(id fst.StateId) ([]fst.Transition, error)

	// ComputeFinal returns the final weight of state id.
	ComputeFinal(id fst.StateId) (semiring.Weight, error)

	// Properties reports the subset of mask known to hold for the
	// operator's output, independent of what has been expanded so far.
	Properties(mask fst.Properties) fst.Properties

	// NumKnownStates reports how many state ids the operator has
	// allocated so far (e.g. the length of a composition's state
	// table). It grows monotonically as ComputeTrs/ComputeStart
	// discover new composite states.
	NumKnownStates() int
}
