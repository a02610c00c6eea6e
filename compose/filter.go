package compose

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// FilterState is a composition filter's per-composite-state coordinate.
// Its encoding is private to the filter implementation that produced it;
// callers only ever store it opaquely as part of a composite state
// tuple and pass it back to the same filter.
type FilterState int

// NoFilterState marks "no valid filter state", returned by Filter
// methods to reject a pairing.
const NoFilterState FilterState = -1

// TrKind names which of the three pairings spec.md §4.9 describes a
// candidate (tA, tB) pair belongs to. Op determines this from which
// side it is driving (a real transition vs. a virtual single-sided
// epsilon move), not from the transitions' labels — a virtual move
// always carries Eps/Eps regardless of which side it stands in for, so
// a filter cannot recover the kind by inspecting tA/tB alone.
type TrKind int

const (
	// KindMatch is an AB-match: both tA and tB are real, non-epsilon
	// transitions paired by label.
	KindMatch TrKind = iota
	// KindAEps is an A-eps move: tA is a real output-epsilon transition
	// of A, tB is a virtual epsilon move that leaves B in place.
	KindAEps
	// KindBEps is a B-eps move: tB is a real input-epsilon transition of
	// B, tA is a virtual epsilon move that leaves A in place.
	KindBEps
)

// Filter decides which pairs of outgoing transitions from A and B may
// compose, and tracks a small FilterState per composite state to keep
// epsilon handling canonical when both sides offer an epsilon
// transition. Implementations must be deterministic: the same
// (sA, sB, fs, tA, tB, kind) must always produce the same verdict.
type Filter interface {
	// Start returns the filter state at the composite initial state.
	Start() FilterState

	// SetState notifies the filter of the composite state (sA, sB, fs)
	// whose pairings are about to be queried via FilterTr/FilterFinal.
	SetState(sA, sB fst.StateId, fs FilterState)

	// FilterTr decides whether candidate transitions tA (from A) and tB
	// (from B), of the given kind, may compose, given the state set via
	// SetState. It returns the resulting filter state and true if
	// admissible, or (NoFilterState, false) to reject the pairing.
	FilterTr(tA, tB fst.Transition, kind TrKind) (FilterState, bool)

	// FilterFinal may adjust the final weights of the composite state
	// set via SetState, e.g. to cancel a weight contributed by a
	// bookkeeping epsilon loop. It returns the (possibly unmodified)
	// weights to multiply together.
	FilterFinal(fwA, fwB semiring.Weight) (semiring.Weight, semiring.Weight)

	// Properties declares which of mask's properties are preserved by
	// this filter's composition, independent of the inputs' own
	// properties.
	Properties(mask fst.Properties) fst.Properties
}
