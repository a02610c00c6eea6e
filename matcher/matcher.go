package matcher

import "github.com/katalvlaran/wfst/fst"

// Type selects which side of a transition's label a Matcher compares
// against a query label.
type Type int

const (
	// MatchInput matches against a transition's Ilabel.
	MatchInput Type = iota
	// MatchOutput matches against a transition's Olabel.
	MatchOutput
)

// Matcher locates state's outgoing transitions whose matched-side label
// equals label, resolving Phi/Sigma/Rho fallbacks transparently. label
// must not itself be Phi, Sigma, or Rho; querying Eps returns only
// literal epsilon transitions (composition handles the implicit epsilon
// self-move itself; see compose.Op).
type Matcher interface {
	// Find returns the transitions of state matching label.
	Find(state fst.StateId, label fst.Label) ([]fst.Transition, error)

	// MatchType reports which side this matcher compares against.
	MatchType() Type

	// ReachInit verifies the wrapped FST carries the *LabelSorted
	// property this matcher's binary search (and any lookahead index
	// built on top of it) requires. Returns ErrNotSorted otherwise.
	ReachInit() error
}
