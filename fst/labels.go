package fst

// StateId identifies a state within one FST. It is a dense, non-negative
// integer so that callers can use it directly as a slice index or map
// key without an intervening handle type.
type StateId int64

// NoStateId is the reserved "no state" sentinel, returned by Start() when
// an FST has no initial state.
const NoStateId StateId = -1

// Label identifies an input or output symbol on a transition. Valid
// symbol ids are non-negative; the sentinels below are chosen negative so
// they can never collide with a real symbol id.
type Label int64

const (
	// Eps is the epsilon / empty label: transitions bearing it consume
	// no input (Ilabel) or produce no output (Olabel) on that side.
	Eps Label = 0

	// NoLabel marks an absent label.
	NoLabel Label = -1

	// Phi is the matcher's "failure" label: if no literal transition at
	// a state matches the query label, follow the Phi-labeled transition
	// instead (weights multiply along the chain).
	Phi Label = -2

	// Sigma is the matcher's "any" label: matches any label not
	// otherwise literally present at the state.
	Sigma Label = -3

	// Rho is the matcher's "rest" label: matches any label not otherwise
	// labeled at the state. matcher.GenericMatcher rewrites the matched
	// label of a Rho transition exactly as it does for Sigma, and only
	// consults Rho when the state has no Sigma transition.
	Rho Label = -4
)
