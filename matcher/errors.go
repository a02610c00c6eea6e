package matcher

import "errors"

var (
	// ErrNotSorted is returned by ReachInit when a lookahead matcher is
	// requested on an FST not carrying the required *LabelSorted property.
	ErrNotSorted = errors.New("matcher: fst is not label-sorted")

	// ErrMatcherLookupFailed indicates the matcher could not service a
	// special-label query (Phi/Sigma/Rho) at the given state.
	ErrMatcherLookupFailed = errors.New("matcher: lookup failed")
)
