// Package matcher locates a state's outgoing transitions matching a
// query label, on either the input or output side.
//
// GenericMatcher is the one implementation in this package: it scans a
// state's transitions linearly, or binary-searches them when the FST
// carries the appropriate *LabelSorted property. It also implements the
// special-label contract composition relies on:
//
//   - Eps   matches only literal epsilon transitions (no implicit self-loop)
//   - Phi   "failure": if nothing literal matches, follow the state's
//     Phi-labeled transition instead, multiplying weights along the chain
//   - Sigma "any": matches any label not literally present at the state
//   - Rho   "rest": matches any label not otherwise labeled at the state
//
// A lookahead-capable matcher additionally requires its FST to be label
// sorted; ReachInit reports ErrNotSorted otherwise.
package matcher
