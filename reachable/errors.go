package reachable

import "errors"

// ErrNotSorted indicates NewReachable was asked to index an FST that
// does not carry the label-sorted property required for the chosen
// side, matching matcher.ErrNotSorted's contract.
var ErrNotSorted = errors.New("reachable: fst is not label-sorted")
