package fst

import "errors"

// ErrInvalidState indicates a state id passed to a checked accessor is
// out of range for this FST.
var ErrInvalidState = errors.New("fst: invalid state id")
