package compose

import "errors"

// ErrUnknownState indicates ComputeTrs/ComputeFinal was asked about a
// state id the operator's state table never allocated.
var ErrUnknownState = errors.New("compose: unknown composite state")
