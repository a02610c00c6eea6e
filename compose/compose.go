package compose

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/lazyfst"
)

// New returns the lazy composition of a and b under the default
// SequenceFilter and a HashMapCache. No more than a's and b's start
// states are touched until a caller queries a transition.
func New(a, b fst.Fst) *lazyfst.LazyFst {
	return NewWithOptions(a, b, Options{})
}

// NewWithOptions is New with an explicit Filter and/or Cache.
func NewWithOptions(a, b fst.Fst, opts Options) *lazyfst.LazyFst {
	opts = opts.withDefaults()
	op := NewOp(a, b, opts.Filter)
	return lazyfst.New(op, opts.Cache, a.InputSymbols(), b.OutputSymbols())
}

// Compute builds the full composition of a and b and materializes it
// into dst via lazyfst.Compute, driving a breadth-first crawl from the
// composite start state.
func Compute(a, b fst.Fst, dst fst.MutableFst, opts Options) error {
	lf := NewWithOptions(a, b, opts)
	return lazyfst.Compute(lf, dst)
}

var _ lazyfst.Operator = (*Op)(nil)
