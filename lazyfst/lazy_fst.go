package lazyfst

import (
	"github.com/katalvlaran/wfst/cache"
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// LazyFst wraps an Operator and a cache.Cache behind the fst.ExpandedFst
// interface. States are computed on first query and memoized; a cached
// error is returned on every subsequent query of that slot.
type LazyFst struct {
	op    Operator
	c     cache.Cache
	isymt fst.SymbolTable
	osymt fst.SymbolTable
}

// New constructs a LazyFst from op and c. isymt/osymt may be nil.
func New(op Operator, c cache.Cache, isymt, osymt fst.SymbolTable) *LazyFst {
	return &LazyFst{op: op, c: c, isymt: isymt, osymt: osymt}
}

// Start implements fst.Fst. On cache miss it delegates to the operator
// and memoizes the result (or error); errors are swallowed into
// fst.NoStateId, matching the core/expanded contract that Start never
// fails — callers who need the error should use StartErr.
func (l *LazyFst) Start() fst.StateId {
	s, err := l.StartErr()
	if err != nil {
		return fst.NoStateId
	}
	return s
}

// StartErr is Start plus the poisoned error, for callers (notably
// lazyfst.Compute) that must distinguish "no start" from "start
// computation failed".
func (l *LazyFst) StartErr() (fst.StateId, error) {
	if !l.c.HasStart() {
		s, err := l.op.ComputeStart()
		l.c.SetStart(s, err)
	}
	return l.c.Start()
}

// Final implements fst.Fst.
func (l *LazyFst) Final(s fst.StateId) (semiring.Weight, error) {
	if !l.c.HasFinal(s) {
		w, err := l.op.ComputeFinal(s)
		l.c.SetFinal(s, w, err)
	}
	return l.c.Final(s)
}

// Trs implements fst.Fst.
func (l *LazyFst) Trs(s fst.StateId) ([]fst.Transition, error) {
	if !l.c.HasTrs(s) {
		trs, err := l.op.ComputeTrs(s)
		l.c.SetTrs(s, trs, err)
	}
	return l.c.Trs(s)
}

// NumStates implements fst.ExpandedFst: the number of states the
// operator has allocated so far. This is not the full reachable state
// count unless Compute has already crawled the whole machine.
func (l *LazyFst) NumStates() int { return l.op.NumKnownStates() }

// InputSymbols implements fst.Fst.
func (l *LazyFst) InputSymbols() fst.SymbolTable { return l.isymt }

// OutputSymbols implements fst.Fst.
func (l *LazyFst) OutputSymbols() fst.SymbolTable { return l.osymt }

// Properties implements fst.Fst, delegating to the operator: lazy
// expansion never changes what is structurally knowable about the
// composed language, only how much of it has been materialized.
func (l *LazyFst) Properties(mask fst.Properties) fst.Properties {
	return l.op.Properties(mask)
}

// States returns the ids discovered so far, 0..NumStates(). It is not
// guaranteed to cover the full reachable machine; use Compute for that.
func (l *LazyFst) States() []fst.StateId {
	n := l.NumStates()
	out := make([]fst.StateId, n)
	for i := range out {
		out[i] = fst.StateId(i)
	}
	return out
}

var _ fst.ExpandedFst = (*LazyFst)(nil)
