package fst

import (
	"sync"

	"github.com/katalvlaran/wfst/semiring"
)

// vecState is one state's storage: its final weight (nil means
// non-final) and its outgoing transitions in insertion order.
type vecState struct {
	final semiring.Weight
	trs   []Transition
}

// VectorFst is a concrete, thread-safe, mutable FST backed by a dense
// slice of states, each holding a contiguous slice of its outgoing
// transitions. It is the target type lazyfst.Compute materializes into,
// and the type trmap.TrMap / trmap.WeightConvert operate on in place.
//
// A single mutex guards both state allocation and transition storage;
// VectorFst does not need lvlath's split-lock design because transitions
// never move between states independently of the state itself.
type VectorFst struct {
	mu sync.RWMutex

	states     []vecState
	start      StateId
	zero       semiring.Weight
	known      Properties
	value      Properties
	isymt      SymbolTable
	osymt      SymbolTable
}

// Option configures a VectorFst at construction time.
type Option func(*VectorFst)

// WithInputSymbols attaches an input symbol table.
func WithInputSymbols(t SymbolTable) Option {
	return func(f *VectorFst) { f.isymt = t }
}

// WithOutputSymbols attaches an output symbol table.
func WithOutputSymbols(t SymbolTable) Option {
	return func(f *VectorFst) { f.osymt = t }
}

// NewVectorFst constructs an empty VectorFst whose final-weight zero
// value is zero (the semiring's additive identity). zero must be
// supplied because the semiring is otherwise unknown to this package.
func NewVectorFst(zero semiring.Weight, opts ...Option) *VectorFst {
	f := &VectorFst{
		start: NoStateId,
		zero:  zero,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Start implements Fst.
func (f *VectorFst) Start() StateId {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.start
}

// SetStart implements MutableFst.
func (f *VectorFst) SetStart(s StateId) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if int(s) < 0 || int(s) >= len(f.states) {
		return ErrInvalidState
	}
	f.start = s
	return nil
}

// Final implements Fst.
func (f *VectorFst) Final(s StateId) (semiring.Weight, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if int(s) < 0 || int(s) >= len(f.states) {
		return nil, ErrInvalidState
	}
	return f.finalLocked(s), nil
}

func (f *VectorFst) finalLocked(s StateId) semiring.Weight {
	if w := f.states[s].final; w != nil {
		return w
	}
	return f.zero
}

// FinalUnchecked implements UncheckedFst.
func (f *VectorFst) FinalUnchecked(s StateId) semiring.Weight {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.finalLocked(s)
}

// SetFinal implements MutableFst. A zero weight marks s non-final.
func (f *VectorFst) SetFinal(s StateId, w semiring.Weight) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if int(s) < 0 || int(s) >= len(f.states) {
		return ErrInvalidState
	}
	if w == nil || w.IsZero() {
		f.states[s].final = nil
	} else {
		f.states[s].final = w
	}
	return nil
}

// Trs implements Fst.
func (f *VectorFst) Trs(s StateId) ([]Transition, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if int(s) < 0 || int(s) >= len(f.states) {
		return nil, ErrInvalidState
	}
	return f.states[s].trs, nil
}

// TrsUnchecked implements UncheckedFst.
func (f *VectorFst) TrsUnchecked(s StateId) []Transition {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.states[s].trs
}

// AddState implements MutableFst.
func (f *VectorFst) AddState() StateId {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := StateId(len(f.states))
	f.states = append(f.states, vecState{})
	return id
}

// AddTr implements MutableFst.
func (f *VectorFst) AddTr(s StateId, tr Transition) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if int(s) < 0 || int(s) >= len(f.states) {
		return ErrInvalidState
	}
	f.states[s].trs = append(f.states[s].trs, tr)
	return nil
}

// DeleteAllTrs implements MutableFst.
func (f *VectorFst) DeleteAllTrs(s StateId) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if int(s) < 0 || int(s) >= len(f.states) {
		return ErrInvalidState
	}
	f.states[s].trs = nil
	return nil
}

// NumStates implements ExpandedFst.
func (f *VectorFst) NumStates() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.states)
}

// InputSymbols implements Fst.
func (f *VectorFst) InputSymbols() SymbolTable {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.isymt
}

// OutputSymbols implements Fst.
func (f *VectorFst) OutputSymbols() SymbolTable {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.osymt
}

// SetInputSymbols attaches t as the input symbol table.
func (f *VectorFst) SetInputSymbols(t SymbolTable) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.isymt = t
}

// SetOutputSymbols attaches t as the output symbol table.
func (f *VectorFst) SetOutputSymbols(t SymbolTable) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.osymt = t
}

// Properties implements Fst. mask is a set of plain property bits (no
// Known companions); the result carries, for each requested bit that is
// known, both the Known companion bit and the plain bit if it holds.
func (f *VectorFst) Properties(mask Properties) Properties {
	f.mu.RLock()
	defer f.mu.RUnlock()
	knownHits := f.known & mask
	return (knownHits << 1) | (f.value & knownHits)
}

// SetProperties implements MutableFst: known and value are plain-bit
// masks (no Known companions) — known marks which properties are being
// asserted, value marks which of those are true.
func (f *VectorFst) SetProperties(known, value Properties) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.known |= known
	f.value = (f.value &^ known) | (value & known)
}

var (
	_ Fst          = (*VectorFst)(nil)
	_ ExpandedFst  = (*VectorFst)(nil)
	_ MutableFst   = (*VectorFst)(nil)
	_ UncheckedFst = (*VectorFst)(nil)
)
