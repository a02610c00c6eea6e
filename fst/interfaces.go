package fst

import "github.com/katalvlaran/wfst/semiring"

// Fst is the core read capability set: query start, final weight, and
// outgoing transitions of a state. Implementations must ensure the
// multiset of outgoing transitions of a state is a pure function of that
// state id, never of traversal history.
type Fst interface {
	// Start returns the initial state, or NoStateId if unset.
	Start() StateId

	// Final returns the final weight of s. Non-final states report the
	// semiring's zero. Returns ErrInvalidState if s is out of range.
	Final(s StateId) (semiring.Weight, error)

	// Trs returns a shared, immutable view of s's outgoing transitions.
	// Callers may range over it concurrently with other readers but must
	// not retain it across a mutation of the underlying FST.
	Trs(s StateId) ([]Transition, error)

	// InputSymbols and OutputSymbols return opaque symbol tables, or nil
	// if none is attached. The tables themselves are outside this
	// module's scope; they are treated as cheaply cloneable handles.
	InputSymbols() SymbolTable
	OutputSymbols() SymbolTable

	// Properties reports the subset of mask that is known to hold.
	Properties(mask Properties) Properties
}

// UncheckedFst is implemented alongside Fst by types whose accessors have
// an _unchecked counterpart that skips bounds checks. The precondition
// (state exists) must be established by the caller; violating it is
// undefined behavior.
type UncheckedFst interface {
	FinalUnchecked(s StateId) semiring.Weight
	TrsUnchecked(s StateId) []Transition
}

// ExpandedFst additionally reports how many states exist.
type ExpandedFst interface {
	Fst
	NumStates() int
}

// MutableFst additionally supports building and rewriting an FST in
// place.
type MutableFst interface {
	ExpandedFst

	// AddState allocates a new state and returns its id.
	AddState() StateId

	// SetStart designates s as the initial state. s must already exist.
	SetStart(s StateId) error

	// SetFinal sets s's final weight. A zero weight marks s non-final.
	SetFinal(s StateId, w semiring.Weight) error

	// AddTr appends tr to s's outgoing transitions.
	AddTr(s StateId, tr Transition) error

	// DeleteAllTrs removes every outgoing transition of s.
	DeleteAllTrs(s StateId) error

	// SetProperties merges known into the FST's known property set.
	SetProperties(known, value Properties)
}

// SymbolTable is an opaque string<->integer dictionary. Its
// implementation is outside this module's scope; only cloneable sharing
// semantics are required here.
type SymbolTable interface {
	Clone() SymbolTable
}
