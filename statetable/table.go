package statetable

import "github.com/katalvlaran/wfst/fst"

// StateTable is a bijective index between tuples of type T and the dense
// StateIds that name them. T must be comparable so it can key the
// forward map directly (composite state tuples are small value types —
// a pair of StateIds plus a filter token — so this is cheap).
type StateTable[T comparable] struct {
	tupleToId map[T]fst.StateId
	idToTuple []T
}

// New constructs an empty StateTable.
func New[T comparable]() *StateTable[T] {
	return &StateTable[T]{tupleToId: make(map[T]fst.StateId)}
}

// FindOrInsert returns the StateId already bound to tuple, or allocates
// and returns the next id in sequence.
func (t *StateTable[T]) FindOrInsert(tuple T) fst.StateId {
	if id, ok := t.tupleToId[tuple]; ok {
		return id
	}
	id := fst.StateId(len(t.idToTuple))
	t.tupleToId[tuple] = id
	t.idToTuple = append(t.idToTuple, tuple)
	return id
}

// Lookup returns the tuple bound to id. ok is false if id was never
// returned by FindOrInsert.
func (t *StateTable[T]) Lookup(id fst.StateId) (tuple T, ok bool) {
	if int(id) < 0 || int(id) >= len(t.idToTuple) {
		return tuple, false
	}
	return t.idToTuple[id], true
}

// Len reports how many distinct tuples have been interned.
func (t *StateTable[T]) Len() int { return len(t.idToTuple) }
