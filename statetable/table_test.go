package statetable_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/statetable"
)

type tuple struct {
	sa, sb fst.StateId
	fs     int
}

// TestStateTable_Bijective locks in testable property #4: lookup of
// find-or-insert(t) always returns t.
func TestStateTable_Bijective(t *testing.T) {
	tbl := statetable.New[tuple]()

	a := tuple{0, 0, 0}
	b := tuple{0, 1, 1}

	idA := tbl.FindOrInsert(a)
	idB := tbl.FindOrInsert(b)
	require.NotEqual(t, idA, idB)

	// Re-inserting the same tuple returns the same id.
	require.Equal(t, idA, tbl.FindOrInsert(a))

	got, ok := tbl.Lookup(idA)
	require.True(t, ok)
	require.Equal(t, a, got)

	got, ok = tbl.Lookup(idB)
	require.True(t, ok)
	require.Equal(t, b, got)

	require.Equal(t, 2, tbl.Len())

	_, ok = tbl.Lookup(fst.StateId(99))
	require.False(t, ok)
}
