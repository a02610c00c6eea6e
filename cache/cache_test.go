package cache_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/cache"
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

func testCacheContract(t *testing.T, c cache.Cache) {
	require.False(t, c.HasStart())
	c.SetStart(3, nil)
	require.True(t, c.HasStart())
	s, err := c.Start()
	require.NoError(t, err)
	require.Equal(t, fst.StateId(3), s)

	require.False(t, c.HasTrs(0))
	trs := []fst.Transition{{Ilabel: 1, Olabel: 1, Weight: semiring.NewTropical(1), NextState: 1}}
	c.SetTrs(0, trs, nil)
	require.True(t, c.HasTrs(0))
	got, err := c.Trs(0)
	require.NoError(t, err)
	require.Equal(t, trs, got)

	require.False(t, c.HasFinal(0))
	c.SetFinal(0, semiring.NewTropical(0), nil)
	require.True(t, c.HasFinal(0))
	w, err := c.Final(0)
	require.NoError(t, err)
	require.True(t, w.Equal(semiring.NewTropical(0)))

	// Poisoning: an error written to a slot is observed on every read.
	boom := errors.New("boom")
	c.SetTrs(5, nil, boom)
	require.True(t, c.HasTrs(5))
	_, err = c.Trs(5)
	require.ErrorIs(t, err, boom)
	_, err = c.Trs(5)
	require.ErrorIs(t, err, boom)
}

func TestHashMapCache_Contract(t *testing.T) {
	testCacheContract(t, cache.NewHashMapCache())
}

func TestVectorCache_Contract(t *testing.T) {
	testCacheContract(t, cache.NewVectorCache())
}
