package compose_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/compose"
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/lazyfst"
	"github.com/katalvlaran/wfst/semiring"
)

// TestCompose_EmptyIntersection is scenario S1: two single-state
// self-looping acceptors over disjoint labels compose to a single
// state with no transitions.
func TestCompose_EmptyIntersection(t *testing.T) {
	a := fst.NewVectorFst(semiring.TropicalZero())
	sa := a.AddState()
	require.NoError(t, a.SetStart(sa))
	require.NoError(t, a.SetFinal(sa, semiring.TropicalOne()))
	require.NoError(t, a.AddTr(sa, fst.Transition{Ilabel: 1, Olabel: 1, Weight: semiring.NewTropical(1.0), NextState: sa}))

	b := fst.NewVectorFst(semiring.TropicalZero())
	sb := b.AddState()
	require.NoError(t, b.SetStart(sb))
	require.NoError(t, b.SetFinal(sb, semiring.TropicalOne()))
	require.NoError(t, b.AddTr(sb, fst.Transition{Ilabel: 2, Olabel: 2, Weight: semiring.NewTropical(1.0), NextState: sb}))

	dst := fst.NewVectorFst(semiring.TropicalZero())
	require.NoError(t, compose.Compute(a, b, dst, compose.Options{}))

	require.Equal(t, 1, dst.NumStates())
	final, err := dst.Final(0)
	require.NoError(t, err)
	require.True(t, final.IsOne())
	trs, err := dst.Trs(0)
	require.NoError(t, err)
	require.Empty(t, trs)
}

// TestCompose_EpsilonDedup is scenario S2: A offers two competing
// non-epsilon-output transitions from its start, only one of which
// matches anything in B; the composed machine has exactly one path of
// total weight 2, not a duplicate for the unmatched label.
func TestCompose_EpsilonDedup(t *testing.T) {
	a := fst.NewVectorFst(semiring.TropicalZero())
	a0, a1 := a.AddState(), a.AddState()
	require.NoError(t, a.SetStart(a0))
	require.NoError(t, a.SetFinal(a1, semiring.TropicalOne()))
	require.NoError(t, a.AddTr(a0, fst.Transition{Ilabel: fst.Eps, Olabel: 10, Weight: semiring.NewTropical(1.0), NextState: a1}))
	require.NoError(t, a.AddTr(a0, fst.Transition{Ilabel: fst.Eps, Olabel: 20, Weight: semiring.NewTropical(1.0), NextState: a1}))

	b := fst.NewVectorFst(semiring.TropicalZero())
	b0, b1 := b.AddState(), b.AddState()
	require.NoError(t, b.SetStart(b0))
	require.NoError(t, b.SetFinal(b1, semiring.TropicalOne()))
	require.NoError(t, b.AddTr(b0, fst.Transition{Ilabel: 10, Olabel: fst.Eps, Weight: semiring.NewTropical(1.0), NextState: b1}))

	dst := fst.NewVectorFst(semiring.TropicalZero())
	require.NoError(t, compose.Compute(a, b, dst, compose.Options{}))

	require.Equal(t, 2, dst.NumStates())
	trs, err := dst.Trs(0)
	require.NoError(t, err)
	require.Len(t, trs, 1)
	require.Equal(t, fst.Eps, trs[0].Ilabel)
	require.Equal(t, fst.Eps, trs[0].Olabel)
	require.True(t, trs[0].Weight.Equal(semiring.NewTropical(2.0)))

	final, err := dst.Final(trs[0].NextState)
	require.NoError(t, err)
	require.True(t, final.IsOne())
}

// TestCompose_EpsilonFilterOrdering exercises scenario S2 properly: A
// offers a genuine output-epsilon transition and B offers a genuine
// input-epsilon transition, both available as candidates from the
// composite start state alongside a real AB-match. The SequenceFilter
// must tag each resulting composite state with the correct FilterState
// (EpsA vs EpsB) so that a later A-eps candidate reachable from the
// EpsB branch is rejected rather than leaking through as a duplicate
// path.
func TestCompose_EpsilonFilterOrdering(t *testing.T) {
	a := fst.NewVectorFst(semiring.TropicalZero())
	a0, a1, a2 := a.AddState(), a.AddState(), a.AddState()
	require.NoError(t, a.SetStart(a0))
	require.NoError(t, a.SetFinal(a0, semiring.TropicalOne()))
	require.NoError(t, a.SetFinal(a1, semiring.TropicalOne()))
	require.NoError(t, a.SetFinal(a2, semiring.TropicalOne()))
	require.NoError(t, a.AddTr(a0, fst.Transition{Ilabel: 1, Olabel: 5, Weight: semiring.NewTropical(1.0), NextState: a1}))
	require.NoError(t, a.AddTr(a0, fst.Transition{Ilabel: 2, Olabel: fst.Eps, Weight: semiring.NewTropical(1.0), NextState: a2}))

	b := fst.NewVectorFst(semiring.TropicalZero())
	b0, b1, b2 := b.AddState(), b.AddState(), b.AddState()
	require.NoError(t, b.SetStart(b0))
	require.NoError(t, b.SetFinal(b0, semiring.TropicalOne()))
	require.NoError(t, b.SetFinal(b1, semiring.TropicalOne()))
	require.NoError(t, b.SetFinal(b2, semiring.TropicalOne()))
	require.NoError(t, b.AddTr(b0, fst.Transition{Ilabel: 5, Olabel: 50, Weight: semiring.NewTropical(1.0), NextState: b1}))
	require.NoError(t, b.AddTr(b0, fst.Transition{Ilabel: fst.Eps, Olabel: 99, Weight: semiring.NewTropical(1.0), NextState: b2}))

	dst := fst.NewVectorFst(semiring.TropicalZero())
	require.NoError(t, compose.Compute(a, b, dst, compose.Options{}))

	// The composite start state is final (both a0 and b0 are final) and
	// has exactly three outgoing transitions: one per §4.9 kind.
	startFinal, err := dst.Final(0)
	require.NoError(t, err)
	require.True(t, startFinal.IsOne())

	trs, err := dst.Trs(0)
	require.NoError(t, err)
	require.Len(t, trs, 3)

	var matchTr, aEpsTr, bEpsTr *fst.Transition
	for i := range trs {
		switch {
		case trs[i].Ilabel == 1:
			matchTr = &trs[i]
		case trs[i].Ilabel == 2:
			aEpsTr = &trs[i]
		case trs[i].Ilabel == fst.Eps && trs[i].Olabel == 99:
			bEpsTr = &trs[i]
		}
	}
	require.NotNil(t, matchTr)
	require.NotNil(t, aEpsTr)
	require.NotNil(t, bEpsTr)

	require.Equal(t, fst.Label(50), matchTr.Olabel)
	require.True(t, matchTr.Weight.Equal(semiring.NewTropical(2.0)))
	require.True(t, aEpsTr.Weight.Equal(semiring.NewTropical(1.0)))
	require.True(t, bEpsTr.Weight.Equal(semiring.NewTropical(1.0)))

	// The state reached via the genuine B-eps move (a0,b2,EpsB) must be
	// tagged EpsB, not EpsA: it is final (both a0 and b2 are final), and
	// it must NOT also offer the A-eps candidate that is always
	// available at a0 — SequenceFilter must reject that candidate
	// because the composite is already mid a B-eps excursion. A filter
	// that infers the pairing kind from tA.Olabel instead of the
	// caller-supplied kind mistags this state as EpsA and wrongly admits
	// the A-eps candidate, producing a spurious duplicate path.
	bEpsFinal, err := dst.Final(bEpsTr.NextState)
	require.NoError(t, err)
	require.True(t, bEpsFinal.IsOne())

	bEpsTrs, err := dst.Trs(bEpsTr.NextState)
	require.NoError(t, err)
	require.Empty(t, bEpsTrs)

	// Symmetrically, the state reached via the A-eps move (a2,b0,EpsA)
	// must reject the B-eps candidate always available at b0.
	aEpsFinal, err := dst.Final(aEpsTr.NextState)
	require.NoError(t, err)
	require.True(t, aEpsFinal.IsOne())

	aEpsTrs, err := dst.Trs(aEpsTr.NextState)
	require.NoError(t, err)
	require.Empty(t, aEpsTrs)
}

func chainFst(n int, label func(i int) fst.Label) *fst.VectorFst {
	f := fst.NewVectorFst(semiring.TropicalZero())
	states := make([]fst.StateId, n)
	for i := range states {
		states[i] = f.AddState()
	}
	_ = f.SetStart(states[0])
	_ = f.SetFinal(states[n-1], semiring.TropicalOne())
	for i := 0; i < n-1; i++ {
		l := label(i)
		_ = f.AddTr(states[i], fst.Transition{Ilabel: l, Olabel: l, Weight: semiring.NewTropical(1.0), NextState: states[i+1]})
	}
	return f
}

// TestCompose_LazyExpansionBound adapts scenario S3: two 3-state chain
// acceptors over the same label sequence compose to a 3-state diagonal
// machine, but querying only the start and its transitions allocates
// far fewer composite states than the full 3x3 product space.
func TestCompose_LazyExpansionBound(t *testing.T) {
	a := chainFst(3, func(i int) fst.Label { return fst.Label(i + 1) })
	b := chainFst(3, func(i int) fst.Label { return fst.Label(i + 1) })

	lf := compose.NewWithOptions(a, b, compose.Options{})
	start := lf.Start()
	require.NotEqual(t, fst.NoStateId, start)
	_, err := lf.Trs(start)
	require.NoError(t, err)

	require.LessOrEqual(t, lf.NumStates(), 3)
	require.Less(t, lf.NumStates(), 9)

	dst := fst.NewVectorFst(semiring.TropicalZero())
	require.NoError(t, lazyfst.Compute(lf, dst))
	require.Equal(t, 3, dst.NumStates())
}

// TestCompose_ProductConstructionWeight exercises testable property #3:
// the composed path's label string and weight equal the relational
// composition and weight product of the two component paths.
func TestCompose_ProductConstructionWeight(t *testing.T) {
	a := chainFst(3, func(i int) fst.Label { return fst.Label(i + 1) })
	b := chainFst(3, func(i int) fst.Label { return fst.Label(i + 1) })

	dst := fst.NewVectorFst(semiring.TropicalZero())
	require.NoError(t, compose.Compute(a, b, dst, compose.Options{}))

	var total semiring.Weight = semiring.TropicalOne()
	s := dst.Start()
	require.NotEqual(t, fst.NoStateId, s)
	var labels []fst.Label
	for {
		final, err := dst.Final(s)
		require.NoError(t, err)
		trs, err := dst.Trs(s)
		require.NoError(t, err)
		if len(trs) == 0 {
			require.True(t, final.IsOne())
			break
		}
		require.Len(t, trs, 1)
		tr := trs[0]
		labels = append(labels, tr.Ilabel)
		total = total.Times(tr.Weight)
		s = tr.NextState
	}
	require.Equal(t, []fst.Label{1, 2}, labels)
	require.True(t, total.Equal(semiring.NewTropical(4.0)))
}
