package trmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
	"github.com/katalvlaran/wfst/trmap"
)

func twoStateFst() *fst.VectorFst {
	f := fst.NewVectorFst(semiring.TropicalZero())
	s0 := f.AddState()
	s1 := f.AddState()
	_ = f.SetStart(s0)
	_ = f.SetFinal(s1, semiring.NewTropical(0))
	_ = f.AddTr(s0, fst.Transition{Ilabel: 1, Olabel: 2, Weight: semiring.NewTropical(3), NextState: s1})
	return f
}

func TestTrMap_Identity(t *testing.T) {
	f := twoStateFst()
	require.NoError(t, trmap.TrMap(f, trmap.IdentityMapper{}))

	trs, err := f.Trs(0)
	require.NoError(t, err)
	require.Len(t, trs, 1)
	require.True(t, trs[0].Weight.Equal(semiring.NewTropical(3)))
}

func TestTrMap_Invert(t *testing.T) {
	f := twoStateFst()
	require.NoError(t, trmap.TrMap(f, trmap.InvertMapper{}))

	trs, err := f.Trs(0)
	require.NoError(t, err)
	require.Equal(t, fst.Label(2), trs[0].Ilabel)
	require.Equal(t, fst.Label(1), trs[0].Olabel)
}

func TestTrMap_Times(t *testing.T) {
	f := twoStateFst()
	require.NoError(t, trmap.TrMap(f, trmap.NewTimesMapper(semiring.NewTropical(10))))

	trs, err := f.Trs(0)
	require.NoError(t, err)
	require.True(t, trs[0].Weight.Equal(semiring.NewTropical(13)))

	final, err := f.Final(1)
	require.NoError(t, err)
	require.True(t, final.Equal(semiring.NewTropical(10)))
}

func TestTrMap_Quantize(t *testing.T) {
	f := fst.NewVectorFst(semiring.TropicalZero())
	s0 := f.AddState()
	s1 := f.AddState()
	_ = f.SetStart(s0)
	_ = f.SetFinal(s1, semiring.NewTropical(0))
	_ = f.AddTr(s0, fst.Transition{Ilabel: 1, Olabel: 1, Weight: semiring.NewTropical(1.0049), NextState: s1})

	require.NoError(t, trmap.TrMap(f, trmap.NewQuantizeMapper(0.01)))

	trs, err := f.Trs(0)
	require.NoError(t, err)
	require.True(t, trs[0].Weight.Equal(semiring.NewTropical(1.0)))
}

func TestTrMap_InputOutputEpsilon(t *testing.T) {
	f := twoStateFst()
	require.NoError(t, trmap.TrMap(f, trmap.InputEpsilonMapper{}))
	trs, err := f.Trs(0)
	require.NoError(t, err)
	require.Equal(t, fst.Eps, trs[0].Ilabel)
	require.Equal(t, fst.Label(2), trs[0].Olabel)

	f2 := twoStateFst()
	require.NoError(t, trmap.TrMap(f2, trmap.OutputEpsilonMapper{}))
	trs2, err := f2.Trs(0)
	require.NoError(t, err)
	require.Equal(t, fst.Label(1), trs2[0].Ilabel)
	require.Equal(t, fst.Eps, trs2[0].Olabel)
}

// rewriteLabelMapper rewrites every transition's output label to a fixed
// value and requires a super-final state whenever the final weight is
// non-zero, exercising TrMap's super-final insertion path.
type rewriteLabelMapper struct{ to fst.Label }

func (m rewriteLabelMapper) ArcMap(tr fst.Transition) fst.Transition {
	tr.Olabel = m.to
	return tr
}

func (m rewriteLabelMapper) FinalArcMap(ft fst.FinalTransition) fst.FinalTransition {
	ft.Olabel = m.to
	return ft
}

func (m rewriteLabelMapper) FinalAction() trmap.FinalAction { return trmap.MapAllowSuperfinal }

func TestTrMap_SuperFinalInsertion(t *testing.T) {
	f := twoStateFst()
	require.NoError(t, trmap.TrMap(f, rewriteLabelMapper{to: 7}))

	require.Equal(t, 3, f.NumStates())

	final1, err := f.Final(1)
	require.NoError(t, err)
	require.True(t, final1.IsZero())

	trs, err := f.Trs(1)
	require.NoError(t, err)
	require.Len(t, trs, 1)
	require.Equal(t, fst.Label(7), trs[0].Olabel)
	require.Equal(t, fst.StateId(2), trs[0].NextState)

	final2, err := f.Final(2)
	require.NoError(t, err)
	require.True(t, final2.IsOne())
}

func TestWeightConvert_Quantize(t *testing.T) {
	src := fst.NewVectorFst(semiring.TropicalZero())
	s0 := src.AddState()
	s1 := src.AddState()
	_ = src.SetStart(s0)
	_ = src.SetFinal(s1, semiring.NewTropical(0))
	_ = src.AddTr(s0, fst.Transition{Ilabel: 1, Olabel: 1, Weight: semiring.NewTropical(2.0049), NextState: s1})

	conv := trmap.AsWeightConverter(trmap.NewQuantizeMapper(0.01), semiring.TropicalZero())
	dst, err := trmap.WeightConvert(src, conv)
	require.NoError(t, err)

	trs, err := dst.Trs(0)
	require.NoError(t, err)
	require.True(t, trs[0].Weight.Equal(semiring.NewTropical(2.0)))
}
