package trmap

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// WeightConverter rewrites transitions the way a TrMapper does, but is
// additionally permitted to change the semiring of the weights it
// produces: Convert and FinalConvert return weights in the destination
// semiring, and Zero supplies that semiring's additive identity for
// seeding a fresh destination FST.
type WeightConverter interface {
	// Convert rewrites an ordinary transition into the destination
	// semiring.
	Convert(tr fst.Transition) fst.Transition
	// FinalConvert rewrites a final weight into the destination semiring.
	FinalConvert(w semiring.Weight) semiring.Weight
	// Zero returns the destination semiring's additive identity.
	Zero() semiring.Weight
}

// WeightConvert builds a new VectorFst over c's destination semiring by
// applying c to every transition and final weight of src. src's state
// numbering is preserved exactly, so composite structures built over src
// (a StateTable, a Cache) remain valid against the result.
func WeightConvert(src fst.ExpandedFst, c WeightConverter) (*fst.VectorFst, error) {
	dst := fst.NewVectorFst(c.Zero())

	n := src.NumStates()
	for i := 0; i < n; i++ {
		dst.AddState()
	}
	if start := src.Start(); start != fst.NoStateId {
		if err := dst.SetStart(start); err != nil {
			return nil, err
		}
	}

	for s := fst.StateId(0); int(s) < n; s++ {
		trs, err := src.Trs(s)
		if err != nil {
			return nil, err
		}
		for _, tr := range trs {
			if err := dst.AddTr(s, c.Convert(tr)); err != nil {
				return nil, err
			}
		}

		w, err := src.Final(s)
		if err != nil {
			return nil, err
		}
		if err := dst.SetFinal(s, c.FinalConvert(w)); err != nil {
			return nil, err
		}
	}

	return dst, nil
}
