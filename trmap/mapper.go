package trmap

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// FinalAction declares whether a TrMapper's rewrite of final weights may
// require turning a final weight into an ordinary transition to a new
// super-final state.
type FinalAction int

const (
	// MapNoSuperfinal asserts the mapper never needs a super-final state:
	// FinalArcMap only ever rewrites the weight, never the labels.
	MapNoSuperfinal FinalAction = iota
	// MapAllowSuperfinal permits (but does not require) inserting one.
	MapAllowSuperfinal
	// MapRequireSuperfinal always inserts one: every state's final
	// weight, a zero one included, is passed through FinalArcMap and moved
	// onto a transition (carrying the mapped labels and weight) to a
	// single shared super-final state, and the state's own final weight
	// becomes zero.
	MapRequireSuperfinal
)

// TrMapper rewrites transitions in place without changing the state
// graph. ArcMap and FinalArcMap must be pure, total, deterministic
// functions of their input.
type TrMapper interface {
	// ArcMap rewrites an ordinary transition.
	ArcMap(tr fst.Transition) fst.Transition
	// FinalArcMap rewrites a final weight viewed as a label-free
	// transition.
	FinalArcMap(ft fst.FinalTransition) fst.FinalTransition
	// FinalAction declares this mapper's super-final requirement.
	FinalAction() FinalAction
}

// TrMap applies m to every transition of f in place, and to every
// state's final weight via FinalArcMap, inserting a shared super-final
// state if m.FinalAction() requires or permits it and at least one final
// state's rewrite needs it (the labels of a rewritten final weight are
// carried on the synthetic transition to the super-final state; a final
// weight with no label change never needs one even under
// MapAllowSuperfinal).
func TrMap(f fst.MutableFst, m TrMapper) error {
	n := f.NumStates()
	var superFinal fst.StateId = fst.NoStateId
	action := m.FinalAction()

	ensureSuperFinal := func(sample semiring.Weight) (fst.StateId, error) {
		if superFinal != fst.NoStateId {
			return superFinal, nil
		}
		superFinal = f.AddState()
		if err := f.SetFinal(superFinal, sample.One()); err != nil {
			return fst.NoStateId, err
		}
		return superFinal, nil
	}

	for s := fst.StateId(0); int(s) < n; s++ {
		trs, err := f.Trs(s)
		if err != nil {
			return err
		}
		rewritten := make([]fst.Transition, len(trs))
		for i, tr := range trs {
			rewritten[i] = m.ArcMap(tr)
		}
		if err := f.DeleteAllTrs(s); err != nil {
			return err
		}
		for _, tr := range rewritten {
			if err := f.AddTr(s, tr); err != nil {
				return err
			}
		}

		final, err := f.Final(s)
		if err != nil {
			return err
		}
		if final.IsZero() && action != MapRequireSuperfinal {
			continue
		}
		ft := m.FinalArcMap(fst.FinalTransition{Ilabel: fst.Eps, Olabel: fst.Eps, Weight: final})

		needsArc := action == MapRequireSuperfinal || ft.Ilabel != fst.Eps || ft.Olabel != fst.Eps
		if !needsArc {
			if err := f.SetFinal(s, ft.Weight); err != nil {
				return err
			}
			continue
		}
		if action == MapNoSuperfinal {
			// The mapper promised it would never need one; honor the
			// rewritten weight only and drop any label change.
			if err := f.SetFinal(s, ft.Weight); err != nil {
				return err
			}
			continue
		}
		sf, err := ensureSuperFinal(ft.Weight)
		if err != nil {
			return err
		}
		if err := f.SetFinal(s, final.Zero()); err != nil {
			return err
		}
		if err := f.AddTr(s, fst.Transition{Ilabel: ft.Ilabel, Olabel: ft.Olabel, Weight: ft.Weight, NextState: sf}); err != nil {
			return err
		}
	}
	return nil
}
