package compose

import (
	"fmt"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/matcher"
	"github.com/katalvlaran/wfst/semiring"
	"github.com/katalvlaran/wfst/statetable"
)

// Op implements lazyfst.Operator for the composition of a and b under
// filter. It pairs non-epsilon transitions of a against b's matcher
// (direction 1 of §4.9), and handles epsilon-only moves on either side
// as virtual single-sided advances.
//
// Op deliberately does not also scan b's non-epsilon transitions
// against a's matcher (the spec's symmetric direction 2): when neither
// side uses Phi/Sigma/Rho, that pass would re-derive exactly the same
// AB-match pairs direction 1 already found via b's matcher, double
// counting every literal-vs-literal pair. Supporting Phi/Sigma/Rho
// simultaneously on both sides of one composition is out of scope; see
// DESIGN.md.
type Op struct {
	a, b   fst.Fst
	filter Filter
	mb     matcher.Matcher // matches B's input labels against A's output labels
	table  *statetable.StateTable[StateTuple]
}

// NewOp constructs a composition operator for a and b under filter.
func NewOp(a, b fst.Fst, filter Filter) *Op {
	return &Op{
		a:      a,
		b:      b,
		filter: filter,
		mb:     matcher.NewGenericMatcher(b, matcher.MatchInput),
		table:  statetable.New[StateTuple](),
	}
}

// ComputeStart implements lazyfst.Operator.
func (o *Op) ComputeStart() (fst.StateId, error) {
	sa, sb := o.a.Start(), o.b.Start()
	if sa == fst.NoStateId || sb == fst.NoStateId {
		return fst.NoStateId, nil
	}
	tuple := StateTuple{SA: sa, SB: sb, FS: o.filter.Start()}
	return o.table.FindOrInsert(tuple), nil
}

// ComputeFinal implements lazyfst.Operator.
func (o *Op) ComputeFinal(id fst.StateId) (semiring.Weight, error) {
	tuple, ok := o.table.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("compose: ComputeFinal(%d): %w", id, ErrUnknownState)
	}

	fwA, err := o.a.Final(tuple.SA)
	if err != nil {
		return nil, err
	}
	fwB, err := o.b.Final(tuple.SB)
	if err != nil {
		return nil, err
	}
	o.filter.SetState(tuple.SA, tuple.SB, tuple.FS)
	fwA, fwB = o.filter.FilterFinal(fwA, fwB)
	if fwA.IsZero() || fwB.IsZero() {
		return fwA.Zero(), nil
	}
	return fwA.Times(fwB), nil
}

// ComputeTrs implements lazyfst.Operator.
func (o *Op) ComputeTrs(id fst.StateId) ([]fst.Transition, error) {
	tuple, ok := o.table.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("compose: ComputeTrs(%d): %w", id, ErrUnknownState)
	}
	sA, sB, fs := tuple.SA, tuple.SB, tuple.FS
	o.filter.SetState(sA, sB, fs)

	trsA, err := o.a.Trs(sA)
	if err != nil {
		return nil, err
	}
	trsB, err := o.b.Trs(sB)
	if err != nil {
		return nil, err
	}

	var out []fst.Transition

	// Kind 1: AB-match. For each of A's non-epsilon-output transitions,
	// ask B's matcher for transitions at sB consuming that label.
	for _, tA := range trsA {
		if tA.Olabel == fst.Eps {
			continue
		}
		matches, err := o.mb.Find(sB, tA.Olabel)
		if err != nil {
			return nil, err
		}
		for _, tB := range matches {
			nfs, ok := o.filter.FilterTr(tA, tB, KindMatch)
			if !ok {
				continue
			}
			next := o.table.FindOrInsert(StateTuple{SA: tA.NextState, SB: tB.NextState, FS: nfs})
			out = append(out, fst.Transition{
				Ilabel:    tA.Ilabel,
				Olabel:    tB.Olabel,
				Weight:    tA.Weight.Times(tB.Weight),
				NextState: next,
			})
		}
	}

	// Kind 2: A-eps. A's output-epsilon self-transitions paired against
	// a virtual move on B that stays at sB.
	for _, tA := range trsA {
		if tA.Olabel != fst.Eps {
			continue
		}
		virtualB := fst.Transition{Ilabel: fst.Eps, Olabel: fst.Eps, Weight: tA.Weight.One(), NextState: sB}
		nfs, ok := o.filter.FilterTr(tA, virtualB, KindAEps)
		if !ok {
			continue
		}
		next := o.table.FindOrInsert(StateTuple{SA: tA.NextState, SB: sB, FS: nfs})
		out = append(out, fst.Transition{
			Ilabel:    tA.Ilabel,
			Olabel:    fst.Eps,
			Weight:    tA.Weight,
			NextState: next,
		})
	}

	// Kind 3: B-eps. B's input-epsilon self-transitions paired against a
	// virtual move on A that stays at sA.
	for _, tB := range trsB {
		if tB.Ilabel != fst.Eps {
			continue
		}
		virtualA := fst.Transition{Ilabel: fst.Eps, Olabel: fst.Eps, Weight: tB.Weight.One(), NextState: sA}
		nfs, ok := o.filter.FilterTr(virtualA, tB, KindBEps)
		if !ok {
			continue
		}
		next := o.table.FindOrInsert(StateTuple{SA: sA, SB: tB.NextState, FS: nfs})
		out = append(out, fst.Transition{
			Ilabel:    fst.Eps,
			Olabel:    tB.Olabel,
			Weight:    tB.Weight,
			NextState: next,
		})
	}

	return out, nil
}

// Properties implements lazyfst.Operator.
func (o *Op) Properties(mask fst.Properties) fst.Properties {
	return o.filter.Properties(mask)
}

// NumKnownStates implements lazyfst.Operator.
func (o *Op) NumKnownStates() int { return o.table.Len() }
