package matcher

import (
	"sort"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// maxPhiChain bounds how many Phi hops GenericMatcher.Find will follow
// before giving up; a well-formed phi chain cannot cycle back to a state
// it already visited (it would never terminate), so this is simply a
// generous backstop against a malformed FST.
const maxPhiChain = 4096

// GenericMatcher scans (or, on a label-sorted FST, binary-searches) a
// state's outgoing transitions for a query label, following Phi/Sigma/Rho
// fallbacks per the matcher contract.
type GenericMatcher struct {
	f      fst.Fst
	mt     Type
	sorted bool
}

// NewGenericMatcher constructs a GenericMatcher over f for the given
// match side.
func NewGenericMatcher(f fst.Fst, mt Type) *GenericMatcher {
	return &GenericMatcher{f: f, mt: mt}
}

// MatchType implements Matcher.
func (m *GenericMatcher) MatchType() Type { return m.mt }

// ReachInit implements Matcher: it requires f to carry ILabelSorted (for
// MatchInput) or OLabelSorted (for MatchOutput), enabling binary search.
func (m *GenericMatcher) ReachInit() error {
	want := fst.ILabelSorted
	if m.mt == MatchOutput {
		want = fst.OLabelSorted
	}
	if !m.f.Properties(want).Has(want) {
		return ErrNotSorted
	}
	m.sorted = true
	return nil
}

func (m *GenericMatcher) side(tr fst.Transition) fst.Label {
	if m.mt == MatchInput {
		return tr.Ilabel
	}
	return tr.Olabel
}

// Find implements Matcher.
func (m *GenericMatcher) Find(state fst.StateId, label fst.Label) ([]fst.Transition, error) {
	return m.find(state, label, 0)
}

func (m *GenericMatcher) find(state fst.StateId, label fst.Label, depth int) ([]fst.Transition, error) {
	trs, err := m.f.Trs(state)
	if err != nil {
		return nil, err
	}

	if lit := m.literal(trs, label); len(lit) > 0 {
		return lit, nil
	}

	// Phi: fall through to the failure transition and retry there,
	// multiplying weight along the chain.
	if phi := m.literal(trs, fst.Phi); len(phi) > 0 {
		if depth >= maxPhiChain {
			return nil, ErrMatcherLookupFailed
		}
		var out []fst.Transition
		for _, p := range phi {
			inner, err := m.find(p.NextState, label, depth+1)
			if err != nil {
				return nil, err
			}
			for _, in := range inner {
				out = append(out, rewriteWeight(in, p.Weight.Times(in.Weight)))
			}
		}
		if len(out) > 0 {
			return out, nil
		}
	}

	// Sigma: matches any label not literally present at this state.
	if sig := m.literal(trs, fst.Sigma); len(sig) > 0 {
		return rewriteMatched(sig, m.mt, label), nil
	}

	// Rho: matches any label not otherwise labeled at this state.
	if rho := m.literal(trs, fst.Rho); len(rho) > 0 {
		return rewriteMatched(rho, m.mt, label), nil
	}

	return nil, nil
}

// literal returns trs' entries whose matched side equals label exactly,
// via binary search when the FST is known sorted, else a linear scan.
func (m *GenericMatcher) literal(trs []fst.Transition, label fst.Label) []fst.Transition {
	if !m.sorted {
		var out []fst.Transition
		for _, tr := range trs {
			if m.side(tr) == label {
				out = append(out, tr)
			}
		}
		return out
	}

	lo := sort.Search(len(trs), func(i int) bool { return m.side(trs[i]) >= label })
	var out []fst.Transition
	for i := lo; i < len(trs) && m.side(trs[i]) == label; i++ {
		out = append(out, trs[i])
	}
	return out
}

// rewriteWeight returns tr with its Weight replaced by w.
func rewriteWeight(tr fst.Transition, w semiring.Weight) fst.Transition {
	tr.Weight = w
	return tr
}

// rewriteMatched rewrites the matched side of each transition in trs to
// label, since a Sigma/Rho transition's stored label is the wildcard
// sentinel, not the label actually consumed.
func rewriteMatched(trs []fst.Transition, mt Type, label fst.Label) []fst.Transition {
	out := make([]fst.Transition, len(trs))
	for i, tr := range trs {
		if mt == MatchInput {
			tr.Ilabel = label
		} else {
			tr.Olabel = label
		}
		out[i] = tr
	}
	return out
}

var _ Matcher = (*GenericMatcher)(nil)
