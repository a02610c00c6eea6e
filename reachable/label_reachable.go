package reachable

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/matcher"
)

// Data is the queryable half of a label-reachability index: everything
// ReachLabel/ReachFinal need once construction is done, and the only
// part worth keeping if a caller wanted to persist or share the index
// without also keeping the builder scratch state around. Mirrors the
// original's LabelReachableData/LabelReachable split, where the data
// half is the serializable payload and the rest is construction-only.
type Data struct {
	stateIndex []int // original state id -> owning SCC's reverse-topo index
	labelIndex map[fst.Label]int
	finalIndex int
	intervals  []IntervalSet // SCC index -> set of SCC indices reachable from it (incl. itself)
}

// Reachable is a precomputed label-reachability index over one FST: for
// a state s and label ℓ, ReachLabel(s, ℓ) answers "is a transition
// labeled ℓ reachable from s?" in O(log k); ReachFinal(s) answers
// "does any path from s reach a final state at all?". It wraps Data with
// the side/state-count context needed to interpret queries against it.
type Reachable struct {
	side  matcher.Type
	origN int
	data  *Data
}

// Data returns the queryable payload underlying r, for a caller that
// wants to retain just the index (e.g. to precompute several indices and
// discard the FSTs they were built from).
func (r *Reachable) Data() *Data { return r.data }

// NewReachable builds a Reachable over f, indexed on side's label
// (MatchInput: Ilabel, MatchOutput: Olabel). f must carry the
// corresponding *LabelSorted property, mirroring matcher.Matcher's
// sorting precondition; construction fails with ErrNotSorted otherwise.
func NewReachable(f fst.ExpandedFst, side matcher.Type) (*Reachable, error) {
	want := fst.ILabelSorted
	if side == matcher.MatchOutput {
		want = fst.OLabelSorted
	}
	if !f.Properties(want).Has(want) {
		return nil, ErrNotSorted
	}

	origN := f.NumStates()
	adj, markerOf, finalMarker, n, err := transformFst(f, side, origN)
	if err != nil {
		return nil, err
	}

	component := tarjan(n, adj)
	numSCC := 0
	for _, c := range component {
		if c+1 > numSCC {
			numSCC = c + 1
		}
	}

	children := make([]map[int]struct{}, numSCC)
	for u := 0; u < n; u++ {
		cu := component[u]
		for _, w := range adj[u] {
			cw := component[w]
			if cw == cu {
				continue
			}
			if children[cu] == nil {
				children[cu] = make(map[int]struct{})
			}
			children[cu][cw] = struct{}{}
		}
	}

	// Tarjan completes (and numbers) strongly connected components in
	// reverse topological order: every inter-component edge runs from a
	// higher id to a strictly lower one, so by the time we process
	// component c every one of its condensation children's reach sets
	// is already known.
	reach := make([]IntervalSet, numSCC)
	for c := 0; c < numSCC; c++ {
		rs := Singleton(c)
		for child := range children[c] {
			rs = rs.Union(reach[child])
		}
		reach[c] = rs
	}

	stateIndex := make([]int, origN)
	for s := 0; s < origN; s++ {
		stateIndex[s] = component[s]
	}
	labelIndex := make(map[fst.Label]int, len(markerOf))
	for l, m := range markerOf {
		labelIndex[l] = component[m]
	}

	return &Reachable{
		side:  side,
		origN: origN,
		data: &Data{
			stateIndex: stateIndex,
			labelIndex: labelIndex,
			finalIndex: component[finalMarker],
			intervals:  reach,
		},
	}, nil
}

// transformFst builds the auxiliary graph used for SCC condensation: for
// every non-epsilon matched-side label at s, an edge to a shared
// label-specific sink is added alongside the original structural edge
// (preserving transitive reachability); every originally final state
// gains an edge to a shared NO_LABEL sink; a super-initial state is
// wired to every node of in-degree zero.
func transformFst(f fst.ExpandedFst, side matcher.Type, origN int) (adj [][]fst.StateId, markerOf map[fst.Label]fst.StateId, finalMarker fst.StateId, n int, err error) {
	markerOf = make(map[fst.Label]fst.StateId)
	nextMarker := func() fst.StateId {
		id := fst.StateId(origN + len(markerOf))
		return id
	}

	// Pass 1: discover distinct labels to size the node space up front.
	for s := 0; s < origN; s++ {
		trs, e := f.Trs(fst.StateId(s))
		if e != nil {
			return nil, nil, 0, 0, e
		}
		for _, tr := range trs {
			lbl := matchedLabel(tr, side)
			if lbl == fst.Eps {
				continue
			}
			if _, ok := markerOf[lbl]; !ok {
				markerOf[lbl] = nextMarker()
			}
		}
	}

	finalMarker = fst.StateId(origN + len(markerOf))
	superInit := finalMarker + 1
	n = int(superInit) + 1
	adj = make([][]fst.StateId, n)

	for s := 0; s < origN; s++ {
		trs, e := f.Trs(fst.StateId(s))
		if e != nil {
			return nil, nil, 0, 0, e
		}
		for _, tr := range trs {
			adj[s] = append(adj[s], tr.NextState)
			lbl := matchedLabel(tr, side)
			if lbl != fst.Eps {
				adj[s] = append(adj[s], markerOf[lbl])
			}
		}
		final, e := f.Final(fst.StateId(s))
		if e != nil {
			return nil, nil, 0, 0, e
		}
		if !final.IsZero() {
			adj[s] = append(adj[s], finalMarker)
		}
	}

	indegree := make([]int, superInit)
	for u := 0; u < int(superInit); u++ {
		for _, w := range adj[u] {
			indegree[w]++
		}
	}
	for v := 0; v < int(superInit); v++ {
		if indegree[v] == 0 {
			adj[superInit] = append(adj[superInit], fst.StateId(v))
		}
	}

	return adj, markerOf, finalMarker, n, nil
}

func matchedLabel(tr fst.Transition, side matcher.Type) fst.Label {
	if side == matcher.MatchInput {
		return tr.Ilabel
	}
	return tr.Olabel
}

// ReachLabel reports whether a transition labeled l (on the indexed
// side) is reachable from s, including s's own outgoing transitions. It
// does not check that a final state is reachable after that transition.
// It is always false for l == fst.Eps.
func (r *Reachable) ReachLabel(s fst.StateId, l fst.Label) bool {
	if l == fst.Eps {
		return false
	}
	idx, ok := r.data.labelIndex[l]
	if !ok {
		return false
	}
	if int(s) < 0 || int(s) >= r.origN {
		return false
	}
	return r.data.intervals[r.data.stateIndex[s]].Contains(idx)
}

// ReachFinal reports whether any path from s reaches a final state.
func (r *Reachable) ReachFinal(s fst.StateId) bool {
	if int(s) < 0 || int(s) >= r.origN {
		return false
	}
	return r.data.intervals[r.data.stateIndex[s]].Contains(r.data.finalIndex)
}
