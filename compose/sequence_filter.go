package compose

import (
	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

// Sequence filter states. NoMatch is also Start(): from NoMatch any
// pairing kind is admitted. From EpsA, only a further A-eps pairing or a
// genuine AB-match is admitted (B-eps is rejected); symmetrically for
// EpsB. An AB-match always resets the state to NoMatch.
const (
	SeqNoMatch FilterState = iota
	SeqEpsA
	SeqEpsB
)

// SequenceFilter is the baseline composition filter: it admits exactly
// one canonical pairing when both sides offer an epsilon transition,
// preventing the duplicate-path blowup that naive composition produces
// when epsilon moves on A and B can be freely interleaved.
//
// It never rejects a genuine AB-match (both sides non-epsilon) and never
// adjusts final weights; it exists purely to arbitrate epsilon-only
// pairings. Not safe for concurrent use — matches the single-writer
// discipline of the Op that drives it.
type SequenceFilter struct {
	cur FilterState
}

// NewSequenceFilter constructs a SequenceFilter at its start state.
func NewSequenceFilter() *SequenceFilter { return &SequenceFilter{cur: SeqNoMatch} }

// Start implements Filter.
func (f *SequenceFilter) Start() FilterState { return SeqNoMatch }

// SetState implements Filter.
func (f *SequenceFilter) SetState(sA, sB fst.StateId, fs FilterState) { f.cur = fs }

// FilterTr implements Filter. kind, supplied by the caller (Op), names
// the pairing directly — it must not be inferred from tA/tB's labels,
// since a virtual single-sided move always carries Eps/Eps on whichever
// side it stands in for, regardless of whether it represents an A-eps or
// a B-eps advance.
func (f *SequenceFilter) FilterTr(tA, tB fst.Transition, kind TrKind) (FilterState, bool) {
	switch kind {
	case KindMatch:
		return SeqNoMatch, true
	case KindAEps:
		if f.cur == SeqEpsB {
			return NoFilterState, false
		}
		return SeqEpsA, true
	default: // KindBEps
		if f.cur == SeqEpsA {
			return NoFilterState, false
		}
		return SeqEpsB, true
	}
}

// FilterFinal implements Filter: the sequence filter never adjusts final
// weights.
func (f *SequenceFilter) FilterFinal(fwA, fwB semiring.Weight) (semiring.Weight, semiring.Weight) {
	return fwA, fwB
}

// Properties implements Filter. The sequence filter asserts no
// property; Op reports this result unchanged, so a composition under
// SequenceFilter reports no property as known.
func (f *SequenceFilter) Properties(mask fst.Properties) fst.Properties { return 0 }

var _ Filter = (*SequenceFilter)(nil)
