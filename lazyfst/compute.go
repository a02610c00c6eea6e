package lazyfst

import (
	"fmt"

	"github.com/katalvlaran/wfst/fst"
)

// Compute walks every state reachable from src's start, breadth first,
// and populates dst with an equivalent (state-for-state reachable,
// transition-for-transition) concrete copy. This is the only way to
// obtain the full expanded machine from a lazy FST — iteration over
// States() alone is not required to reach unexplored states.
//
// dst must be empty; Compute allocates all of its states itself.
func Compute(src fst.ExpandedFst, dst fst.MutableFst) error {
	start := src.Start()
	if se, ok := src.(interface{ StartErr() (fst.StateId, error) }); ok {
		s, err := se.StartErr()
		if err != nil {
			return fmt.Errorf("lazyfst: Compute: start: %w", err)
		}
		start = s
	}
	if start == fst.NoStateId {
		return nil
	}

	srcToDst := make(map[fst.StateId]fst.StateId)
	queue := []fst.StateId{start}
	srcToDst[start] = dst.AddState()

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		ds := srcToDst[s]
		if s == start {
			if err := dst.SetStart(ds); err != nil {
				return fmt.Errorf("lazyfst: Compute: set start: %w", err)
			}
		}

		final, err := src.Final(s)
		if err != nil {
			return fmt.Errorf("lazyfst: Compute: final(%d): %w", s, err)
		}
		if err := dst.SetFinal(ds, final); err != nil {
			return fmt.Errorf("lazyfst: Compute: set final(%d): %w", ds, err)
		}

		trs, err := src.Trs(s)
		if err != nil {
			return fmt.Errorf("lazyfst: Compute: trs(%d): %w", s, err)
		}
		for _, tr := range trs {
			dNext, ok := srcToDst[tr.NextState]
			if !ok {
				dNext = dst.AddState()
				srcToDst[tr.NextState] = dNext
				queue = append(queue, tr.NextState)
			}
			if err := dst.AddTr(ds, fst.Transition{
				Ilabel:    tr.Ilabel,
				Olabel:    tr.Olabel,
				Weight:    tr.Weight,
				NextState: dNext,
			}); err != nil {
				return fmt.Errorf("lazyfst: Compute: add transition from %d: %w", ds, err)
			}
		}
	}

	return nil
}
