package fst

import "github.com/katalvlaran/wfst/semiring"

// Transition is one outgoing arc of an FST: consume Ilabel on the input
// side, produce Olabel on the output side, pay Weight, move to NextState.
type Transition struct {
	Ilabel    Label
	Olabel    Label
	Weight    semiring.Weight
	NextState StateId
}

// FinalTransition is a final weight viewed as a label-free transition,
// used by transition mappers that may need to rewrite final weights the
// same way they rewrite ordinary transitions (see trmap.TrMapper).
type FinalTransition struct {
	Ilabel Label
	Olabel Label
	Weight semiring.Weight
}
