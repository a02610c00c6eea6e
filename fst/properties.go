package fst

// Properties is a bitmask of structural facts about an FST. Each bit has
// a "known" companion bit: a property may be unknown (neither the Known
// nor the plain bit is trustworthy) rather than merely false, so callers
// must test KnownXxx before trusting Xxx.
type Properties uint64

const (
	ILabelSorted Properties = 1 << iota
	ILabelSortedKnown
	OLabelSorted
	OLabelSortedKnown
	Acceptor // every transition has Ilabel == Olabel
	AcceptorKnown
	IDeterministic // at most one outgoing transition per (state, ilabel)
	IDeterministicKnown
	ODeterministic
	ODeterministicKnown
	Epsilons // some transition has Ilabel == Eps || Olabel == Eps
	EpsilonsKnown
	IEpsilons // some transition has Ilabel == Eps
	IEpsilonsKnown
	OEpsilons // some transition has Olabel == Eps
	OEpsilonsKnown
	Cyclic
	CyclicKnown
	Acyclic
	AcyclicKnown
)

// Has reports whether all bits in want are set in p.
func (p Properties) Has(want Properties) bool { return p&want == want }

// KnownAll reports whether every property named in want has its Known
// companion bit set in p. It assumes want uses only the plain (non-Known)
// bits and derives the corresponding Known bits by shifting.
func (p Properties) KnownAll(want Properties) bool {
	return p&(want<<1) == want<<1
}

// DeterminizeType names the determinization strategy a caller intends to
// use. Determinization itself lives outside this module's scope; the
// type is kept here because composition's lookahead pruning and the
// determinization subsystem share FST property vocabulary.
type DeterminizeType int

const (
	// Functional asserts the input transducer is known to be functional
	// (at most one output per input string).
	Functional DeterminizeType = iota
	// NonFunctional makes no such assumption.
	NonFunctional
	// Disambiguate keeps only the minimal-weight output per input string
	// when the input is not known to be functional.
	Disambiguate
)
