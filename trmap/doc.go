// Package trmap implements per-transition rewrites: transition mappers,
// which rewrite transitions in place without touching the state graph,
// and weight converters, which additionally change the semiring.
//
// TrMap applies a TrMapper to every transition (and final weight,
// via FinalArcMap) of a MutableFst, inserting a super-final state when
// the mapper's FinalAction requires one. WeightConvert applies a
// WeightConverter across a semiring boundary, producing a new FST.
//
// Canonical mappers: Quantize, Times, Identity, Invert (swap labels),
// InputEpsilon/OutputEpsilon (zero one label side). All are total and
// deterministic — they never fail and never depend on anything but the
// transition passed in.
package trmap
