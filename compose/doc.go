// Package compose implements lazy FST composition: given two FSTs A and
// B, it builds a third FST whose language is the relational composition
// of A's and B's languages, without ever materializing more than the
// states a consumer actually visits.
//
// A Filter decides which pairs of A/B transitions may compose and
// carries a small per-composite-state coordinate (FilterState) to keep
// epsilon handling canonical; SequenceFilter is the baseline
// implementation. Op implements lazyfst.Operator over a Filter and the
// two inputs, with B wrapped in a matcher.Matcher: it pairs A's
// non-epsilon output labels against B's matcher (one direction only;
// B's transitions are not also scanned against A) and handles
// epsilon-only moves as virtual single-sided advances. New/NewWithOptions wire an Op into a
// lazyfst.LazyFst and return the result as an ordinary fst.ExpandedFst;
// Compute materializes it with lazyfst.Compute.
package compose
