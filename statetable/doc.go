// Package statetable implements the bijection between composite state
// tuples (e.g. a composition's (sA, sB, filterState)) and the dense
// StateIds a lazily-expanded FST hands out.
//
// A StateTable is append-only and total for every id it has ever
// returned: Lookup on an id previously returned by FindOrInsert always
// succeeds and returns the tuple that produced it. It is not safe for
// concurrent insertion, and neither its owner (compose.Op) nor the
// lazyfst.LazyFst driving that owner takes a lock around it: a table is
// safe only while one goroutine at a time queries that lazy FST.
package statetable
