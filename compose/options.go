package compose

import "github.com/katalvlaran/wfst/cache"

// Options configures New/Compute.
type Options struct {
	// Filter selects the composition filter. Defaults to a fresh
	// SequenceFilter when nil.
	Filter Filter
	// Cache selects the memoization backend. Defaults to a fresh
	// cache.HashMapCache when nil, matching the sparse, out-of-order
	// composite state space composition produces.
	Cache cache.Cache
}

func (o Options) withDefaults() Options {
	if o.Filter == nil {
		o.Filter = NewSequenceFilter()
	}
	if o.Cache == nil {
		o.Cache = cache.NewHashMapCache()
	}
	return o
}
