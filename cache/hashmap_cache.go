package cache

import (
	"sync"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

type trsSlot struct {
	trs []fst.Transition
	err error
}

type finalSlot struct {
	w   semiring.Weight
	err error
}

// HashMapCache is the default Cache: a map-backed per-state store,
// suited to composite state spaces (e.g. a composition's (sA, sB, fs)
// tuples) that are explored sparsely and out of numeric order.
type HashMapCache struct {
	mu sync.Mutex

	hasStart bool
	start    fst.StateId
	startErr error

	trs   map[fst.StateId]trsSlot
	final map[fst.StateId]finalSlot
}

// NewHashMapCache constructs an empty HashMapCache.
func NewHashMapCache() *HashMapCache {
	return &HashMapCache{
		trs:   make(map[fst.StateId]trsSlot),
		final: make(map[fst.StateId]finalSlot),
	}
}

// HasStart implements Cache.
func (c *HashMapCache) HasStart() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasStart
}

// SetStart implements Cache.
func (c *HashMapCache) SetStart(s fst.StateId, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.start, c.startErr, c.hasStart = s, err, true
}

// Start implements Cache.
func (c *HashMapCache) Start() (fst.StateId, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.start, c.startErr
}

// HasTrs implements Cache.
func (c *HashMapCache) HasTrs(s fst.StateId) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.trs[s]
	return ok
}

// SetTrs implements Cache.
func (c *HashMapCache) SetTrs(s fst.StateId, trs []fst.Transition, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.trs[s] = trsSlot{trs: trs, err: err}
}

// Trs implements Cache.
func (c *HashMapCache) Trs(s fst.StateId) ([]fst.Transition, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	slot := c.trs[s]
	return slot.trs, slot.err
}

// HasFinal implements Cache.
func (c *HashMapCache) HasFinal(s fst.StateId) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.final[s]
	return ok
}

// SetFinal implements Cache.
func (c *HashMapCache) SetFinal(s fst.StateId, w semiring.Weight, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.final[s] = finalSlot{w: w, err: err}
}

// Final implements Cache.
func (c *HashMapCache) Final(s fst.StateId) (semiring.Weight, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	slot := c.final[s]
	return slot.w, slot.err
}

var _ Cache = (*HashMapCache)(nil)
