package cache

import (
	"sync"

	"github.com/katalvlaran/wfst/fst"
	"github.com/katalvlaran/wfst/semiring"
)

type vecSlot struct {
	hasTrs   bool
	trs      []fst.Transition
	trsErr   error
	hasFinal bool
	final    semiring.Weight
	finalErr error
}

// VectorCache is a dense-vector-backed Cache with identical semantics to
// HashMapCache, permitted by the cache contract "when ids are expected to
// be contiguous" — e.g. caching a VectorFst-backed operator (such as a
// transition-mapped copy) rather than a sparse composite state space.
type VectorCache struct {
	mu sync.Mutex

	hasStart bool
	start    fst.StateId
	startErr error

	slots []vecSlot
}

// NewVectorCache constructs an empty VectorCache.
func NewVectorCache() *VectorCache { return &VectorCache{} }

func (c *VectorCache) grow(s fst.StateId) {
	for int(s) >= len(c.slots) {
		c.slots = append(c.slots, vecSlot{})
	}
}

// HasStart implements Cache.
func (c *VectorCache) HasStart() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasStart
}

// SetStart implements Cache.
func (c *VectorCache) SetStart(s fst.StateId, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.start, c.startErr, c.hasStart = s, err, true
}

// Start implements Cache.
func (c *VectorCache) Start() (fst.StateId, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.start, c.startErr
}

// HasTrs implements Cache.
func (c *VectorCache) HasTrs(s fst.StateId) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if int(s) >= len(c.slots) {
		return false
	}
	return c.slots[s].hasTrs
}

// SetTrs implements Cache.
func (c *VectorCache) SetTrs(s fst.StateId, trs []fst.Transition, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grow(s)
	c.slots[s].hasTrs = true
	c.slots[s].trs = trs
	c.slots[s].trsErr = err
}

// Trs implements Cache.
func (c *VectorCache) Trs(s fst.StateId) ([]fst.Transition, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	slot := c.slots[s]
	return slot.trs, slot.trsErr
}

// HasFinal implements Cache.
func (c *VectorCache) HasFinal(s fst.StateId) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if int(s) >= len(c.slots) {
		return false
	}
	return c.slots[s].hasFinal
}

// SetFinal implements Cache.
func (c *VectorCache) SetFinal(s fst.StateId, w semiring.Weight, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grow(s)
	c.slots[s].hasFinal = true
	c.slots[s].final = w
	c.slots[s].finalErr = err
}

// Final implements Cache.
func (c *VectorCache) Final(s fst.StateId) (semiring.Weight, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	slot := c.slots[s]
	return slot.final, slot.finalErr
}

var _ Cache = (*VectorCache)(nil)
