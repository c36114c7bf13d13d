// Package overlay provides the optional bridge between calculators and
// a renderer. The registry holds weak back-references so a discarded
// calculator never stays alive just because an overlay once watched it;
// published point lists are tagged with the calculator generation so
// consumers drop results that predate a mutation.
//
// The core engine does not know this package exists: host code
// registers a calculator and republishes after each query.
package overlay

import (
	"sync"
	"weak"

	"github.com/ShoOtaku/HaiyaBox/geom"
	"github.com/ShoOtaku/HaiyaBox/safety"
)

// Update is one published query result.
type Update struct {
	Generation uint64
	Points     []geom.Vec2
}

type entry struct {
	handle weak.Pointer[safety.Calculator]
	latest Update
	seen   bool
}

// Registry tracks live calculators by ID and their most recent
// published result. All methods are safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	entries map[uint64]*entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[uint64]*entry)}
}

// Register starts tracking a calculator and returns its ID.
func (r *Registry) Register(c *safety.Calculator) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[c.ID()] = &entry{handle: weak.Make(c)}
	return c.ID()
}

// Unregister stops tracking the given calculator ID.
func (r *Registry) Unregister(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
}

// Publish records a query result for the calculator. Updates older
// than the latest seen generation, or older than the calculator's
// current generation, are dropped. Publishing for an unknown or
// collected calculator is a no-op.
func (r *Registry) Publish(id uint64, u Update) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return
	}
	calc := e.handle.Value()
	if calc == nil {
		delete(r.entries, id)
		return
	}
	if u.Generation < calc.Generation() {
		return
	}
	if e.seen && u.Generation < e.latest.Generation {
		return
	}
	e.latest = u
	e.seen = true
}

// Latest returns the most recent non-stale update for the calculator.
// The second result is false when nothing valid has been published or
// the calculator has been collected.
func (r *Registry) Latest(id uint64) (Update, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok || !e.seen {
		return Update{}, false
	}
	calc := e.handle.Value()
	if calc == nil {
		delete(r.entries, id)
		return Update{}, false
	}
	if e.latest.Generation < calc.Generation() {
		return Update{}, false
	}
	return e.latest, true
}

// Live prunes collected handles and returns the IDs still tracked.
func (r *Registry) Live() []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]uint64, 0, len(r.entries))
	for id, e := range r.entries {
		if e.handle.Value() == nil {
			delete(r.entries, id)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
