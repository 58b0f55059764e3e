package catchzone

import (
	"time"

	"github.com/vovakirdan/catch-zone/internal/core"
)

// Progress bounds. Items spawn at 0 and hit the floor at 100.
const (
	ProgressSpawn = 0.0
	ProgressFloor = 100.0
)

// FallingItem is one item in flight.
type FallingItem struct {
	ID       uint64
	Kind     ItemKind
	Lane     core.Lane     // Fixed for the item's lifetime
	Progress float64       // 0 = spawn, 100 = floor; never decreases
	Drop     time.Duration // Time to fall 0 -> 100, fixed at spawn

	resolved bool
}

// Resolved reports whether the item has been caught or missed.
func (it *FallingItem) Resolved() bool {
	return it.resolved
}

// advance moves the item down by dt.
func (it *FallingItem) advance(dt time.Duration) {
	if it.resolved || dt <= 0 || it.Drop <= 0 {
		return
	}
	it.Progress += (ProgressFloor / it.Drop.Seconds()) * dt.Seconds()
}

// ItemView is the read-only projection of an item handed to observers.
type ItemView struct {
	ID       uint64
	Kind     string
	Lane     core.Lane
	Progress float64
	Token    string
	Hazard   bool
}

func (it *FallingItem) view() ItemView {
	return ItemView{
		ID:       it.ID,
		Kind:     it.Kind.Name,
		Lane:     it.Lane,
		Progress: it.Progress,
		Token:    it.Kind.Token,
		Hazard:   it.Kind.Hazard,
	}
}

// Registry owns the items in flight. IDs are never reused, even across Reset.
type Registry struct {
	items  []*FallingItem
	nextID uint64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{items: make([]*FallingItem, 0, 8)}
}

// Add creates an item at progress 0.
func (r *Registry) Add(kind ItemKind, lane core.Lane, drop time.Duration) *FallingItem {
	r.nextID++
	it := &FallingItem{
		ID:       r.nextID,
		Kind:     kind,
		Lane:     lane,
		Progress: ProgressSpawn,
		Drop:     drop,
	}
	r.items = append(r.items, it)
	return it
}

// Advance moves every unresolved item down by dt.
func (r *Registry) Advance(dt time.Duration) {
	for _, it := range r.items {
		it.advance(dt)
	}
}

// Sweep calls keep for each unresolved item and removes the items for which
// it returns false, along with any item already marked resolved.
func (r *Registry) Sweep(keep func(*FallingItem) bool) {
	valid := r.items[:0]
	for _, it := range r.items {
		if it.resolved {
			continue
		}
		if keep(it) {
			valid = append(valid, it)
		}
	}
	for i := len(valid); i < len(r.items); i++ {
		r.items[i] = nil
	}
	r.items = valid
}

// Reset removes every item.
func (r *Registry) Reset() {
	for i := range r.items {
		r.items[i] = nil
	}
	r.items = r.items[:0]
}

// Len returns the number of items in flight.
func (r *Registry) Len() int {
	return len(r.items)
}

// Views returns a copy of the items in flight.
func (r *Registry) Views() []ItemView {
	out := make([]ItemView, len(r.items))
	for i, it := range r.items {
		out[i] = it.view()
	}
	return out
}
