package profile

import (
	"fmt"
	"sync"

	"github.com/mmynk/memberportal/internal/models"
)

// Registry keeps one Aggregate per logged-in member, in memory only.
// Operations on the same member are serialized; different members proceed in parallel.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	mu  sync.Mutex
	agg *Aggregate
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// Open creates the default profile for memberID unless one is already open.
// It reports whether a new profile was created.
func (r *Registry) Open(memberID string, member *models.Member) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[memberID]; ok {
		return false
	}
	r.entries[memberID] = &entry{agg: New(models.NewProfile(memberID, member))}
	return true
}

// With runs fn with exclusive access to the member's aggregate.
func (r *Registry) With(memberID string, fn func(*Aggregate) error) error {
	r.mu.Lock()
	e, ok := r.entries[memberID]
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoProfile, memberID)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.agg)
}

// Close drops the member's aggregate and reports whether one was open.
func (r *Registry) Close(memberID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.entries[memberID]
	delete(r.entries, memberID)
	return ok
}

// Len returns the number of open profiles.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
