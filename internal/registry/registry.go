// Package registry is the in-memory, order-preserving collection of mission
// profiles that projections and selections read from.
package registry

import (
	"fmt"
	"slices"
	"sync"

	"github.com/ksts/profileselector/pkg/core"
)

// Registry stores mission profiles in insertion order
type Registry struct {
	profiles  map[uint]*core.MissionProfile // keyed by ID
	order     []uint
	idCounter uint
	mu        sync.RWMutex
}

// New creates an empty registry
func New() *Registry {
	return &Registry{
		profiles: make(map[uint]*core.MissionProfile),
	}
}

// Add registers a profile. A zero ID is replaced with the next free ID,
// which is written back to p.
func (r *Registry) Add(p *core.MissionProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == 0 {
		r.idCounter++
		p.ID = r.idCounter
	} else if _, exists := r.profiles[p.ID]; exists {
		return fmt.Errorf("profile %d already registered", p.ID)
	}
	if p.ID > r.idCounter {
		r.idCounter = p.ID
	}

	stored := clone(*p)
	r.profiles[p.ID] = &stored
	r.order = append(r.order, p.ID)
	return nil
}

// Remove deletes a profile, reporting whether it existed
func (r *Registry) Remove(id uint) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[id]; !ok {
		return false
	}
	delete(r.profiles, id)
	r.order = slices.DeleteFunc(r.order, func(v uint) bool { return v == id })
	return true
}

// Has reports whether a profile with the ID is registered
func (r *Registry) Has(id uint) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.profiles[id]
	return ok
}

// Get returns a copy of the profile with the ID
func (r *Registry) Get(id uint) (core.MissionProfile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.profiles[id]; ok {
		return clone(*p), true
	}
	return core.MissionProfile{}, false
}

// Profiles returns copies of all profiles in insertion order
func (r *Registry) Profiles() []core.MissionProfile {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]core.MissionProfile, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, clone(*r.profiles[id]))
	}
	return out
}

// Len returns the number of registered profiles
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

func clone(p core.MissionProfile) core.MissionProfile {
	p.DockingPortTypes = slices.Clone(p.DockingPortTypes)
	return p
}
