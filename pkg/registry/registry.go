package registry

import (
	"fmt"
	"sync"

	"github.com/aretw0/automata/pkg/domain"
)

// Entry is a registered automaton.
type Entry struct {
	Descriptor domain.Descriptor
	Evaluator  domain.Evaluator
	Diagram    domain.Diagram
}

// Registry manages the available automata.
// Lookups are keyed by id; listings follow registration order.
type Registry struct {
	mu      sync.RWMutex
	entries map[domain.AutomatonID]Entry
	order   []domain.AutomatonID
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[domain.AutomatonID]Entry),
	}
}

// Register adds an automaton to the registry.
// If an automaton with the same id exists, it is overwritten in place.
func (r *Registry) Register(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := entry.Descriptor.ID
	if _, ok := r.entries[id]; !ok {
		r.order = append(r.order, id)
	}
	r.entries[id] = entry
}

// Lookup returns the evaluator registered under id.
// Returns an error wrapping domain.ErrUnknownAutomaton if it is not found.
func (r *Registry) Lookup(id domain.AutomatonID) (domain.Evaluator, error) {
	e, err := r.get(id)
	if err != nil {
		return nil, err
	}
	return e.Evaluator, nil
}

// Diagram returns the transition graph registered under id.
func (r *Registry) Diagram(id domain.AutomatonID) (domain.Diagram, error) {
	e, err := r.get(id)
	if err != nil {
		return domain.Diagram{}, err
	}
	return e.Diagram, nil
}

// List returns the descriptors in registration order.
func (r *Registry) List() []domain.Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Descriptor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entries[id].Descriptor)
	}
	return out
}

func (r *Registry) get(id domain.AutomatonID) (Entry, error) {
	r.mu.RLock()
	e, ok := r.entries[id]
	r.mu.RUnlock()

	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", domain.ErrUnknownAutomaton, id)
	}
	return e, nil
}
