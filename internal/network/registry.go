package network

import (
	"fmt"

	"relief-allocation-service/internal/domain"
)

// Registry interns city names to dense ids in first-seen order.
// It only grows during a run; ids are stable once assigned.
type Registry struct {
	ids   map[string]int
	names []string
	limit int
}

// NewRegistry returns an empty registry. A limit of 0 means unbounded.
func NewRegistry(limit int) *Registry {
	return &Registry{
		ids:   make(map[string]int),
		limit: limit,
	}
}

// Intern returns the id of name, assigning the next id on first sighting.
func (r *Registry) Intern(name string) (int, error) {
	if id, ok := r.ids[name]; ok {
		return id, nil
	}
	if r.limit > 0 && len(r.names) >= r.limit {
		return -1, fmt.Errorf("intern city %q: limit %d: %w", name, r.limit, domain.ErrCapacityExceeded)
	}

	id := len(r.names)
	r.ids[name] = id
	r.names = append(r.names, name)
	return id, nil
}

// Lookup returns the id of a previously interned name.
func (r *Registry) Lookup(name string) (int, bool) {
	id, ok := r.ids[name]
	return id, ok
}

func (r *Registry) Name(id int) string { return r.names[id] }

func (r *Registry) Len() int { return len(r.names) }

// Names returns a copy of all names indexed by id.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}
