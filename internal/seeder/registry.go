package seeder

import "fmt"

// Registry is the validated, immutable catalog of areas. Registration
// order is preserved and later used as the resolver's tie-break, so two
// areas in the same phase with no edge between them always resolve in
// the order they were registered.
type Registry struct {
	areas []Area
	index map[string]int
}

// NewRegistry validates the catalog once, at construction. Duplicate
// ids and dependencies on unregistered ids are rejected here so every
// later resolution can assume a sound graph.
func NewRegistry(areas ...Area) (*Registry, error) {
	r := &Registry{
		areas: make([]Area, 0, len(areas)),
		index: make(map[string]int, len(areas)),
	}

	for _, area := range areas {
		if area.ID == "" {
			return nil, fmt.Errorf("area with empty id (name: %q)", area.Name)
		}
		if area.Phase < 0 {
			return nil, fmt.Errorf("area %s has negative phase %d", area.ID, area.Phase)
		}
		if area.Seed == nil {
			return nil, fmt.Errorf("area %s has no seed function", area.ID)
		}
		if _, exists := r.index[area.ID]; exists {
			return nil, &DuplicateAreaError{ID: area.ID}
		}
		r.index[area.ID] = len(r.areas)
		r.areas = append(r.areas, area)
	}

	for _, area := range r.areas {
		for _, dep := range area.Dependencies {
			if _, ok := r.index[dep]; !ok {
				return nil, &UnknownAreaError{ID: dep, ReferencedBy: area.ID}
			}
		}
	}

	return r, nil
}

// MustRegistry is NewRegistry for static catalogs wired at startup,
// where a broken registration is a programming error.
func MustRegistry(areas ...Area) *Registry {
	r, err := NewRegistry(areas...)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the area registered under id.
func (r *Registry) Lookup(id string) (Area, error) {
	i, ok := r.index[id]
	if !ok {
		return Area{}, &NotFoundError{ID: id}
	}
	return r.areas[i], nil
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.index[id]
	return ok
}

// All returns the areas in registration order.
func (r *Registry) All() []Area {
	out := make([]Area, len(r.areas))
	copy(out, r.areas)
	return out
}

// Len returns the number of registered areas.
func (r *Registry) Len() int {
	return len(r.areas)
}
