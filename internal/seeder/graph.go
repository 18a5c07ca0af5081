package seeder

import "sort"

// Resolver computes safe execution orders over a registry's dependency
// graph. All methods are pure: they never touch the database and never
// mutate the registry, so any error from them leaves nothing to clean
// up.
type Resolver struct {
	reg *Registry
}

func NewResolver(reg *Registry) *Resolver {
	return &Resolver{reg: reg}
}

// Expand returns the transitive closure of the requested ids over the
// "depends on" relation, in registration order. Expanding the result
// again yields the same set.
func (r *Resolver) Expand(ids []string) ([]Area, error) {
	seen := make(map[string]bool, len(ids))
	queue := make([]string, 0, len(ids))

	for _, id := range ids {
		if !r.reg.Has(id) {
			return nil, &UnknownAreaError{ID: id}
		}
		if !seen[id] {
			seen[id] = true
			queue = append(queue, id)
		}
	}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		area, err := r.reg.Lookup(id)
		if err != nil {
			return nil, err
		}
		for _, dep := range area.Dependencies {
			if !seen[dep] {
				seen[dep] = true
				queue = append(queue, dep)
			}
		}
	}

	return r.collect(seen), nil
}

// AreasUpTo returns every area whose own phase is <= maxPhase. A phase
// filter never widens the selection: if a selected area depends on an
// area from a strictly later phase, the selection is rejected with a
// PhaseOrderingError instead of being seeded out of order.
func (r *Resolver) AreasUpTo(maxPhase int) ([]Area, error) {
	var selected []Area
	for _, area := range r.reg.All() {
		if area.Phase <= maxPhase {
			selected = append(selected, area)
		}
	}

	for _, area := range selected {
		for _, dep := range area.Dependencies {
			depArea, err := r.reg.Lookup(dep)
			if err != nil {
				return nil, err
			}
			if depArea.Phase > area.Phase {
				return nil, &PhaseOrderingError{Area: area.ID, Dependency: dep}
			}
		}
	}

	return selected, nil
}

// Node colors for the depth-first traversal.
const (
	white = iota // not visited
	gray         // on the current path
	black        // fully emitted
)

// SeedOrder topologically sorts the selection so that every
// prerequisite precedes every dependent. Areas are visited in
// registration order and emitted post-order, which makes the result
// deterministic for any registry. Dependencies outside the selection
// are assumed already satisfied and are not pulled in; use Expand first
// when the full closure is wanted.
//
// A dependency edge back onto the current path is a cycle (an area
// depending on itself included) and fails with CyclicDependencyError
// naming the ids along it.
func (r *Resolver) SeedOrder(areas []Area) ([]Area, error) {
	selected := make(map[string]Area, len(areas))
	for _, area := range areas {
		selected[area.ID] = area
	}

	color := make(map[string]int, len(areas))
	var order []Area
	var path []string

	var visit func(area Area) error
	visit = func(area Area) error {
		switch color[area.ID] {
		case black:
			return nil
		case gray:
			// Back-edge: the cycle is the path from the first
			// occurrence of this id onward.
			start := 0
			for i, id := range path {
				if id == area.ID {
					start = i
					break
				}
			}
			cycle := append([]string{}, path[start:]...)
			return &CyclicDependencyError{Cycle: cycle}
		}

		color[area.ID] = gray
		path = append(path, area.ID)

		for _, dep := range area.Dependencies {
			depArea, ok := selected[dep]
			if !ok {
				continue
			}
			if err := visit(depArea); err != nil {
				return err
			}
		}

		path = path[:len(path)-1]
		color[area.ID] = black
		order = append(order, area)
		return nil
	}

	for _, area := range r.inRegistrationOrder(areas) {
		if err := visit(area); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// ClearOrder is the exact reverse of SeedOrder: dependents are torn
// down before the rows they reference, so no clear ever leaves a
// dangling reference behind.
func (r *Resolver) ClearOrder(areas []Area) ([]Area, error) {
	order, err := r.SeedOrder(areas)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order, nil
}

func (r *Resolver) collect(ids map[string]bool) []Area {
	var out []Area
	for _, area := range r.reg.All() {
		if ids[area.ID] {
			out = append(out, area)
		}
	}
	return out
}

func (r *Resolver) inRegistrationOrder(areas []Area) []Area {
	out := append([]Area{}, areas...)
	sort.SliceStable(out, func(i, j int) bool {
		return r.position(out[i].ID) < r.position(out[j].ID)
	})
	return out
}

func (r *Resolver) position(id string) int {
	if i, ok := r.reg.index[id]; ok {
		return i
	}
	return r.reg.Len()
}
