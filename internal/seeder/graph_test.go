package seeder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testArea(id string, phase int, deps ...string) Area {
	return Area{
		ID:           id,
		Name:         id,
		Phase:        phase,
		Dependencies: deps,
		Seed:         func(ctx *Context) error { return nil },
	}
}

// clinicRegistry is the canonical fixture: core (phase 0), users
// (phase 1, after core), patients (phase 2, after core and users).
func clinicRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := NewRegistry(
		testArea("core", 0),
		testArea("users", 1, "core"),
		testArea("patients", 2, "core", "users"),
	)
	require.NoError(t, err)
	return reg
}

func ids(areas []Area) []string {
	out := make([]string, len(areas))
	for i, area := range areas {
		out[i] = area.ID
	}
	return out
}

func TestExpand(t *testing.T) {
	reg := clinicRegistry(t)
	r := NewResolver(reg)

	set, err := r.Expand([]string{"patients"})
	require.NoError(t, err)
	assert.Equal(t, []string{"core", "users", "patients"}, ids(set))

	// Idempotent: expanding the result yields the same set.
	again, err := r.Expand(ids(set))
	require.NoError(t, err)
	assert.Equal(t, ids(set), ids(again))
}

func TestExpandUnknownArea(t *testing.T) {
	r := NewResolver(clinicRegistry(t))

	_, err := r.Expand([]string{"billing"})
	var unknownErr *UnknownAreaError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "billing", unknownErr.ID)
}

func TestAreasUpTo(t *testing.T) {
	r := NewResolver(clinicRegistry(t))

	tests := []struct {
		maxPhase int
		want     []string
	}{
		{maxPhase: 0, want: []string{"core"}},
		{maxPhase: 1, want: []string{"core", "users"}},
		{maxPhase: 2, want: []string{"core", "users", "patients"}},
		{maxPhase: 99, want: []string{"core", "users", "patients"}},
	}
	for _, tt := range tests {
		set, err := r.AreasUpTo(tt.maxPhase)
		require.NoError(t, err)
		assert.Equal(t, tt.want, ids(set), "maxPhase=%d", tt.maxPhase)
	}
}

func TestAreasUpToRejectsHigherPhaseDependency(t *testing.T) {
	// reports (phase 1) depends on billing (phase 2): selecting up to
	// phase 1 must fail instead of silently seeding out of order.
	reg, err := NewRegistry(
		testArea("core", 0),
		testArea("billing", 2, "core"),
		testArea("reports", 1, "billing"),
	)
	require.NoError(t, err)

	_, err = NewResolver(reg).AreasUpTo(1)
	var phaseErr *PhaseOrderingError
	require.ErrorAs(t, err, &phaseErr)
	assert.Equal(t, "reports", phaseErr.Area)
	assert.Equal(t, "billing", phaseErr.Dependency)
}

func TestSeedOrder(t *testing.T) {
	reg := clinicRegistry(t)
	r := NewResolver(reg)

	order, err := r.SeedOrder(reg.All())
	require.NoError(t, err)
	assert.Equal(t, []string{"core", "users", "patients"}, ids(order))
}

func TestSeedOrderEmptySelection(t *testing.T) {
	r := NewResolver(clinicRegistry(t))

	order, err := r.SeedOrder(nil)
	require.NoError(t, err)
	assert.Empty(t, order)
}

func TestSeedOrderPrerequisitesFirst(t *testing.T) {
	// Diamond: d -> {b, c} -> a, with registration order scrambled.
	reg, err := NewRegistry(
		testArea("d", 1, "b", "c"),
		testArea("b", 0, "a"),
		testArea("a", 0),
		testArea("c", 0, "a"),
	)
	require.NoError(t, err)

	order, err := NewResolver(reg).SeedOrder(reg.All())
	require.NoError(t, err)

	index := map[string]int{}
	for i, id := range ids(order) {
		index[id] = i
	}
	assert.Len(t, order, 4)
	assert.Less(t, index["a"], index["b"])
	assert.Less(t, index["a"], index["c"])
	assert.Less(t, index["b"], index["d"])
	assert.Less(t, index["c"], index["d"])
}

func TestSeedOrderRegistrationOrderTieBreak(t *testing.T) {
	// Three independent areas in the same phase resolve in
	// registration order, reproducibly.
	reg, err := NewRegistry(
		testArea("zebra", 0),
		testArea("apple", 0),
		testArea("mango", 0),
	)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		order, err := NewResolver(reg).SeedOrder(reg.All())
		require.NoError(t, err)
		assert.Equal(t, []string{"zebra", "apple", "mango"}, ids(order))
	}
}

func TestClearOrderIsReverseOfSeedOrder(t *testing.T) {
	reg := clinicRegistry(t)
	r := NewResolver(reg)

	seedOrder, err := r.SeedOrder(reg.All())
	require.NoError(t, err)
	clearOrder, err := r.ClearOrder(reg.All())
	require.NoError(t, err)

	assert.Equal(t, []string{"patients", "users", "core"}, ids(clearOrder))
	require.Len(t, clearOrder, len(seedOrder))
	for i := range seedOrder {
		assert.Equal(t, seedOrder[i].ID, clearOrder[len(clearOrder)-1-i].ID)
	}
}

func TestCyclicDependency(t *testing.T) {
	reg, err := NewRegistry(
		testArea("a", 0, "b"),
		testArea("b", 0, "a"),
	)
	require.NoError(t, err)

	_, err = NewResolver(reg).SeedOrder(reg.All())
	var cycleErr *CyclicDependencyError
	require.ErrorAs(t, err, &cycleErr)
	assert.ElementsMatch(t, []string{"a", "b"}, cycleErr.Cycle)

	// Clearing hits the same cycle.
	_, err = NewResolver(reg).ClearOrder(reg.All())
	assert.True(t, errors.As(err, &cycleErr))
}

func TestSelfDependencyIsACycle(t *testing.T) {
	reg, err := NewRegistry(testArea("a", 0, "a"))
	require.NoError(t, err)

	_, err = NewResolver(reg).SeedOrder(reg.All())
	var cycleErr *CyclicDependencyError
	require.ErrorAs(t, err, &cycleErr)
	assert.Equal(t, []string{"a"}, cycleErr.Cycle)
}

func TestSeedOrderIgnoresDependenciesOutsideSelection(t *testing.T) {
	reg := clinicRegistry(t)
	r := NewResolver(reg)

	users, err := reg.Lookup("users")
	require.NoError(t, err)

	// Selecting just users does not pull core in; the order contains
	// exactly the selection.
	order, err := r.SeedOrder([]Area{users})
	require.NoError(t, err)
	assert.Equal(t, []string{"users"}, ids(order))
}
