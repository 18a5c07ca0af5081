package seeder

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerEmptyBuckets(t *testing.T) {
	tr := NewTracker()

	assert.Empty(t, tr.All("Patient"))
	assert.False(t, tr.Has("Patient"))
	assert.Zero(t, tr.Count("Patient"))

	var emptyErr *EmptySetError

	_, err := tr.Random("Patient")
	require.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, "Patient", emptyErr.Model)

	_, err = tr.First("Patient")
	require.ErrorAs(t, err, &emptyErr)

	_, err = tr.RandomByClinic("Patient", "clinic-1")
	require.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, "clinic-1", emptyErr.ClinicID)
}

func TestTrackerAddAndRead(t *testing.T) {
	tr := NewTracker()
	tr.Add("Patient", "p1")

	id, err := tr.Random("Patient")
	require.NoError(t, err)
	assert.Equal(t, "p1", id)

	tr.Add("Patient", "p2")
	tr.Add("Patient", "p3")

	assert.Equal(t, []string{"p1", "p2", "p3"}, tr.All("Patient"))
	assert.Equal(t, 3, tr.Count("Patient"))
	assert.True(t, tr.Has("Patient"))

	first, err := tr.First("Patient")
	require.NoError(t, err)
	assert.Equal(t, "p1", first)
}

func TestTrackerRandomIsRoughlyUniform(t *testing.T) {
	tr := NewTracker()
	ids := []string{"a", "b", "c", "d"}
	for _, id := range ids {
		tr.Add("Patient", id)
	}

	const draws = 4000
	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		id, err := tr.Random("Patient")
		require.NoError(t, err)
		counts[id]++
	}

	// Expected 1000 per id; a generous tolerance keeps this stable.
	for _, id := range ids {
		assert.InDelta(t, draws/len(ids), counts[id], 400, "id %s", id)
	}
}

func TestTrackerClinicIsolation(t *testing.T) {
	tr := NewTracker()
	for i := 0; i < 20; i++ {
		tr.AddForClinic("User", fmt.Sprintf("c1-u%d", i), "clinic-1")
	}
	tr.AddForClinic("User", "c2-u0", "clinic-2")

	// Scoped reads never leak another clinic's ids.
	assert.Equal(t, []string{"c2-u0"}, tr.ByClinic("User", "clinic-2"))
	for i := 0; i < 100; i++ {
		id, err := tr.RandomByClinic("User", "clinic-2")
		require.NoError(t, err)
		assert.Equal(t, "c2-u0", id)
	}

	// A clinic with no tracked users fails even though others have some.
	_, err := tr.RandomByClinic("User", "clinic-3")
	var emptyErr *EmptySetError
	require.ErrorAs(t, err, &emptyErr)

	// The global list holds everything, in insertion order.
	assert.Equal(t, 21, tr.Count("User"))
}

func TestTrackerScopedAndGlobalGrowInLockstep(t *testing.T) {
	tr := NewTracker()
	tr.AddForClinic("User", "u1", "clinic-1")
	tr.Add("User", "u2") // global-only record

	assert.Equal(t, []string{"u1", "u2"}, tr.All("User"))
	assert.Equal(t, []string{"u1"}, tr.ByClinic("User", "clinic-1"))
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker()
	tr.AddForClinic("User", "u1", "clinic-1")
	tr.Add("Patient", "p1")

	tr.Reset()

	assert.False(t, tr.Has("User"))
	assert.False(t, tr.Has("Patient"))
	assert.Empty(t, tr.ByClinic("User", "clinic-1"))
	assert.Empty(t, tr.Models())
}

func TestTrackerModels(t *testing.T) {
	tr := NewTracker()
	tr.Add("Patient", "p1")
	tr.AddForClinic("User", "u1", "clinic-1")

	assert.ElementsMatch(t, []string{"Patient", "User"}, tr.Models())
}
