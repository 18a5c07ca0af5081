package seeder

import (
	"fmt"
	"strings"
)

// Configuration errors are raised during registration or resolution,
// before any write is issued; fixing the catalog or the request and
// retrying is always safe.

// DuplicateAreaError reports two registrations under the same id.
type DuplicateAreaError struct {
	ID string
}

func (e *DuplicateAreaError) Error() string {
	return fmt.Sprintf("duplicate area id: %s", e.ID)
}

// UnknownAreaError reports a reference to an id that is not in the
// registry, either from a dependency declaration or from a run request.
type UnknownAreaError struct {
	ID           string
	ReferencedBy string // empty when the id came from a run request
}

func (e *UnknownAreaError) Error() string {
	if e.ReferencedBy != "" {
		return fmt.Sprintf("unknown area %s (required by %s)", e.ID, e.ReferencedBy)
	}
	return fmt.Sprintf("unknown area: %s", e.ID)
}

// NotFoundError reports a registry lookup miss.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("area not found: %s", e.ID)
}

// PhaseOrderingError reports a phase-filtered selection that depends on
// an area from a strictly later phase. Seeding such a selection would
// run out of order, so it is rejected instead of silently widened.
type PhaseOrderingError struct {
	Area       string
	Dependency string
}

func (e *PhaseOrderingError) Error() string {
	return fmt.Sprintf("area %s depends on %s, which belongs to a later phase", e.Area, e.Dependency)
}

// CyclicDependencyError reports a dependency cycle. Cycle holds the
// area ids in encounter order, first repeated node excluded.
type CyclicDependencyError struct {
	Cycle []string
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("circular dependency detected: %s", strings.Join(e.Cycle, " -> "))
}

// RuntimeSeedError wraps a failure inside an area's seed or clear
// callable. Completed reports how many areas finished before the
// failing one; their rows stay committed.
type RuntimeSeedError struct {
	AreaID    string
	Op        string // "seed" or "clear"
	Completed int
	Err       error
}

func (e *RuntimeSeedError) Error() string {
	return fmt.Sprintf("%s failed for area %s (%d areas completed): %v", e.Op, e.AreaID, e.Completed, e.Err)
}

func (e *RuntimeSeedError) Unwrap() error {
	return e.Err
}

// EmptySetError is returned by tracker read accessors when the
// requested bucket holds no ids. It usually means an area ran before
// the area that should have populated the bucket.
type EmptySetError struct {
	Model    string
	ClinicID string // empty for global buckets
}

func (e *EmptySetError) Error() string {
	if e.ClinicID != "" {
		return fmt.Sprintf("no tracked ids for model %s in clinic %s", e.Model, e.ClinicID)
	}
	return fmt.Sprintf("no tracked ids for model %s", e.Model)
}
