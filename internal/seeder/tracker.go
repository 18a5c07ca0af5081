package seeder

import (
	"math/rand"
	"sync"
)

type clinicKey struct {
	model    string
	clinicID string
}

// Tracker is the run-scoped index of produced identifiers. Areas record
// every id they create so later areas can reference earlier rows
// without re-querying the database. It is a cache over writes already
// made, never a source of truth, and is discarded when the run ends.
//
// The orchestrator runs areas strictly sequentially, so the mutex is
// not needed today; it is scoped per call so independent same-phase
// areas could run concurrently without touching this type again.
type Tracker struct {
	mu       sync.Mutex
	global   map[string][]string
	byClinic map[clinicKey][]string
}

func NewTracker() *Tracker {
	return &Tracker{
		global:   make(map[string][]string),
		byClinic: make(map[clinicKey][]string),
	}
}

// Add records one created id under model. Callers must call it exactly
// once per created record; it does not deduplicate.
func (t *Tracker) Add(model, id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.global[model] = append(t.global[model], id)
}

// AddForClinic records one created id under model, both globally and
// under the clinic it belongs to. The two mappings grow in lockstep.
func (t *Tracker) AddForClinic(model, id, clinicID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.global[model] = append(t.global[model], id)
	key := clinicKey{model: model, clinicID: clinicID}
	t.byClinic[key] = append(t.byClinic[key], id)
}

// All returns every tracked id for model in insertion order. An
// untracked model yields an empty slice, never an error.
func (t *Tracker) All(model string) []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string{}, t.global[model]...)
}

// Random returns a uniformly random tracked id for model. An empty
// bucket fails with EmptySetError: it means some area ran before the
// area that should have populated it.
func (t *Tracker) Random(model string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	ids := t.global[model]
	if len(ids) == 0 {
		return "", &EmptySetError{Model: model}
	}
	return ids[rand.Intn(len(ids))], nil
}

// First returns the first-ever tracked id for model; used where
// determinism matters (e.g. a canonical admin user).
func (t *Tracker) First(model string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	ids := t.global[model]
	if len(ids) == 0 {
		return "", &EmptySetError{Model: model}
	}
	return ids[0], nil
}

// ByClinic returns every id tracked for model under clinicID, in
// insertion order. Ids added under other clinics are never included.
func (t *Tracker) ByClinic(model, clinicID string) []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string{}, t.byClinic[clinicKey{model: model, clinicID: clinicID}]...)
}

// RandomByClinic returns a uniformly random id tracked for model under
// clinicID. It fails with EmptySetError when that clinic has none, even
// if other clinics do.
func (t *Tracker) RandomByClinic(model, clinicID string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	ids := t.byClinic[clinicKey{model: model, clinicID: clinicID}]
	if len(ids) == 0 {
		return "", &EmptySetError{Model: model, ClinicID: clinicID}
	}
	return ids[rand.Intn(len(ids))], nil
}

// Has reports whether at least one id is tracked for model.
func (t *Tracker) Has(model string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.global[model]) > 0
}

// Count returns the number of ids tracked for model.
func (t *Tracker) Count(model string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.global[model])
}

// Models returns every model with at least one tracked id.
func (t *Tracker) Models() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	models := make([]string, 0, len(t.global))
	for model := range t.global {
		models = append(models, model)
	}
	return models
}

// Reset drops all tracked state. Only for reuse between independent
// runs, never mid-run.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.global = make(map[string][]string)
	t.byClinic = make(map[clinicKey][]string)
}
