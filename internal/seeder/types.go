package seeder

// SeedFunc performs one area's writes. It must not return until every
// write it issued is durable, and it must record every id a later area
// may reference through ctx.IDs before returning.
type SeedFunc func(ctx *Context) error

// ClearFunc removes one area's rows. Optional; areas without teardown
// leave it nil.
type ClearFunc func(ctx *Context) error

// Area is one named unit of seeding work. Values are registered once at
// startup and never mutated afterwards.
type Area struct {
	ID           string
	Name         string
	Phase        int
	Dependencies []string
	Seed         SeedFunc
	Clear        ClearFunc
}

// SeedConfig describes one run. It is assembled by merging defaults, a
// named profile, and caller overrides, and is immutable once merged.
// The core passes Counts and Mode through to the areas untouched.
type SeedConfig struct {
	Counts          map[string]int // records per model
	Mode            string         // minimal|standard|full, opaque to the core
	ClearBeforeSeed bool
	Areas           []string // explicit area ids; nil means "by phase"
	MaxPhase        int      // highest phase to include; negative means every phase
}

// Count returns the configured volume for model, falling back to def
// when the model has no explicit entry.
func (c SeedConfig) Count(model string, def int) int {
	if n, ok := c.Counts[model]; ok {
		return n
	}
	return def
}

// Summary maps model name to the number of ids tracked for it during a
// run. It is read from the tracker after the last area completes.
type Summary map[string]int
