package seeder

import (
	"context"
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// runState tracks where a run is; states advance forward only, with
// Failed reachable from any non-terminal state on the first error.
type runState int

const (
	stateConfiguring runState = iota
	stateResolving
	stateClearing
	stateSeeding
	stateSummarizing
	stateDone
	stateFailed
)

func (s runState) String() string {
	switch s {
	case stateConfiguring:
		return "configuring"
	case stateResolving:
		return "resolving"
	case stateClearing:
		return "clearing"
	case stateSeeding:
		return "seeding"
	case stateSummarizing:
		return "summarizing"
	case stateDone:
		return "done"
	case stateFailed:
		return "failed"
	}
	return "unknown"
}

// Orchestrator drives one end-to-end seeding run: resolve the area set,
// optionally clear in reverse order, seed in dependency order, report.
// Execution is strictly sequential at area granularity; area N+1 never
// starts before area N's seed call has returned, so every id N tracked
// is visible to N+1.
type Orchestrator struct {
	reg      *Registry
	resolver *Resolver
	db       DB
	log      zerolog.Logger
	quiet    bool

	state runState
}

func NewOrchestrator(reg *Registry, db DB, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		reg:      reg,
		resolver: NewResolver(reg),
		db:       db,
		log:      log,
	}
}

// Quiet suppresses console progress output; the zerolog stream is
// unaffected. Used by tests.
func (o *Orchestrator) Quiet() *Orchestrator {
	o.quiet = true
	return o
}

// Plan resolves the area selection and both execution orders for cfg
// without touching the database. Run uses it internally; the CLI uses
// it directly for dry runs.
func (o *Orchestrator) Plan(cfg SeedConfig) (seedOrder, clearOrder []Area, err error) {
	var set []Area
	if cfg.Areas != nil {
		set, err = o.resolver.Expand(cfg.Areas)
	} else {
		set, err = o.resolver.AreasUpTo(cfg.MaxPhase)
	}
	if err != nil {
		return nil, nil, err
	}

	seedOrder, err = o.resolver.SeedOrder(set)
	if err != nil {
		return nil, nil, err
	}
	clearOrder, err = o.resolver.ClearOrder(set)
	if err != nil {
		return nil, nil, err
	}
	return seedOrder, clearOrder, nil
}

// Run executes one run and returns the per-model record counts read
// from the tracker. Resolution errors abort before any write. A
// failing area aborts mid-flight with a RuntimeSeedError; rows written
// by areas that completed earlier stay committed, and recovery is a
// re-run (with ClearBeforeSeed for a clean slate, or narrowed via
// cfg.Areas to just the fixed area and its dependents).
func (o *Orchestrator) Run(ctx context.Context, cfg SeedConfig) (Summary, error) {
	o.state = stateConfiguring
	cfg = o.withDefaults(cfg)

	o.state = stateResolving
	seedOrder, clearOrder, err := o.Plan(cfg)
	if err != nil {
		return nil, o.fail(err)
	}
	if len(seedOrder) == 0 {
		o.state = stateDone
		return Summary{}, nil
	}

	o.printf(color.CyanString, "🌱 Seeding %d areas: %s", len(seedOrder), joinIDs(seedOrder))

	ids := NewTracker()
	sctx := NewContext(ctx, o.db, cfg, ids, o.log)

	if cfg.ClearBeforeSeed {
		o.state = stateClearing
		if err := o.clearAll(sctx, clearOrder); err != nil {
			return nil, o.fail(err)
		}
	}

	o.state = stateSeeding
	for i, area := range seedOrder {
		o.printf(color.CyanString, "  📝 Seeding %s...", area.Name)
		areaCtx := *sctx
		areaCtx.Log = sctx.Log.With().Str("area", area.ID).Logger()

		if err := area.Seed(&areaCtx); err != nil {
			rerr := &RuntimeSeedError{AreaID: area.ID, Op: "seed", Completed: i, Err: err}
			o.printf(color.RedString, "❌ %v", rerr)
			return nil, o.fail(rerr)
		}
	}

	o.state = stateSummarizing
	summary := o.summarize(ids)

	o.state = stateDone
	o.printf(color.GreenString, "✅ Seeding completed: %d models populated", len(summary))
	return summary, nil
}

// Clear runs only the teardown pass for cfg's selection, in reverse
// dependency order, skipping areas with no clear function.
func (o *Orchestrator) Clear(ctx context.Context, cfg SeedConfig) error {
	o.state = stateConfiguring
	cfg = o.withDefaults(cfg)

	o.state = stateResolving
	_, clearOrder, err := o.Plan(cfg)
	if err != nil {
		return o.fail(err)
	}

	o.state = stateClearing
	sctx := NewContext(ctx, o.db, cfg, NewTracker(), o.log)
	if err := o.clearAll(sctx, clearOrder); err != nil {
		return o.fail(err)
	}

	o.state = stateDone
	o.printf(color.GreenString, "✅ Clearing completed")
	return nil
}

func (o *Orchestrator) clearAll(sctx *Context, clearOrder []Area) error {
	completed := 0
	for _, area := range clearOrder {
		if area.Clear == nil {
			continue
		}
		o.printf(color.YellowString, "  🗑️  Clearing %s...", area.Name)
		areaCtx := *sctx
		areaCtx.Log = sctx.Log.With().Str("area", area.ID).Logger()

		if err := area.Clear(&areaCtx); err != nil {
			rerr := &RuntimeSeedError{AreaID: area.ID, Op: "clear", Completed: completed, Err: err}
			o.printf(color.RedString, "❌ %v", rerr)
			return rerr
		}
		completed++
	}
	return nil
}

func (o *Orchestrator) withDefaults(cfg SeedConfig) SeedConfig {
	if cfg.Counts == nil {
		cfg.Counts = map[string]int{}
	}
	if cfg.Mode == "" {
		cfg.Mode = "standard"
	}
	if cfg.MaxPhase < 0 {
		// Negative means "no phase limit": take everything.
		for _, area := range o.reg.All() {
			if area.Phase > cfg.MaxPhase {
				cfg.MaxPhase = area.Phase
			}
		}
	}
	return cfg
}

func (o *Orchestrator) summarize(ids *Tracker) Summary {
	summary := Summary{}
	models := ids.Models()
	sort.Strings(models)
	for _, model := range models {
		summary[model] = ids.Count(model)
	}
	return summary
}

func (o *Orchestrator) fail(err error) error {
	o.log.Error().Str("state", o.state.String()).Err(err).Msg("run aborted")
	o.state = stateFailed
	return err
}

func (o *Orchestrator) printf(paint func(string, ...interface{}) string, format string, args ...interface{}) {
	if o.quiet {
		return
	}
	fmt.Println(paint(format, args...))
}

func joinIDs(areas []Area) string {
	s := ""
	for i, area := range areas {
		if i > 0 {
			s += " → "
		}
		s += area.ID
	}
	return s
}
