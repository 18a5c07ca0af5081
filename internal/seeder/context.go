package seeder

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"
)

// DB is the slice of *sql.DB the areas are allowed to touch. Areas
// write through it and nothing else.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Context is the bundle threaded into every area callable: the database
// handle, the merged run configuration, the id tracker, the clinic the
// area is currently seeding for, and a logger tagged accordingly.
//
// A Context is immutable by convention. Deriving a per-clinic variant
// goes through WithClinic, which copies; two areas holding contexts can
// never interfere through them.
type Context struct {
	context.Context

	DB       DB
	Config   SeedConfig
	IDs      *Tracker
	ClinicID string
	Log      zerolog.Logger
}

// NewContext builds the base context for one run. ClinicID starts
// empty; areas that iterate clinics derive scoped copies as they go.
func NewContext(ctx context.Context, db DB, cfg SeedConfig, ids *Tracker, log zerolog.Logger) *Context {
	return &Context{
		Context: ctx,
		DB:      db,
		Config:  cfg,
		IDs:     ids,
		Log:     log,
	}
}

// WithClinic returns a copy of the context scoped to clinicID. The
// receiver is left untouched.
func (c *Context) WithClinic(clinicID string) *Context {
	scoped := *c
	scoped.ClinicID = clinicID
	scoped.Log = c.Log.With().Str("clinic_id", clinicID).Logger()
	return &scoped
}
