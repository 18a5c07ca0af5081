// Package areas holds the bundled ORCA seed catalog: the areas, their
// phases and dependencies, and the synthetic data they write. The
// seeding core knows nothing about these; it only runs them in a safe
// order.
package areas

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/AdansBatista/orca-sub010/internal/database"
	"github.com/AdansBatista/orca-sub010/internal/seeder"
)

// Model names used as tracker keys and summary rows.
const (
	ModelClinic      = "Clinic"
	ModelUser        = "User"
	ModelPatient     = "Patient"
	ModelAppointment = "Appointment"
	ModelInvoice     = "Invoice"
)

// set carries what every area seed shares: the value generator and a
// statement builder with the provider's placeholder format.
type set struct {
	fake *Faker
	stmt sq.StatementBuilderType
}

// NewRegistry builds the validated ORCA area catalog for the given
// database provider. Phases: 0 core tenancy, 1 staff, 2 patient
// records, 3 activity.
func NewRegistry(provider string) (*seeder.Registry, error) {
	s := &set{
		fake: NewFaker(),
		stmt: sq.StatementBuilder.PlaceholderFormat(database.Placeholder(provider)),
	}

	return seeder.NewRegistry(
		seeder.Area{
			ID:    "clinics",
			Name:  "Clinics",
			Phase: 0,
			Seed:  s.seedClinics,
			Clear: s.clearTable("clinics"),
		},
		seeder.Area{
			ID:           "users",
			Name:         "Users",
			Phase:        1,
			Dependencies: []string{"clinics"},
			Seed:         s.seedUsers,
			Clear:        s.clearTable("users"),
		},
		seeder.Area{
			ID:           "patients",
			Name:         "Patients",
			Phase:        2,
			Dependencies: []string{"clinics", "users"},
			Seed:         s.seedPatients,
			Clear:        s.clearTable("patients"),
		},
		seeder.Area{
			ID:           "appointments",
			Name:         "Appointments",
			Phase:        3,
			Dependencies: []string{"patients", "users"},
			Seed:         s.seedAppointments,
			Clear:        s.clearTable("appointments"),
		},
		seeder.Area{
			ID:           "invoices",
			Name:         "Invoices",
			Phase:        3,
			Dependencies: []string{"appointments"},
			Seed:         s.seedInvoices,
			Clear:        s.clearTable("invoices"),
		},
	)
}

// clearTable builds a ClearFunc deleting every row the area owns. Rows
// are removed in the orchestrator's reverse order, so dependents are
// already gone when this runs.
func (s *set) clearTable(table string) seeder.ClearFunc {
	return func(ctx *seeder.Context) error {
		query, args, err := s.stmt.Delete(table).ToSql()
		if err != nil {
			return err
		}
		if _, err := ctx.DB.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
		ctx.Log.Debug().Str("table", table).Msg("table cleared")
		return nil
	}
}
