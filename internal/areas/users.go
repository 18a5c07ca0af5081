package areas

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AdansBatista/orca-sub010/internal/seeder"
)

// seedUsers spreads the configured user volume across the seeded
// clinics. The first user of every clinic is an admin so each tenant
// always has at least one account that can log in.
func (s *set) seedUsers(ctx *seeder.Context) error {
	clinics := ctx.IDs.All(ModelClinic)
	if len(clinics) == 0 {
		return &seeder.EmptySetError{Model: ModelClinic}
	}

	count := ctx.Config.Count(ModelUser, len(clinics))
	perClinic := count / len(clinics)
	if perClinic == 0 {
		perClinic = 1
	}

	for _, clinicID := range clinics {
		scoped := ctx.WithClinic(clinicID)
		for i := 0; i < perClinic; i++ {
			role := s.fake.Role()
			if i == 0 {
				role = "admin"
			}
			if err := s.insertUser(scoped, role); err != nil {
				return err
			}
		}
	}

	ctx.Log.Info().Int("clinics", len(clinics)).Int("per_clinic", perClinic).Msg("users seeded")
	return nil
}

func (s *set) insertUser(ctx *seeder.Context, role string) error {
	id := uuid.NewString()

	query, args, err := s.stmt.
		Insert("users").
		Columns("id", "clinic_id", "name", "email", "role", "created_at").
		Values(id, ctx.ClinicID, s.fake.Name(), s.fake.Email(), role, time.Now()).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := ctx.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	ctx.IDs.AddForClinic(ModelUser, id, ctx.ClinicID)
	return nil
}
