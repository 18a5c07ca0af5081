package areas

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AdansBatista/orca-sub010/internal/seeder"
)

// seedPatients spreads the configured patient volume across the seeded
// clinics. Every patient gets a primary practitioner from its own
// clinic, which is why this area depends on users.
func (s *set) seedPatients(ctx *seeder.Context) error {
	clinics := ctx.IDs.All(ModelClinic)
	if len(clinics) == 0 {
		return &seeder.EmptySetError{Model: ModelClinic}
	}

	count := ctx.Config.Count(ModelPatient, len(clinics))
	perClinic := count / len(clinics)
	if perClinic == 0 {
		perClinic = 1
	}

	for _, clinicID := range clinics {
		scoped := ctx.WithClinic(clinicID)
		for i := 0; i < perClinic; i++ {
			if err := s.insertPatient(scoped); err != nil {
				return err
			}
		}
	}

	ctx.Log.Info().Int("clinics", len(clinics)).Int("per_clinic", perClinic).Msg("patients seeded")
	return nil
}

func (s *set) insertPatient(ctx *seeder.Context) error {
	practitionerID, err := ctx.IDs.RandomByClinic(ModelUser, ctx.ClinicID)
	if err != nil {
		return err
	}

	id := uuid.NewString()

	query, args, err := s.stmt.
		Insert("patients").
		Columns("id", "clinic_id", "primary_user_id", "name", "birth_date", "phone", "created_at").
		Values(id, ctx.ClinicID, practitionerID, s.fake.Name(), s.fake.BirthDate(), s.fake.Phone(), time.Now()).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := ctx.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert patient: %w", err)
	}

	ctx.IDs.AddForClinic(ModelPatient, id, ctx.ClinicID)
	return nil
}
