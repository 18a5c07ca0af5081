package areas

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/AdansBatista/orca-sub010/internal/seeder"
)

// seedAppointments books appointments between a patient and a
// practitioner of the same clinic. Both are drawn from the tracker;
// cross-clinic bookings cannot happen because the draws are
// clinic-scoped.
func (s *set) seedAppointments(ctx *seeder.Context) error {
	clinics := ctx.IDs.All(ModelClinic)
	if len(clinics) == 0 {
		return &seeder.EmptySetError{Model: ModelClinic}
	}

	count := ctx.Config.Count(ModelAppointment, len(clinics))

	for i := 0; i < count; i++ {
		clinicID := clinics[rand.Intn(len(clinics))]
		scoped := ctx.WithClinic(clinicID)

		patientID, err := scoped.IDs.RandomByClinic(ModelPatient, clinicID)
		if err != nil {
			return err
		}
		userID, err := scoped.IDs.RandomByClinic(ModelUser, clinicID)
		if err != nil {
			return err
		}

		id := uuid.NewString()

		query, args, err := s.stmt.
			Insert("appointments").
			Columns("id", "clinic_id", "patient_id", "user_id", "scheduled_at", "reason", "status").
			Values(id, clinicID, patientID, userID, s.fake.FutureTime(), s.fake.VisitReason(), s.fake.AppointmentStatus()).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := scoped.DB.ExecContext(scoped, query, args...); err != nil {
			return fmt.Errorf("failed to insert appointment: %w", err)
		}

		scoped.IDs.AddForClinic(ModelAppointment, id, clinicID)
	}

	ctx.Log.Info().Int("count", count).Msg("appointments seeded")
	return nil
}
