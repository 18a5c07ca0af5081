package areas

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/AdansBatista/orca-sub010/internal/seeder"
)

// seedInvoices bills a random subset of the seeded appointments. The
// fee amount is stored in cents.
func (s *set) seedInvoices(ctx *seeder.Context) error {
	count := ctx.Config.Count(ModelInvoice, 0)

	for i := 0; i < count; i++ {
		appointmentID, err := ctx.IDs.Random(ModelAppointment)
		if err != nil {
			return err
		}

		id := uuid.NewString()

		query, args, err := s.stmt.
			Insert("invoices").
			Columns("id", "appointment_id", "amount_cents", "status", "issued_at").
			Values(id, appointmentID, s.fake.Fee(), s.fake.InvoiceStatus(), s.fake.PastTime()).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := ctx.DB.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to insert invoice: %w", err)
		}

		ctx.IDs.Add(ModelInvoice, id)
	}

	ctx.Log.Info().Int("count", count).Msg("invoices seeded")
	return nil
}
