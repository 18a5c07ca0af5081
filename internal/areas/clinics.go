package areas

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AdansBatista/orca-sub010/internal/seeder"
)

func (s *set) seedClinics(ctx *seeder.Context) error {
	count := ctx.Config.Count(ModelClinic, 1)

	for i := 0; i < count; i++ {
		id := uuid.NewString()

		query, args, err := s.stmt.
			Insert("clinics").
			Columns("id", "name", "phone", "address", "created_at").
			Values(id, s.fake.ClinicName(), s.fake.Phone(), s.fake.Address(), time.Now()).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := ctx.DB.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to insert clinic: %w", err)
		}

		ctx.IDs.Add(ModelClinic, id)
	}

	ctx.Log.Info().Int("count", count).Msg("clinics seeded")
	return nil
}
