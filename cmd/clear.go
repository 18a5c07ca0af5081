package cmd

import (
	"github.com/spf13/cobra"

	"github.com/AdansBatista/orca-sub010/internal/areas"
	"github.com/AdansBatista/orca-sub010/internal/config"
	"github.com/AdansBatista/orca-sub010/internal/database"
	"github.com/AdansBatista/orca-sub010/internal/seeder"
)

var (
	clearAreas    []string
	clearMaxPhase int
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove seeded records",
	Long: `Clear seeded rows in reverse dependency order, so no delete ever
leaves a dangling reference behind. The selection flags mirror seed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		runCfg, err := cfg.BuildSeedConfig(config.SeedOverrides{
			Areas:    clearAreas,
			MaxPhase: clearMaxPhase,
		})
		if err != nil {
			return err
		}

		reg, err := areas.NewRegistry(cfg.Database.Provider)
		if err != nil {
			return err
		}

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}
		db, err := database.Open(cmd.Context(), cfg.Database.Provider, dbURL)
		if err != nil {
			return err
		}
		defer db.Close()

		orch := seeder.NewOrchestrator(reg, db, newLogger())
		return orch.Clear(cmd.Context(), runCfg)
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().StringSliceVar(&clearAreas, "areas", nil, "Clear only these areas (plus their dependencies)")
	clearCmd.Flags().IntVar(&clearMaxPhase, "max-phase", -1, "Clear only areas up to this phase")
}
