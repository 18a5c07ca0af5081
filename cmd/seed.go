package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/AdansBatista/orca-sub010/internal/areas"
	"github.com/AdansBatista/orca-sub010/internal/config"
	"github.com/AdansBatista/orca-sub010/internal/database"
	"github.com/AdansBatista/orca-sub010/internal/seeder"
)

var (
	seedProfile    string
	seedAreas      []string
	seedMaxPhase   int
	seedClear      bool
	seedCounts     map[string]int
	seedSummaryOut string
	seedDryRun     bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with synthetic records",
	Long: `Seed the database with interdependent synthetic records in
dependency-safe order. Select volume with --profile, narrow the run with
--areas (dependencies are pulled in automatically) or --max-phase, and
pass --clear to tear down existing rows first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		runCfg, err := cfg.BuildSeedConfig(config.SeedOverrides{
			Profile:  seedProfile,
			Counts:   seedCounts,
			Areas:    seedAreas,
			MaxPhase: seedMaxPhase,
			Clear:    seedClear,
		})
		if err != nil {
			return err
		}

		reg, err := areas.NewRegistry(cfg.Database.Provider)
		if err != nil {
			return err
		}

		if seedDryRun {
			return printPlan(reg, runCfg)
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
		summary, err := orch.Run(cmd.Context(), runCfg)
		if err != nil {
			return err
		}

		printSummary(summary)

		if seedSummaryOut != "" {
			if err := writeSummary(summary, seedSummaryOut); err != nil {
				return err
			}
			color.Cyan("📄 Summary written to %s", seedSummaryOut)
		}
		return nil
	},
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func printPlan(reg *seeder.Registry, runCfg seeder.SeedConfig) error {
	orch := seeder.NewOrchestrator(reg, nil, newLogger()).Quiet()
	seedOrder, clearOrder, err := orch.Plan(runCfg)
	if err != nil {
		return err
	}

	color.Cyan("📋 Seed order:")
	for i, area := range seedOrder {
		fmt.Printf("  %2d. %s (phase %d)\n", i+1, area.ID, area.Phase)
	}
	if runCfg.ClearBeforeSeed {
		color.Yellow("🗑️  Clear order:")
		for i, area := range clearOrder {
			fmt.Printf("  %2d. %s\n", i+1, area.ID)
		}
	}
	return nil
}

func printSummary(summary seeder.Summary) {
	models := make([]string, 0, len(summary))
	for model := range summary {
		models = append(models, model)
	}
	sort.Strings(models)

	fmt.Println()
	color.Green("📊 Records created:")
	for _, model := range models {
		fmt.Printf("  %-14s %d\n", model, summary[model])
	}
}

func writeSummary(summary seeder.Summary, path string) error {
	data, err := yaml.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().StringVar(&seedProfile, "profile", "", "Volume profile (minimal, standard, full)")
	seedCmd.Flags().StringSliceVar(&seedAreas, "areas", nil, "Seed only these areas (plus their dependencies)")
	seedCmd.Flags().IntVar(&seedMaxPhase, "max-phase", -1, "Seed only areas up to this phase")
	seedCmd.Flags().BoolVar(&seedClear, "clear", false, "Clear seeded rows before seeding")
	seedCmd.Flags().StringToIntVar(&seedCounts, "count", nil, "Per-model count overrides (e.g. --count Patient=20)")
	seedCmd.Flags().StringVar(&seedSummaryOut, "summary-out", "", "Write the run summary to this YAML file")
	seedCmd.Flags().BoolVar(&seedDryRun, "dry-run", false, "Print the resolved order without writing anything")
}
