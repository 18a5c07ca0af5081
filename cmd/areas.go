package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/AdansBatista/orca-sub010/internal/areas"
	"github.com/AdansBatista/orca-sub010/internal/seeder"
)

var areasCmd = &cobra.Command{
	Use:   "areas",
	Short: "List registered seed areas and their resolved order",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		reg, err := areas.NewRegistry(cfg.Database.Provider)
		if err != nil {
			return err
		}

		color.Cyan("📦 Registered areas:")
		for _, area := range reg.All() {
			deps := "-"
			if len(area.Dependencies) > 0 {
				deps = strings.Join(area.Dependencies, ", ")
			}
			clearable := " "
			if area.Clear != nil {
				clearable = "✓"
			}
			fmt.Printf("  %-14s phase %d  clear %s  deps: %s\n", area.ID, area.Phase, clearable, deps)
		}

		order, err := seeder.NewResolver(reg).SeedOrder(reg.All())
		if err != nil {
			return err
		}
		ids := make([]string, len(order))
		for i, area := range order {
			ids[i] = area.ID
		}
		fmt.Println()
		color.Cyan("📋 Seed order: %s", strings.Join(ids, " → "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(areasCmd)
}
