package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	cfg := &Config{Database: Database{Provider: "postgresql", URLEnv: "DATABASE_URL"}}
	require.NoError(t, cfg.Validate())

	cfg.Database.Provider = "oracle"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database provider")
}

func TestBuildSeedConfigUsesDefaultProfile(t *testing.T) {
	cfg := &Config{Seed: Seed{DefaultProfile: "minimal"}}

	runCfg, err := cfg.BuildSeedConfig(SeedOverrides{MaxPhase: -1})
	require.NoError(t, err)

	assert.Equal(t, "minimal", runCfg.Mode)
	assert.Equal(t, 1, runCfg.Counts["Clinic"])
	assert.Equal(t, 5, runCfg.Counts["Patient"])
	assert.False(t, runCfg.ClearBeforeSeed)
	assert.Nil(t, runCfg.Areas)
}

func TestBuildSeedConfigUnknownProfile(t *testing.T) {
	cfg := &Config{Seed: Seed{DefaultProfile: "standard"}}

	_, err := cfg.BuildSeedConfig(SeedOverrides{Profile: "gigantic"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown seed profile: gigantic")
}

func TestBuildSeedConfigMergePrecedence(t *testing.T) {
	// File profile replaces the built-in of the same name; flag counts
	// override per model without dropping the rest.
	cfg := &Config{
		Seed: Seed{
			DefaultProfile: "standard",
			Profiles: map[string]Profile{
				"standard": {Counts: map[string]int{"Clinic": 7, "Patient": 70}},
			},
		},
	}

	runCfg, err := cfg.BuildSeedConfig(SeedOverrides{
		Counts:   map[string]int{"Patient": 9},
		Clear:    true,
		MaxPhase: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, 7, runCfg.Counts["Clinic"], "file profile wins over built-in")
	assert.Equal(t, 9, runCfg.Counts["Patient"], "flag override wins over profile")
	assert.True(t, runCfg.ClearBeforeSeed)
	assert.Equal(t, 2, runCfg.MaxPhase)
}

func TestBuildSeedConfigCopiesAreas(t *testing.T) {
	cfg := &Config{Seed: Seed{DefaultProfile: "minimal"}}

	requested := []string{"users"}
	runCfg, err := cfg.BuildSeedConfig(SeedOverrides{Areas: requested})
	require.NoError(t, err)

	requested[0] = "mutated"
	assert.Equal(t, []string{"users"}, runCfg.Areas, "the run config must not alias caller slices")
}

func TestProfileNames(t *testing.T) {
	cfg := &Config{
		Seed: Seed{Profiles: map[string]Profile{
			"demo":     {Counts: map[string]int{"Clinic": 2}},
			"standard": {Counts: map[string]int{"Clinic": 5}},
		}},
	}

	assert.ElementsMatch(t, []string{"minimal", "standard", "full", "demo"}, cfg.ProfileNames())
}
