package config

import (
	"fmt"

	"github.com/AdansBatista/orca-sub010/internal/seeder"
)

// Built-in record-volume profiles. A config file profile with the same
// name replaces the built-in one wholesale.
var builtinProfiles = map[string]Profile{
	"minimal": {
		Counts: map[string]int{
			"Clinic":      1,
			"User":        3,
			"Patient":     5,
			"Appointment": 10,
			"Invoice":     5,
		},
	},
	"standard": {
		Counts: map[string]int{
			"Clinic":      3,
			"User":        12,
			"Patient":     50,
			"Appointment": 200,
			"Invoice":     120,
		},
	},
	"full": {
		Counts: map[string]int{
			"Clinic":      10,
			"User":        60,
			"Patient":     500,
			"Appointment": 3000,
			"Invoice":     1800,
		},
	},
}

// ProfileNames returns the names of every available profile, built-in
// and file-defined.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(builtinProfiles)+len(c.Seed.Profiles))
	for name := range builtinProfiles {
		names = append(names, name)
	}
	for name := range c.Seed.Profiles {
		if _, builtin := builtinProfiles[name]; !builtin {
			names = append(names, name)
		}
	}
	return names
}

func (c *Config) lookupProfile(name string) (Profile, error) {
	if p, ok := c.Seed.Profiles[name]; ok {
		return p, nil
	}
	if p, ok := builtinProfiles[name]; ok {
		return p, nil
	}
	return Profile{}, fmt.Errorf("unknown seed profile: %s", name)
}

// SeedOverrides carries the command-line overrides for one run. Zero
// values mean "not set".
type SeedOverrides struct {
	Profile  string
	Counts   map[string]int
	Areas    []string
	MaxPhase int
	Clear    bool
}

// BuildSeedConfig merges defaults, the selected profile, and the
// caller's overrides into the immutable per-run configuration, with
// later sources winning. Counts merge per model, so a single
// --count User=5 override keeps the profile's other volumes.
func (c *Config) BuildSeedConfig(o SeedOverrides) (seeder.SeedConfig, error) {
	name := o.Profile
	if name == "" {
		name = c.Seed.DefaultProfile
	}
	profile, err := c.lookupProfile(name)
	if err != nil {
		return seeder.SeedConfig{}, err
	}

	counts := make(map[string]int, len(profile.Counts))
	for model, n := range profile.Counts {
		counts[model] = n
	}
	for model, n := range o.Counts {
		counts[model] = n
	}

	cfg := seeder.SeedConfig{
		Counts:          counts,
		Mode:            name,
		ClearBeforeSeed: c.Seed.ClearBeforeSeed || o.Clear,
		MaxPhase:        o.MaxPhase,
	}
	if len(o.Areas) > 0 {
		cfg.Areas = append([]string{}, o.Areas...)
	}
	return cfg, nil
}
