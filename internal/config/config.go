package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/AdansBatista/orca-sub010/internal/database"
)

type Config struct {
	Version  string   `json:"version" mapstructure:"version"`
	Database Database `json:"database" mapstructure:"database"`
	Seed     Seed     `json:"seed" mapstructure:"seed"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

// Seed holds the file-level seeding defaults. Per-run values are
// produced by merging these with a profile and command-line overrides;
// see BuildSeedConfig.
type Seed struct {
	DefaultProfile  string             `json:"default_profile" mapstructure:"default_profile"`
	ClearBeforeSeed bool               `json:"clear_before_seed" mapstructure:"clear_before_seed"`
	Profiles        map[string]Profile `json:"profiles,omitempty" mapstructure:"profiles"`
}

// Profile is a named record-volume preset.
type Profile struct {
	Counts map[string]int `json:"counts" mapstructure:"counts"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Defaults
	if cfg.Version == "" {
		cfg.Version = "1"
	}
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = "postgresql"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}
	if cfg.Seed.DefaultProfile == "" {
		cfg.Seed.DefaultProfile = "standard"
	}

	return &cfg, nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c *Config) Validate() error {
	supported := false
	for _, provider := range database.SupportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v",
			c.Database.Provider, database.SupportedProviders)
	}

	for name := range c.Seed.Profiles {
		if name == "" {
			return fmt.Errorf("seed profile with empty name")
		}
	}

	return nil
}
