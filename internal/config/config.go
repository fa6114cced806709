// Package config loads runtime configuration for concord from the config
// file, CONCORD_* env vars, and CLI flags, in ascending precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/lunastra/concord/internal/aspect"
	"github.com/lunastra/concord/internal/fusion"
	"github.com/lunastra/concord/internal/guna"
	"github.com/lunastra/concord/internal/report"
)

// WeightsConfig holds the fusion branch weights. The three values must sum
// to 1; the fusion scorer enforces that.
type WeightsConfig struct {
	Synastry  float64 `mapstructure:"synastry"`
	Overlay   float64 `mapstructure:"overlay"`
	Composite float64 `mapstructure:"composite"`
}

// Config holds all runtime configuration for a concord invocation.
// Values are populated from .concord.yaml, CONCORD_* env vars, and CLI flags.
type Config struct {
	DBPath        string             `mapstructure:"db_path"`
	TelemetryPath string             `mapstructure:"telemetry_path"`
	Weights       WeightsConfig      `mapstructure:"weights"`
	Orbs          map[string]float64 `mapstructure:"orbs"`
	TaraTable     []float64          `mapstructure:"tara_table"`
	BhakootTable  []float64          `mapstructure:"bhakoot_table"`
	Verbose       bool               `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("db_path", defaultDBPath())
	viper.SetDefault("telemetry_path", "")
	viper.SetDefault("weights.synastry", 0.4)
	viper.SetDefault("weights.overlay", 0.3)
	viper.SetDefault("weights.composite", 0.3)
	defOrbs := aspect.DefaultOrbs()
	for _, tp := range aspect.Types {
		viper.SetDefault("orbs."+string(tp), defOrbs[tp])
	}
	viper.SetDefault("tara_table", guna.DefaultTaraTable())
	viper.SetDefault("bhakoot_table", guna.DefaultBhakootTable())
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

// defaultDBPath places the chart catalog under the user home directory,
// falling back to the working directory when home cannot be resolved.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".concord.db"
	}
	return filepath.Join(home, ".concord", "charts.db")
}

// ReportOptions translates the flat config into the per-branch options the
// report runner consumes. Unknown orb keys are ignored; missing ones keep
// their defaults.
func (c Config) ReportOptions() report.Options {
	opts := report.DefaultOptions()

	orbs := aspect.DefaultOrbs()
	for _, tp := range aspect.Types {
		if v, ok := c.Orbs[string(tp)]; ok {
			orbs[tp] = v
		}
	}
	opts.Synastry.Orbs = orbs
	opts.Composite.Orbs = orbs

	if len(c.TaraTable) > 0 {
		opts.Guna.TaraTable = c.TaraTable
	}
	if len(c.BhakootTable) > 0 {
		opts.Guna.BhakootTable = c.BhakootTable
	}

	opts.Fusion.Weights = fusion.Weights{
		Synastry:  c.Weights.Synastry,
		Overlay:   c.Weights.Overlay,
		Composite: c.Weights.Composite,
	}
	return opts
}
