package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/preston-bernstein/fm-stats/internal/domain/matches"
)

// Config holds runtime configuration for the fmstats tool.
type Config struct {
	Data    DataConfig
	Log     LogConfig
	Metrics MetricsConfig
}

// DataConfig locates the season exports on disk.
type DataConfig struct {
	Dir          string   `env:"FMSTATS_DATA_DIR"`
	TeamsFile    string   `env:"FMSTATS_TEAMS_FILE"`
	Competitions []string `env:"FMSTATS_COMPETITIONS" envSeparator:","`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL"`
	Format string `env:"LOG_FORMAT"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	c.Data.Dir = orDefault(c.Data.Dir, defaultDataDir)
	c.Data.TeamsFile = orDefault(c.Data.TeamsFile, defaultTeamsFile)
	c.Data.Competitions = cleanList(c.Data.Competitions)
	if len(c.Data.Competitions) == 0 {
		c.Data.Competitions = matches.DefaultCompetitions()
	}
	c.Log.Level = orDefault(c.Log.Level, defaultLogLevel)
	c.Log.Format = orDefault(c.Log.Format, defaultLogFormat)
	c.Metrics.ServiceName = orDefault(c.Metrics.ServiceName, defaultServiceName)
}

func orDefault(val, defaultValue string) string {
	if v := strings.TrimSpace(val); v != "" {
		return v
	}
	return defaultValue
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if v := strings.TrimSpace(item); v != "" {
			out = append(out, v)
		}
	}
	return out
}
