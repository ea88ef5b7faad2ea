package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/tupyy/audiobook-scanner/pkg/scheduler"
)

//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Server Scanner Database Authentication

type Configuration struct {
	Server    Server         `mapstructure:"server" debugmap:"visible"`
	Scanner   Scanner        `mapstructure:"scanner" debugmap:"visible"`
	Database  Database       `mapstructure:"database" debugmap:"visible"`
	Auth      Authentication `mapstructure:"auth" debugmap:"visible"`
	LogFormat string         `mapstructure:"log-format" debugmap:"visible" default:"console"`
	LogLevel  string         `mapstructure:"log-level" debugmap:"visible" default:"debug"`
}

type Server struct {
	ServerMode string `mapstructure:"mode" debugmap:"visible" default:"dev"`
	HTTPPort   int    `mapstructure:"http-port" debugmap:"visible" default:"8000"`
}

type Scanner struct {
	Preset          string        `mapstructure:"preset" debugmap:"visible" default:"io-heavy"`
	Workers         int           `mapstructure:"workers" debugmap:"visible"`
	MaxQueueSize    int           `mapstructure:"max-queue-size" debugmap:"visible"`
	WorkerTimeout   time.Duration `mapstructure:"worker-timeout" debugmap:"visible"`
	Ordering        string        `mapstructure:"ordering" debugmap:"visible" default:"batch"`
	BatchSize       int           `mapstructure:"batch-size" debugmap:"visible" default:"100"`
	SubmitTimeout   time.Duration `mapstructure:"submit-timeout" debugmap:"visible" default:"5m"`
	ProgressEvery   time.Duration `mapstructure:"progress-interval" debugmap:"visible"`
	PruneStale      bool          `mapstructure:"prune-stale" debugmap:"visible" default:"true"`
	AdaptiveScaling bool          `mapstructure:"adaptive-scaling" debugmap:"visible"`
}

type Database struct {
	Path string `mapstructure:"path" debugmap:"visible" default:":memory:"`
}

// Authentication holds the JWT settings. Only the secret file path is
// logged, never the secret itself.
type Authentication struct {
	Enabled        bool   `mapstructure:"enabled" debugmap:"visible"`
	SecretFilePath string `mapstructure:"secret-file" debugmap:"visible"`
}

// NewConfiguration returns a configuration with every default applied.
func NewConfiguration() *Configuration {
	return NewConfigurationWithOptionsAndDefaults()
}

// Load reads the configuration from v on top of the defaults. Keys use the
// "section.field" form, e.g. "scanner.workers".
func Load(v *viper.Viper) (*Configuration, error) {
	cfg := NewConfiguration()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Configuration) Validate() error {
	switch c.Server.ServerMode {
	case "dev", "prod":
	default:
		return fmt.Errorf("invalid server mode %q", c.Server.ServerMode)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.LogFormat)
	}
	if c.Auth.Enabled && c.Auth.SecretFilePath == "" {
		return fmt.Errorf("auth is enabled but no secret file is set")
	}
	if c.Scanner.BatchSize < 1 {
		return fmt.Errorf("batch size must be at least 1, got %d", c.Scanner.BatchSize)
	}
	_, err := c.Scanner.PoolConfig()
	return err
}

// PoolConfig resolves the scanner preset and applies the explicit overrides.
func (s Scanner) PoolConfig() (scheduler.PoolConfig, error) {
	cfg, err := scheduler.PresetConfig(s.Preset)
	if err != nil {
		return scheduler.PoolConfig{}, err
	}

	if s.Workers > 0 {
		cfg.WorkerCount = s.Workers
	}
	if s.MaxQueueSize > 0 {
		cfg.MaxQueueSize = s.MaxQueueSize
	}
	if s.WorkerTimeout > 0 {
		cfg.WorkerTimeout = s.WorkerTimeout
	}
	if s.ProgressEvery > 0 {
		cfg.MonitoringInterval = s.ProgressEvery
	}
	if s.AdaptiveScaling {
		cfg.AdaptiveScaling = true
		cfg.MinThreads = 1
		cfg.MaxThreads = cfg.WorkerCount
	}

	ordering, err := scheduler.ParseOrdering(strings.ToLower(s.Ordering))
	if err != nil {
		return scheduler.PoolConfig{}, err
	}
	cfg.Ordering = ordering

	return cfg, cfg.Validate()
}
