// Package config defines the configuration structure for the audiobook scanner.
//
// Configuration is organized into logical sections (Server, Scanner, Database,
// Authentication). Defaults come from `default` struct tags applied with
// github.com/creasty/defaults; Load overlays the values held by a viper
// instance (flags, environment and config file).
//
// # Configuration Structure
//
//	Configuration
//	├── Server         - HTTP server settings
//	├── Scanner        - Scheduler pool and scan behavior
//	├── Database       - DuckDB location
//	├── Auth           - Authentication settings
//	├── LogFormat      - Logging format
//	└── LogLevel       - Logging verbosity
//
// # Server Configuration
//
//	┌──────────────────┬─────────┬────────────────────────────────────────┐
//	│ Field            │ Default │ Description                            │
//	├──────────────────┼─────────┼────────────────────────────────────────┤
//	│ ServerMode       │ "dev"   │ Server mode: "prod" or "dev"           │
//	│ HTTPPort         │ 8000    │ HTTP server listen port                │
//	└──────────────────┴─────────┴────────────────────────────────────────┘
//
// # Scanner Configuration
//
//	┌──────────────────┬────────────┬─────────────────────────────────────────┐
//	│ Field            │ Default    │ Description                             │
//	├──────────────────┼────────────┼─────────────────────────────────────────┤
//	│ Preset           │ "io-heavy" │ default|io-heavy|cpu-heavy|conservative │
//	│ Workers          │ 0          │ Worker count override (0 keeps preset)  │
//	│ MaxQueueSize     │ 0          │ Queue size override (0 keeps preset)    │
//	│ WorkerTimeout    │ 0          │ Idle wait override (0 keeps preset)     │
//	│ Ordering         │ "batch"    │ "batch" or "global" priority ordering   │
//	│ BatchSize        │ 100        │ Tasks submitted per batch               │
//	│ SubmitTimeout    │ 5m         │ Give up when the queue stays full       │
//	│ ProgressEvery    │ 0          │ Progress interval override              │
//	│ PruneStale       │ true       │ Delete audiobooks missing from disk     │
//	│ AdaptiveScaling  │ false      │ Accepted, currently has no effect       │
//	└──────────────────┴────────────┴─────────────────────────────────────────┘
//
// # Authentication Configuration
//
//	┌────────────────┬─────────┬──────────────────────────────────────────┐
//	│ Field          │ Default │ Description                              │
//	├────────────────┼─────────┼──────────────────────────────────────────┤
//	│ Enabled        │ false   │ Require a bearer JWT on API requests     │
//	│ SecretFilePath │ ""      │ File holding the HS256 signing secret    │
//	└────────────────┴─────────┴──────────────────────────────────────────┘
//
// # Usage Example
//
//	v := viper.New()
//	v.Set("scanner.workers", 8)
//	cfg, err := config.Load(v)
//	if err != nil {
//	    return err
//	}
//	poolCfg, err := cfg.Scanner.PoolConfig()
//
// # Code Generation
//
// The functional option helpers are generated with optgen:
//
//	//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Server Scanner Database Authentication
//
// Generated helpers include NewConfigurationWithOptionsAndDefaults, one
// With* option per field and a DebugMap driven by the debugmap struct tags:
//
//	cfg := config.NewConfigurationWithOptionsAndDefaults(
//	    config.WithServer(config.Server{ServerMode: "prod", HTTPPort: 8080}),
//	)
//	zap.S().Infow("configuration loaded", "config", cfg.DebugMap())
package config
