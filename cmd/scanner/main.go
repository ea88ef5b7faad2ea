package main

import (
	"fmt"
	"os"

	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tupyy/audiobook-scanner/internal/config"
)

const envPrefix = "SCANNER"

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"log-format":        "log-format",
	"log-level":         "log-level",
	"db-path":           "database.path",
	"preset":            "scanner.preset",
	"workers":           "scanner.workers",
	"max-queue-size":    "scanner.max-queue-size",
	"worker-timeout":    "scanner.worker-timeout",
	"ordering":          "scanner.ordering",
	"batch-size":        "scanner.batch-size",
	"submit-timeout":    "scanner.submit-timeout",
	"progress-interval": "scanner.progress-interval",
	"prune-stale":       "scanner.prune-stale",
	"adaptive-scaling":  "scanner.adaptive-scaling",
	"mode":              "server.mode",
	"http-port":         "server.http-port",
	"auth-enabled":      "auth.enabled",
	"auth-secret-file":  "auth.secret-file",
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	defaults := config.NewConfiguration()

	root := &cobra.Command{
		Use:               "scanner",
		Short:             "Concurrent audiobook library scanner",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: cobrautil.SyncViperPreRunE(envPrefix),
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "path to a configuration file (yaml, json or toml)")
	flags.String("log-format", defaults.LogFormat, "log format: console or json")
	flags.String("log-level", defaults.LogLevel, "log level")
	flags.String("db-path", defaults.Database.Path, "duckdb database file, :memory: keeps everything in memory")
	registerScannerFlags(flags, defaults.Scanner)

	root.AddCommand(newScanCmd(), newServeCmd(defaults.Server))
	return root
}

func registerScannerFlags(flags *pflag.FlagSet, s config.Scanner) {
	flags.String("preset", s.Preset, "pool preset: default, io-heavy, cpu-heavy or conservative")
	flags.Int("workers", s.Workers, "number of workers, 0 keeps the preset value")
	flags.Int("max-queue-size", s.MaxQueueSize, "maximum queued tasks, 0 keeps the preset value")
	flags.Duration("worker-timeout", s.WorkerTimeout, "idle worker wait, 0 keeps the preset value")
	flags.String("ordering", s.Ordering, "task ordering: batch or global")
	flags.Int("batch-size", s.BatchSize, "tasks submitted per batch")
	flags.Duration("submit-timeout", s.SubmitTimeout, "give up when the queue stays full this long")
	flags.Duration("progress-interval", s.ProgressEvery, "progress report interval, 0 keeps the preset value")
	flags.Bool("prune-stale", s.PruneStale, "delete audiobooks not found by a completed scan")
	flags.Bool("adaptive-scaling", s.AdaptiveScaling, "accepted for compatibility, has no effect")
}

// loadConfig merges the configuration file, environment and flags of cmd.
func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	v := viper.New()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, err
			}
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	zap.S().Named("main").Debugw("configuration loaded", "config", cfg.DebugMap())

	return cfg, nil
}

func newLogger(format, level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var zc zap.Config
	if format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zc.Level = lvl

	return zc.Build()
}
