package scheduler

import (
	"fmt"
	"runtime"
	"time"
)

// Ordering selects how queued tasks are ordered relative to each other.
type Ordering int

const (
	// OrderingBatch sorts each submitted batch by priority and keeps batches
	// in submission order. A later high priority batch does not overtake an
	// earlier one already queued.
	OrderingBatch Ordering = iota
	// OrderingGlobal keeps the whole queue in priority order. Equal priorities
	// are served in submission order.
	OrderingGlobal
)

func (o Ordering) String() string {
	switch o {
	case OrderingGlobal:
		return "global"
	default:
		return "batch"
	}
}

// ParseOrdering converts "batch" or "global" into an Ordering.
func ParseOrdering(s string) (Ordering, error) {
	switch s {
	case "", "batch":
		return OrderingBatch, nil
	case "global":
		return OrderingGlobal, nil
	default:
		return OrderingBatch, fmt.Errorf("%w: unknown ordering %q", ErrInvalidConfig, s)
	}
}

// Preset names accepted by PresetConfig.
const (
	PresetDefault      = "default"
	PresetIOHeavy      = "io-heavy"
	PresetCPUHeavy     = "cpu-heavy"
	PresetConservative = "conservative"
)

// PoolConfig holds the tuning parameters of a Pool. It is copied when the pool
// is created and never changed afterwards.
//
// AdaptiveScaling, MinThreads and MaxThreads are carried for callers that
// record them but the pool does not resize its worker set.
type PoolConfig struct {
	WorkerCount        int
	MaxQueueSize       int
	WorkerTimeout      time.Duration
	MonitoringInterval time.Duration
	AdaptiveScaling    bool
	MinThreads         int
	MaxThreads         int
	Ordering           Ordering
}

// DefaultPoolConfig returns one worker per CPU.
func DefaultPoolConfig() PoolConfig {
	cpus := runtime.NumCPU()
	return PoolConfig{
		WorkerCount:        cpus,
		MaxQueueSize:       10000,
		WorkerTimeout:      5 * time.Second,
		MonitoringInterval: time.Second,
		AdaptiveScaling:    false,
		MinThreads:         1,
		MaxThreads:         cpus * 2,
		Ordering:           OrderingBatch,
	}
}

// IOHeavyPoolConfig doubles the worker count since most of the time is spent
// waiting on the disk.
func IOHeavyPoolConfig() PoolConfig {
	cfg := DefaultPoolConfig()
	cfg.WorkerCount = runtime.NumCPU() * 2
	cfg.MaxQueueSize = 20000
	cfg.MaxThreads = runtime.NumCPU() * 4
	return cfg
}

// CPUHeavyPoolConfig keeps one worker per CPU.
func CPUHeavyPoolConfig() PoolConfig {
	cfg := DefaultPoolConfig()
	cfg.WorkerCount = runtime.NumCPU()
	cfg.MaxThreads = runtime.NumCPU()
	return cfg
}

// ConservativePoolConfig uses half the CPUs and a small queue.
func ConservativePoolConfig() PoolConfig {
	cfg := DefaultPoolConfig()
	cfg.WorkerCount = max(1, runtime.NumCPU()/2)
	cfg.MaxQueueSize = 1000
	cfg.MonitoringInterval = 2 * time.Second
	cfg.MaxThreads = cfg.WorkerCount
	return cfg
}

// PresetConfig returns the preset registered under name.
func PresetConfig(name string) (PoolConfig, error) {
	switch name {
	case "", PresetDefault:
		return DefaultPoolConfig(), nil
	case PresetIOHeavy:
		return IOHeavyPoolConfig(), nil
	case PresetCPUHeavy:
		return CPUHeavyPoolConfig(), nil
	case PresetConservative:
		return ConservativePoolConfig(), nil
	default:
		return PoolConfig{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidConfig, name)
	}
}

// Validate checks only what the pool needs to run.
func (c PoolConfig) Validate() error {
	if c.WorkerCount < 1 {
		return fmt.Errorf("%w: worker count must be at least 1, got %d", ErrInvalidConfig, c.WorkerCount)
	}
	if c.MaxQueueSize < 1 {
		return fmt.Errorf("%w: max queue size must be at least 1, got %d", ErrInvalidConfig, c.MaxQueueSize)
	}
	if c.WorkerTimeout <= 0 {
		return fmt.Errorf("%w: worker timeout must be positive", ErrInvalidConfig)
	}
	if c.MonitoringInterval <= 0 {
		return fmt.Errorf("%w: monitoring interval must be positive", ErrInvalidConfig)
	}
	if c.AdaptiveScaling && (c.MinThreads < 1 || c.MinThreads > c.MaxThreads) {
		return fmt.Errorf("%w: invalid thread bounds min=%d max=%d", ErrInvalidConfig, c.MinThreads, c.MaxThreads)
	}
	return nil
}
