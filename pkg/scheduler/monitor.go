package scheduler

import (
	"sync"
	"sync/atomic"
	"time"
)

const (
	throughputHistorySize = 10
	minMeasurementWindow  = time.Second
)

// ThroughputMonitor tracks completions per second over a rolling window of
// measurements.
type ThroughputMonitor struct {
	completions atomic.Int64

	mu              sync.Mutex
	lastMeasurement time.Time
	history         []float64
	now             func() time.Time
}

func NewThroughputMonitor() *ThroughputMonitor {
	return newThroughputMonitor(time.Now)
}

func newThroughputMonitor(now func() time.Time) *ThroughputMonitor {
	return &ThroughputMonitor{
		lastMeasurement: now(),
		history:         make([]float64, 0, throughputHistorySize),
		now:             now,
	}
}

func (m *ThroughputMonitor) RecordCompletion() {
	m.completions.Add(1)
}

// MeasureThroughput returns the completion rate since the previous
// measurement. Windows shorter than a second return 0 and leave the state
// untouched.
func (m *ThroughputMonitor) MeasureThroughput() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	elapsed := now.Sub(m.lastMeasurement)
	if elapsed < minMeasurementWindow {
		return 0
	}

	completed := m.completions.Swap(0)
	throughput := float64(completed) / elapsed.Seconds()

	if len(m.history) == throughputHistorySize {
		m.history = append(m.history[:0], m.history[1:]...)
	}
	m.history = append(m.history, throughput)
	m.lastMeasurement = now

	return throughput
}

// AverageThroughput is the mean of the recorded samples, 0 when there are none.
func (m *ThroughputMonitor) AverageThroughput() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.history) == 0 {
		return 0
	}
	var sum float64
	for _, s := range m.history {
		sum += s
	}
	return sum / float64(len(m.history))
}

// Samples returns a copy of the recorded samples, oldest first.
func (m *ThroughputMonitor) Samples() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.history...)
}
