package scheduler

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Priority levels used by the task constructors. Any value in 0-255 is valid.
const (
	PriorityLow     uint8 = 1
	PriorityDefault uint8 = 5
	PriorityHigh    uint8 = 10
)

// ExtractFunc turns one file of a collection into a record. It is called from
// the worker goroutines and may block on I/O.
type ExtractFunc[T any] func(ctx context.Context, collectionID string, path string) (T, error)

// Task is one file waiting to be processed.
type Task struct {
	ID           uuid.UUID
	Path         string
	CollectionID string
	Priority     uint8
	EnqueuedAt   time.Time
}

func NewTask(path, collectionID string) Task {
	return newTask(path, collectionID, PriorityDefault)
}

func NewHighPriorityTask(path, collectionID string) Task {
	return newTask(path, collectionID, PriorityHigh)
}

func NewLowPriorityTask(path, collectionID string) Task {
	return newTask(path, collectionID, PriorityLow)
}

// WithPriority returns a copy of t with the given priority.
func (t Task) WithPriority(p uint8) Task {
	t.Priority = p
	return t
}

func newTask(path, collectionID string, priority uint8) Task {
	return Task{
		ID:           uuid.New(),
		Path:         path,
		CollectionID: collectionID,
		Priority:     priority,
		EnqueuedAt:   time.Now(),
	}
}

// TaskResult is the outcome of a task. Exactly one of Record and Err is set.
type TaskResult[T any] struct {
	Record   T
	Err      error
	Duration time.Duration
	Task     Task
}

func (r TaskResult[T]) Succeeded() bool {
	return r.Err == nil
}

// Progress is a point in time snapshot of the pool counters.
type Progress struct {
	Total         int
	Completed     int
	Successful    int
	Failed        int
	Throughput    float64
	ETA           *time.Duration
	ActiveWorkers int
}

// IsComplete is true once every submitted task has completed.
func (p Progress) IsComplete() bool {
	return p.Total > 0 && p.Completed >= p.Total
}

// CompletionPercentage returns a ratio in [0, 1]. A pool with no tasks is
// reported as complete.
func (p Progress) CompletionPercentage() float64 {
	if p.Total == 0 {
		return 1.0
	}
	ratio := float64(p.Completed) / float64(p.Total)
	return min(max(ratio, 0), 1)
}

func (p Progress) Remaining() int {
	return max(p.Total-p.Completed, 0)
}
