package scheduler

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/multierr"
)

var (
	// ErrQueueCapacityExceeded is returned by Submit when the batch does not fit
	// in the queue. Nothing from the batch is queued.
	ErrQueueCapacityExceeded = errors.New("queue capacity exceeded")
	// ErrChannelClosed is returned when results are requested from a pool that
	// has shut down and has no buffered results left.
	ErrChannelClosed = errors.New("result channel closed")
	// ErrPoolClosed is returned by Submit once Shutdown was called.
	ErrPoolClosed = errors.New("pool is shut down")
	// ErrInvalidConfig is returned by NewPool for an unusable PoolConfig.
	ErrInvalidConfig = errors.New("invalid pool configuration")
)

// WorkerJoinError reports the workers that died before Shutdown joined them.
type WorkerJoinError struct {
	Workers []int
	err     error
}

func newWorkerJoinError(failures map[int]error) *WorkerJoinError {
	e := &WorkerJoinError{}
	for idx := range failures {
		e.Workers = append(e.Workers, idx)
	}
	slices.Sort(e.Workers)
	for _, idx := range e.Workers {
		e.err = multierr.Append(e.err, fmt.Errorf("worker %d: %w", idx, failures[idx]))
	}
	return e
}

func (e *WorkerJoinError) Error() string {
	ids := make([]string, 0, len(e.Workers))
	for _, idx := range e.Workers {
		ids = append(ids, fmt.Sprint(idx))
	}
	return fmt.Sprintf("workers [%s] failed: %v", strings.Join(ids, ", "), e.err)
}

// Errors returns one error per failed worker.
func (e *WorkerJoinError) Errors() []error {
	return multierr.Errors(e.err)
}

func (e *WorkerJoinError) Unwrap() []error {
	return e.Errors()
}
