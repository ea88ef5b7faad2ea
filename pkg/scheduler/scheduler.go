package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Pool runs a fixed set of workers that extract records from queued tasks.
type Pool[T any] struct {
	cfg     PoolConfig
	extract ExtractFunc[T]

	mu    sync.Mutex
	queue taskQueue
	wake  *signal

	results *resultBuffer[T]
	monitor *ThroughputMonitor

	total      atomic.Int64
	successful atomic.Int64
	failed     atomic.Int64
	active     atomic.Int64
	closing    atomic.Bool

	mainCtx    context.Context
	mainCancel context.CancelFunc
	done       chan struct{}
	workers    sync.WaitGroup
	monitors   sync.WaitGroup

	failMu   sync.Mutex
	failures map[int]error
	died     chan struct{}

	once        sync.Once
	shutdownErr error
}

// NewPool validates cfg and starts cfg.WorkerCount workers calling extract.
func NewPool[T any](cfg PoolConfig, extract ExtractFunc[T]) (*Pool[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if extract == nil {
		return nil, fmt.Errorf("%w: extract function is required", ErrInvalidConfig)
	}

	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool[T]{
		cfg:        cfg,
		extract:    extract,
		queue:      newTaskQueue(cfg.Ordering),
		wake:       newSignal(),
		results:    newResultBuffer[T](),
		monitor:    NewThroughputMonitor(),
		mainCtx:    ctx,
		mainCancel: cancel,
		done:       make(chan struct{}),
		failures:   make(map[int]error),
		died:       make(chan struct{}),
	}

	if cfg.AdaptiveScaling {
		zap.S().Named("scheduler").Warnw("adaptive scaling is not supported, worker count stays fixed",
			"workers", cfg.WorkerCount, "min", cfg.MinThreads, "max", cfg.MaxThreads)
	}

	for i := range cfg.WorkerCount {
		p.workers.Add(1)
		go p.runWorker(i)
	}

	zap.S().Named("scheduler").Infow("pool started",
		"workers", cfg.WorkerCount,
		"max_queue_size", cfg.MaxQueueSize,
		"ordering", cfg.Ordering.String())

	return p, nil
}

// Config returns the configuration the pool was created with.
func (p *Pool[T]) Config() PoolConfig {
	return p.cfg
}

func (p *Pool[T]) Submit(task Task) error {
	return p.SubmitBatch([]Task{task})
}

// SubmitBatch queues all tasks or none of them. The batch is sorted by
// priority before being appended to the queue.
func (p *Pool[T]) SubmitBatch(tasks []Task) error {
	if len(tasks) == 0 {
		return nil
	}
	sorted := sortBatch(tasks)

	p.mu.Lock()
	if p.closing.Load() {
		p.mu.Unlock()
		return ErrPoolClosed
	}
	queued := p.queue.Len()
	if queued+len(sorted) > p.cfg.MaxQueueSize {
		p.mu.Unlock()
		return fmt.Errorf("%w: %d queued + %d submitted > %d",
			ErrQueueCapacityExceeded, queued, len(sorted), p.cfg.MaxQueueSize)
	}
	p.queue.PushBatch(sorted)
	p.total.Add(int64(len(sorted)))
	p.mu.Unlock()

	p.wake.Broadcast()

	zap.S().Named("scheduler").Debugw("batch submitted", "size", len(sorted), "queue_len", queued+len(sorted))
	return nil
}

// GetResult blocks until a result is available, ctx is done or the pool is
// shut down with no results left.
func (p *Pool[T]) GetResult(ctx context.Context) (TaskResult[T], error) {
	return p.results.pop(ctx)
}

// TryGetResult returns immediately. ok is false when no result is buffered.
func (p *Pool[T]) TryGetResult() (result TaskResult[T], ok bool, err error) {
	return p.results.tryPop()
}

// BufferedResults is the number of results waiting to be read.
func (p *Pool[T]) BufferedResults() int {
	return p.results.len()
}

// CloseResults tells the pool nobody reads results anymore. Results produced
// afterwards are logged and dropped.
func (p *Pool[T]) CloseResults() {
	p.results.close()
}

// Progress reads the counters and takes a throughput measurement.
func (p *Pool[T]) Progress() Progress {
	// completions are read before total so completed never exceeds total
	successful := int(p.successful.Load())
	failed := int(p.failed.Load())
	total := int(p.total.Load())

	p.monitor.MeasureThroughput()
	throughput := p.monitor.AverageThroughput()

	progress := Progress{
		Total:         total,
		Completed:     successful + failed,
		Successful:    successful,
		Failed:        failed,
		Throughput:    throughput,
		ActiveWorkers: int(p.active.Load()),
	}
	if remaining := progress.Remaining(); throughput > 0 && remaining > 0 {
		eta := time.Duration(float64(remaining) / throughput * float64(time.Second))
		progress.ETA = &eta
	}
	return progress
}

func (p *Pool[T]) IsComplete() bool {
	completed := p.successful.Load() + p.failed.Load()
	total := p.total.Load()
	return total > 0 && completed >= total
}

// PendingTasks is the number of tasks not yet picked up by a worker.
func (p *Pool[T]) PendingTasks() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.queue.Len()
}

// WorkerDied is closed when the first worker dies. The task that worker was
// processing never produces a result.
func (p *Pool[T]) WorkerDied() <-chan struct{} {
	return p.died
}

// SetProgressCallback calls fn with a fresh Progress every MonitoringInterval
// until the pool is shut down.
func (p *Pool[T]) SetProgressCallback(fn func(Progress)) error {
	if fn == nil {
		return errors.New("progress callback is nil")
	}

	p.mu.Lock()
	if p.closing.Load() {
		p.mu.Unlock()
		return ErrPoolClosed
	}
	p.monitors.Add(1)
	p.mu.Unlock()

	go p.reportProgress(fn)
	return nil
}

func (p *Pool[T]) reportProgress(fn func(Progress)) {
	defer p.monitors.Done()

	ticker := time.NewTicker(p.cfg.MonitoringInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.done:
			return
		case <-ticker.C:
			p.notify(fn, p.Progress())
		}
	}
}

func (p *Pool[T]) notify(fn func(Progress), progress Progress) {
	defer func() {
		if rec := recover(); rec != nil {
			zap.S().Named("scheduler").Errorw("progress callback panicked", "panic", rec)
		}
	}()
	fn(progress)
}

// Shutdown stops the workers and waits for them to exit. Tasks still queued
// are abandoned. Calling it again returns the first result.
func (p *Pool[T]) Shutdown() error {
	p.once.Do(func() {
		p.mu.Lock()
		p.closing.Store(true)
		abandoned := p.queue.Len()
		p.mu.Unlock()

		p.mainCancel()
		close(p.done)
		p.wake.Broadcast()

		p.workers.Wait()
		p.monitors.Wait()
		p.results.close()

		p.failMu.Lock()
		if len(p.failures) > 0 {
			p.shutdownErr = newWorkerJoinError(p.failures)
		}
		p.failMu.Unlock()

		zap.S().Named("scheduler").Infow("pool stopped",
			"abandoned_tasks", abandoned,
			"completed", p.successful.Load()+p.failed.Load(),
			"total", p.total.Load())
	})
	return p.shutdownErr
}

func (p *Pool[T]) runWorker(idx int) {
	defer p.workers.Done()

	exited := false
	defer func() {
		if rec := recover(); rec != nil {
			p.recordFailure(idx, fmt.Errorf("panic: %v", rec))
		} else if !exited {
			p.recordFailure(idx, errors.New("exited unexpectedly"))
		}
	}()

	p.work(idx)
	exited = true
}

func (p *Pool[T]) work(idx int) {
	zap.S().Named("scheduler").Debugw("worker started", "worker_id", idx)
	for {
		task, ok := p.next()
		if !ok {
			zap.S().Named("scheduler").Debugw("worker stopped", "worker_id", idx)
			return
		}
		p.process(idx, task)
	}
}

// next blocks until a task is available. It returns false once shutdown is
// observed.
func (p *Pool[T]) next() (Task, bool) {
	for {
		wake := p.wake.C()
		if p.closing.Load() {
			return Task{}, false
		}

		p.mu.Lock()
		if p.queue.Len() > 0 {
			task := p.queue.Pop()
			p.mu.Unlock()
			return task, true
		}
		p.mu.Unlock()

		timer := time.NewTimer(p.cfg.WorkerTimeout)
		select {
		case <-wake:
		case <-timer.C:
		}
		timer.Stop()
	}
}

func (p *Pool[T]) process(idx int, task Task) {
	p.active.Add(1)
	defer p.active.Add(-1)

	start := time.Now()
	record, err := p.safeExtract(task)
	result := TaskResult[T]{
		Record:   record,
		Err:      err,
		Duration: time.Since(start),
		Task:     task,
	}

	if err != nil {
		p.failed.Add(1)
		zap.S().Named("scheduler").Debugw("task failed", "worker_id", idx, "path", task.Path, "error", err)
	} else {
		p.successful.Add(1)
	}
	p.monitor.RecordCompletion()

	if !p.results.push(result) {
		zap.S().Named("scheduler").Warnw("result dropped, nobody is reading results",
			"worker_id", idx, "path", task.Path)
	}
}

func (p *Pool[T]) safeExtract(task Task) (record T, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			var zero T
			record = zero
			err = fmt.Errorf("extracting %s panicked: %v", task.Path, rec)
		}
	}()
	return p.extract(p.mainCtx, task.CollectionID, task.Path)
}

func (p *Pool[T]) recordFailure(idx int, err error) {
	zap.S().Named("scheduler").Errorw("worker died", "worker_id", idx, "error", err)

	p.failMu.Lock()
	defer p.failMu.Unlock()
	if len(p.failures) == 0 {
		close(p.died)
	}
	p.failures[idx] = err
}
