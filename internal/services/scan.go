package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"

	"github.com/tupyy/audiobook-scanner/internal/extractor"
	"github.com/tupyy/audiobook-scanner/internal/models"
	"github.com/tupyy/audiobook-scanner/internal/store"
	srvErrors "github.com/tupyy/audiobook-scanner/pkg/errors"
	"github.com/tupyy/audiobook-scanner/pkg/scheduler"
)

const (
	defaultBatchSize     = 100
	defaultSubmitTimeout = 5 * time.Minute
)

// ScanOptions configures the scan service.
type ScanOptions struct {
	Pool          scheduler.PoolConfig
	BatchSize     int
	SubmitTimeout time.Duration
	// PruneStale removes audiobooks not found by a completed scan.
	PruneStale bool
	// OnProgress is called with the status every time the pool reports progress.
	OnProgress func(models.ScanStatus)
}

func DefaultScanOptions() ScanOptions {
	return ScanOptions{
		Pool:          scheduler.IOHeavyPoolConfig(),
		BatchSize:     defaultBatchSize,
		SubmitTimeout: defaultSubmitTimeout,
	}
}

// ScanService walks a library, schedules one task per audio file and stores
// the extracted audiobooks. Only one scan runs at a time.
type ScanService struct {
	store   *store.Store
	extract scheduler.ExtractFunc[*models.Audiobook]
	opts    ScanOptions

	mu     sync.Mutex
	status models.ScanStatus
	cancel context.CancelFunc
	done   chan struct{}
}

func NewScanService(st *store.Store, extract scheduler.ExtractFunc[*models.Audiobook], opts ScanOptions) *ScanService {
	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}
	// a batch larger than the queue would never be accepted
	if opts.Pool.MaxQueueSize > 0 && opts.BatchSize > opts.Pool.MaxQueueSize {
		opts.BatchSize = opts.Pool.MaxQueueSize
	}
	if opts.SubmitTimeout <= 0 {
		opts.SubmitTimeout = defaultSubmitTimeout
	}

	return &ScanService{
		store:   st,
		extract: extract,
		opts:    opts,
		status:  models.ScanStatus{State: models.ScanStateReady},
	}
}

// Start begins scanning root in the background.
func (s *ScanService) Start(libraryID, root string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status.State == models.ScanStateScanning {
		return srvErrors.NewScanInProgressError(s.status.LibraryID)
	}

	info, err := os.Stat(root)
	if err != nil {
		return srvErrors.NewInvalidLibraryError(root, err)
	}
	if !info.IsDir() {
		return srvErrors.NewInvalidLibraryError(root, errors.New("not a directory"))
	}

	pool, err := scheduler.NewPool(s.opts.Pool, s.extract)
	if err != nil {
		return fmt.Errorf("failed to create scan pool: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	s.status = models.ScanStatus{
		State:     models.ScanStateScanning,
		LibraryID: libraryID,
		Root:      root,
		StartedAt: time.Now(),
	}

	zap.S().Named("scan_service").Infow("scan started", "library", libraryID, "root", root)

	go s.run(ctx, pool, s.status, s.done)
	return nil
}

// Stop cancels the running scan and waits for it to end.
func (s *ScanService) Stop() {
	s.mu.Lock()
	if s.status.State != models.ScanStateScanning {
		s.mu.Unlock()
		return
	}
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	cancel()
	<-done
}

// Wait blocks until the current scan ends or ctx is done and returns the
// error of the scan, if any.
func (s *ScanService) Wait(ctx context.Context) error {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	if done == nil {
		return nil
	}
	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return s.Status().Error
}

func (s *ScanService) Status() models.ScanStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *ScanService) run(ctx context.Context, pool *scheduler.Pool[*models.Audiobook], status models.ScanStatus, done chan struct{}) {
	defer close(done)
	logger := zap.S().Named("scan_service").With("library", status.LibraryID)

	if err := s.store.ScanError().DeleteByLibrary(ctx, status.LibraryID); err != nil {
		logger.Warnw("failed to clear previous scan errors", "error", err)
	}

	if err := pool.SetProgressCallback(s.updateProgress); err != nil {
		logger.Warnw("failed to register progress callback", "error", err)
	}

	var (
		expected atomic.Int64
		received atomic.Int64
		finished = make(chan struct{})
		once     sync.Once
		drainWg  sync.WaitGroup
	)
	expected.Store(-1)
	checkFinished := func() {
		if e := expected.Load(); e >= 0 && received.Load() >= e {
			once.Do(func() { close(finished) })
		}
	}

	drainWg.Add(1)
	go func() {
		defer drainWg.Done()
		for {
			result, err := pool.GetResult(ctx)
			if err != nil {
				return
			}
			s.persist(ctx, result)
			received.Add(1)
			checkFinished()
		}
	}()

	total, err := s.discover(ctx, pool, status.LibraryID, status.Root)
	if err == nil {
		expected.Store(int64(total))
		checkFinished()

		select {
		case <-finished:
		case <-pool.WorkerDied():
			// Shutdown reports the dead worker
			logger.Errorw("scan worker died, aborting scan", "expected", total, "received", received.Load())
		case <-ctx.Done():
			err = ctx.Err()
		}
	}

	progress := pool.Progress()
	if shutdownErr := pool.Shutdown(); shutdownErr != nil {
		logger.Errorw("scan pool did not shut down cleanly", "error", shutdownErr)
		if err == nil {
			err = shutdownErr
		}
	}
	drainWg.Wait()

	if err == nil && s.opts.PruneStale {
		deleted, pruneErr := s.store.Audiobook().DeleteStale(context.Background(), status.LibraryID, status.StartedAt.UTC())
		if pruneErr != nil {
			logger.Warnw("failed to prune stale audiobooks", "error", pruneErr)
		} else if deleted > 0 {
			logger.Infow("pruned stale audiobooks", "count", deleted)
		}
	}

	s.finish(status, progress, total, err)
}

// discover walks root and submits one task per supported file. It returns
// the number of submitted tasks.
func (s *ScanService) discover(ctx context.Context, pool *scheduler.Pool[*models.Audiobook], libraryID, root string) (int, error) {
	var (
		batch = make([]scheduler.Task, 0, s.opts.BatchSize)
		total int
	)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := s.submit(ctx, pool, batch); err != nil {
			return err
		}
		total += len(batch)
		s.setDiscovered(total)
		batch = make([]scheduler.Task, 0, s.opts.BatchSize)
		return nil
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			zap.S().Named("scan_service").Warnw("failed to read path", "path", path, "error", err)
			if d != nil && d.IsDir() && path != root {
				return fs.SkipDir
			}
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() || !extractor.IsSupported(path) {
			return nil
		}

		batch = append(batch, scheduler.NewTask(path, libraryID).WithPriority(extractor.Priority(path)))
		if len(batch) >= s.opts.BatchSize {
			return flush()
		}
		return nil
	})
	if err != nil {
		return total, err
	}
	return total, flush()
}

// submit retries while the queue is full.
func (s *ScanService) submit(ctx context.Context, pool *scheduler.Pool[*models.Audiobook], batch []scheduler.Task) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 50 * time.Millisecond
	b.MaxInterval = 2 * time.Second

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		err := pool.SubmitBatch(batch)
		switch {
		case err == nil:
			return struct{}{}, nil
		case errors.Is(err, scheduler.ErrQueueCapacityExceeded):
			return struct{}{}, err
		default:
			return struct{}{}, backoff.Permanent(err)
		}
	}, backoff.WithBackOff(b), backoff.WithMaxElapsedTime(s.opts.SubmitTimeout))
	if err != nil {
		return fmt.Errorf("failed to submit batch of %d tasks: %w", len(batch), err)
	}
	return nil
}

func (s *ScanService) persist(ctx context.Context, result scheduler.TaskResult[*models.Audiobook]) {
	logger := zap.S().Named("scan_service")

	if result.Err != nil {
		logger.Debugw("file failed", "path", result.Task.Path, "error", result.Err)
		scanErr := models.ScanError{
			LibraryID: result.Task.CollectionID,
			Path:      result.Task.Path,
			Error:     result.Err.Error(),
			CreatedAt: time.Now(),
		}
		// a file that can no longer be read must not keep its previous record
		err := s.store.WithTx(ctx, func(tx *store.Store) error {
			if err := tx.ScanError().Save(ctx, scanErr); err != nil {
				return err
			}
			_, err := tx.Audiobook().DeleteByPath(ctx, scanErr.LibraryID, scanErr.Path)
			return err
		})
		if err != nil {
			logger.Errorw("failed to save scan error", "path", result.Task.Path, "error", err)
		}
		return
	}

	if err := s.store.Audiobook().Upsert(ctx, result.Record); err != nil {
		logger.Errorw("failed to save audiobook", "path", result.Task.Path, "error", err)
	}
}

func (s *ScanService) setDiscovered(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status.Discovered = n
}

func (s *ScanService) updateProgress(p scheduler.Progress) {
	s.mu.Lock()
	s.status.Progress = p
	status := s.status
	s.mu.Unlock()

	if s.opts.OnProgress != nil {
		s.opts.OnProgress(status)
	}
}

func (s *ScanService) finish(started models.ScanStatus, progress scheduler.Progress, discovered int, err error) {
	s.mu.Lock()
	s.status.Progress = progress
	s.status.Discovered = discovered
	s.status.FinishedAt = time.Now()

	switch {
	case errors.Is(err, context.Canceled):
		s.status.State = models.ScanStateReady
	case err != nil:
		s.status.State = models.ScanStateError
		s.status.Error = err
	default:
		s.status.State = models.ScanStateCompleted
	}
	status := s.status
	s.mu.Unlock()

	zap.S().Named("scan_service").Infow("scan finished",
		"library", started.LibraryID,
		"state", status.State,
		"discovered", discovered,
		"successful", progress.Successful,
		"failed", progress.Failed,
		"duration", status.FinishedAt.Sub(started.StartedAt),
		"error", err)

	if s.opts.OnProgress != nil {
		s.opts.OnProgress(status)
	}
}
