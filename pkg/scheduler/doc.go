// Package scheduler implements the bounded worker pool used to scan library
// files.
//
// The pool owns a fixed set of workers. Callers submit batches of tasks (one
// per candidate file), workers call an extraction function for each task and
// push a TaskResult onto an unbounded result buffer that callers drain with
// GetResult or TryGetResult.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────────┐
//	│                              Pool                                   │
//	│                                                                     │
//	│   SubmitBatch(tasks)                                                │
//	│        │  sort by priority (stable), capacity check                 │
//	│        ▼                                                            │
//	│  ┌─────────────────────────────────────────────────────────┐        │
//	│  │                 Task Queue (mutex)                      │        │
//	│  │  [batch1: p10 p5 p1] [batch2: p5 p5] ...                │        │
//	│  └─────────────────────────────────────────────────────────┘        │
//	│        │ wake signal                                                │
//	│        ▼                                                            │
//	│  ┌──────────────┐      ┌──────────────┐      ┌──────────────┐       │
//	│  │   Worker 0   │      │   Worker 1   │      │   Worker N   │       │
//	│  └──────┬───────┘      └──────┬───────┘      └──────┬───────┘       │
//	│         │ extract(collection, path)                 │               │
//	│         └─────────────────────┼─────────────────────┘               │
//	│                               ▼                                     │
//	│  ┌─────────────────────────────────────────────────────────┐        │
//	│  │              Result Buffer (unbounded)                  │──► GetResult
//	│  └─────────────────────────────────────────────────────────┘        │
//	│                                                                     │
//	│  counters: total, successful, failed, active  ──► Progress()        │
//	│  ThroughputMonitor ◄── RecordCompletion()                           │
//	└─────────────────────────────────────────────────────────────────────┘
//
// # Ordering
//
// With OrderingBatch (the default) each batch is sorted by priority, highest
// first, and batches are served in the order they were submitted. A later
// high priority batch waits behind an earlier low priority one. This keeps
// independent scan sessions from starving each other. OrderingGlobal keeps
// the whole queue in a heap instead.
//
// # Worker Lifecycle
//
//	┌───────────┐   task queued   ┌────────────┐  extract  ┌────────────┐
//	│   Idle    │ ──────────────► │ Dequeuing  │ ────────► │ Processing │
//	│ (waiting) │                 └────────────┘           └─────┬──────┘
//	└───────────┘                                                │
//	   ▲    │ WorkerTimeout elapsed: re-check shutdown           │
//	   │    ▼                                                    │
//	   └─────────────────────────────────────────────────────────┘
//
// A worker idles on the wake signal for at most WorkerTimeout before checking
// the shutdown flag again. Extraction errors and panics become the Err of the
// TaskResult and never stop a worker. A worker that dies for any other reason
// is not replaced and is reported by Shutdown as a WorkerJoinError. The task
// it was processing is lost, so WorkerDied is closed on the first death to let
// callers waiting for every result give up.
//
// # Progress
//
// Progress returns counters plus the average throughput of the last ten
// measurements and an ETA derived from it. SetProgressCallback starts a
// goroutine, owned by the pool, that pushes a Progress every
// MonitoringInterval until Shutdown.
//
// # Shutdown
//
// Shutdown sets the shutdown flag, cancels the context handed to the
// extraction function, wakes every worker and waits for them. Tasks still
// queued are abandoned. Buffered results can still be read after Shutdown;
// once they are drained GetResult returns ErrChannelClosed.
//
// # Usage Example
//
//	pool, err := scheduler.NewPool(scheduler.IOHeavyPoolConfig(), extractor.Extract)
//	if err != nil {
//	    return err
//	}
//	defer pool.Shutdown()
//
//	tasks := []scheduler.Task{
//	    scheduler.NewHighPriorityTask("/books/dune.m4b", "library-1"),
//	    scheduler.NewTask("/books/foundation/01.mp3", "library-1"),
//	}
//	if err := pool.SubmitBatch(tasks); err != nil {
//	    return err
//	}
//
//	for range tasks {
//	    result, err := pool.GetResult(ctx)
//	    if err != nil {
//	        return err
//	    }
//	    if result.Err != nil {
//	        log.Printf("failed %s: %v", result.Task.Path, result.Err)
//	    }
//	}
package scheduler
