// Package services implements the business logic layer of the audiobook scanner.
//
// Services sit between the HTTP handlers (or the CLI) and the data store.
//
//	Handlers / CLI
//	    │
//	    ▼
//	Services Layer
//	    ├── ScanService ──────► Store, scheduler.Pool, Extractor
//	    └── AudiobookService ─► Store
//
// # ScanService
//
// ScanService runs one library scan at a time.
//
//	       Start()
//	Ready ────────► Scanning ──┬──► Completed
//	  ▲                        ├──► Error
//	  └────────── Stop() ──────┘
//
// A scan creates its own scheduler.Pool. The library root is walked and every
// supported audio file becomes a task whose priority depends on its format.
// Tasks are submitted in batches; when the pool queue is full the submission is
// retried with exponential backoff. A separate goroutine drains results,
// upserting audiobooks and recording failed files as scan errors. The pool is
// shut down once every submitted task has produced a result or the scan is
// stopped.
//
// Status returns a copy of the current state including the latest pool
// progress. Starting a scan while another one runs returns a
// ScanInProgressError.
//
// # AudiobookService
//
// AudiobookService lists stored audiobooks with filtering, sorting and
// pagination. The returned total ignores limit and offset.
package services
