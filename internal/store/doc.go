// Package store implements the data access layer of the audiobook scanner.
//
// Storage is DuckDB accessed through database/sql. Queries are built with
// squirrel and the schema is owned by numbered SQL migrations embedded in
// internal/store/migrations.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                         Store (facade)                          │
//	├────────────────────────────────┬────────────────────────────────┤
//	│        AudiobookStore          │        ScanErrorStore          │
//	│              ▼                 │             ▼                  │
//	│         audiobooks             │         scan_errors            │
//	├────────────────────────────────┴────────────────────────────────┤
//	│              QueryInterceptor (debug logging)                   │
//	├─────────────────────────────────────────────────────────────────┤
//	│                 *sql.DB  or  *sql.Tx (WithTx)                   │
//	└─────────────────────────────────────────────────────────────────┘
//
// # Tables
//
//	┌────────────────────┬─────────────────────────────────────────────┐
//	│  Table             │  Purpose                                    │
//	├────────────────────┼─────────────────────────────────────────────┤
//	│  audiobooks        │  One row per scanned audio file             │
//	│  scan_errors       │  Files that failed during the last scan     │
//	│  schema_migrations │  Migration version tracking                 │
//	└────────────────────┴─────────────────────────────────────────────┘
//
// # Initialization Flow
//
//	db, _ := store.NewDB(path)   // ":memory:" for an in-memory database
//	s := store.NewStore(db)
//	s.Migrate(ctx)               // applies missing migrations in order
//
// # AudiobookStore
//
// Audiobook ids are derived from library id and path, so rescanning a file
// updates its row:
//
//	INSERT INTO audiobooks (...) VALUES (...)
//	ON CONFLICT (id) DO UPDATE SET title = excluded.title, ...
//
// Methods:
//   - Upsert(ctx, books...) → error
//   - Get(ctx, id) → *models.Audiobook (ResourceNotFoundError when missing)
//   - List(ctx, opts...) / Count(ctx, opts...)
//   - DeleteStale(ctx, libraryID, scanStart) → rows scanned before scanStart
//
// List Options:
//
//	books, err := store.Audiobook().List(ctx,
//	    store.ByLibrary("main"),
//	    store.ByAuthors("Frank Herbert"),
//	    store.WithSort([]store.SortParam{{Field: "year", Desc: true}}),
//	    store.WithLimit(50),
//	    store.WithOffset(0),
//	)
//
//   - ByLibrary, ByAuthors, ByFormats: IN filters, OR logic inside one option
//   - ByTitle: case-insensitive substring match
//   - WithSort: title, author, year, format, size, scannedAt; path is always
//     appended as tie-breaker
//   - WithDefaultSort: author, title, track, path
//
// # ScanErrorStore
//
//   - Save(ctx, errs...) → error
//   - List(ctx, libraryID) → errors ordered by path
//   - DeleteByLibrary(ctx, libraryID) → called when a new scan starts
package store
