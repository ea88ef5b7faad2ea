// Package handlers implements the HTTP API layer of the audiobook scanner.
//
// Handlers delegate business logic to the services layer and focus on request
// validation, response formatting and HTTP semantics.
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                     HTTP Request (Gin)                          │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Handler (this package)                     │
//	│  - Request validation                                           │
//	│  - Error mapping to HTTP status codes                           │
//	│  - Model-to-API conversion                                      │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Services Layer                             │
//	│  ScanService │ AudiobookService                                 │
//	└─────────────────────────────────────────────────────────────────┘
//
// The Handler implements v1.ServerInterface and is registered with:
//
//	v1.RegisterHandlers(router, handler)
//
// # API Endpoints
//
//	┌────────┬──────────────────┬───────────────────────────────────────┐
//	│ Method │ Endpoint         │ Description                           │
//	├────────┼──────────────────┼───────────────────────────────────────┤
//	│ GET    │ /scan            │ Get scan status and progress          │
//	│ POST   │ /scan            │ Start scanning a library              │
//	│ DELETE │ /scan            │ Stop the running scan                 │
//	│ GET    │ /scan/errors     │ List files that failed to scan        │
//	│ GET    │ /audiobooks      │ List audiobooks with filtering        │
//	│ GET    │ /audiobooks/{id} │ Get a single audiobook                │
//	└────────┴──────────────────┴───────────────────────────────────────┘
//
// # Scan Handler
//
// POST /scan starts a scan and answers 202 Accepted with the scan status:
//
//	{ "libraryId": "main", "path": "/srv/audiobooks" }
//
// Errors:
//   - 400 Bad Request: missing fields or the path is not a directory
//   - 409 Conflict: a scan is already running
//
// # Audiobook Handler
//
// GET /audiobooks query parameters:
//
//	┌──────────┬──────────┬─────────────────────────────────────────┐
//	│ Param    │ Type     │ Description                             │
//	├──────────┼──────────┼─────────────────────────────────────────┤
//	│ library  │ []string │ Filter by library id (OR logic)         │
//	│ author   │ []string │ Filter by author (OR logic)             │
//	│ format   │ []string │ Filter by file format (OR logic)        │
//	│ title    │ string   │ Case-insensitive title substring        │
//	│ sort     │ string   │ "field:direction" list, comma separated │
//	│ page     │ int      │ Page number (default: 1)                │
//	│ pageSize │ int      │ Items per page (default: 20, max: 100)  │
//	└──────────┴──────────┴─────────────────────────────────────────┘
//
// Valid sort fields are title, author, year, format, size and scannedAt.
//
// Errors use a single format:
//
//	{ "error": "error message" }
package handlers
