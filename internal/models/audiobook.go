package models

import (
	"time"

	"github.com/google/uuid"
)

// Audiobook is the record extracted from one file of a library.
type Audiobook struct {
	ID         uuid.UUID
	LibraryID  string
	Path       string
	Title      string
	Author     string
	Narrator   string
	Album      string
	Genre      string
	Year       int
	Track      int
	Format     string
	SizeBytes  int64
	ModifiedAt time.Time
	ScannedAt  time.Time
}

// ScanError records a file that could not be processed.
type ScanError struct {
	LibraryID string
	Path      string
	Error     string
	CreatedAt time.Time
}
