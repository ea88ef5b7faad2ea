package v1

import (
	"time"

	"github.com/google/uuid"
)

type ScanStatusState string

const (
	ScanStatusStateReady     ScanStatusState = "ready"
	ScanStatusStateScanning  ScanStatusState = "scanning"
	ScanStatusStateCompleted ScanStatusState = "completed"
	ScanStatusStateError     ScanStatusState = "error"
)

type ScanProgress struct {
	Total         int      `json:"total"`
	Completed     int      `json:"completed"`
	Successful    int      `json:"successful"`
	Failed        int      `json:"failed"`
	Percentage    float64  `json:"percentage"`
	Throughput    float64  `json:"throughput"`
	EtaSeconds    *float64 `json:"etaSeconds,omitempty"`
	ActiveWorkers int      `json:"activeWorkers"`
}

type ScanStatus struct {
	State      ScanStatusState `json:"state"`
	LibraryId  *string         `json:"libraryId,omitempty"`
	Path       *string         `json:"path,omitempty"`
	StartedAt  *time.Time      `json:"startedAt,omitempty"`
	FinishedAt *time.Time      `json:"finishedAt,omitempty"`
	Discovered int             `json:"discovered"`
	Progress   ScanProgress    `json:"progress"`
	Error      *string         `json:"error,omitempty"`
}

type StartScanRequest struct {
	LibraryId string `json:"libraryId"`
	Path      string `json:"path"`
}

type Audiobook struct {
	Id        uuid.UUID `json:"id"`
	LibraryId string    `json:"libraryId"`
	Path      string    `json:"path"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Narrator  *string   `json:"narrator,omitempty"`
	Album     *string   `json:"album,omitempty"`
	Genre     *string   `json:"genre,omitempty"`
	Year      *int      `json:"year,omitempty"`
	Track     *int      `json:"track,omitempty"`
	Format    string    `json:"format"`
	SizeBytes int64     `json:"sizeBytes"`
	ScannedAt time.Time `json:"scannedAt"`
}

type AudiobookListResponse struct {
	Audiobooks []Audiobook `json:"audiobooks"`
	Page       int         `json:"page"`
	PageCount  int         `json:"pageCount"`
	Total      int         `json:"total"`
}

type ScanError struct {
	Path      string    `json:"path"`
	Error     string    `json:"error"`
	CreatedAt time.Time `json:"createdAt"`
}

type ScanErrorListResponse struct {
	Errors []ScanError `json:"errors"`
}

// GetAudiobooksParams defines the query parameters of GET /audiobooks.
// List parameters may be repeated (?author=a&author=b).
type GetAudiobooksParams struct {
	Library  []string `form:"library"`
	Author   []string `form:"author"`
	Format   []string `form:"format"`
	Title    *string  `form:"title"`
	Sort     *string  `form:"sort"`
	Page     *int     `form:"page"`
	PageSize *int     `form:"pageSize"`
}

type GetScanErrorsParams struct {
	Library string `form:"library"`
}

type Error struct {
	Error string `json:"error"`
}
