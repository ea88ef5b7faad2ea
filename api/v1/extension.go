package v1

import (
	"strings"

	"github.com/tupyy/audiobook-scanner/internal/models"
	"github.com/tupyy/audiobook-scanner/internal/store"
	"github.com/tupyy/audiobook-scanner/internal/util"
)

func NewScanStatus(status models.ScanStatus) ScanStatus {
	var s ScanStatus

	switch status.State {
	case models.ScanStateScanning:
		s.State = ScanStatusStateScanning
	case models.ScanStateCompleted:
		s.State = ScanStatusStateCompleted
	case models.ScanStateError:
		s.State = ScanStatusStateError
	default:
		s.State = ScanStatusStateReady
	}

	if status.LibraryID != "" {
		s.LibraryId = &status.LibraryID
	}
	if status.Root != "" {
		s.Path = &status.Root
	}
	if !status.StartedAt.IsZero() {
		s.StartedAt = &status.StartedAt
	}
	if !status.FinishedAt.IsZero() {
		s.FinishedAt = &status.FinishedAt
	}
	s.Discovered = status.Discovered

	p := status.Progress
	s.Progress = ScanProgress{
		Total:         p.Total,
		Completed:     p.Completed,
		Successful:    p.Successful,
		Failed:        p.Failed,
		Percentage:    util.Percent(p.CompletionPercentage()),
		Throughput:    util.Round(p.Throughput),
		ActiveWorkers: p.ActiveWorkers,
	}
	if p.ETA != nil {
		eta := p.ETA.Seconds()
		s.Progress.EtaSeconds = &eta
	}

	if status.Error != nil {
		e := status.Error.Error()
		s.Error = &e
	}

	return s
}

// NewAudiobookFromModel converts a models.Audiobook to an API Audiobook.
func NewAudiobookFromModel(b models.Audiobook) Audiobook {
	a := Audiobook{
		Id:        b.ID,
		LibraryId: b.LibraryID,
		Path:      b.Path,
		Title:     b.Title,
		Author:    b.Author,
		Format:    b.Format,
		SizeBytes: b.SizeBytes,
		ScannedAt: b.ScannedAt,
	}

	if b.Narrator != "" {
		a.Narrator = &b.Narrator
	}
	if b.Album != "" {
		a.Album = &b.Album
	}
	if b.Genre != "" {
		a.Genre = &b.Genre
	}
	if b.Year > 0 {
		a.Year = &b.Year
	}
	if b.Track > 0 {
		a.Track = &b.Track
	}

	return a
}

func NewScanError(e models.ScanError) ScanError {
	return ScanError{Path: e.Path, Error: e.Error, CreatedAt: e.CreatedAt}
}

// ParseSort converts "title:desc,author" into store sort params. A field
// without direction sorts ascending.
func ParseSort(sort string) []store.SortParam {
	var params []store.SortParam
	for _, part := range strings.Split(sort, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		field, dir, _ := strings.Cut(part, ":")
		params = append(params, store.SortParam{
			Field: field,
			Desc:  strings.EqualFold(dir, "desc"),
		})
	}
	return params
}
