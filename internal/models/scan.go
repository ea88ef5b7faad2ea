package models

import (
	"fmt"
	"time"

	"github.com/tupyy/audiobook-scanner/pkg/scheduler"
)

// ScanState represents the current state of the scan service.
type ScanState string

const (
	// ScanStateReady - waiting for a scan request
	ScanStateReady ScanState = "ready"
	// ScanStateScanning - files are being discovered and processed
	ScanStateScanning ScanState = "scanning"
	// ScanStateCompleted - the last scan processed every discovered file
	ScanStateCompleted ScanState = "completed"
	// ScanStateError - the last scan stopped on an error
	ScanStateError ScanState = "error"
)

func ParseScanState(s string) (ScanState, error) {
	switch ScanState(s) {
	case ScanStateReady, ScanStateScanning, ScanStateCompleted, ScanStateError:
		return ScanState(s), nil
	default:
		return "", fmt.Errorf("invalid scan state: %s", s)
	}
}

// ScanStatus holds the state of the scan service and the progress of the
// current or last scan.
type ScanStatus struct {
	State      ScanState
	LibraryID  string
	Root       string
	StartedAt  time.Time
	FinishedAt time.Time
	Discovered int
	Progress   scheduler.Progress
	Error      error
}
