// Package report renders scan results as an xlsx workbook with an
// "Audiobooks" sheet and an "Errors" sheet.
package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/tupyy/audiobook-scanner/internal/models"
	"github.com/tupyy/audiobook-scanner/internal/util"
)

const (
	SheetAudiobooks = "Audiobooks"
	SheetErrors     = "Errors"

	defaultSheet = "Sheet1"
	columnWidth  = 24
)

var (
	audiobookHeader = []any{"Title", "Author", "Narrator", "Album", "Genre", "Year", "Track", "Format", "Size (MB)", "Path", "Scanned At"}
	errorHeader     = []any{"Path", "Error", "Time"}
)

// Write renders books and scan errors as a workbook to w.
func Write(w io.Writer, books []models.Audiobook, scanErrors []models.ScanError) error {
	f, err := build(books, scanErrors)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// Save writes the workbook to path, replacing any existing file.
func Save(path string, books []models.Audiobook, scanErrors []models.ScanError) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}

	if err := Write(out, books, scanErrors); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func build(books []models.Audiobook, scanErrors []models.ScanError) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(defaultSheet, SheetAudiobooks); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(SheetErrors); err != nil {
		f.Close()
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}

	rows := make([][]any, 0, len(books))
	for _, b := range books {
		rows = append(rows, []any{
			b.Title,
			b.Author,
			b.Narrator,
			b.Album,
			b.Genre,
			b.Year,
			b.Track,
			b.Format,
			util.BytesToMB(b.SizeBytes),
			b.Path,
			b.ScannedAt.Format(time.RFC3339),
		})
	}
	if err := writeSheet(f, SheetAudiobooks, audiobookHeader, rows, headerStyle); err != nil {
		f.Close()
		return nil, err
	}

	rows = make([][]any, 0, len(scanErrors))
	for _, e := range scanErrors {
		rows = append(rows, []any{e.Path, e.Error, e.CreatedAt.Format(time.RFC3339)})
	}
	if err := writeSheet(f, SheetErrors, errorHeader, rows, headerStyle); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

func writeSheet(f *excelize.File, sheet string, header []any, rows [][]any, headerStyle int) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+2, err)
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", lastCol, columnWidth)
}
