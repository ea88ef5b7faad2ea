package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/tupyy/audiobook-scanner/internal/models"
)

// ScanErrorStore keeps the files that failed during the last scan of each
// library.
type ScanErrorStore struct {
	db QueryInterceptor
}

func NewScanErrorStore(db QueryInterceptor) *ScanErrorStore {
	return &ScanErrorStore{db: db}
}

func (s *ScanErrorStore) Save(ctx context.Context, scanErrs ...models.ScanError) error {
	if len(scanErrs) == 0 {
		return nil
	}

	builder := sq.Insert(tableScanErrors).Columns("library_id", "path", "error", "created_at")
	for _, e := range scanErrs {
		builder = builder.Values(e.LibraryID, e.Path, e.Error, e.CreatedAt)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, query, args...)
	return err
}

func (s *ScanErrorStore) List(ctx context.Context, libraryID string) ([]models.ScanError, error) {
	query, args, err := sq.Select("library_id", "path", "error", "created_at").
		From(tableScanErrors).
		Where(sq.Eq{"library_id": libraryID}).
		OrderBy("path").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.ScanError
	for rows.Next() {
		var e models.ScanError
		if err := rows.Scan(&e.LibraryID, &e.Path, &e.Error, &e.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

func (s *ScanErrorStore) DeleteByLibrary(ctx context.Context, libraryID string) error {
	query, args, err := sq.Delete(tableScanErrors).Where(sq.Eq{"library_id": libraryID}).ToSql()
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, query, args...)
	return err
}
