package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/tupyy/audiobook-scanner/internal/models"
	srvErrors "github.com/tupyy/audiobook-scanner/pkg/errors"
)

type AudiobookStore struct {
	db QueryInterceptor
}

func NewAudiobookStore(db QueryInterceptor) *AudiobookStore {
	return &AudiobookStore{db: db}
}

// Upsert inserts the audiobooks or updates the ones already stored.
func (s *AudiobookStore) Upsert(ctx context.Context, books ...*models.Audiobook) error {
	if len(books) == 0 {
		return nil
	}

	builder := sq.Insert(tableAudiobooks).Columns(audiobookColumns...)
	for _, b := range books {
		builder = builder.Values(
			b.ID.String(),
			b.LibraryID,
			b.Path,
			b.Title,
			b.Author,
			b.Narrator,
			b.Album,
			b.Genre,
			b.Year,
			b.Track,
			b.Format,
			b.SizeBytes,
			b.ModifiedAt,
			b.ScannedAt,
		)
	}

	query, args, err := builder.Suffix(audiobookUpsertSuffix).ToSql()
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, query, args...)
	return err
}

func (s *AudiobookStore) Get(ctx context.Context, id uuid.UUID) (*models.Audiobook, error) {
	query, args, err := sq.Select(audiobookColumns...).
		From(tableAudiobooks).
		Where(sq.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return nil, err
	}

	book, err := scanAudiobook(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, srvErrors.NewAudiobookNotFoundError(id.String())
	}
	return book, err
}

func (s *AudiobookStore) List(ctx context.Context, opts ...ListOption) ([]models.Audiobook, error) {
	builder := sq.Select(audiobookColumns...).From(tableAudiobooks)
	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []models.Audiobook
	for rows.Next() {
		book, err := scanAudiobook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, *book)
	}

	return books, rows.Err()
}

func (s *AudiobookStore) Count(ctx context.Context, opts ...ListOption) (int, error) {
	builder := sq.Select("COUNT(*)").From(tableAudiobooks)
	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}

// DeleteStale removes the audiobooks of a library that were not seen by the
// scan started at scanStart.
func (s *AudiobookStore) DeleteStale(ctx context.Context, libraryID string, scanStart time.Time) (int64, error) {
	query, args, err := sq.Delete(tableAudiobooks).
		Where(sq.Eq{"library_id": libraryID}).
		Where(sq.Lt{"scanned_at": scanStart}).
		ToSql()
	if err != nil {
		return 0, err
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteByPath removes the audiobook stored for path in a library.
func (s *AudiobookStore) DeleteByPath(ctx context.Context, libraryID, path string) (int64, error) {
	query, args, err := sq.Delete(tableAudiobooks).
		Where(sq.Eq{"library_id": libraryID, "path": path}).
		ToSql()
	if err != nil {
		return 0, err
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAudiobook(row rowScanner) (*models.Audiobook, error) {
	var (
		book models.Audiobook
		id   string
	)
	err := row.Scan(
		&id,
		&book.LibraryID,
		&book.Path,
		&book.Title,
		&book.Author,
		&book.Narrator,
		&book.Album,
		&book.Genre,
		&book.Year,
		&book.Track,
		&book.Format,
		&book.SizeBytes,
		&book.ModifiedAt,
		&book.ScannedAt,
	)
	if err != nil {
		return nil, err
	}

	book.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	return &book, nil
}

type ListOption func(sq.SelectBuilder) sq.SelectBuilder

func ByLibrary(libraryIDs ...string) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if len(libraryIDs) == 0 {
			return b
		}
		return b.Where(sq.Eq{"library_id": libraryIDs})
	}
}

func ByAuthors(authors ...string) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if len(authors) == 0 {
			return b
		}
		return b.Where(sq.Eq{"author": authors})
	}
}

func ByFormats(formats ...string) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if len(formats) == 0 {
			return b
		}
		return b.Where(sq.Eq{"format": formats})
	}
}

// ByTitle matches titles containing the given text, ignoring case.
func ByTitle(text string) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if text == "" {
			return b
		}
		return b.Where(sq.ILike{"title": "%" + text + "%"})
	}
}

func WithLimit(limit uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Limit(limit)
	}
}

func WithOffset(offset uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Offset(offset)
	}
}

type SortParam struct {
	Field string
	Desc  bool
}

var apiFieldToDBColumn = map[string]string{
	"title":     "title",
	"author":    "author",
	"year":      "year",
	"format":    "format",
	"size":      "size_bytes",
	"scannedAt": "scanned_at",
}

func WithDefaultSort() ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.OrderBy("author", "title", "track", "path")
	}
}

func WithSort(sorts []SortParam) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		var orderClauses []string
		for _, s := range sorts {
			col, ok := apiFieldToDBColumn[s.Field]
			if !ok {
				continue
			}
			if s.Desc {
				orderClauses = append(orderClauses, col+" DESC")
			} else {
				orderClauses = append(orderClauses, col+" ASC")
			}
		}
		orderClauses = append(orderClauses, "path")
		return b.OrderBy(orderClauses...)
	}
}
