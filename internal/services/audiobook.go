package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/tupyy/audiobook-scanner/internal/models"
	"github.com/tupyy/audiobook-scanner/internal/store"
)

type AudiobookService struct {
	store *store.Store
}

func NewAudiobookService(st *store.Store) *AudiobookService {
	return &AudiobookService{store: st}
}

type AudiobookListParams struct {
	Libraries []string
	Authors   []string
	Formats   []string
	Title     string
	Sort      []store.SortParam
	Limit     uint64
	Offset    uint64
}

type AudiobookListResult struct {
	Audiobooks []models.Audiobook
	Total      int
}

func (s *AudiobookService) List(ctx context.Context, params AudiobookListParams) (*AudiobookListResult, error) {
	filters := s.buildFilters(params)

	opts := append([]store.ListOption{}, filters...)
	if len(params.Sort) > 0 {
		opts = append(opts, store.WithSort(params.Sort))
	} else {
		opts = append(opts, store.WithDefaultSort())
	}
	if params.Limit > 0 {
		opts = append(opts, store.WithLimit(params.Limit))
	}
	if params.Offset > 0 {
		opts = append(opts, store.WithOffset(params.Offset))
	}

	books, err := s.store.Audiobook().List(ctx, opts...)
	if err != nil {
		return nil, err
	}

	// total ignores pagination
	total, err := s.store.Audiobook().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	return &AudiobookListResult{
		Audiobooks: books,
		Total:      total,
	}, nil
}

func (s *AudiobookService) Get(ctx context.Context, id uuid.UUID) (*models.Audiobook, error) {
	return s.store.Audiobook().Get(ctx, id)
}

func (s *AudiobookService) ScanErrors(ctx context.Context, libraryID string) ([]models.ScanError, error) {
	return s.store.ScanError().List(ctx, libraryID)
}

func (s *AudiobookService) buildFilters(params AudiobookListParams) []store.ListOption {
	var opts []store.ListOption

	if len(params.Libraries) > 0 {
		opts = append(opts, store.ByLibrary(params.Libraries...))
	}
	if len(params.Authors) > 0 {
		opts = append(opts, store.ByAuthors(params.Authors...))
	}
	if len(params.Formats) > 0 {
		opts = append(opts, store.ByFormats(params.Formats...))
	}
	if params.Title != "" {
		opts = append(opts, store.ByTitle(params.Title))
	}

	return opts
}
