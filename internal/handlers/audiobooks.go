package handlers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	v1 "github.com/tupyy/audiobook-scanner/api/v1"
	"github.com/tupyy/audiobook-scanner/internal/services"
	srvErrors "github.com/tupyy/audiobook-scanner/pkg/errors"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	// keeps (page-1)*pageSize far from overflowing the SQL offset
	maxPage = math.MaxInt32
)

// GetAudiobooks returns the list of audiobooks with filtering and pagination
// (GET /audiobooks)
func (h *Handler) GetAudiobooks(c *gin.Context, params v1.GetAudiobooksParams) {
	page := 1
	if params.Page != nil && *params.Page > 0 {
		page = min(*params.Page, maxPage)
	}
	pageSize := defaultPageSize
	if params.PageSize != nil && *params.PageSize > 0 {
		pageSize = *params.PageSize
		if pageSize > maxPageSize {
			pageSize = maxPageSize
		}
	}

	svcParams := services.AudiobookListParams{
		Libraries: params.Library,
		Authors:   params.Author,
		Formats:   params.Format,
		Limit:     uint64(pageSize),
		Offset:    uint64(page-1) * uint64(pageSize),
	}
	if params.Title != nil {
		svcParams.Title = *params.Title
	}
	if params.Sort != nil {
		svcParams.Sort = v1.ParseSort(*params.Sort)
	}

	result, err := h.audiobookSrv.List(c.Request.Context(), svcParams)
	if err != nil {
		zap.S().Named("audiobook_handler").Errorw("failed to list audiobooks", "error", err)
		c.JSON(http.StatusInternalServerError, v1.Error{Error: "failed to list audiobooks"})
		return
	}

	pageCount := (result.Total + pageSize - 1) / pageSize
	if pageCount == 0 {
		pageCount = 1
	}

	books := make([]v1.Audiobook, 0, len(result.Audiobooks))
	for _, b := range result.Audiobooks {
		books = append(books, v1.NewAudiobookFromModel(b))
	}

	c.JSON(http.StatusOK, v1.AudiobookListResponse{
		Audiobooks: books,
		Page:       page,
		PageCount:  pageCount,
		Total:      result.Total,
	})
}

// GetAudiobook returns a single audiobook
// (GET /audiobooks/{id})
func (h *Handler) GetAudiobook(c *gin.Context, id uuid.UUID) {
	book, err := h.audiobookSrv.Get(c.Request.Context(), id)
	if err != nil {
		if srvErrors.IsResourceNotFoundError(err) {
			c.JSON(http.StatusNotFound, v1.Error{Error: err.Error()})
			return
		}
		zap.S().Named("audiobook_handler").Errorw("failed to get audiobook", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, v1.Error{Error: "failed to get audiobook"})
		return
	}

	c.JSON(http.StatusOK, v1.NewAudiobookFromModel(*book))
}
