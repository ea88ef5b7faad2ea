package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/tupyy/audiobook-scanner/api/v1"
	srvErrors "github.com/tupyy/audiobook-scanner/pkg/errors"
)

// GetScanStatus returns the state of the current or last scan
// (GET /scan)
func (h *Handler) GetScanStatus(c *gin.Context) {
	c.JSON(http.StatusOK, v1.NewScanStatus(h.scanSrv.Status()))
}

// StartScan starts scanning a library in the background
// (POST /scan)
func (h *Handler) StartScan(c *gin.Context) {
	var req v1.StartScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Error: "invalid request body"})
		return
	}

	req.LibraryId = strings.TrimSpace(req.LibraryId)
	req.Path = strings.TrimSpace(req.Path)
	if req.LibraryId == "" || req.Path == "" {
		c.JSON(http.StatusBadRequest, v1.Error{Error: "libraryId and path are required"})
		return
	}

	if err := h.scanSrv.Start(req.LibraryId, req.Path); err != nil {
		switch {
		case srvErrors.IsScanInProgressError(err):
			c.JSON(http.StatusConflict, v1.Error{Error: err.Error()})
		case srvErrors.IsInvalidLibraryError(err):
			c.JSON(http.StatusBadRequest, v1.Error{Error: err.Error()})
		default:
			zap.S().Named("scan_handler").Errorw("failed to start scan", "library", req.LibraryId, "error", err)
			c.JSON(http.StatusInternalServerError, v1.Error{Error: "failed to start scan"})
		}
		return
	}

	c.JSON(http.StatusAccepted, v1.NewScanStatus(h.scanSrv.Status()))
}

// StopScan stops the running scan, if any
// (DELETE /scan)
func (h *Handler) StopScan(c *gin.Context) {
	h.scanSrv.Stop()
	c.JSON(http.StatusOK, v1.NewScanStatus(h.scanSrv.Status()))
}

// GetScanErrors lists the files that failed during the last scan of a library
// (GET /scan/errors)
func (h *Handler) GetScanErrors(c *gin.Context, params v1.GetScanErrorsParams) {
	if params.Library == "" {
		c.JSON(http.StatusBadRequest, v1.Error{Error: "library is required"})
		return
	}

	scanErrors, err := h.audiobookSrv.ScanErrors(c.Request.Context(), params.Library)
	if err != nil {
		zap.S().Named("scan_handler").Errorw("failed to list scan errors", "error", err)
		c.JSON(http.StatusInternalServerError, v1.Error{Error: "failed to list scan errors"})
		return
	}

	resp := v1.ScanErrorListResponse{Errors: make([]v1.ScanError, 0, len(scanErrors))}
	for _, e := range scanErrors {
		resp.Errors = append(resp.Errors, v1.NewScanError(e))
	}
	c.JSON(http.StatusOK, resp)
}
