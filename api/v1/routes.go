package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /scan)
	GetScanStatus(c *gin.Context)
	// (POST /scan)
	StartScan(c *gin.Context)
	// (DELETE /scan)
	StopScan(c *gin.Context)
	// (GET /scan/errors)
	GetScanErrors(c *gin.Context, params GetScanErrorsParams)
	// (GET /audiobooks)
	GetAudiobooks(c *gin.Context, params GetAudiobooksParams)
	// (GET /audiobooks/{id})
	GetAudiobook(c *gin.Context, id uuid.UUID)
}

type serverWrapper struct {
	handler ServerInterface
}

func (w *serverWrapper) GetScanErrors(c *gin.Context) {
	var params GetScanErrorsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, Error{Error: "invalid query parameters: " + err.Error()})
		return
	}
	w.handler.GetScanErrors(c, params)
}

func (w *serverWrapper) GetAudiobooks(c *gin.Context) {
	var params GetAudiobooksParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, Error{Error: "invalid query parameters: " + err.Error()})
		return
	}
	w.handler.GetAudiobooks(c, params)
}

func (w *serverWrapper) GetAudiobook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, Error{Error: "invalid audiobook id"})
		return
	}
	w.handler.GetAudiobook(c, id)
}

// RegisterHandlers adds each server route to the router.
func RegisterHandlers(router gin.IRouter, si ServerInterface) {
	wrapper := &serverWrapper{handler: si}

	router.GET("/scan", si.GetScanStatus)
	router.POST("/scan", si.StartScan)
	router.DELETE("/scan", si.StopScan)
	router.GET("/scan/errors", wrapper.GetScanErrors)
	router.GET("/audiobooks", wrapper.GetAudiobooks)
	router.GET("/audiobooks/:id", wrapper.GetAudiobook)
}
