package handlers

import (
	v1 "github.com/tupyy/audiobook-scanner/api/v1"
	"github.com/tupyy/audiobook-scanner/internal/services"
)

var _ v1.ServerInterface = (*Handler)(nil)

type Handler struct {
	scanSrv      *services.ScanService
	audiobookSrv *services.AudiobookService
}

func New(scanSrv *services.ScanService, audiobookSrv *services.AudiobookService) *Handler {
	return &Handler{
		scanSrv:      scanSrv,
		audiobookSrv: audiobookSrv,
	}
}
