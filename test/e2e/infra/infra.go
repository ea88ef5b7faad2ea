package infra

import (
	"context"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	v1 "github.com/tupyy/audiobook-scanner/api/v1"
	"github.com/tupyy/audiobook-scanner/internal/config"
	"github.com/tupyy/audiobook-scanner/internal/extractor"
	"github.com/tupyy/audiobook-scanner/internal/handlers"
	"github.com/tupyy/audiobook-scanner/internal/server"
	"github.com/tupyy/audiobook-scanner/internal/services"
	"github.com/tupyy/audiobook-scanner/internal/store"
)

// ScannerServer runs the whole scanner stack in-process behind a real
// HTTP listener.
type ScannerServer struct {
	httpServer *httptest.Server
	store      *store.Store
	scanSrv    *services.ScanService
}

func StartScanner(cfg *config.Configuration) (*ScannerServer, error) {
	db, err := store.NewDB(cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	st := store.NewStore(db)
	if err := st.Migrate(context.Background()); err != nil {
		st.Close()
		return nil, err
	}

	poolCfg, err := cfg.Scanner.PoolConfig()
	if err != nil {
		st.Close()
		return nil, err
	}

	scanSrv := services.NewScanService(st, extractor.New().Extract, services.ScanOptions{
		Pool:          poolCfg,
		BatchSize:     cfg.Scanner.BatchSize,
		SubmitTimeout: cfg.Scanner.SubmitTimeout,
		PruneStale:    cfg.Scanner.PruneStale,
	})
	h := handlers.New(scanSrv, services.NewAudiobookService(st))

	srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
		v1.RegisterHandlers(router, h)
	})
	if err != nil {
		st.Close()
		return nil, err
	}

	return &ScannerServer{
		httpServer: httptest.NewServer(srv.Handler()),
		store:      st,
		scanSrv:    scanSrv,
	}, nil
}

func (s *ScannerServer) URL() string {
	return s.httpServer.URL
}

func (s *ScannerServer) Stop() error {
	s.scanSrv.Stop()
	s.httpServer.Close()
	return s.store.Close()
}

// CreateLibrary writes files under root. Each file holds size zero bytes, so
// metadata is inferred from the path.
func CreateLibrary(root string, size int, names ...string) error {
	for _, name := range names {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, make([]byte, size), 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}
