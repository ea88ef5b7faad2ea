package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	v1 "github.com/tupyy/audiobook-scanner/api/v1"
	"github.com/tupyy/audiobook-scanner/internal/config"
	"github.com/tupyy/audiobook-scanner/internal/extractor"
	"github.com/tupyy/audiobook-scanner/internal/handlers"
	"github.com/tupyy/audiobook-scanner/internal/server"
	"github.com/tupyy/audiobook-scanner/internal/services"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(defaults config.Server) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scan and audiobook HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = zap.L().Sync() }()

			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().String("mode", defaults.ServerMode, "server mode: dev or prod")
	cmd.Flags().Int("http-port", defaults.HTTPPort, "http listen port")
	cmd.Flags().Bool("auth-enabled", false, "require a bearer JWT on api requests")
	cmd.Flags().String("auth-secret-file", "", "file holding the HS256 signing secret")
	return cmd
}

func runServe(ctx context.Context, cfg *config.Configuration) error {
	logger := zap.S().Named("main")

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	poolCfg, err := cfg.Scanner.PoolConfig()
	if err != nil {
		return err
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
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx)
	}()

	select {
	case err = <-errCh:
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err = srv.Stop(shutdownCtx)
	}

	scanSrv.Stop()
	return err
}
