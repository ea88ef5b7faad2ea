package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tupyy/audiobook-scanner/internal/config"
	"github.com/tupyy/audiobook-scanner/internal/extractor"
	"github.com/tupyy/audiobook-scanner/internal/models"
	"github.com/tupyy/audiobook-scanner/internal/report"
	"github.com/tupyy/audiobook-scanner/internal/services"
	"github.com/tupyy/audiobook-scanner/internal/store"
	"github.com/tupyy/audiobook-scanner/internal/util"
)

func newScanCmd() *cobra.Command {
	var (
		library    string
		reportPath string
	)

	cmd := &cobra.Command{
		Use:   "scan PATH",
		Short: "Scan a library directory and store its audiobooks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = zap.L().Sync() }()

			root, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			if library == "" {
				library = filepath.Base(root)
			}

			return runScan(cmd.Context(), cmd.OutOrStdout(), cfg, library, root, reportPath)
		},
	}

	cmd.Flags().StringVar(&library, "library", "", "library id, defaults to the directory name")
	cmd.Flags().StringVar(&reportPath, "report", "", "write an xlsx report to this file")
	return cmd
}

func runScan(ctx context.Context, out io.Writer, cfg *config.Configuration, library, root, reportPath string) error {
	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	poolCfg, err := cfg.Scanner.PoolConfig()
	if err != nil {
		return err
	}

	printer := newProgressPrinter(out)
	svc := services.NewScanService(st, extractor.New().Extract, services.ScanOptions{
		Pool:          poolCfg,
		BatchSize:     cfg.Scanner.BatchSize,
		SubmitTimeout: cfg.Scanner.SubmitTimeout,
		PruneStale:    cfg.Scanner.PruneStale,
		OnProgress:    printer.Print,
	})

	if err := svc.Start(library, root); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		svc.Stop()
	}()

	scanErr := svc.Wait(context.Background())
	printer.Summary(svc.Status())
	if scanErr != nil {
		return scanErr
	}

	if reportPath == "" {
		return nil
	}

	books, err := st.Audiobook().List(context.Background(), store.ByLibrary(library), store.WithDefaultSort())
	if err != nil {
		return err
	}
	scanErrors, err := st.ScanError().List(context.Background(), library)
	if err != nil {
		return err
	}
	if err := report.Save(reportPath, books, scanErrors); err != nil {
		return err
	}
	fmt.Fprintf(out, "report written to %s\n", reportPath)
	return nil
}

func openStore(ctx context.Context, cfg *config.Configuration) (*store.Store, error) {
	db, err := store.NewDB(cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	st := store.NewStore(db)
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, err
	}
	return st, nil
}

type progressPrinter struct {
	mu    sync.Mutex
	out   io.Writer
	label func(a ...any) string
	ok    func(a ...any) string
	bad   func(a ...any) string
}

func newProgressPrinter(out io.Writer) *progressPrinter {
	return &progressPrinter{
		out:   out,
		label: color.New(color.FgCyan, color.Bold).SprintFunc(),
		ok:    color.New(color.FgGreen).SprintFunc(),
		bad:   color.New(color.FgRed).SprintFunc(),
	}
}

func (p *progressPrinter) Print(s models.ScanStatus) {
	if s.State != models.ScanStateScanning {
		return
	}
	pr := s.Progress

	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, "%s %6.2f%% %d/%d found=%d %s %s %.1f files/s workers=%d eta=%s\n",
		p.label("[scan]"),
		util.Percent(pr.CompletionPercentage()),
		pr.Completed, pr.Total, s.Discovered,
		p.ok(fmt.Sprintf("ok=%d", pr.Successful)),
		p.bad(fmt.Sprintf("failed=%d", pr.Failed)),
		pr.Throughput,
		pr.ActiveWorkers,
		util.DurationOrDash(pr.ETA),
	)
}

func (p *progressPrinter) Summary(s models.ScanStatus) {
	p.mu.Lock()
	defer p.mu.Unlock()

	state := p.ok(string(s.State))
	if s.State == models.ScanStateError {
		state = p.bad(string(s.State))
	}
	fmt.Fprintf(p.out, "%s library=%s state=%s files=%d %s %s took=%s\n",
		p.label("[done]"),
		s.LibraryID,
		state,
		s.Discovered,
		p.ok(fmt.Sprintf("ok=%d", s.Progress.Successful)),
		p.bad(fmt.Sprintf("failed=%d", s.Progress.Failed)),
		s.FinishedAt.Sub(s.StartedAt).Truncate(time.Millisecond),
	)
	if s.Error != nil {
		fmt.Fprintf(p.out, "%s %v\n", p.bad("error:"), s.Error)
	}
}
