package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"

	"github.com/tupyy/audiobook-scanner/internal/config"
	"github.com/tupyy/audiobook-scanner/pkg/scheduler"
)

func subcommand(root *cobra.Command, name string) *cobra.Command {
	for _, c := range root.Commands() {
		if c.Name() == name {
			return c
		}
	}
	Fail("missing subcommand " + name)
	return nil
}

var _ = Describe("scanner command", func() {
	It("should map flags onto the configuration", func() {
		cmd := subcommand(newRootCmd(), "scan")
		Expect(cmd.ParseFlags([]string{
			"--workers", "3",
			"--ordering", "global",
			"--worker-timeout", "200ms",
			"--batch-size", "7",
			"--log-level", "warn",
		})).To(Succeed())

		cfg, err := loadConfig(cmd)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.LogLevel).To(Equal("warn"))
		Expect(cfg.Scanner.BatchSize).To(Equal(7))

		poolCfg, err := cfg.Scanner.PoolConfig()
		Expect(err).NotTo(HaveOccurred())
		Expect(poolCfg.WorkerCount).To(Equal(3))
		Expect(poolCfg.WorkerTimeout).To(Equal(200 * time.Millisecond))
		Expect(poolCfg.Ordering).To(Equal(scheduler.OrderingGlobal))
	})

	It("should read a configuration file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "scanner.yaml")
		Expect(os.WriteFile(path, []byte("scanner:\n  preset: conservative\n  batch-size: 25\n"), 0o600)).To(Succeed())

		cmd := subcommand(newRootCmd(), "scan")
		Expect(cmd.ParseFlags([]string{"--config", path})).To(Succeed())

		cfg, err := loadConfig(cmd)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Scanner.Preset).To(Equal("conservative"))
		Expect(cfg.Scanner.BatchSize).To(Equal(25))
	})

	It("should reject invalid flag values", func() {
		cmd := subcommand(newRootCmd(), "serve")
		Expect(cmd.ParseFlags([]string{"--mode", "staging"})).To(Succeed())

		_, err := loadConfig(cmd)
		Expect(err).To(HaveOccurred())
	})

	It("should scan a library and write a report", func() {
		// Given a library with an m4b file and an mp3 chapter
		root := GinkgoT().TempDir()
		for _, name := range []string{"Frank Herbert/Dune.m4b", "Isaac Asimov/Foundation/01.mp3", "cover.jpg"} {
			path := filepath.Join(root, name)
			Expect(os.MkdirAll(filepath.Dir(path), 0o755)).To(Succeed())
			Expect(os.WriteFile(path, make([]byte, 128), 0o600)).To(Succeed())
		}
		reportPath := filepath.Join(GinkgoT().TempDir(), "scan.xlsx")

		cfg := config.NewConfiguration()
		cfg.Scanner.Preset = scheduler.PresetConservative
		cfg.Scanner.WorkerTimeout = 50 * time.Millisecond

		// When the library is scanned
		var out bytes.Buffer
		Expect(runScan(context.Background(), &out, cfg, "main", root, reportPath)).To(Succeed())

		// Then a summary is printed and the report exists
		Expect(out.String()).To(ContainSubstring("[done] library=main state=completed files=2"))
		Expect(out.String()).To(ContainSubstring("ok=2"))
		Expect(reportPath).To(BeARegularFile())
	})
})
