// Command iconfix is the CLI entrypoint for the AssetForge icon repair
// pipeline.
//
// It parses flags, validates configuration and the asset root, and either
// runs tree diagnostics (--check) or the repair pipeline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/backmassage/assetforge/internal/check"
	"github.com/backmassage/assetforge/internal/config"
	"github.com/backmassage/assetforge/internal/display"
	"github.com/backmassage/assetforge/internal/logging"
	"github.com/backmassage/assetforge/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" (no make), these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "iconfix: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "iconfix: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(cfg.ColorMode, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "iconfix: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available. All output goes through log from here on.
	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	// Resolve the root once so every logged path is unambiguous.
	rootAbs, err := absPath(cfg.RootDir)
	if err != nil {
		log.Error("Asset directory not found: %s", cfg.RootDir)
		return 1
	}
	cfg.RootDir = rootAbs

	if err := check.CheckRoot(cfg.RootDir); err != nil {
		log.Error("%v", err)
		return 1
	}

	log.Info("=== AssetForge iconfix v%s (%s) ===", version, commit)
	log.Info("Root: %s", cfg.RootDir)
	if cfg.DryRun {
		log.Warn("DRY RUN, no files will be written")
	}
	log.Info("")

	// Phase 3: Signal handling. Cancel the context on SIGINT/SIGTERM so the
	// pipeline stops between files without leaving a partial write.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current file...")
		cancel()
	}()

	// Phase 4: Run the pipeline (discover, sniff, repair, rewrite).
	// Per-file failures are counted and logged but do not change the exit
	// code; only structural errors do.
	if _, err := pipeline.Run(ctx, &cfg, log); err != nil {
		log.Error("%v", err)
		return 1
	}
	return 0
}

// absPath returns the absolute, symlink-resolved path.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
