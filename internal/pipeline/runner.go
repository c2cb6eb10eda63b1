package pipeline

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/backmassage/assetforge/internal/config"
	"github.com/backmassage/assetforge/internal/display"
	"github.com/backmassage/assetforge/internal/icon"
	"github.com/backmassage/assetforge/internal/logging"
	"github.com/backmassage/assetforge/internal/probe"
)

// Run is the top-level batch entry point. It discovers assets under
// cfg.RootDir, processes each sequentially, and returns aggregate counters.
// Per-file errors are logged and skipped; only a failure of the walk itself
// is returned as an error.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	files, err := Discover(cfg.RootDir, cfg.Pattern)
	if err != nil {
		return stats, fmt.Errorf("discover assets: %w", err)
	}
	stats.Total = len(files)
	log.Info("Scanning %s: %s match %s",
		cfg.RootDir, display.Pluralize(stats.Total, "file", "files"), cfg.Pattern)

	detector := icon.CornerSampler{}
	for i, path := range files {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		processFile(cfg, log, path, detector, &stats)
	}

	logSummary(log, &stats)
	return stats, nil
}

// processFile handles one asset: read, sniff, repair a masquerading JPEG,
// then classify and remove a white background when the image is opaque.
// The file is either rewritten once with its final canonical bytes or left
// exactly as found; the sidecar is invalidated whenever bytes change.
func processFile(cfg *config.Config, log *logging.Logger, path string, det icon.BackgroundDetector, stats *RunStats) {
	base := filepath.Base(path)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("Cannot read %s: %v", path, err)
		stats.Failed++
		return
	}

	enc := probe.Sniff(data)
	log.Debug(cfg.Verbose, "[%d/%d] %s: sniffed %s", stats.Current, stats.Total, base, enc)

	switch {
	case enc == probe.EncodingPNG || enc.Repairable():
		// Proceed.
	case enc == probe.EncodingUnknown:
		log.Warn("Unrecognized contents, skipping: %s", path)
		stats.Skipped++
		return
	default:
		log.Warn("%s contents behind a %s name, skipping: %s", enc, filepath.Ext(path), path)
		stats.Skipped++
		return
	}

	img, _, err := icon.Decode(data)
	if err != nil {
		log.Error("Cannot decode %s (%s): %v", path, enc, err)
		stats.Failed++
		return
	}

	repair := enc.Repairable()
	if repair {
		log.Info("Detected %s masquerading as PNG: %s", enc, path)
	}

	// Background pass eligibility: only images with no transparency in use.
	// Anything already carrying alpha was authored that way or rewritten on a
	// previous run and must be left alone.
	removable := false
	if icon.Opaque(img) {
		verdict := det.Classify(img)
		removable = verdict.Removable
		if !removable {
			log.Debug(cfg.Verbose, "%s: background not removable (ref %v)", base, verdict.Ref)
		}
	} else {
		log.Debug(cfg.Verbose, "%s: already has transparency", base)
	}

	if !repair && !removable {
		// True no-op. Write-avoidance here is what makes repeat runs
		// byte-identical, not just an optimization.
		return
	}

	var out image.Image = img
	if removable {
		out = icon.RemoveBackground(img)
	}

	encoded, err := icon.EncodePNG(out)
	if err != nil {
		log.Error("Cannot encode %s: %v", path, err)
		stats.Failed++
		return
	}

	if cfg.DryRun {
		if repair {
			log.Success("[DRY] Would re-encode as PNG: %s", path)
			stats.Repaired++
		}
		if removable {
			log.Success("[DRY] Would remove white background: %s", path)
			stats.Transparent++
		}
		return
	}

	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		log.Error("Cannot write %s: %v", path, err)
		stats.Failed++
		return
	}
	stats.BytesWritten += int64(len(encoded))

	if repair {
		stats.Repaired++
		log.Success("Converted to valid PNG: %s", path)
	}
	if removable {
		stats.Transparent++
		log.Success("Removed white background: %s", path)
	}

	cleanSidecar(cfg, log, path)
}

// cleanSidecar deletes the asset's companion metadata so the engine
// re-imports the changed pixels. Disabled by --no-sidecar-clean.
func cleanSidecar(cfg *config.Config, log *logging.Logger, path string) {
	if !cfg.CleanSidecars {
		return
	}
	removed, err := removeSidecar(path, cfg.SidecarSuffix)
	if err != nil {
		log.Error("%v", err)
		return
	}
	if removed {
		log.Info("Removed stale sidecar: %s", SidecarPath(path, cfg.SidecarSuffix))
	}
}

func logSummary(log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Finished. Fixed %d corrupt files. Added transparency to %d files.",
		stats.Repaired, stats.Transparent)
	log.Info("  Visited: %d, skipped: %d, failed: %d",
		stats.Current, stats.Skipped, stats.Failed)
	if stats.BytesWritten > 0 {
		log.Info("  Rewrote %s", display.FormatBytes(stats.BytesWritten))
	}
}
