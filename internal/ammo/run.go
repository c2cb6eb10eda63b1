package ammo

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Logger is the minimal logging surface Run needs, matching the levels the
// shared logging package exposes.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// Stats tracks aggregate counters across one rebalance run.
type Stats struct {
	Total   int // Unit files visited.
	Updated int // Files rewritten with new ammo counts.
	Failed  int // Per-file errors; logged and skipped.
}

// Run walks unitsDir and rebalances every JSON unit definition in place.
// Per-file errors are logged and counted, never escalated; only a failure of
// the walk itself is returned as an error.
func Run(unitsDir string, dryRun bool, log Logger) (Stats, error) {
	var stats Stats

	err := filepath.WalkDir(unitsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".json") {
			return nil
		}
		stats.Total++
		processUnit(path, dryRun, log, &stats)
		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("walk units: %w", err)
	}

	log.Info("Finished processing %d files. Updated %d.", stats.Total, stats.Updated)
	return stats, nil
}

func processUnit(path string, dryRun bool, log Logger, stats *Stats) {
	base := filepath.Base(path)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("Cannot read %s: %v", path, err)
		stats.Failed++
		return
	}

	out, changes, err := Rebalance(data)
	if err != nil {
		log.Error("Error processing %s: %v", path, err)
		stats.Failed++
		return
	}
	if len(changes) == 0 {
		return
	}

	for _, c := range changes {
		log.Info("  %s: %d -> %d", c.WeaponID, c.From, c.To)
	}

	if dryRun {
		log.Success("[DRY] Would update %s", base)
		stats.Updated++
		return
	}

	if err := os.WriteFile(path, out, 0o644); err != nil {
		log.Error("Cannot write %s: %v", path, err)
		stats.Failed++
		return
	}
	stats.Updated++
	log.Success("Updated %s", base)
}
