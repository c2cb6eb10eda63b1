// Package check provides asset-tree diagnostics (--check mode) and the
// pre-run root validation (CheckRoot) shared with the pipeline entry point.
package check

import (
	"errors"
	"fmt"
	"os"

	"github.com/backmassage/assetforge/internal/config"
	"github.com/backmassage/assetforge/internal/pipeline"
	"github.com/backmassage/assetforge/internal/probe"
)

// Sentinel errors returned by CheckRoot when the asset root is unusable.
var (
	ErrRootMissing    = errors.New("asset directory does not exist")
	ErrRootNotDir     = errors.New("asset path is not a directory")
	ErrRootUnwritable = errors.New("asset directory is not writable")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// CheckRoot is the pre-run validation: the root must exist, be a directory,
// and accept a write (assets are rewritten in place). Returns a sentinel
// error on failure.
func CheckRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrRootMissing, root)
		}
		return fmt.Errorf("stat %q: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrRootNotDir, root)
	}

	// Probe writability with a throwaway file. Permission bits alone do not
	// account for read-only mounts or ACLs.
	f, err := os.CreateTemp(root, ".assetforge-probe-*")
	if err != nil {
		return fmt.Errorf("%w: %s", ErrRootUnwritable, root)
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return nil
}

// RunCheck runs the interactive --check flow: validates the root, then walks
// the matching files and prints an encoding census, masquerade warnings, and
// the sidecar count. Informational only; reports ok=false when the root
// itself is unusable.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== Asset Check ===")

	if err := CheckRoot(cfg.RootDir); err != nil {
		log.Error("%v", err)
		return false
	}
	log.Success("Root OK: %s", cfg.RootDir)

	files, err := pipeline.Discover(cfg.RootDir, cfg.Pattern)
	if err != nil {
		log.Error("Walk failed: %v", err)
		return false
	}
	log.Info("%d files match %s", len(files), cfg.Pattern)

	census := map[probe.Encoding]int{}
	sidecars := 0
	for _, path := range files {
		census[sniffFile(path)]++
		if _, err := os.Stat(pipeline.SidecarPath(path, cfg.SidecarSuffix)); err == nil {
			sidecars++
		}
	}

	// Fixed iteration order keeps the report stable across runs.
	for _, enc := range []probe.Encoding{
		probe.EncodingPNG, probe.EncodingJPEG, probe.EncodingGIF,
		probe.EncodingBMP, probe.EncodingWebP, probe.EncodingUnknown,
	} {
		n := census[enc]
		if n == 0 {
			continue
		}
		switch {
		case enc == probe.EncodingPNG:
			log.Success("  %s: %d", enc, n)
		case enc.Repairable():
			log.Warn("  %s: %d (masquerading, repairable)", enc, n)
		case enc == probe.EncodingUnknown:
			log.Warn("  %s: %d", enc, n)
		default:
			log.Warn("  %s: %d (masquerading, not repairable)", enc, n)
		}
	}
	log.Info("Sidecars present: %d", sidecars)

	if n := census[probe.EncodingJPEG]; n > 0 {
		log.Info("Run without --check to repair %s.",
			fmt.Sprintf("%d masquerading file%s", n, plural(n)))
	}
	return true
}

// sniffFile reads only the magic prefix; the census never decodes pixels.
func sniffFile(path string) probe.Encoding {
	f, err := os.Open(path)
	if err != nil {
		return probe.EncodingUnknown
	}
	defer f.Close()

	buf := make([]byte, probe.SniffLen)
	n, _ := f.Read(buf)
	return probe.Sniff(buf[:n])
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
