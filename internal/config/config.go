// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. The white threshold is deliberately not configurable and lives
// as a constant in the icon package.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings for the icon pipeline. It is populated by
// [DefaultConfig] and then mutated by [ParseFlags] before being passed (by
// pointer) to packages that need it.
type Config struct {
	// Path (set from the positional arg).
	RootDir string

	// Discovery.
	Pattern string // Doublestar pattern over slash-relative paths. Default: "**/*.png".

	// Sidecar handling.
	SidecarSuffix string // Default: ".import" (engine import companions).
	CleanSidecars bool   // Default: true. Cleared by --no-sidecar-clean.

	// Behavior flags.
	DryRun bool

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check tree diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults set. Used as the base
// before [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		Pattern:       "**/*.png",
		SidecarSuffix: ".import",
		CleanSidecars: true,
		DryRun:        false,
		Verbose:       false,
		ColorMode:     ColorAuto,
		CheckOnly:     false,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks the enum and pattern fields, and requires the asset root to
// be set. Structural checks on the root itself (exists, is a directory) happen
// later, in the check package, once a logger is available.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.Pattern == "" {
		return errors.New("match pattern must not be empty")
	}
	if !doublestar.ValidatePattern(c.Pattern) {
		return fmt.Errorf("invalid match pattern %q", c.Pattern)
	}

	if c.SidecarSuffix == "" || !strings.HasPrefix(c.SidecarSuffix, ".") {
		return fmt.Errorf("sidecar suffix must start with a dot (got %q)", c.SidecarSuffix)
	}

	if c.RootDir == "" {
		return errors.New("need exactly one asset_dir argument")
	}
	return nil
}
