package config

// This file implements CLI flag parsing and help text.
// Negated flags (e.g. --no-sidecar-clean) are applied after Parse so Config
// defaults hold unless the user passes the flag.

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag, missing positional arg).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("iconfix", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	var negated negatedFlags

	fs.StringVar(&cfg.Pattern, "pattern", cfg.Pattern, "Doublestar match pattern relative to asset_dir")
	fs.StringVar(&cfg.SidecarSuffix, "sidecar-suffix", cfg.SidecarSuffix, "Companion metadata suffix to invalidate")
	fs.BoolVar(&negated.noSidecarClean, "no-sidecar-clean", false, "Leave companion metadata files in place")

	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Preview only; do not write or delete anything")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")

	fs.BoolVar(&negated.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&negated.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run tree diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")

	fs.BoolVar(&negated.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&negated.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&negated.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&negated.showHelp, "h", false, "Same as --help")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyNegatedFlags(cfg, &negated)

	if negated.showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "iconfix v"+version)
		os.Exit(0)
	}

	return parsePositionalArgs(fs, cfg)
}

// negatedFlags holds boolean flags that are applied after Parse. These either
// invert a default (noSidecarClean -> CleanSidecars=false) or trigger exit
// (showHelp, showVersion).
type negatedFlags struct {
	noSidecarClean bool
	forceColor     bool
	noColor        bool
	showVersion    bool
	showHelp       bool
}

// applyNegatedFlags copies negated and override flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noSidecarClean {
		cfg.CleanSidecars = false
	}
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets RootDir from the single positional argument.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if len(args) != 1 {
		return fmt.Errorf("need exactly one asset_dir argument")
	}
	cfg.RootDir = NormalizeDirArg(args[0])
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "iconfix v" + version + " - icon integrity and transparency repair"},
		{"", ""},
		{"  iconfix [OPTIONS] <asset_dir>", ""},
		{"", ""},
		{"Discovery", ""},
		{"  --pattern <glob>", "Doublestar match pattern (default: **/*.png)"},
		{"", ""},
		{"Sidecars", ""},
		{"  --sidecar-suffix <ext>", "Companion metadata suffix (default: .import)"},
		{"  --no-sidecar-clean", "Leave companion metadata files in place"},
		{"", ""},
		{"Behavior", ""},
		{"  -d, --dry-run", "Preview only; do not write or delete anything"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Tree diagnostics (root, format census, sidecars)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%s%s\n", l.flags, strings.Repeat(" ", padding), l.desc)
	}
}
