// Command ammobalance normalizes max_ammo across unit definition files:
// heavy ordnance drops to a small pool, everything else gets the standard
// one.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/backmassage/assetforge/internal/ammo"
	"github.com/backmassage/assetforge/internal/config"
	"github.com/backmassage/assetforge/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	fs := flag.NewFlagSet("ammobalance", flag.ContinueOnError)
	dryRun := fs.Bool("dry-run", false, "report changes without writing")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: ammobalance [--dry-run] <units_dir>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 1
	}
	unitsDir := fs.Arg(0)

	log, err := logging.NewLogger(config.ColorAuto, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "ammobalance: %v\n", err)
		return 1
	}
	defer log.Close()

	info, err := os.Stat(unitsDir)
	if err != nil || !info.IsDir() {
		log.Error("Units directory not found: %s", unitsDir)
		return 1
	}

	log.Info("Starting ammo rebalance in %s", unitsDir)
	if *dryRun {
		log.Warn("DRY RUN, no files will be written")
	}

	if _, err := ammo.Run(unitsDir, *dryRun, log); err != nil {
		log.Error("%v", err)
		return 1
	}
	return 0
}
