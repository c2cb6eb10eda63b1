// Command soundstub writes the placeholder Ogg Vorbis files the game
// expects, so audio playback paths can be exercised before real recordings
// exist.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/backmassage/assetforge/internal/audio"
	"github.com/backmassage/assetforge/internal/config"
	"github.com/backmassage/assetforge/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	fs := flag.NewFlagSet("soundstub", flag.ContinueOnError)
	force := fs.Bool("force", false, "overwrite existing files")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: soundstub [--force] <sounds_dir>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 1
	}
	baseDir := fs.Arg(0)

	log, err := logging.NewLogger(config.ColorAuto, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "soundstub: %v\n", err)
		return 1
	}
	defer log.Close()

	n, err := audio.Generate(baseDir, *force, log)
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	log.Success("Generated %d placeholder audio files under %s", n, baseDir)
	return 0
}
