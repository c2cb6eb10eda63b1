package display

import (
	"fmt"
	"os"

	"github.com/backmassage/assetforge/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, `    _                 _   _____
   / \   ___ ___  ___| |_|  ___|__  _ __ __ _  ___
  / _ \ / __/ __|/ _ \ __| |_ / _ \| '__/ _`+"`"+` |/ _ \
 / ___ \__ \__ \  __/ |_|  _| (_) | | | (_| |  __/
/_/   \_\___/___/\___|\__|_|  \___/|_|  \__, |\___|
                                        |___/
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
