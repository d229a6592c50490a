package report

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsInteractive reports whether stdout is a real terminal. The CLI uses
// it to decide whether the tree view's indentation guides are worth
// drawing at all, or whether output is being piped/redirected.
func IsInteractive() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
