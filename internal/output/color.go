package output

import (
	"io"
	"os"

	"golang.org/x/term"
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorGreen = "\033[32m"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Colorize wraps s in green when w is a terminal and leaves it alone
// when output is piped or redirected.
func Colorize(w io.Writer, s string) string {
	if f, ok := w.(*os.File); ok && isTerminal(f) {
		return colorGreen + s + colorReset
	}
	return s
}
