// Package log provides colored console messages on stderr.
package log

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var red = color.New(color.FgRed).FprintfFunc()

func init() {
	// color only inspects stdout, but messages go to stderr
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		color.NoColor = true
	}
}

// ErrorMsg prints an error message to stderr in red color.
func ErrorMsg(format string, a ...interface{}) {
	red(os.Stderr, "[!] Error: "+format, a...)
}
