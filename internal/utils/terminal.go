package utils

import (
	"os"

	"golang.org/x/term"
)

// IsFileTerminal returns true if f is connected to a terminal.
func IsFileTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
