package utils

import (
	"fmt"
	"io"
	"os"
	"strings"

	kerrors "github.com/PolarWolf314/affine/internal/errors"
)

// ReadStdin reads all piped content from stdin.
// Returns ErrNoInput if stdin is a terminal (nothing piped).
func ReadStdin() (string, error) {
	return readPiped(os.Stdin)
}

func readPiped(f *os.File) (string, error) {
	if IsFileTerminal(f) {
		return "", fmt.Errorf("%w (hint: pass text as an argument, use --file, or pipe it in)", kerrors.ErrNoInput)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("failed to read from stdin: %w", err)
	}
	return trimFinalNewline(string(data)), nil
}

// ResolveText returns the text to operate on. Arguments are joined with
// spaces and win over filePath, which wins over stdin. A single trailing
// newline is dropped from file and stdin input.
func ResolveText(args []string, filePath string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", filePath, err)
		}
		return trimFinalNewline(string(data)), nil
	}

	return ReadStdin()
}

func trimFinalNewline(s string) string {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}
	return strings.TrimSuffix(s, "\n")
}
