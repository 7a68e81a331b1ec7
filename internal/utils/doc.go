// Package utils provides shared helpers for the affine CLI.
//
// # Input Utilities
//
// Commands accept text as arguments, from a file, or piped on stdin:
//   - ResolveText: picks the first available source
//   - ReadStdin: reads all piped data from standard input
//
// # String Utilities
//   - Truncate: shortens long text for history listings
//   - FormatPaths: formats file paths for human-readable output
//
// # Terminal Utilities
//   - IsFileTerminal: checks whether a file is connected to a terminal
package utils
