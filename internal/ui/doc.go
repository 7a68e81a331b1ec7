// Package ui provides semantic text formatting for CLI output.
//
// This package defines formatters for different types of content (letters,
// numbers, commands, errors, etc.) that render appropriately based on
// terminal capabilities. When colors are available, content is colorized.
// When NO_COLOR is set or the terminal doesn't support colors, text-based
// decorations (backticks, quotes) are used instead.
//
// # Semantic Formatters
//
//	ui.Code.Sprint("affine encrypt -a 5 -b 8") // Commands and code
//	ui.Path.Sprint("config.toml")              // File paths
//	ui.Letter.Sprint("R")                      // Alphabet letters
//	ui.Number.Sprint(17)                       // Intermediate values
//	ui.Success.Sprint("✓")                     // Success indicators
//	ui.Error.Sprint("✗")                       // Error indicators
//	ui.Warning.Sprint("⚠")                     // Warnings
//	ui.Info.Sprint("→")                        // Informational hints
//	ui.Highlight.Sprint("RCLLA")               // User values
//	ui.Muted.Sprint("skipped")                 // De-emphasized text
//
// # Renderers
//
// render.go turns cipher traces into multi-line text: GCD divisions,
// inverse probes, per-character encryption and decryption tables, and
// frequency bars.
//
// # Color Behavior
//
// Colors are disabled when:
//   - NO_COLOR environment variable is set (any value)
//   - Terminal doesn't support colors (TERM=dumb, not a TTY)
//
// When colors are disabled, formatters apply text decorations:
//   - Code: `backticks`
//   - Highlight: 'single quotes'
//   - Muted: (parentheses)
//   - Others: no decoration (self-evident from context)
package ui
