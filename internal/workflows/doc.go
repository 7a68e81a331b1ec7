// Package workflows provides high-level orchestration for affine commands.
//
// Workflows coordinate the cipher core with configuration and the history
// log to implement complete user-facing features. Each workflow handles a
// single command's business logic, independent of CLI concerns like flag
// parsing, spinners, and output formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Loading configuration
//   - Validating keys and input
//   - Performing the cipher operation
//   - Recording history entries
//
// # Available Workflows
//
//   - Encrypt: encrypts text and records it in the history
//   - Decrypt: decrypts text and records it in the history
//   - Analyze: letter frequency of text or of files matched by patterns
//   - Inspect: GCD and modular inverse traces for a key
//   - ListHistory, DeleteHistory, ClearHistory: history management
//
// # Error Handling
//
// The cipher package reports bad keys as data. Workflows turn that data
// into typed errors from the internal/errors package:
//
//	result, err := workflows.Decrypt(ctx, opts)
//	if errors.Is(err, kerrors.ErrNoInverse) {
//	    // result still holds the (empty) inverse trace
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter
// and check it before touching the filesystem.
package workflows
