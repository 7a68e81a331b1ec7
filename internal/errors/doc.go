// Package errors provides typed error values for the affine CLI.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Key errors: unusable cipher keys (ErrInvalidKeyA, ErrNoInverse)
//   - Input errors: missing or unreadable input (ErrNoInput, ErrNoFilesFound)
//   - History errors: history log problems (ErrHistoryEntryNotFound)
//   - Config errors: invalid configuration (ErrInvalidConfig)
//
// The cipher package itself never returns errors. It reports bad keys as
// data, and the workflows package turns that data into these errors where
// a command has to stop.
//
// # Usage
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("a=%d: %w", a, kerrors.ErrNoInverse)
//
// Handle errors in the CLI layer:
//
//	result, err := workflows.Decrypt(ctx, opts)
//	if errors.Is(err, kerrors.ErrNoInverse) {
//	    // Show user-friendly message
//	}
package errors
