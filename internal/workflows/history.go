package workflows

import (
	"context"

	"github.com/PolarWolf314/affine/internal/history"
)

// ListHistoryOptions configures the history listing.
type ListHistoryOptions struct {
	// Limit is the maximum number of entries to return. 0 means no limit.
	Limit int

	// Type filters entries by operation type; empty means all.
	Type history.Type
}

// ListHistory returns recorded operations, newest first.
func ListHistory(ctx context.Context, opts ListHistoryOptions) ([]history.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := historyStore().List()
	if err != nil {
		return nil, err
	}

	if opts.Type != "" {
		filtered := entries[:0]
		for _, e := range entries {
			if e.Type == opts.Type {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	if opts.Limit > 0 && len(entries) > opts.Limit {
		entries = entries[:opts.Limit]
	}
	return entries, nil
}

// GetHistory returns the entry with the given ID.
//
// Returns ErrHistoryEntryNotFound if no entry has the ID.
func GetHistory(ctx context.Context, id string) (history.Entry, error) {
	if err := ctx.Err(); err != nil {
		return history.Entry{}, err
	}
	return historyStore().Get(id)
}

// DeleteHistory removes one entry.
//
// Returns ErrHistoryEntryNotFound if no entry has the ID.
func DeleteHistory(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return historyStore().Delete(id)
}

// ClearHistory removes every entry.
func ClearHistory(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return historyStore().Clear()
}
