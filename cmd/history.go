package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/affine/internal/errors"
	"github.com/PolarWolf314/affine/internal/history"
	"github.com/PolarWolf314/affine/internal/ui"
	"github.com/PolarWolf314/affine/internal/workflows"
	"github.com/spf13/cobra"
)

// HistoryCmd is the top-level history command.
var HistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse and manage past operations",
	Long: `Every successful encrypt and decrypt with a valid key is recorded in
a local history file, unless --no-history is given or history is disabled
in the config.

Examples:
  # Show the ten most recent operations
  affine history list --limit 10

  # Show one entry in full
  affine history show 3f2a9c1e

  # Remove one entry by ID (the first characters are enough)
  affine history delete 3f2a9c1e

  # Remove everything
  affine history clear`,
}

func init() {
	HistoryCmd.AddCommand(historyListCmd)
	HistoryCmd.AddCommand(historyShowCmd)
	HistoryCmd.AddCommand(historyDeleteCmd)
	HistoryCmd.AddCommand(historyClearCmd)
}

// resetHistoryCommandState resets the history commands' global state for testing.
func resetHistoryCommandState() {
	resetHistoryListState()
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Deletes one history entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting history delete command")
		ctx := context.Background()

		id, err := resolveHistoryID(ctx, args[0])
		if err != nil {
			if errors.Is(err, kerrors.ErrHistoryEntryNotFound) {
				fmt.Println(failMessage("No such history entry", err))
				return nil
			}
			return Logger.ErrorfAndReturn("failed to read history: %v", err)
		}

		if err := workflows.DeleteHistory(ctx, id); err != nil {
			if errors.Is(err, kerrors.ErrHistoryEntryNotFound) {
				fmt.Println(failMessage("No such history entry", err))
				return nil
			}
			return Logger.ErrorfAndReturn("failed to delete history entry: %v", err)
		}
		Logger.Infof("Deleted history entry %s", id)

		fmt.Println(ui.Success.Sprint("✓") + " Deleted " + ui.Highlight.Sprint(shortID(id)))
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Deletes every history entry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting history clear command")

		if err := workflows.ClearHistory(context.Background()); err != nil {
			return Logger.ErrorfAndReturn("failed to clear history: %v", err)
		}

		fmt.Println(ui.Success.Sprint("✓") + " History cleared")
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Shows one history entry in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting history show command")
		ctx := context.Background()

		entry, err := showHistoryEntry(ctx, args[0])
		if err != nil {
			if errors.Is(err, kerrors.ErrHistoryEntryNotFound) {
				fmt.Println(failMessage("No such history entry", err))
				return nil
			}
			return Logger.ErrorfAndReturn("failed to read history: %v", err)
		}

		fmt.Printf("%s  %s\n", ui.Highlight.Sprint(entry.ID), typeLabel(entry.Type))
		fmt.Printf("  %-8s %s\n", "Time:", entry.Time().Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("  %-8s a=%s b=%s\n", "Keys:", ui.Number.Sprint(entry.KeyA), ui.Number.Sprint(entry.KeyB))
		fmt.Printf("  %-8s %s\n", "Input:", entry.Input)
		fmt.Printf("  %-8s %s\n", "Output:", entry.Output)
		return nil
	},
}

func showHistoryEntry(ctx context.Context, prefix string) (history.Entry, error) {
	id, err := resolveHistoryID(ctx, prefix)
	if err != nil {
		return history.Entry{}, err
	}
	return workflows.GetHistory(ctx, id)
}

// resolveHistoryID expands a unique ID prefix into the full entry ID.
func resolveHistoryID(ctx context.Context, prefix string) (string, error) {
	if entry, err := workflows.GetHistory(ctx, prefix); err == nil {
		return entry.ID, nil
	} else if !errors.Is(err, kerrors.ErrHistoryEntryNotFound) {
		return "", err
	}

	entries, err := workflows.ListHistory(ctx, workflows.ListHistoryOptions{})
	if err != nil {
		return "", err
	}

	var matches []string
	for _, e := range entries {
		if prefix != "" && strings.HasPrefix(e.ID, prefix) {
			matches = append(matches, e.ID)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("%q: %w", prefix, kerrors.ErrHistoryEntryNotFound)
	default:
		return "", fmt.Errorf("%q matches %d entries: %w", prefix, len(matches), kerrors.ErrHistoryEntryNotFound)
	}
}
