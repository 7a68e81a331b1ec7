package cmd

import (
	"context"
	"fmt"

	kerrors "github.com/PolarWolf314/affine/internal/errors"
	"github.com/PolarWolf314/affine/internal/history"
	"github.com/PolarWolf314/affine/internal/ui"
	"github.com/PolarWolf314/affine/internal/utils"
	"github.com/PolarWolf314/affine/internal/workflows"
	"github.com/spf13/cobra"
)

// previewLength is how many characters of input and output a history row shows.
const previewLength = 50

var (
	historyListLimit int
	historyListType  string
	historyListJSON  bool
)

func init() {
	historyListCmd.Flags().IntVarP(&historyListLimit, "limit", "n", 0, "show at most this many entries")
	historyListCmd.Flags().StringVarP(&historyListType, "type", "t", "", "show only encrypt or decrypt entries")
	historyListCmd.Flags().BoolVar(&historyListJSON, "json", false, "output in JSON format")
}

func resetHistoryListState() {
	historyListLimit = 0
	historyListType = ""
	historyListJSON = false
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists past operations, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting history list command")

		entryType, err := parseHistoryType(historyListType)
		if err != nil {
			fmt.Println(failMessage("Invalid type", err))
			return nil
		}

		entries, err := workflows.ListHistory(context.Background(), workflows.ListHistoryOptions{
			Limit: historyListLimit,
			Type:  entryType,
		})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read history: %v", err)
		}
		Logger.Debugf("Loaded %d history entries", len(entries))

		if historyListJSON {
			if entries == nil {
				entries = []history.Entry{}
			}
			out, err := toJSON(entries)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		}

		if len(entries) == 0 {
			fmt.Println(ui.Muted.Sprint("No history yet"))
			return nil
		}

		for _, e := range entries {
			fmt.Printf("%s  %s  %s  a=%d b=%d\n",
				ui.Highlight.Sprint(shortID(e.ID)),
				ui.Muted.Sprint(e.Time().Local().Format("2006-01-02 15:04:05")),
				typeLabel(e.Type),
				e.KeyA, e.KeyB)
			fmt.Printf("    %s %s\n", ui.Muted.Sprint("in: "), utils.Truncate(e.Input, previewLength))
			fmt.Printf("    %s %s\n", ui.Muted.Sprint("out:"), utils.Truncate(e.Output, previewLength))
		}
		return nil
	},
}

func parseHistoryType(s string) (history.Type, error) {
	switch history.Type(s) {
	case "":
		return "", nil
	case history.TypeEncrypt, history.TypeDecrypt:
		return history.Type(s), nil
	}
	return "", fmt.Errorf("%q: %w", s, kerrors.ErrInvalidHistoryType)
}

func typeLabel(t history.Type) string {
	if t == history.TypeDecrypt {
		return ui.Info.Sprint("decrypt")
	}
	return ui.Success.Sprint("encrypt")
}

