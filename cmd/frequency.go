package cmd

import (
	"context"
	"errors"
	"strings"

	kerrors "github.com/PolarWolf314/affine/internal/errors"
	"github.com/PolarWolf314/affine/internal/ui"
	"github.com/PolarWolf314/affine/internal/utils"
	"github.com/PolarWolf314/affine/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	frequencyFiles []string
	frequencyJSON  bool
	frequencyOnly  string
)

func init() {
	frequencyCmd.Flags().StringArrayVarP(&frequencyFiles, "file", "f", nil, "file, directory or glob to analyze (repeatable)")
	frequencyCmd.Flags().BoolVar(&frequencyJSON, "json", false, "output in JSON format")
	frequencyCmd.Flags().StringVarP(&frequencyOnly, "letter", "l", "", "report only these letters, e.g. ETA")
}

// resetFrequencyCommandState resets the frequency command's global state for testing.
func resetFrequencyCommandState() {
	frequencyFiles = nil
	frequencyJSON = false
	frequencyOnly = ""
}

var frequencyCmd = &cobra.Command{
	Use:   "frequency [text...]",
	Short: "Counts letter frequencies",
	Long: `Counts how often each letter occurs, ignoring case and non-letters,
and prints the letters from most to least frequent. Letters with equal
counts are listed in the order they first appear.

An affine cipher maps each letter to exactly one other letter, so the
frequency profile of a ciphertext is a permutation of its plaintext's.

Examples:
  affine frequency "Hello, World!"
  affine frequency --file 'texts/**/*.txt'
  affine frequency --letter ETA "Meet me at noon"
  affine encrypt -a 5 -b 8 --steps=false "some text" | affine frequency`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting frequency command")
		spinner, cleanup := startSpinner("Counting letters...")
		defer cleanup()

		opts := workflows.AnalyzeOptions{Patterns: frequencyFiles}
		if len(frequencyFiles) == 0 {
			text, err := utils.ResolveText(args, "")
			if err != nil {
				spinner.FinalMSG = failMessage("Failed to read input", err)
				return nil
			}
			opts.Text = text
		}

		result, err := workflows.Analyze(context.Background(), opts)
		if err != nil {
			if errors.Is(err, kerrors.ErrNoFilesFound) {
				spinner.FinalMSG = failMessage("No files matched", err)
				return nil
			}
			return Logger.ErrorfAndReturn("failed to analyze text: %v", err)
		}
		Logger.Infof("Counted %d letters", result.Frequency.Total())

		if frequencyJSON {
			out, err := toJSON(result)
			if err != nil {
				return err
			}
			spinner.FinalMSG = out
			return nil
		}

		var msg strings.Builder
		if len(result.Files) > 0 {
			msg.WriteString("Analyzed files:" + utils.FormatPaths(result.Files))
		}
		if frequencyOnly != "" {
			msg.WriteString(ui.LetterCounts(result.Frequency, frequencyOnly))
		} else {
			msg.WriteString(ui.FrequencyBars(result.Frequency, displayConfig().BarWidth))
		}
		spinner.FinalMSG = msg.String()
		return nil
	},
}
