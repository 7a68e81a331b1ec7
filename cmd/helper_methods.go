package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/PolarWolf314/affine/internal/configs"
	"github.com/PolarWolf314/affine/internal/ui"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// calls ui.EnsureNewline() on the final message before printing it.
func startSpinner(message string) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	quiet := !verbose && !debug
	if quiet {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if quiet {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		// Print final message to stdout (for tests to capture).
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// toJSON renders v as indented JSON for --json output.
func toJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding JSON: %w", err)
	}
	return string(data), nil
}

func failMessage(msg string, err error) string {
	return ui.Error.Sprint("✗") + " " + msg + "\n" + ui.Error.Sprint("Error: ") + err.Error()
}

// displayConfig returns the display settings, or the defaults when the
// config file cannot be read.
func displayConfig() configs.DisplayConfig {
	config, err := configs.LoadConfig()
	if err != nil {
		Logger.Warnf("Using default display settings: %v", err)
		return configs.DefaultConfig().Display
	}
	return config.Display
}

// showSteps reports whether step tables are printed. An explicit --steps
// flag wins over the configured default.
func showSteps(cmd *cobra.Command, flagValue bool, display configs.DisplayConfig) bool {
	if cmd.Flags().Changed("steps") {
		return flagValue
	}
	return display.ShowSteps
}

// shortID returns the first block of a history ID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
