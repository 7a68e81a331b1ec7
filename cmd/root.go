package cmd

import (
	"fmt"

	logger "github.com/PolarWolf314/affine/internal/logging"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	RootCmd = &cobra.Command{
		Use:   "affine",
		Short: "Affine - learn the affine cipher step by step",
		Long: `Affine encrypts and decrypts text with the affine cipher E(x) = (a·x + b) mod 26
and shows every step of the arithmetic along the way.

Features:
  - Encrypt and decrypt with per-character step tables
  - Explore keys: GCD traces and modular inverse searches
  - Letter frequency analysis of text or files
  - A history of past operations

The affine cipher is a classroom cipher. Do not use it to protect anything.

Run 'affine help <command>' for more details on a specific command.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println()
			figure.NewColorFigure("Affine", "standard", "green", true).Print()
			fmt.Println()
			fmt.Println("Welcome to Affine! Run 'affine --help' to see available commands.")
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(encryptCmd)
	RootCmd.AddCommand(decryptCmd)
	RootCmd.AddCommand(gcdCmd)
	RootCmd.AddCommand(inverseCmd)
	RootCmd.AddCommand(keysCmd)
	RootCmd.AddCommand(frequencyCmd)
	RootCmd.AddCommand(HistoryCmd)
	RootCmd.AddCommand(ConfigCmd)
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	resetEncryptCommandState()
	resetDecryptCommandState()
	resetInverseCommandState()
	resetFrequencyCommandState()
	resetHistoryCommandState()
	resetConfigCommandState()
	resetCobraFlagState(RootCmd)
}

// resetCobraFlagState clears the Changed marker on every flag so one test's
// flags do not leak into the next.
func resetCobraFlagState(c *cobra.Command) {
	c.Flags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
	})
	c.PersistentFlags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
	})
	for _, child := range c.Commands() {
		resetCobraFlagState(child)
	}
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
