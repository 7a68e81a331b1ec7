package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/PolarWolf314/affine/internal/cipher"
	kerrors "github.com/PolarWolf314/affine/internal/errors"
	"github.com/PolarWolf314/affine/internal/ui"
	"github.com/PolarWolf314/affine/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	inverseModulus int
	inverseAll     bool
	inverseJSON    bool
)

func init() {
	inverseCmd.Flags().IntVarP(&inverseModulus, "modulus", "m", cipher.AlphabetSize, "modulus to invert in")
	inverseCmd.Flags().BoolVar(&inverseAll, "all", false, "list every probe instead of the first few")
	inverseCmd.Flags().BoolVar(&inverseJSON, "json", false, "output in JSON format")
}

// resetInverseCommandState resets the inverse command's global state for testing.
func resetInverseCommandState() {
	inverseModulus = cipher.AlphabetSize
	inverseAll = false
	inverseJSON = false
}

var inverseCmd = &cobra.Command{
	Use:   "inverse <a>",
	Short: "Searches for the modular inverse of a",
	Long: `Finds x such that (a × x) mod m = 1 by trying x = 1, 2, ... in turn.

The inverse only exists when gcd(a, m) = 1. Long searches are shortened to
the number of probes set by display.inverse_steps; pass --all to see them all.

Examples:
  affine inverse 5
  affine inverse 7 --modulus 26 --all`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting inverse command")

		a, err := parseIntArg("a", args[0])
		if err != nil {
			return err
		}

		result, err := workflows.Inspect(context.Background(), a, inverseModulus)
		if err != nil {
			if errors.Is(err, kerrors.ErrInvalidModulus) || errors.Is(err, kerrors.ErrInvalidNumber) {
				fmt.Println(failMessage("Cannot search for an inverse", err))
				return nil
			}
			return Logger.ErrorfAndReturn("failed to inspect key: %v", err)
		}
		Logger.Debugf("Inverse search for a=%d mod %d made %d probes", a, inverseModulus, len(result.Inverse.Steps))

		if inverseJSON {
			out, err := toJSON(result.Inverse)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		}

		limit := displayConfig().InverseSteps
		if inverseAll {
			limit = -1
		}
		fmt.Print(ui.InverseTrace(a, inverseModulus, result.Inverse, limit))
		if !result.Coprime {
			fmt.Printf("%s Run %s to see why\n", ui.Info.Sprint("→"), ui.Code.Sprintf("affine gcd %d %d", a, inverseModulus))
		}
		return nil
	},
}
