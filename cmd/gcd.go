package cmd

import (
	"context"
	"errors"
	"fmt"

	kerrors "github.com/PolarWolf314/affine/internal/errors"
	"github.com/PolarWolf314/affine/internal/ui"
	"github.com/PolarWolf314/affine/internal/workflows"
	"github.com/spf13/cobra"
)

var gcdCmd = &cobra.Command{
	Use:   "gcd <a> <m>",
	Short: "Shows the Euclidean algorithm for gcd(a, m)",
	Long: `Computes the greatest common divisor of a and m by repeated division
and prints every step in the form a = b × q + r.

A key a is only usable when gcd(a, 26) = 1.

Examples:
  affine gcd 5 26
  affine gcd 13 26`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting gcd command")

		a, err := parseIntArg("a", args[0])
		if err != nil {
			return err
		}
		m, err := parseIntArg("m", args[1])
		if err != nil {
			return err
		}

		result, err := workflows.Inspect(context.Background(), a, m)
		if err != nil {
			if errors.Is(err, kerrors.ErrInvalidModulus) || errors.Is(err, kerrors.ErrInvalidNumber) {
				fmt.Println(failMessage("Cannot compute gcd", err))
				return nil
			}
			return Logger.ErrorfAndReturn("failed to inspect key: %v", err)
		}
		Logger.Debugf("gcd(%d, %d) took %d divisions", a, m, len(result.GCD.Steps))

		fmt.Print(ui.GCDTrace(a, m, result.GCD))
		if result.Coprime {
			fmt.Printf("%s %d and %d are coprime\n", ui.Success.Sprint("✓"), a, m)
		} else {
			fmt.Printf("%s %d and %d are not coprime\n", ui.Warning.Sprint("⚠"), a, m)
		}
		return nil
	},
}
