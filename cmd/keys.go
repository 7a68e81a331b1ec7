package cmd

import (
	"fmt"
	"strings"

	"github.com/PolarWolf314/affine/internal/cipher"
	"github.com/PolarWolf314/affine/internal/ui"
	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Lists the valid values of the key a",
	Long: `Lists every a in 1 to 25 with gcd(a, 26) = 1. Only these values have a
modular inverse, so only they give a cipher that can be decrypted.
The key b may be any value from 0 to 25.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting keys command")

		valid := cipher.ValidKeyA()
		parts := make([]string, len(valid))
		for i, a := range valid {
			parts[i] = ui.Number.Sprint(a)
		}

		fmt.Printf("Valid values of a (mod %d):\n", cipher.AlphabetSize)
		fmt.Println("  " + strings.Join(parts, ", "))
		fmt.Printf("b may be any value from 0 to %d, giving %d usable keys\n",
			cipher.AlphabetSize-1, len(valid)*cipher.AlphabetSize)
		return nil
	},
}

var keysCheckCmd = &cobra.Command{
	Use:   "check <a> <b>",
	Short: "Checks whether a key pair is usable",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting keys check command")

		a, err := parseIntArg("a", args[0])
		if err != nil {
			return err
		}
		b, err := parseIntArg("b", args[1])
		if err != nil {
			return err
		}

		v := cipher.ValidateKeys(a, b)
		Logger.Debugf("Validation for (%d, %d): %+v", a, b, v)

		fmt.Print(ui.KeyStatus(a, b, v))
		if v.Valid {
			fmt.Println(ui.Success.Sprint("✓") + " Key is valid")
		} else {
			fmt.Println(ui.Error.Sprint("✗") + " Key is invalid")
		}
		return nil
	},
}

func init() {
	keysCmd.AddCommand(keysCheckCmd)
}
