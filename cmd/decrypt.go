package cmd

import (
	"context"
	"errors"
	"strings"

	"github.com/PolarWolf314/affine/internal/cipher"
	kerrors "github.com/PolarWolf314/affine/internal/errors"
	"github.com/PolarWolf314/affine/internal/ui"
	"github.com/PolarWolf314/affine/internal/utils"
	"github.com/PolarWolf314/affine/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	decryptKeyA      keyFlag
	decryptKeyB      keyFlag
	decryptFile      string
	decryptSteps     bool
	decryptExplore   bool
	decryptNoHistory bool
	decryptJSON      bool
)

func init() {
	decryptCmd.Flags().VarP(&decryptKeyA, "a", "a", "multiplicative key, coprime with 26 (default from config)")
	decryptCmd.Flags().VarP(&decryptKeyB, "b", "b", "additive key, 0 to 25 (default from config)")
	decryptCmd.Flags().StringVarP(&decryptFile, "file", "f", "", "read ciphertext from a file")
	decryptCmd.Flags().BoolVar(&decryptSteps, "steps", false, "show the inverse search and per-character steps (default from config)")
	decryptCmd.Flags().BoolVar(&decryptExplore, "explore", false, "decrypt even with b outside 0 to 25")
	decryptCmd.Flags().BoolVar(&decryptNoHistory, "no-history", false, "do not record this operation")
	decryptCmd.Flags().BoolVar(&decryptJSON, "json", false, "output in JSON format")
}

// resetDecryptCommandState resets the decrypt command's global state for testing.
func resetDecryptCommandState() {
	decryptKeyA.reset()
	decryptKeyB.reset()
	decryptFile = ""
	decryptSteps = false
	decryptExplore = false
	decryptNoHistory = false
	decryptJSON = false
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt [text...]",
	Short: "Decrypts affine ciphertext",
	Long: `Decrypts text with D(y) = a⁻¹·(y - b) mod 26, where a⁻¹ is the
modular inverse of a found by trying x = 1, 2, ... until a·x mod 26 = 1.

Examples:
  affine decrypt -a 5 -b 8 RCLLA
  affine decrypt -a 5 -b 8 --steps RCLLA
  echo RCLLA | affine decrypt -a 5 -b 8`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting decrypt command")
		spinner, cleanup := startSpinner("Decrypting...")
		defer cleanup()

		text, err := utils.ResolveText(args, decryptFile)
		if err != nil {
			spinner.FinalMSG = failMessage("Failed to read input", err)
			return nil
		}

		result, err := workflows.Decrypt(context.Background(), workflows.DecryptOptions{
			Text:        text,
			Keys:        workflows.KeyOptions{A: decryptKeyA.Ptr(), B: decryptKeyB.Ptr()},
			Explore:     decryptExplore,
			SkipHistory: decryptNoHistory,
		})
		if err != nil {
			switch {
			case errors.Is(err, kerrors.ErrNoInverse):
				Logger.Debugf("No inverse for a=%d", result.A)
				spinner.FinalMSG = failMessage("Cannot decrypt", err) + "\n" +
					ui.Info.Sprint("→") + " gcd(" + ui.Number.Sprint(result.A) + ", 26) ≠ 1; run " +
					ui.Code.Sprintf("affine gcd %d 26", result.A) + " to see why"
				return nil
			case errors.Is(err, kerrors.ErrInvalidKeyA), errors.Is(err, kerrors.ErrInvalidKeyB):
				spinner.FinalMSG = failMessage("Invalid key", err)
				return nil
			case errors.Is(err, kerrors.ErrNoInput):
				spinner.FinalMSG = failMessage("Nothing to decrypt", err)
				return nil
			}
			return Logger.ErrorfAndReturn("failed to decrypt: %v", err)
		}
		Logger.Infof("Decrypted with a=%d (a⁻¹=%d), b=%d", result.A, result.AInverse, result.B)

		if decryptJSON {
			out, err := toJSON(result)
			if err != nil {
				return err
			}
			spinner.FinalMSG = out
			return nil
		}

		display := displayConfig()
		var msg strings.Builder
		if !result.Validation.Valid {
			msg.WriteString(ui.Warning.Sprint("⚠") + " b is outside 0 to 25; this key could not have produced the ciphertext\n")
		}
		if showSteps(cmd, decryptSteps, display) {
			inverse := cipher.ModInverseResult{
				Inverse: result.AInverse,
				Found:   result.HasInverse,
				Steps:   result.ModInverseSteps,
			}
			msg.WriteString(ui.InverseTrace(result.A, cipher.AlphabetSize, inverse, display.InverseSteps))
			msg.WriteString(ui.DecryptionTable(result.Steps, result.AInverse, result.B))
		}
		msg.WriteString(ui.Success.Sprint("✓") + " Plaintext: " + ui.Highlight.Sprint(result.Plaintext) + "\n")
		if result.HistoryID != "" {
			msg.WriteString(ui.Muted.Sprintf("history %s", shortID(result.HistoryID)))
		}

		spinner.FinalMSG = msg.String()
		return nil
	},
}
