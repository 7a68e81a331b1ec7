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
	encryptKeyA      keyFlag
	encryptKeyB      keyFlag
	encryptFile      string
	encryptSteps     bool
	encryptExplore   bool
	encryptNoHistory bool
	encryptJSON      bool
)

func init() {
	encryptCmd.Flags().VarP(&encryptKeyA, "a", "a", "multiplicative key, coprime with 26 (default from config)")
	encryptCmd.Flags().VarP(&encryptKeyB, "b", "b", "additive key, 0 to 25 (default from config)")
	encryptCmd.Flags().StringVarP(&encryptFile, "file", "f", "", "read plaintext from a file")
	encryptCmd.Flags().BoolVar(&encryptSteps, "steps", false, "show the per-character steps (default from config)")
	encryptCmd.Flags().BoolVar(&encryptExplore, "explore", false, "encrypt even with invalid keys")
	encryptCmd.Flags().BoolVar(&encryptNoHistory, "no-history", false, "do not record this operation")
	encryptCmd.Flags().BoolVar(&encryptJSON, "json", false, "output in JSON format")
}

// resetEncryptCommandState resets the encrypt command's global state for testing.
func resetEncryptCommandState() {
	encryptKeyA.reset()
	encryptKeyB.reset()
	encryptFile = ""
	encryptSteps = false
	encryptExplore = false
	encryptNoHistory = false
	encryptJSON = false
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt [text...]",
	Short: "Encrypts text with the affine cipher",
	Long: `Encrypts text with E(x) = (a·x + b) mod 26.

Letters keep their case; every other character is copied unchanged.
Text is taken from the arguments, from --file, or from stdin.

Examples:
  # Encrypt with explicit keys
  affine encrypt -a 5 -b 8 HELLO

  # Show every step of the arithmetic
  affine encrypt -a 5 -b 8 --steps "Hello, World!"

  # See what happens with a key that has no inverse
  affine encrypt -a 13 -b 0 --explore ABCNOP`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting encrypt command")
		spinner, cleanup := startSpinner("Encrypting...")
		defer cleanup()

		text, err := utils.ResolveText(args, encryptFile)
		if err != nil {
			spinner.FinalMSG = failMessage("Failed to read input", err)
			return nil
		}
		Logger.Debugf("Read %d characters of input", len([]rune(text)))

		result, err := workflows.Encrypt(context.Background(), workflows.EncryptOptions{
			Text:        text,
			Keys:        workflows.KeyOptions{A: encryptKeyA.Ptr(), B: encryptKeyB.Ptr()},
			Explore:     encryptExplore,
			SkipHistory: encryptNoHistory,
		})
		if err != nil {
			switch {
			case errors.Is(err, kerrors.ErrInvalidKeyA), errors.Is(err, kerrors.ErrInvalidKeyB):
				spinner.FinalMSG = failMessage("Invalid key", err) + "\n" +
					ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("affine keys") + " to list the valid values of a"
				return nil
			case errors.Is(err, kerrors.ErrNoInput):
				spinner.FinalMSG = failMessage("Nothing to encrypt", err)
				return nil
			}
			return Logger.ErrorfAndReturn("failed to encrypt: %v", err)
		}
		Logger.Infof("Encrypted with a=%d, b=%d", result.A, result.B)

		if encryptJSON {
			out, err := toJSON(result)
			if err != nil {
				return err
			}
			spinner.FinalMSG = out
			return nil
		}

		var msg strings.Builder
		if !result.Validation.Valid {
			msg.WriteString(ui.Warning.Sprint("⚠") + " These keys are invalid; the ciphertext cannot be decrypted\n")
			msg.WriteString(ui.KeyStatus(result.A, result.B, result.Validation))
		}
		if showSteps(cmd, encryptSteps, displayConfig()) {
			msg.WriteString(ui.EncryptionTable(result.Steps, result.A, result.B))
		}
		msg.WriteString(ui.Success.Sprint("✓") + " Ciphertext: " + ui.Highlight.Sprint(result.Ciphertext) + "\n")
		if result.HistoryID != "" {
			msg.WriteString(ui.Muted.Sprintf("history %s", shortID(result.HistoryID)))
		}

		spinner.FinalMSG = msg.String()
		return nil
	},
}
