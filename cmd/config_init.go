package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/PolarWolf314/affine/internal/cipher"
	"github.com/PolarWolf314/affine/internal/configs"
	kerrors "github.com/PolarWolf314/affine/internal/errors"
	"github.com/PolarWolf314/affine/internal/ui"
	"github.com/spf13/cobra"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config file")
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Writes a config file with the default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config init command")
		path := configs.ConfigFilePath()

		if _, err := os.Stat(path); err == nil && !configInitForce {
			fmt.Println(ui.Warning.Sprint("⚠") + " Config already exists at " + ui.Path.Sprint(path))
			fmt.Println(ui.Info.Sprint("→") + " Pass " + ui.Flag.Sprint("--force") + " to overwrite it")
			return nil
		}

		if err := configs.SaveConfig(configs.DefaultConfig()); err != nil {
			return Logger.ErrorfAndReturn("failed to write config: %v", err)
		}
		Logger.Infof("Wrote default config to %s", path)

		fmt.Println(ui.Success.Sprint("✓") + " Wrote " + ui.Path.Sprint(path))
		return nil
	},
}

var configSetKeysCmd = &cobra.Command{
	Use:   "set-keys <a> <b>",
	Short: "Sets the default key pair",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config set-keys command")

		a, err := parseIntArg("a", args[0])
		if err != nil {
			return err
		}
		b, err := parseIntArg("b", args[1])
		if err != nil {
			return err
		}

		config, err := configs.LoadConfig()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load config: %v", err)
		}
		config.Keys = configs.Keys{A: a, B: b}

		if err := configs.SaveConfig(config); err != nil {
			if errors.Is(err, kerrors.ErrInvalidConfig) {
				fmt.Println(failMessage("Invalid key", err))
				fmt.Print(ui.KeyStatus(a, b, cipher.ValidateKeys(a, b)))
				return nil
			}
			return Logger.ErrorfAndReturn("failed to save config: %v", err)
		}
		Logger.Infof("Default keys set to (%d, %d)", a, b)

		fmt.Printf("%s Default keys set to a=%s, b=%s\n", ui.Success.Sprint("✓"), ui.Number.Sprint(a), ui.Number.Sprint(b))
		return nil
	},
}
