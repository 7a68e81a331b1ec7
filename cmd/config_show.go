package cmd

import (
	"fmt"

	"github.com/PolarWolf314/affine/internal/configs"
	"github.com/PolarWolf314/affine/internal/ui"
	"github.com/spf13/cobra"
)

var configShowJSON bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Shows the current configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")

		config, err := configs.LoadConfig()
		if err != nil {
			fmt.Println(failMessage("Failed to load config", err))
			fmt.Println(ui.Info.Sprint("→") + " Fix or remove " + ui.Path.Sprint(configs.ConfigFilePath()))
			return nil
		}

		if configShowJSON {
			out, err := toJSON(config)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		}

		fmt.Println(ui.Info.Sprint("Configuration") + " (" + ui.Path.Sprint(configs.ConfigFilePath()) + "):")
		fmt.Println()
		fmt.Printf("  %-16s %s\n", "Key a:", ui.Number.Sprint(config.Keys.A))
		fmt.Printf("  %-16s %s\n", "Key b:", ui.Number.Sprint(config.Keys.B))
		fmt.Printf("  %-16s %t\n", "History:", config.History.Enabled)
		fmt.Printf("  %-16s %d\n", "Max entries:", config.History.MaxEntries)
		fmt.Printf("  %-16s %t\n", "Show steps:", config.Display.ShowSteps)
		fmt.Printf("  %-16s %d\n", "Inverse steps:", config.Display.InverseSteps)
		fmt.Printf("  %-16s %d\n", "Bar width:", config.Display.BarWidth)
		fmt.Println()
		fmt.Printf("  %-16s %s\n", "History file:", ui.Path.Sprint(configs.HistoryFilePath()))
		return nil
	},
}
