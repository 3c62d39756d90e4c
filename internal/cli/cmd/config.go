package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PowerPlatformToolBox/desktop-app/internal/cli/styles"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	Long: `Show the configuration file location and the effective settings,
including PPTB_* environment overrides.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return errAppNotInitialized
		}
		fmt.Fprintln(cmd.OutOrStdout(), app.ConfigFile)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return errAppNotInitialized
		}
		renderer := styles.NewConfigRenderer(app.Theme)
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderConfig(app.ConfigFile, app.Config))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
}
