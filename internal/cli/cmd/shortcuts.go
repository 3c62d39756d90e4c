package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PowerPlatformToolBox/desktop-app/internal/cli/styles"
	"github.com/PowerPlatformToolBox/desktop-app/internal/ui/input"
)

var shortcutsCmd = &cobra.Command{
	Use:   "shortcuts",
	Short: "List the tab keyboard shortcuts",
	Long:  `List the tab shortcuts the desktop shell binds, after config overrides.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return errAppNotInitialized
		}
		set := input.NewShortcutSet(app.Ctx(), app.Config.Shortcuts)
		fmt.Fprintln(cmd.OutOrStdout(), styles.RenderShortcuts(app.Theme, set))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(shortcutsCmd)
}
