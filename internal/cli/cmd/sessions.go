package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/PowerPlatformToolBox/desktop-app/internal/cli/styles"
)

var sessionJSON bool

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect the saved open-tools session",
	Long: `Show or clear the list of open tools the desktop shell restores on start.

The session is saved whenever a tool is launched, closed, pinned or has its
connection changed.`,
}

var sessionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the saved session",
	RunE:  runSessionShow,
}

var sessionClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget the saved session",
	Long:  `Delete the saved session so the next start opens no tools.`,
	RunE:  runSessionClear,
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionClearCmd)
	sessionShowCmd.Flags().BoolVar(&sessionJSON, "json", false, "print the raw snapshot as JSON")
}

func runSessionShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}
	renderer := styles.NewSessionsCLIRenderer(app.Theme)
	out := cmd.OutOrStdout()

	snap, err := app.Sessions.Load(app.Ctx())
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return err
	}

	if sessionJSON {
		if snap == nil {
			fmt.Fprintln(out, "null")
			return nil
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}

	fmt.Fprintln(out, renderer.RenderSnapshot(snap, time.Now()))
	return nil
}

func runSessionClear(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}
	renderer := styles.NewSessionsCLIRenderer(app.Theme)
	out := cmd.OutOrStdout()

	if err := app.Sessions.Clear(app.Ctx()); err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return err
	}
	fmt.Fprintln(out, renderer.RenderCleared())
	return nil
}
