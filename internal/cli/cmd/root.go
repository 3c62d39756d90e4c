// Package cmd provides Cobra CLI commands for pptb.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/PowerPlatformToolBox/desktop-app/internal/cli"
)

var errAppNotInitialized = errors.New("app not initialized")

var (
	app     *cli.App
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "pptb",
		Short: "Inspect and reset Power Platform ToolBox local state",
		Long: `pptb - companion CLI of the Power Platform ToolBox desktop shell.

The desktop shell remembers which tools were open, which connection each one
used, and which tools were granted Content Security Policy exceptions. These
commands show and reset that state without starting the shell.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the pptb version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetVersion sets the version string (called from main before Execute).
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}
