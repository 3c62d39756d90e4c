package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/PowerPlatformToolBox/desktop-app/internal/cli/styles"
	"github.com/PowerPlatformToolBox/desktop-app/internal/domain/entity"
)

var consentCmd = &cobra.Command{
	Use:   "consent",
	Short: "Manage CSP exception consents",
	Long: `List or revoke the Content Security Policy exceptions users accepted
for tools. A revoked tool asks for consent again on its next launch.`,
}

var consentListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List granted consents",
	RunE:    runConsentList,
}

var consentRevokeCmd = &cobra.Command{
	Use:   "revoke <tool-id>",
	Short: "Revoke the consent of a tool",
	Args:  cobra.ExactArgs(1),
	RunE:  runConsentRevoke,
}

func init() {
	rootCmd.AddCommand(consentCmd)
	consentCmd.AddCommand(consentListCmd)
	consentCmd.AddCommand(consentRevokeCmd)
}

func runConsentList(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}
	renderer := styles.NewConsentCLIRenderer(app.Theme)
	out := cmd.OutOrStdout()

	consents, err := app.Consents.List(app.Ctx())
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return err
	}
	fmt.Fprintln(out, renderer.RenderList(consents, time.Now()))
	return nil
}

func runConsentRevoke(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}
	renderer := styles.NewConsentCLIRenderer(app.Theme)
	out := cmd.OutOrStdout()

	toolID := entity.ToolID(args[0])
	if err := app.Consents.Revoke(app.Ctx(), toolID); err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return err
	}
	fmt.Fprintln(out, renderer.RenderRevoked(toolID))
	return nil
}
