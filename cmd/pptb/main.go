// Command pptb is the companion CLI of the Power Platform ToolBox shell.
package main

import "github.com/PowerPlatformToolBox/desktop-app/internal/cli/cmd"

// Build-time variables (set via ldflags).
var version = "dev"

func main() {
	cmd.SetVersion(version)
	cmd.Execute()
}
