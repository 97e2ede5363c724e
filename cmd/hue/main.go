package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/danielkjellid/hue/internal/errors"
)

// Set through -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newRootCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "hue",
		Short: "Tooling for hue applications",
		Long: `hue is a server-rendered component library for Go.

The hue CLI provides the tooling around an application:

  • Development server with live reload
  • Tailwind CSS builds via the standalone binary
  • Fingerprinting and deployment of built assets`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor || os.Getenv("NO_COLOR") != "" {
				disableColor()
				errors.DisableColors()
			}
		},
	}

	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(
		devCmd(),
		cssCmd(),
		deployCmd(),
		versionCmd(),
	)

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}
