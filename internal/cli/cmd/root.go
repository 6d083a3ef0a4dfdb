// Package cmd provides Cobra CLI commands for webembed.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/webembed/internal/cli"
	"github.com/bnema/webembed/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootOpts  cli.Options
	rootCmd   = &cobra.Command{
		Use:   "webembed",
		Short: "Embed native web surfaces into existing windows",
		Long: `webembed embeds a native web view into a window owned by another program.

The parent is given as a raw platform handle: an X11 window id on Linux,
an NSWindow or NSView pointer on macOS, an HWND on Windows.

Use 'webembed open' to embed a page for manual testing, or 'webembed resolve'
to check how a handle is interpreted on this platform.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp(rootOpts)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootOpts.ConfigDir, "config-dir", "", "directory holding config.{yaml,json,toml}")
	rootCmd.PersistentFlags().StringVar(&rootOpts.LogLevel, "log-level", "", "override the configured log level")
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

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
