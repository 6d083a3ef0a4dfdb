package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/webembed/internal/cli/styles"
	"github.com/bnema/webembed/internal/handle"
	"github.com/bnema/webembed/internal/platform"
)

var resolvePlatform string

var resolveCmd = &cobra.Command{
	Use:   "resolve <handle>",
	Short: "Show how a raw window handle is interpreted",
	Long: `Resolve a raw parent handle the way surface creation does, without creating anything.

Handles accept decimal, 0x hexadecimal and 0o octal notation.

Examples:
  webembed resolve 0x1e00007
  webembed resolve --platform windows 0x40a12`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().StringVar(&resolvePlatform, "platform", "", "resolve for linux or windows instead of the current platform")
}

func runResolve(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	raw, err := handle.ParseRaw(args[0])
	if err != nil {
		return err
	}

	w, err := resolveFor(platform.Platform(resolvePlatform), raw)
	if err != nil {
		return err
	}

	app.Logger.Debug().Uint64("raw", raw).Stringer("window", w).Msg("handle resolved")
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewSurfaceRenderer(app.Theme).RenderHandle(raw, w))
	return nil
}

// resolveFor resolves raw for p, or for the current platform when p is empty.
// AppKit handles are pointers into this process and cannot be checked elsewhere.
func resolveFor(p platform.Platform, raw uint64) (handle.Window, error) {
	if p == "" || p == platform.Current() {
		return handle.Resolve(raw)
	}
	if p == platform.Darwin {
		return handle.Window{}, fmt.Errorf("appkit handles can only be resolved on darwin")
	}
	return handle.ResolveFor(p, raw, nil)
}
