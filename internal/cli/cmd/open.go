package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/webembed/internal/backend"
	"github.com/bnema/webembed/internal/cli/styles"
	"github.com/bnema/webembed/internal/domain/entity"
	"github.com/bnema/webembed/internal/handle"
	"github.com/bnema/webembed/internal/logging"
	"github.com/bnema/webembed/internal/surface"
)

type openFlags struct {
	parent string
	url    string
	width  int32
	height int32
	poll   time.Duration
}

var openOpts openFlags

var openCmd = &cobra.Command{
	Use:   "open --parent <handle> [--url <url>]",
	Short: "Embed a web surface into an existing window",
	Long: `Embed a web surface into the window behind --parent and keep it alive until
interrupted. Navigation state changes are printed as they happen.

On Linux the parent is an X11 window id, for example from 'xwininfo'.

Examples:
  webembed open --parent 0x1e00007
  webembed open --parent 0x1e00007 --url https://example.com --width 1024 --height 768`,
	Args: cobra.NoArgs,
	RunE: runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)
	f := openCmd.Flags()
	f.StringVar(&openOpts.parent, "parent", "", "raw handle of the parent window")
	f.StringVar(&openOpts.url, "url", "about:blank", "initial URL")
	f.Int32Var(&openOpts.width, "width", 800, "initial width in pixels")
	f.Int32Var(&openOpts.height, "height", 600, "initial height in pixels")
	f.DurationVar(&openOpts.poll, "poll", 250*time.Millisecond, "navigation state poll interval")
	_ = openCmd.MarkFlagRequired("parent")
}

func runOpen(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	raw, err := handle.ParseRaw(openOpts.parent)
	if err != nil {
		return err
	}
	w, err := handle.Resolve(raw)
	if err != nil {
		return err
	}

	// Direct dispatch runs surface work on the calling thread, which must stay put.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithContext(ctx, app.Logger)

	engine, dispatcher := backend.Defaults(app.Config, app.Logger)
	svc := surface.NewService(engine, dispatcher, surface.WithLogger(app.Logger))
	defer func() {
		if err := svc.Close(context.Background()); err != nil {
			app.Logger.Warn().Err(err).Msg("shutdown failed")
		}
	}()

	id, err := svc.Create(ctx, raw, openOpts.width, openOpts.height, openOpts.url)
	if err != nil {
		return err
	}

	renderer := styles.NewSurfaceRenderer(app.Theme)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderer.RenderCreated(uint64(id), w, openOpts.url))

	watch(ctx, svc, id, openOpts.poll, func(url string, loading bool) {
		fmt.Fprintln(out, renderer.RenderState(uint64(id), url, loading))
	})

	return svc.Destroy(context.Background(), id)
}

// watch pumps native events and reports navigation state changes of id until
// ctx is done or the surface disappears.
func watch(ctx context.Context, svc *surface.Service, id entity.SurfaceID, every time.Duration, report func(url string, loading bool)) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	var (
		lastURL     string
		lastLoading bool
		first       = true
	)
	for {
		svc.PumpEvents(ctx)

		url, err := svc.URL(ctx, id)
		if err != nil {
			return
		}
		loading, err := svc.IsLoading(ctx, id)
		if err != nil {
			return
		}
		if first || url != lastURL || loading != lastLoading {
			report(url, loading)
			lastURL, lastLoading, first = url, loading, false
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
