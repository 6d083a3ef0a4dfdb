//go:build linux

package webkit

import (
	"context"
	"os"
	"sync/atomic"
	"time"

	"github.com/bnema/webembed/internal/application/port"
	"github.com/bnema/webembed/internal/domain/errs"
	"github.com/bnema/webembed/internal/handle"
	"github.com/bnema/webembed/internal/infrastructure/x11"
	"github.com/bnema/webembed/internal/logging"
	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/rs/zerolog"
)

// Options configures an Engine.
type Options struct {
	// EmbedTimeout bounds the wait for a new toplevel to be mapped.
	EmbedTimeout         time.Duration
	HardwareAcceleration bool
	Logger               zerolog.Logger
}

// Engine builds WebKitGTK surfaces embedded into X11 windows.
// Build and Close must run on the GTK thread.
type Engine struct {
	opts   Options
	logger zerolog.Logger
	seq    atomic.Uint64

	dial     func() (*x11.Connection, error)
	conn     *x11.Connection
	embedder *x11.Embedder
	// dialErr is replayed on every Build once the display could not be opened.
	dialErr error
}

// NewEngine returns an Engine. The X11 connection is opened on first Build.
func NewEngine(opts Options) *Engine {
	if opts.EmbedTimeout <= 0 {
		opts.EmbedTimeout = 2 * time.Second
	}
	return &Engine{
		opts:   opts,
		logger: opts.Logger.With().Str("component", "webkit").Logger(),
		dial:   x11.NewConnection,
	}
}

// Name implements port.Engine.
func (e *Engine) Name() string { return "webkitgtk" }

// Build implements port.Engine.
func (e *Engine) Build(ctx context.Context, opts port.BuildOptions) (port.Surface, error) {
	log := logging.FromContext(ctx)

	if opts.Parent.Kind != handle.KindXlib {
		return nil, errs.Enginef("webkitgtk needs an Xlib parent, got %s", opts.Parent.Kind)
	}

	embedder, err := e.x11()
	if err != nil {
		return nil, errs.PlatformInit(err)
	}
	if err := embedder.ValidateParent(opts.Parent.XID); err != nil {
		return nil, errs.InvalidWindowHandle(uint64(opts.Parent.XID), err.Error())
	}

	title := toplevelTitle(os.Getpid(), e.seq.Add(1))

	window := gtk.NewWindow()
	window.SetTitle(title)
	window.SetDecorated(false)
	window.SetDefaultSize(int(opts.Bounds.Width), int(opts.Bounds.Height))

	view := webkit.NewWebView()
	if view == nil {
		window.Destroy()
		return nil, errs.Enginef("failed to create webkit webview")
	}
	e.applySettings(view)
	window.SetChild(view)

	s := &Surface{
		window:   window,
		view:     view,
		embedder: embedder,
		logger:   e.logger,
	}
	s.connectSignals(opts.Callbacks)

	window.Present()

	xwin, err := embedder.WaitForToplevel(title, iterateMainContext)
	if err != nil {
		window.Destroy()
		return nil, errs.Engine(err)
	}
	s.xwin = xwin

	if err := embedder.Embed(xwin, opts.Parent.XID, opts.Bounds); err != nil {
		window.Destroy()
		return nil, errs.Engine(err)
	}

	view.LoadURI(opts.URL)

	log.Debug().
		Str("title", title).
		Uint32("xid", uint32(xwin)).
		Stringer("parent", opts.Parent).
		Msg("webview built")
	return s, nil
}

// Close releases the X11 connection. A cached dial failure is kept.
func (e *Engine) Close() error {
	if e.conn != nil {
		e.conn.Close()
		e.conn, e.embedder = nil, nil
	}
	return nil
}

func (e *Engine) x11() (*x11.Embedder, error) {
	if e.embedder != nil {
		return e.embedder, nil
	}
	if e.dialErr != nil {
		return nil, e.dialErr
	}
	conn, err := e.dial()
	if err != nil {
		e.dialErr = err
		return nil, err
	}
	e.conn = conn
	e.embedder = x11.NewEmbedder(conn, e.opts.EmbedTimeout, e.opts.Logger)
	return e.embedder, nil
}

func (e *Engine) applySettings(view *webkit.WebView) {
	settings := view.Settings()
	if settings == nil {
		return
	}
	if e.opts.HardwareAcceleration {
		settings.SetHardwareAccelerationPolicy(webkit.HardwareAccelerationPolicyAlways)
	} else {
		settings.SetHardwareAccelerationPolicy(webkit.HardwareAccelerationPolicyNever)
	}
}
