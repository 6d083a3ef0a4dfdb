//go:build linux

package webkit

import (
	"errors"

	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/rs/zerolog"
)

// maxIterationsPerPump bounds one Iterate call so queued tasks are not starved
// by a busy main context.
const maxIterationsPerPump = 64

// ToolkitOptions configures the environment GTK starts in.
type ToolkitOptions struct {
	// GdkBackend is exported as GDK_BACKEND when non-empty.
	GdkBackend string
	// HardwareAcceleration false selects software rendering for GSK and WebKit.
	HardwareAcceleration bool
}

// Toolkit initializes GTK and drives the default GLib main context.
type Toolkit struct {
	opts   ToolkitOptions
	env    *renderEnv
	logger zerolog.Logger
}

// NewToolkit returns a Toolkit.
func NewToolkit(opts ToolkitOptions, logger zerolog.Logger) *Toolkit {
	return &Toolkit{
		opts:   opts,
		env:    newRenderEnv(),
		logger: logger.With().Str("component", "gtk").Logger(),
	}
}

// Init implements dispatch.Toolkit.
func (t *Toolkit) Init() error {
	if err := t.env.apply(t.opts.GdkBackend, t.opts.HardwareAcceleration); err != nil {
		return err
	}

	if !gtk.InitCheck() {
		return errors.New("gtk_init_check failed: no usable display")
	}

	t.logger.Info().Interface("env", t.env.vars()).Msg("GTK initialized")
	return nil
}

// Iterate implements dispatch.Toolkit.
func (t *Toolkit) Iterate() {
	iterateMainContext()
}

func iterateMainContext() {
	ctx := glib.MainContextDefault()
	for i := 0; i < maxIterationsPerPump && ctx.Pending(); i++ {
		ctx.Iteration(false)
	}
}
