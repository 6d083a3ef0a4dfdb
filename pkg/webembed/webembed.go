// Package webembed embeds native web surfaces into windows owned by a host
// application.
//
// The host passes the raw handle of one of its windows (an X11 window id on
// Linux, an NSWindow or NSView pointer on macOS, an HWND on Windows) and gets
// back an id for the new surface. All functions are safe to call from any
// goroutine:
//
//   - On Linux surfaces live on a dedicated GTK thread started on first use;
//     every call is marshaled there and waits for the result.
//   - On macOS calls are marshaled onto the main thread, which must be running
//     the host's AppKit loop. SetBounds does not wait when called off the main
//     thread.
//   - On Windows calls run inline, so the host must call from its UI thread with
//     runtime.LockOSThread in effect, and drive PumpEvents from its loop.
//
// GetURL and IsLoading never block on the UI thread.
package webembed

import (
	"context"
	"errors"
	"sync"

	"github.com/bnema/webembed/internal/backend"
	"github.com/bnema/webembed/internal/config"
	"github.com/bnema/webembed/internal/domain/entity"
	"github.com/bnema/webembed/internal/domain/errs"
	"github.com/bnema/webembed/internal/logging"
	"github.com/bnema/webembed/internal/surface"
	"github.com/rs/zerolog"
)

// Error is the concrete type of every error returned by this package.
type Error = errs.Error

// ErrorKind classifies an Error.
type ErrorKind = errs.Kind

// Sentinels for errors.Is.
var (
	ErrUnsupportedPlatform = errs.ErrUnsupportedPlatform
	ErrInvalidWindowHandle = errs.ErrInvalidWindowHandle
	ErrNotFound            = errs.ErrNotFound
	ErrWrongThread         = errs.ErrWrongThread
	ErrUnderlyingEngine    = errs.ErrUnderlyingEngine
	ErrPlatformInit        = errs.ErrPlatformInit
	ErrInternal            = errs.ErrInternal
)

// ErrAlreadyStarted is returned by Configure once the first surface call was made.
var ErrAlreadyStarted = errors.New("webembed: already started")

type settings struct {
	logger    *zerolog.Logger
	configDir string
}

// Option configures the process-wide surface service.
type Option func(*settings)

// WithLogger replaces the logger built from the configuration.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) { s.logger = &logger }
}

// WithConfigDir reads config.{yaml,json,toml} from dir instead of the XDG config directory.
func WithConfigDir(dir string) Option {
	return func(s *settings) { s.configDir = dir }
}

var (
	mu      sync.Mutex
	opts    settings
	current *surface.Service
)

// Configure sets options for the service. It must be called before any other
// function of this package.
func Configure(options ...Option) error {
	mu.Lock()
	defer mu.Unlock()

	if current != nil {
		return ErrAlreadyStarted
	}
	for _, opt := range options {
		opt(&opts)
	}
	return nil
}

func service() *surface.Service {
	mu.Lock()
	defer mu.Unlock()

	if current == nil {
		current = newService(opts)
	}
	return current
}

func newService(st settings) *surface.Service {
	cfg := config.DefaultConfig()
	var (
		mgr     *config.Manager
		loadErr error
	)
	if m, err := config.NewManager(st.configDir); err != nil {
		loadErr = err
	} else if err := m.Load(); err != nil {
		loadErr = err
	} else {
		mgr, cfg = m, m.Get()
	}

	var logger zerolog.Logger
	if st.logger != nil {
		logger = *st.logger
	} else {
		var sw *logging.LevelSwitch
		logger, sw = logging.NewSwitchable(logging.ConfigFromEnv(cfg.Logging.LoggerConfig()))
		if mgr != nil && mgr.ConfigFile() != "" {
			mgr.OnConfigChange(func(c *config.Config) {
				if level, ok := logging.ParseLevel(c.Logging.Level); ok {
					sw.Set(level)
				}
			})
			if err := mgr.Watch(logger); err != nil {
				logger.Debug().Err(err).Msg("config watch disabled")
			}
		}
	}

	if loadErr != nil {
		logger.Warn().Err(loadErr).Msg("using default configuration")
	}

	engine, dispatcher := backend.Defaults(cfg, logger)
	return surface.NewService(engine, dispatcher, surface.WithLogger(logger))
}

// CreateWebview embeds a surface of width x height into the window behind
// parentHandle and starts loading url. It returns the surface id.
func CreateWebview(parentHandle uint64, width, height int32, url string) (uint64, error) {
	id, err := service().Create(context.Background(), parentHandle, width, height, url)
	return uint64(id), err
}

// SetBounds positions a surface relative to its parent. Sizes below 1 are clamped to 1.
func SetBounds(id uint64, x, y, width, height int32) error {
	return service().SetBounds(context.Background(), entity.SurfaceID(id), x, y, width, height)
}

// LoadURL navigates a surface to url.
func LoadURL(id uint64, url string) error {
	return service().LoadURL(context.Background(), entity.SurfaceID(id), url)
}

// GoBack navigates a surface back in its history.
func GoBack(id uint64) error {
	return service().GoBack(context.Background(), entity.SurfaceID(id))
}

// GoForward navigates a surface forward in its history.
func GoForward(id uint64) error {
	return service().GoForward(context.Background(), entity.SurfaceID(id))
}

// Reload reloads the page shown by a surface.
func Reload(id uint64) error {
	return service().Reload(context.Background(), entity.SurfaceID(id))
}

// Focus gives keyboard focus to a surface.
func Focus(id uint64) error {
	return service().Focus(context.Background(), entity.SurfaceID(id))
}

// GetURL returns the URL a surface last navigated to.
func GetURL(id uint64) (string, error) {
	return service().URL(context.Background(), entity.SurfaceID(id))
}

// IsLoading reports whether a surface is loading a page.
func IsLoading(id uint64) (bool, error) {
	return service().IsLoading(context.Background(), entity.SurfaceID(id))
}

// DestroyWebview releases a surface. Unknown ids are ignored.
func DestroyWebview(id uint64) error {
	return service().Destroy(context.Background(), entity.SurfaceID(id))
}

// PumpEvents processes pending native events. Hosts on Windows call it from
// their message loop; elsewhere it does nothing.
func PumpEvents() {
	service().PumpEvents(context.Background())
}

// Shutdown destroys every remaining surface and stops the UI thread. Later
// calls fail with ErrInternal; the service is not restarted.
func Shutdown() error {
	mu.Lock()
	svc := current
	mu.Unlock()

	if svc == nil {
		return nil
	}
	return svc.Close(context.Background())
}
