// Package surface implements the operations a host performs on embedded web surfaces.
//
// Every operation that touches a native surface is marshaled by the dispatcher
// onto the thread owning the UI loop, where the registry resolves the id and
// checks thread affinity. URL and loading queries read the shared navigation
// state directly and never dispatch.
package surface

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/bnema/webembed/internal/application/port"
	"github.com/bnema/webembed/internal/dispatch"
	"github.com/bnema/webembed/internal/domain/entity"
	"github.com/bnema/webembed/internal/domain/errs"
	"github.com/bnema/webembed/internal/handle"
	"github.com/bnema/webembed/internal/logging"
	"github.com/bnema/webembed/internal/navstate"
	"github.com/bnema/webembed/internal/platform"
	"github.com/bnema/webembed/internal/registry"
	"github.com/rs/zerolog"
)

// Resolver turns a raw host handle into a parent window.
type Resolver func(raw uint64) (handle.Window, error)

// Service owns the registry and the dispatcher of one process.
type Service struct {
	engine     port.Engine
	dispatcher dispatch.Dispatcher
	registry   *registry.Registry
	resolve    Resolver
	threads    port.ThreadSource
	platform   platform.Platform
	logger     zerolog.Logger

	built atomic.Bool
}

// Option configures a Service.
type Option func(*Service)

// WithResolver replaces handle.Resolve.
func WithResolver(r Resolver) Option {
	return func(s *Service) { s.resolve = r }
}

// WithThreadSource replaces the OS thread identity used for affinity checks.
func WithThreadSource(ts port.ThreadSource) Option {
	return func(s *Service) { s.threads = ts }
}

// WithLogger sets the logger used when a call's context carries none.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithPlatform overrides the platform reported when no engine is available.
func WithPlatform(p platform.Platform) Option {
	return func(s *Service) { s.platform = p }
}

// NewService creates a Service. A nil engine makes Create fail with UnsupportedPlatform.
func NewService(engine port.Engine, dispatcher dispatch.Dispatcher, opts ...Option) *Service {
	s := &Service{
		engine:     engine,
		dispatcher: dispatcher,
		resolve:    handle.Resolve,
		platform:   platform.Current(),
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With().Str("component", "surface").Logger()
	s.registry = registry.New(s.threads, s.logger)
	return s
}

// Registry exposes the surface table, mainly for diagnostics.
func (s *Service) Registry() *registry.Registry { return s.registry }

// Dispatcher returns the dispatcher surfaces are driven through.
func (s *Service) Dispatcher() dispatch.Dispatcher { return s.dispatcher }

// Create embeds a new surface of width x height into the window behind parent
// and starts loading url.
func (s *Service) Create(ctx context.Context, parent uint64, width, height int32, url string) (entity.SurfaceID, error) {
	log := s.log(ctx)
	log.Debug().
		Str("handle", fmt.Sprintf("0x%x", parent)).
		Int32("width", width).
		Int32("height", height).
		Str("url", url).
		Msg("create surface")

	// rejected before the UI thread is started for it
	if parent == 0 {
		return 0, errs.InvalidWindowHandle(parent, "zero handle")
	}

	id, err := dispatch.Call(s.dispatcher, func() (entity.SurfaceID, error) {
		return s.create(ctx, log, parent, width, height, url)
	})
	if err != nil {
		log.Debug().Err(err).Msg("create surface failed")
		return 0, err
	}

	log.Debug().Uint64("surface_id", uint64(id)).Msg("surface created")
	return id, nil
}

func (s *Service) create(ctx context.Context, log *zerolog.Logger, parent uint64, width, height int32, url string) (entity.SurfaceID, error) {
	window, err := s.resolve(parent)
	if err != nil {
		return 0, err
	}
	if s.engine == nil {
		return 0, errs.UnsupportedPlatform(s.platform.String())
	}

	state := navstate.New(url)

	// the id is only known once the surface is registered
	var sid atomic.Uint64
	callbacks := port.SurfaceCallbacks{
		OnNavigationStarted: func(target string) bool {
			log.Debug().Uint64("surface_id", sid.Load()).Str("url", target).Msg("navigation started")
			return state.NavigationStarted(target)
		},
		OnPageLoad: func(event entity.LoadEvent, current string) {
			log.Debug().Uint64("surface_id", sid.Load()).Stringer("event", event).Str("url", current).Msg("page load")
			state.PageLoad(event, current)
		},
	}

	s.built.Store(true)
	native, err := s.engine.Build(ctx, port.BuildOptions{
		Parent:    window,
		Bounds:    entity.NewBounds(0, 0, width, height),
		URL:       url,
		Callbacks: callbacks,
	})
	if err != nil {
		return 0, errs.Engine(err)
	}

	id, err := s.registry.Register(native, state)
	if err != nil {
		_ = native.Close()
		return 0, err
	}
	sid.Store(uint64(id))
	return id, nil
}

// SetBounds moves and resizes a surface. Width and height are clamped to at
// least 1. When the strategy allows it the call returns before the resize
// happens, and a failure is only logged.
func (s *Service) SetBounds(ctx context.Context, id entity.SurfaceID, x, y, width, height int32) error {
	bounds := entity.NewBounds(x, y, width, height)
	s.log(ctx).Debug().
		Uint64("surface_id", uint64(id)).
		Int32("x", bounds.X).
		Int32("y", bounds.Y).
		Int32("width", bounds.Width).
		Int32("height", bounds.Height).
		Msg("set bounds")

	return s.dispatcher.Post(func() error {
		return s.registry.With(id, func(native port.Surface) error {
			return errs.Engine(native.SetBounds(bounds))
		})
	})
}

// LoadURL navigates a surface to url.
func (s *Service) LoadURL(ctx context.Context, id entity.SurfaceID, url string) error {
	s.log(ctx).Debug().Uint64("surface_id", uint64(id)).Str("url", url).Msg("load url")
	return s.navigate(id, func(native port.Surface) error { return native.LoadURL(url) })
}

// GoBack navigates a surface one step back in its history.
func (s *Service) GoBack(ctx context.Context, id entity.SurfaceID) error {
	s.log(ctx).Debug().Uint64("surface_id", uint64(id)).Msg("go back")
	return s.navigate(id, port.Surface.GoBack)
}

// GoForward navigates a surface one step forward in its history.
func (s *Service) GoForward(ctx context.Context, id entity.SurfaceID) error {
	s.log(ctx).Debug().Uint64("surface_id", uint64(id)).Msg("go forward")
	return s.navigate(id, port.Surface.GoForward)
}

// Reload reloads the current page of a surface.
func (s *Service) Reload(ctx context.Context, id entity.SurfaceID) error {
	s.log(ctx).Debug().Uint64("surface_id", uint64(id)).Msg("reload")
	return s.navigate(id, port.Surface.Reload)
}

// Focus gives keyboard focus to a surface.
func (s *Service) Focus(ctx context.Context, id entity.SurfaceID) error {
	s.log(ctx).Debug().Uint64("surface_id", uint64(id)).Msg("focus")
	return s.dispatcher.Run(func() error {
		return s.registry.With(id, func(native port.Surface) error {
			return errs.Engine(native.Focus())
		})
	})
}

// URL returns the last URL recorded for a surface. Any thread may call it.
func (s *Service) URL(_ context.Context, id entity.SurfaceID) (string, error) {
	state, err := s.registry.State(id)
	if err != nil {
		return "", err
	}
	return state.URL(), nil
}

// IsLoading reports whether a surface is loading. Any thread may call it.
func (s *Service) IsLoading(_ context.Context, id entity.SurfaceID) (bool, error) {
	state, err := s.registry.State(id)
	if err != nil {
		return false, err
	}
	return state.Loading(), nil
}

// Destroy releases a surface. Destroying an unknown or already destroyed id succeeds.
func (s *Service) Destroy(ctx context.Context, id entity.SurfaceID) error {
	s.log(ctx).Debug().Uint64("surface_id", uint64(id)).Msg("destroy surface")
	return s.dispatcher.Run(func() error {
		return s.registry.Unregister(id)
	})
}

// PumpEvents processes pending native events on the calling thread when the
// platform needs the host to do so. It is a no-op elsewhere.
func (s *Service) PumpEvents(_ context.Context) {
	s.dispatcher.Pump()
}

// Close destroys every remaining surface, releases the engine and stops the dispatcher.
func (s *Service) Close(ctx context.Context) error {
	log := s.log(ctx)

	// nothing was ever built: avoid starting the UI thread just to stop it
	if !s.built.Load() {
		return s.dispatcher.Close()
	}

	err := s.dispatcher.Run(func() error {
		for _, id := range s.registry.IDs() {
			if err := s.registry.Unregister(id); err != nil {
				log.Warn().Err(err).Uint64("surface_id", uint64(id)).Msg("destroy on close failed")
			}
		}
		if closer, ok := s.engine.(io.Closer); ok {
			return closer.Close()
		}
		return nil
	})
	if err != nil {
		log.Warn().Err(err).Msg("surface teardown failed")
	}

	return s.dispatcher.Close()
}

// navigate flags the surface as loading, then runs fn on its owning thread.
// The flag is raised before the affinity check so a caller polling right after
// never reads a stale idle state.
func (s *Service) navigate(id entity.SurfaceID, fn func(port.Surface) error) error {
	return s.dispatcher.Run(func() error {
		if state, err := s.registry.State(id); err == nil {
			state.MarkLoading()
		}
		return s.registry.With(id, func(native port.Surface) error {
			return errs.Engine(fn(native))
		})
	})
}

// log prefers the logger carried by ctx.
func (s *Service) log(ctx context.Context) *zerolog.Logger {
	if l := logging.FromContext(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &s.logger
}
