// Package port defines application-layer interfaces for external capabilities.
// Ports abstract the rendering engine and the OS thread model, allowing the
// surface operations to remain independent of WebKitGTK, AppKit or Win32.
package port

import (
	"context"

	"github.com/bnema/webembed/internal/domain/entity"
	"github.com/bnema/webembed/internal/handle"
)

// SurfaceCallbacks receives navigation events from the engine.
// Engines invoke them on the surface's owning thread.
type SurfaceCallbacks struct {
	// OnNavigationStarted is called before a navigation towards url.
	// Returning false cancels the navigation.
	OnNavigationStarted func(url string) bool
	// OnPageLoad is called on page-load phase changes.
	OnPageLoad func(event entity.LoadEvent, url string)
}

// BuildOptions describes a surface to create.
type BuildOptions struct {
	Parent    handle.Window
	Bounds    entity.Bounds
	URL       string
	Callbacks SurfaceCallbacks
}

// Engine builds native rendering surfaces as children of a host window.
// Build is called on the thread that will own the surface.
type Engine interface {
	Name() string
	Build(ctx context.Context, opts BuildOptions) (Surface, error)
}

// Surface is a native embedded rendering surface. It is thread-confined:
// every method must be called on the thread that built it.
type Surface interface {
	SetBounds(bounds entity.Bounds) error
	LoadURL(url string) error
	GoBack() error
	GoForward() error
	Reload() error
	Focus() error
	// Close releases the native resources. It is called exactly once.
	Close() error
}
