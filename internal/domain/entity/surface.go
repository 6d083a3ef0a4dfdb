// Package entity holds the plain value types shared across layers.
package entity

// SurfaceID identifies an embedded surface for the lifetime of the process.
// Ids start at 1 and are never reused.
type SurfaceID uint64

// Bounds is a surface rectangle in parent-relative pixels.
type Bounds struct {
	X      int32
	Y      int32
	Width  int32
	Height int32
}

// minExtent is the smallest width or height handed to the engine.
// Zero-sized regions are an error for the rendering surface.
const minExtent = 1

// NewBounds builds Bounds with width and height clamped to at least 1.
func NewBounds(x, y, width, height int32) Bounds {
	return Bounds{
		X:      x,
		Y:      y,
		Width:  max(width, minExtent),
		Height: max(height, minExtent),
	}
}

// LoadEvent is a page-load phase reported by the engine.
type LoadEvent int

const (
	// LoadStarted indicates navigation has begun.
	LoadStarted LoadEvent = iota
	// LoadFinished indicates the page has fully loaded.
	LoadFinished
)

// String returns a human-readable representation of the load event.
func (e LoadEvent) String() string {
	switch e {
	case LoadStarted:
		return "started"
	case LoadFinished:
		return "finished"
	default:
		return "unknown"
	}
}
