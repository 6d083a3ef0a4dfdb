// Package platform names the operating environments with a surface backend.
package platform

import "runtime"

// Platform is a GOOS value with surface support semantics attached.
type Platform string

const (
	Linux   Platform = "linux"
	Darwin  Platform = "darwin"
	Windows Platform = "windows"
)

// Current returns the platform this binary was compiled for.
func Current() Platform {
	return Platform(runtime.GOOS)
}

// Supported reports whether a handle resolver and dispatcher exist for p.
func (p Platform) Supported() bool {
	switch p {
	case Linux, Darwin, Windows:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (p Platform) String() string {
	return string(p)
}
