// Package handle turns the opaque integer a host passes for its parent window
// into a typed, platform-specific window reference.
package handle

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bnema/webembed/internal/domain/errs"
	"github.com/bnema/webembed/internal/platform"
)

// Kind tags the active field of a Window.
type Kind int

const (
	KindUnknown Kind = iota
	// KindXlib is an X11 window id.
	KindXlib
	// KindAppKit is a pointer to an NSView.
	KindAppKit
	// KindWin32 is an HWND.
	KindWin32
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindXlib:
		return "xlib"
	case KindAppKit:
		return "appkit"
	case KindWin32:
		return "win32"
	default:
		return "unknown"
	}
}

// Window is a resolved parent window reference. Only the field matching Kind is set.
// Values are transient: they are produced for a create call and never stored.
type Window struct {
	Kind Kind
	XID  uint32
	View uintptr
	HWND uintptr
}

// String implements fmt.Stringer.
func (w Window) String() string {
	switch w.Kind {
	case KindXlib:
		return fmt.Sprintf("xlib:0x%x", w.XID)
	case KindAppKit:
		return fmt.Sprintf("appkit:0x%x", w.View)
	case KindWin32:
		return fmt.Sprintf("win32:0x%x", w.HWND)
	default:
		return "unknown"
	}
}

// ObjectInspector answers runtime identity questions about an Objective-C object.
// It is only consulted on darwin, where a host may hand over an NSWindow or an NSView.
type ObjectInspector interface {
	IsWindow(ptr uintptr) bool
	IsView(ptr uintptr) bool
	ContentView(window uintptr) uintptr
}

// ResolveFor converts raw into a Window for platform p. The inspector is used on darwin only.
func ResolveFor(p platform.Platform, raw uint64, inspector ObjectInspector) (Window, error) {
	if raw == 0 {
		return Window{}, errs.InvalidWindowHandle(raw, "zero handle")
	}

	switch p {
	case platform.Linux:
		return resolveXlib(raw)
	case platform.Windows:
		return resolveWin32(raw)
	case platform.Darwin:
		return resolveAppKit(raw, inspector)
	default:
		return Window{}, errs.UnsupportedPlatform(p.String())
	}
}

// Resolve converts raw for the compiled platform.
func Resolve(raw uint64) (Window, error) {
	return ResolveFor(platform.Current(), raw, defaultInspector())
}

func resolveXlib(raw uint64) (Window, error) {
	// X11 resource ids are 32-bit on the wire.
	if raw > math.MaxUint32 {
		return Window{}, errs.InvalidWindowHandle(raw, "not an X11 window id")
	}
	return Window{Kind: KindXlib, XID: uint32(raw)}, nil
}

func resolveWin32(raw uint64) (Window, error) {
	hwnd := uintptr(raw)
	if hwnd == 0 || uint64(hwnd) != raw {
		return Window{}, errs.InvalidWindowHandle(raw, "not an HWND")
	}
	return Window{Kind: KindWin32, HWND: hwnd}, nil
}

func resolveAppKit(raw uint64, inspector ObjectInspector) (Window, error) {
	if inspector == nil {
		return Window{}, errs.UnsupportedPlatform("darwin: objc runtime unavailable")
	}

	ptr := uintptr(raw)
	if uint64(ptr) != raw {
		return Window{}, errs.InvalidWindowHandle(raw, "pointer out of range")
	}

	switch {
	case inspector.IsWindow(ptr):
		view := inspector.ContentView(ptr)
		if view == 0 {
			return Window{}, errs.InvalidWindowHandle(raw, "NSWindow has no content view")
		}
		return Window{Kind: KindAppKit, View: view}, nil
	case inspector.IsView(ptr):
		return Window{Kind: KindAppKit, View: ptr}, nil
	default:
		return Window{}, errs.InvalidWindowHandle(raw, "neither NSWindow nor NSView")
	}
}

// ParseRaw parses a handle written in decimal or 0x-prefixed hexadecimal.
func ParseRaw(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty handle")
	}
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("parse handle %q: %w", s, err)
	}
	return v, nil
}
