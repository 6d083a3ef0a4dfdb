// Package errs defines the typed failures returned by every surface operation.
//
// Each failure carries a Kind. Sentinel values (ErrNotFound, ErrWrongThread, ...)
// match any error of the same kind through errors.Is, so callers can branch on
// the category without caring about the surface id or message:
//
//	if errors.Is(err, errs.ErrNotFound) {
//		// surface already gone
//	}
//
// errors.As yields the full *Error when the id or cause is needed.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Kind categorizes a failure.
type Kind string

const (
	KindUnsupportedPlatform Kind = "unsupported_platform"
	KindInvalidWindowHandle Kind = "invalid_window_handle"
	KindNotFound            Kind = "not_found"
	KindWrongThread         Kind = "wrong_thread"
	KindUnderlyingEngine    Kind = "underlying_engine"
	KindPlatformInit        Kind = "platform_init"
	KindInternal            Kind = "internal"
)

// Error is the structured error type used by the registry, dispatchers and surface operations.
type Error struct {
	Cause     error
	Kind      Kind
	Message   string
	SurfaceID uint64
}

// Sentinels for errors.Is. They compare by Kind only.
var (
	ErrUnsupportedPlatform = &Error{Kind: KindUnsupportedPlatform}
	ErrInvalidWindowHandle = &Error{Kind: KindInvalidWindowHandle}
	ErrNotFound            = &Error{Kind: KindNotFound}
	ErrWrongThread         = &Error{Kind: KindWrongThread}
	ErrUnderlyingEngine    = &Error{Kind: KindUnderlyingEngine}
	ErrPlatformInit        = &Error{Kind: KindPlatformInit}
	ErrInternal            = &Error{Kind: KindInternal}
)

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(string(e.Kind))

	if e.SurfaceID != 0 {
		fmt.Fprintf(&b, " (surface %d)", e.SurfaceID)
	}

	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}

	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}

	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// KindOf returns the Kind of err, or an empty Kind when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// UnsupportedPlatform reports that no resolver or engine exists for goos.
func UnsupportedPlatform(goos string) *Error {
	return &Error{Kind: KindUnsupportedPlatform, Message: goos}
}

// InvalidWindowHandle reports a zero, out of range or unrecognised parent handle.
func InvalidWindowHandle(raw uint64, reason string) *Error {
	return &Error{Kind: KindInvalidWindowHandle, Message: fmt.Sprintf("0x%x: %s", raw, reason)}
}

// NotFound reports an id that was never issued or was already destroyed.
func NotFound(id uint64) *Error {
	return &Error{Kind: KindNotFound, SurfaceID: id}
}

// WrongThread reports access to a surface from a thread other than its creator.
func WrongThread(id uint64) *Error {
	return &Error{Kind: KindWrongThread, SurfaceID: id}
}

// Engine wraps a failure reported by the rendering engine. A nil cause yields nil.
func Engine(cause error) error {
	if cause == nil {
		return nil
	}
	var e *Error
	if errors.As(cause, &e) {
		return cause
	}
	return &Error{Kind: KindUnderlyingEngine, Cause: cause}
}

// Enginef builds an engine failure from a message.
func Enginef(format string, args ...any) *Error {
	return &Error{Kind: KindUnderlyingEngine, Message: fmt.Sprintf(format, args...)}
}

// PlatformInit wraps a one-time UI toolkit initialization failure.
func PlatformInit(cause error) *Error {
	return &Error{Kind: KindPlatformInit, Cause: cause}
}

// Internal reports a broken invariant.
func Internal(format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...)}
}
