// Package dispatch marshals surface work onto the OS thread that owns the UI loop.
//
// Three strategies exist, one per family of platforms:
//
//	Direct      the caller is already the UI thread (Windows and unknown platforms)
//	MainThread  the process main thread runs the host's loop (darwin)
//	Runner      a dedicated locked thread owns the toolkit and its loop (Linux)
//
// None of them support cancellation or timeouts. A caller blocked in Run stays
// blocked until the UI thread gets to its task.
package dispatch

import (
	"time"

	"github.com/bnema/webembed/internal/domain/errs"
	"github.com/bnema/webembed/internal/platform"
	"github.com/rs/zerolog"
)

// Strategy names a dispatching strategy.
type Strategy int

const (
	StrategyDirect Strategy = iota
	StrategyMainThread
	StrategyRunner
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategyDirect:
		return "direct"
	case StrategyMainThread:
		return "main-thread"
	case StrategyRunner:
		return "runner"
	default:
		return "unknown"
	}
}

// Dispatcher runs functions on the UI thread.
type Dispatcher interface {
	Strategy() Strategy
	// Run executes fn on the UI thread and returns its error.
	Run(fn func() error) error
	// Post executes fn on the UI thread without waiting when the strategy allows it,
	// in which case fn's error is logged and nil is returned. Otherwise it behaves like Run.
	Post(fn func() error) error
	// Pump processes pending UI events on the calling thread, if the strategy needs it.
	Pump()
	Close() error
}

// Call runs fn through d and returns its typed result.
func Call[T any](d Dispatcher, fn func() (T, error)) (T, error) {
	var out T
	err := d.Run(func() error {
		v, err := fn()
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	return out, err
}

// Options selects and configures the strategy for a platform.
type Options struct {
	Platform platform.Platform

	// Toolkit drives the Runner on Linux.
	Toolkit Toolkit
	// PumpInterval is the Runner's wait between two loop iterations.
	PumpInterval time.Duration

	// Queue backs the MainThread strategy on darwin.
	Queue MainQueue

	// Pump drains pending native events for the Direct strategy.
	Pump func()

	Logger zerolog.Logger
}

// ForPlatform returns the dispatcher matching opts.Platform.
func ForPlatform(opts Options) Dispatcher {
	logger := opts.Logger.With().Str("component", "dispatch").Logger()

	switch opts.Platform {
	case platform.Linux:
		return NewRunner(opts.Toolkit, opts.PumpInterval, logger)
	case platform.Darwin:
		if opts.Queue != nil {
			return NewMainThread(opts.Queue, logger)
		}
		logger.Warn().Msg("no main queue available, falling back to direct dispatch")
		return NewDirect(nil, logger)
	case platform.Windows:
		return NewDirect(opts.Pump, logger)
	default:
		return NewDirect(nil, logger)
	}
}

// invoke runs fn and turns a panic into an internal error.
func invoke(fn func() error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = errs.Internal("dispatched task panicked: %v", rec)
		}
	}()
	return fn()
}
