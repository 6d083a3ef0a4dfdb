package dispatch

import (
	"sync/atomic"

	"github.com/bnema/webembed/internal/domain/errs"
	"github.com/rs/zerolog"
)

// Direct runs every function inline on the calling goroutine.
//
// The host is expected to call in from its UI thread with the goroutine locked
// to it. The registry rejects calls that arrive on another thread.
type Direct struct {
	pump   func()
	logger zerolog.Logger
	closed atomic.Bool
}

// NewDirect returns a Direct dispatcher. pump may be nil.
func NewDirect(pump func(), logger zerolog.Logger) *Direct {
	return &Direct{pump: pump, logger: logger}
}

func (d *Direct) Strategy() Strategy { return StrategyDirect }

func (d *Direct) Run(fn func() error) error {
	if d.closed.Load() {
		return errs.Internal("dispatcher closed")
	}
	return invoke(fn)
}

func (d *Direct) Post(fn func() error) error { return d.Run(fn) }

// Pump drains the native event queue when a pump is configured.
func (d *Direct) Pump() {
	if d.pump == nil || d.closed.Load() {
		return
	}
	if err := invoke(func() error { d.pump(); return nil }); err != nil {
		d.logger.Error().Err(err).Msg("event pump failed")
	}
}

func (d *Direct) Close() error {
	d.closed.Store(true)
	return nil
}
