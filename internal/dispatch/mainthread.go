package dispatch

import (
	"sync/atomic"

	"github.com/bnema/webembed/internal/domain/errs"
	"github.com/rs/zerolog"
)

// MainThread marshals work onto the process main thread through a MainQueue.
// Calls made on the main thread run inline.
type MainThread struct {
	queue  MainQueue
	logger zerolog.Logger
	closed atomic.Bool
}

// NewMainThread returns a MainThread dispatcher backed by queue.
func NewMainThread(queue MainQueue, logger zerolog.Logger) *MainThread {
	return &MainThread{queue: queue, logger: logger}
}

func (m *MainThread) Strategy() Strategy { return StrategyMainThread }

// Run blocks until fn has run on the main thread.
func (m *MainThread) Run(fn func() error) error {
	if m.closed.Load() {
		return errs.Internal("dispatcher closed")
	}
	if m.queue.IsMainThread() {
		return invoke(fn)
	}

	var err error
	m.queue.Sync(func() { err = invoke(fn) })
	return err
}

// Post runs fn inline on the main thread. From any other thread it schedules fn
// and returns nil without waiting; a failure is only logged.
func (m *MainThread) Post(fn func() error) error {
	if m.closed.Load() {
		return errs.Internal("dispatcher closed")
	}
	if m.queue.IsMainThread() {
		return invoke(fn)
	}

	m.queue.Async(func() {
		if err := invoke(fn); err != nil {
			m.logger.Warn().Err(err).Msg("posted task failed")
		}
	})
	return nil
}

// Pump is a no-op: the host runs the main loop.
func (m *MainThread) Pump() {}

func (m *MainThread) Close() error {
	m.closed.Store(true)
	return nil
}
