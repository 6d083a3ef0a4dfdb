package dispatch

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/webembed/internal/domain/errs"
	"github.com/bnema/webembed/internal/thread"
	"github.com/rs/zerolog"
)

// DefaultPumpInterval is the Runner's wait between loop iterations when none is configured.
const DefaultPumpInterval = 10 * time.Millisecond

// State is the lifecycle of a Runner.
type State int32

const (
	StateUninitialized State = iota
	StateInitializing
	StateReady
	StateFailed
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

type task struct {
	fn    func() error
	reply chan error
}

// Runner owns a dedicated OS thread on which the toolkit is initialized and
// iterated. Tasks are executed in submission order between two iterations.
//
// The thread is started on first use. If toolkit initialization fails the
// Runner is permanently failed and every call returns the cached error.
type Runner struct {
	toolkit  Toolkit
	interval time.Duration
	logger   zerolog.Logger

	state   atomic.Int32
	start   sync.Once
	ready   chan struct{}
	initErr error
	tid     atomic.Uint64

	mu     sync.Mutex
	queue  []task
	closed bool
	wake   chan struct{}
	stop   chan struct{}
	done   chan struct{}
}

// NewRunner returns an idle Runner. interval <= 0 selects DefaultPumpInterval.
func NewRunner(toolkit Toolkit, interval time.Duration, logger zerolog.Logger) *Runner {
	if interval <= 0 {
		interval = DefaultPumpInterval
	}
	return &Runner{
		toolkit:  toolkit,
		interval: interval,
		logger:   logger,
		ready:    make(chan struct{}),
		wake:     make(chan struct{}, 1),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (r *Runner) Strategy() Strategy { return StrategyRunner }

// State reports the lifecycle state.
func (r *Runner) State() State { return State(r.state.Load()) }

// Run executes fn on the runner thread and waits for its result.
// Calls made from the runner thread itself run inline.
func (r *Runner) Run(fn func() error) error {
	if err := r.ensureStarted(); err != nil {
		return err
	}
	if thread.ID(r.tid.Load()) == thread.Current() {
		return invoke(fn)
	}

	reply := make(chan error, 1)
	if !r.enqueue(task{fn: fn, reply: reply}) {
		return errs.Internal("dispatcher closed")
	}
	return <-reply
}

// Post is synchronous on this strategy.
func (r *Runner) Post(fn func() error) error { return r.Run(fn) }

// Pump is a no-op: the runner iterates the toolkit itself.
func (r *Runner) Pump() {}

// Close stops the loop. Queued tasks that did not start fail with an internal error.
// The toolkit is not torn down.
func (r *Runner) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	pending := r.queue
	r.queue = nil
	r.mu.Unlock()

	for _, t := range pending {
		t.reply <- errs.Internal("dispatcher closed")
	}

	close(r.stop)
	// from inside a task the loop exits once that task returns
	if r.State() == StateReady && thread.ID(r.tid.Load()) != thread.Current() {
		<-r.done
	}
	return nil
}

func (r *Runner) ensureStarted() error {
	r.mu.Lock()
	closed := r.closed
	r.mu.Unlock()
	if closed {
		return errs.Internal("dispatcher closed")
	}

	r.start.Do(func() {
		r.state.Store(int32(StateInitializing))
		r.logger.Debug().Msg("starting runner thread")
		go r.loop()
	})
	<-r.ready
	return r.initErr
}

func (r *Runner) enqueue(t task) bool {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return false
	}
	r.queue = append(r.queue, t)
	r.mu.Unlock()

	select {
	case r.wake <- struct{}{}:
	default:
	}
	return true
}

func (r *Runner) drain() []task {
	r.mu.Lock()
	defer r.mu.Unlock()
	tasks := r.queue
	r.queue = nil
	return tasks
}

func (r *Runner) loop() {
	// The toolkit is bound to this thread for the life of the process, so the
	// lock is never released.
	runtime.LockOSThread()
	r.tid.Store(uint64(thread.Current()))

	if err := r.initToolkit(); err != nil {
		r.initErr = errs.PlatformInit(err)
		r.state.Store(int32(StateFailed))
		r.logger.Error().Err(err).Msg("toolkit initialization failed")
		close(r.ready)
		close(r.done)
		return
	}

	r.state.Store(int32(StateReady))
	r.logger.Info().Stringer("thread", thread.ID(r.tid.Load())).Msg("runner ready")
	close(r.ready)
	defer close(r.done)

	timer := time.NewTimer(r.interval)
	defer timer.Stop()

	for {
		for _, t := range r.drain() {
			t.reply <- invoke(t.fn)
		}

		if err := invoke(func() error { r.toolkit.Iterate(); return nil }); err != nil {
			r.logger.Error().Err(err).Msg("toolkit iteration failed")
		}

		timer.Reset(r.interval)
		select {
		case <-r.stop:
			r.logger.Info().Msg("runner stopped")
			return
		case <-r.wake:
		case <-timer.C:
		}
	}
}

func (r *Runner) initToolkit() error {
	if r.toolkit == nil {
		return errors.New("no toolkit available")
	}
	return invoke(r.toolkit.Init)
}
