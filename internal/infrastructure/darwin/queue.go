//go:build darwin

package darwin

import (
	"sync"

	"github.com/ebitengine/purego"
)

// purego callbacks are a finite resource, so every dispatched closure goes
// through one trampoline and is looked up by the context pointer it receives.
var (
	trampolineOnce sync.Once
	trampoline     uintptr
	pending        = &handleTable{fns: make(map[uintptr]func())}
)

func trampolinePtr() uintptr {
	trampolineOnce.Do(func() {
		trampoline = purego.NewCallback(func(ctx uintptr) {
			if fn := pending.take(ctx); fn != nil {
				fn()
			}
		})
	})
	return trampoline
}

// MainQueue schedules closures on the libdispatch main queue.
type MainQueue struct {
	sys *libSystem
}

// NewMainQueue binds the main queue of the running process.
func NewMainQueue() (*MainQueue, error) {
	sys, err := loadLibSystem()
	if err != nil {
		return nil, err
	}
	return &MainQueue{sys: sys}, nil
}

// IsMainThread reports whether the caller runs on the process main thread.
func (q *MainQueue) IsMainThread() bool {
	return q.sys.pthreadMainNP() != 0
}

// Sync runs fn on the main thread and waits for it. It must not be called from
// the main thread, where libdispatch would deadlock.
func (q *MainQueue) Sync(fn func()) {
	q.sys.dispatchSyncF(q.sys.mainQueue, pending.put(fn), trampolinePtr())
}

// Async schedules fn on the main thread.
func (q *MainQueue) Async(fn func()) {
	q.sys.dispatchAsyncF(q.sys.mainQueue, pending.put(fn), trampolinePtr())
}
