//go:build darwin

package darwin

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
)

const (
	libSystemPath = "/usr/lib/libSystem.B.dylib"
	appKitPath    = "/System/Library/Frameworks/AppKit.framework/AppKit"
)

func init() {
	// AppKit only runs on the first thread of the process. Keeping the main
	// goroutine there lets the host run its NSApplication loop from main.
	runtime.LockOSThread()
}

type libSystem struct {
	mainQueue uintptr

	// void dispatch_sync_f(dispatch_queue_t queue, void *context, dispatch_function_t work)
	dispatchSyncF func(queue, ctx, work uintptr)
	// void dispatch_async_f(dispatch_queue_t queue, void *context, dispatch_function_t work)
	dispatchAsyncF func(queue, ctx, work uintptr)
	// int pthread_main_np(void)
	pthreadMainNP func() int32
}

var (
	sysOnce sync.Once
	sys     *libSystem
	sysErr  error
)

func loadLibSystem() (*libSystem, error) {
	sysOnce.Do(func() {
		lib, err := purego.Dlopen(libSystemPath, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			sysErr = fmt.Errorf("dlopen %s: %w", libSystemPath, err)
			return
		}

		// dispatch_get_main_queue() is a macro for &_dispatch_main_q
		mainQueue, err := purego.Dlsym(lib, "_dispatch_main_q")
		if err != nil {
			sysErr = fmt.Errorf("dlsym _dispatch_main_q: %w", err)
			return
		}

		s := &libSystem{mainQueue: mainQueue}
		purego.RegisterLibFunc(&s.dispatchSyncF, lib, "dispatch_sync_f")
		purego.RegisterLibFunc(&s.dispatchAsyncF, lib, "dispatch_async_f")
		purego.RegisterLibFunc(&s.pthreadMainNP, lib, "pthread_main_np")
		sys = s
	})
	return sys, sysErr
}
