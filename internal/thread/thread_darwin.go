//go:build darwin

package thread

import (
	"sync"

	"github.com/ebitengine/purego"
)

const libSystemPath = "/usr/lib/libSystem.B.dylib"

var (
	loadOnce sync.Once

	// int pthread_threadid_np(pthread_t thread, uint64_t *thread_id)
	pthreadThreadIDNP func(thread uintptr, id *uint64) int32
)

func load() {
	lib, err := purego.Dlopen(libSystemPath, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		panic("thread: dlopen libSystem: " + err.Error())
	}
	purego.RegisterLibFunc(&pthreadThreadIDNP, lib, "pthread_threadid_np")
}

func current() ID {
	loadOnce.Do(load)

	var id uint64
	// a zero pthread_t selects the calling thread
	if pthreadThreadIDNP(0, &id) != 0 {
		return 0
	}
	return ID(id)
}
