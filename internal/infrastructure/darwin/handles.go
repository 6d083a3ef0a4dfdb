package darwin

import "sync"

// handleTable hands out integer tokens for closures that cross a native
// boundary as a context pointer. A token resolves exactly once.
type handleTable struct {
	mu   sync.Mutex
	next uintptr
	fns  map[uintptr]func()
}

func (t *handleTable) put(fn func()) uintptr {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	t.fns[t.next] = fn
	return t.next
}

func (t *handleTable) take(h uintptr) func() {
	t.mu.Lock()
	defer t.mu.Unlock()
	fn := t.fns[h]
	delete(t.fns, h)
	return fn
}
