// Package navstate tracks the loading status and current URL of a surface.
//
// A State is shared by pointer between the registry entry, the engine callbacks
// and any reader. It carries its own synchronization (an atomic flag for
// loading, a mutex around the URL) so it stays readable from any thread, even
// while the owning surface is being destroyed.
package navstate

import (
	"sync"
	"sync/atomic"

	"github.com/bnema/webembed/internal/domain/entity"
)

// State is the shared navigation record of one surface.
type State struct {
	loading atomic.Bool

	mu  sync.Mutex
	url string
}

// Snapshot is an immutable copy of a State.
type Snapshot struct {
	URL     string
	Loading bool
}

// New returns a State for a surface about to load url. A fresh surface is loading.
func New(url string) *State {
	s := &State{url: url}
	s.loading.Store(true)
	return s
}

// NavigationStarted records a navigation towards url and always lets it proceed.
func (s *State) NavigationStarted(url string) bool {
	s.loading.Store(true)
	s.setURL(url)
	return true
}

// PageLoad applies a page-load event. Only the finished phase updates the URL.
func (s *State) PageLoad(event entity.LoadEvent, url string) {
	switch event {
	case entity.LoadStarted:
		s.loading.Store(true)
	case entity.LoadFinished:
		s.loading.Store(false)
		s.setURL(url)
	}
}

// MarkLoading flips loading on ahead of a native navigation call, so a caller
// polling right after the call returns never observes a stale false.
func (s *State) MarkLoading() {
	s.loading.Store(true)
}

// Loading reports whether a page is loading.
func (s *State) Loading() bool {
	return s.loading.Load()
}

// URL returns the last known URL.
func (s *State) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.url
}

// Snapshot returns both fields. The pair is not read atomically.
func (s *State) Snapshot() Snapshot {
	return Snapshot{URL: s.URL(), Loading: s.Loading()}
}

func (s *State) setURL(url string) {
	s.mu.Lock()
	s.url = url
	s.mu.Unlock()
}
