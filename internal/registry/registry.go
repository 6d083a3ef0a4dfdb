// Package registry owns the native surfaces of the process.
//
// Each entry pairs a surface with the OS thread that created it. The registry
// is the single place where a surface is dereferenced, and it checks the
// calling thread against the owner on every access. The lock only guards the
// map: it is released before any native call runs, so engine callbacks that
// re-enter the registry cannot deadlock.
package registry

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/bnema/webembed/internal/application/port"
	"github.com/bnema/webembed/internal/domain/entity"
	"github.com/bnema/webembed/internal/domain/errs"
	"github.com/bnema/webembed/internal/navstate"
	"github.com/bnema/webembed/internal/thread"
	"github.com/rs/zerolog"
)

// entry is never mutated after insertion.
type entry struct {
	surface port.Surface
	owner   thread.ID
	state   *navstate.State
}

// Registry maps surface ids to thread-confined surfaces.
type Registry struct {
	threads port.ThreadSource
	logger  zerolog.Logger

	counter atomic.Uint64

	mu      sync.Mutex
	entries map[entity.SurfaceID]entry
}

// New creates an empty registry. threads identifies the calling thread on every access.
func New(threads port.ThreadSource, logger zerolog.Logger) *Registry {
	if threads == nil {
		threads = thread.OS{}
	}
	return &Registry{
		threads: threads,
		logger:  logger.With().Str("component", "registry").Logger(),
		entries: make(map[entity.SurfaceID]entry),
	}
}

// Register takes ownership of surface and records the calling thread as its owner.
func (r *Registry) Register(surface port.Surface, state *navstate.State) (id entity.SurfaceID, err error) {
	if surface == nil || state == nil {
		return 0, errs.Internal("register: nil surface or state")
	}

	owner := r.threads.Current()
	id = entity.SurfaceID(r.counter.Add(1))

	err = r.locked(func() {
		r.entries[id] = entry{surface: surface, owner: owner, state: state}
	})
	if err != nil {
		return 0, err
	}

	r.logger.Debug().
		Uint64("surface_id", uint64(id)).
		Stringer("owner", owner).
		Msg("surface registered")
	return id, nil
}

// With runs fn with the surface for id on the calling thread.
// It fails with NotFound when id is unknown and WrongThread when the caller is not the owner.
func (r *Registry) With(id entity.SurfaceID, fn func(port.Surface) error) error {
	e, err := r.lookup(id)
	if err != nil {
		return err
	}

	if e.owner != r.threads.Current() {
		return errs.WrongThread(uint64(id))
	}

	return fn(e.surface)
}

// Unregister removes id and closes its surface exactly once.
// Unknown ids are a no-op: hosts may issue cleanup calls defensively.
func (r *Registry) Unregister(id entity.SurfaceID) error {
	current := r.threads.Current()

	var (
		removed entry
		found   bool
		wrong   bool
	)
	err := r.locked(func() {
		e, ok := r.entries[id]
		if !ok {
			return
		}
		if e.owner != current {
			wrong = true
			return
		}
		delete(r.entries, id)
		removed, found = e, true
	})
	switch {
	case err != nil:
		return err
	case wrong:
		return errs.WrongThread(uint64(id))
	case !found:
		return nil
	}

	r.logger.Debug().Uint64("surface_id", uint64(id)).Msg("surface unregistered")

	if err := removed.surface.Close(); err != nil {
		return &errs.Error{Kind: errs.KindUnderlyingEngine, SurfaceID: uint64(id), Cause: err}
	}
	return nil
}

// State returns the shared navigation state of id. Any thread may call it.
func (r *Registry) State(id entity.SurfaceID) (*navstate.State, error) {
	e, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	return e.state, nil
}

// Len returns the number of live surfaces.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// IDs returns the live surface ids in ascending order.
func (r *Registry) IDs() []entity.SurfaceID {
	r.mu.Lock()
	ids := make([]entity.SurfaceID, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	r.mu.Unlock()

	slices.Sort(ids)
	return ids
}

func (r *Registry) lookup(id entity.SurfaceID) (entry, error) {
	var (
		e  entry
		ok bool
	)
	if err := r.locked(func() { e, ok = r.entries[id] }); err != nil {
		return entry{}, err
	}
	if !ok {
		return entry{}, errs.NotFound(uint64(id))
	}
	return e, nil
}

// locked runs fn under the map lock. A panic inside the critical section is
// reported as an internal error instead of tearing the process down.
func (r *Registry) locked(fn func()) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error().Interface("panic", rec).Msg("registry critical section panicked")
			err = errs.Internal("surface registry unusable: %v", rec)
		}
	}()
	fn()
	return nil
}
