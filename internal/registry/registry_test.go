package registry

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/bnema/webembed/internal/application/port"
	"github.com/bnema/webembed/internal/application/port/mocks"
	"github.com/bnema/webembed/internal/domain/entity"
	"github.com/bnema/webembed/internal/domain/errs"
	"github.com/bnema/webembed/internal/navstate"
	"github.com/bnema/webembed/internal/thread"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// spoofThreads lets a test pretend to be any OS thread.
type spoofThreads struct {
	id atomic.Uint64
}

func newSpoofThreads(id thread.ID) *spoofThreads {
	s := &spoofThreads{}
	s.set(id)
	return s
}

func (s *spoofThreads) set(id thread.ID)    { s.id.Store(uint64(id)) }
func (s *spoofThreads) Current() thread.ID { return thread.ID(s.id.Load()) }

func newTestRegistry(t *testing.T) (*Registry, *spoofThreads) {
	t.Helper()
	threads := newSpoofThreads(100)
	return New(threads, zerolog.Nop()), threads
}

func TestRegister_IDsStrictlyIncreaseAndNeverRepeat(t *testing.T) {
	reg, _ := newTestRegistry(t)

	var last entity.SurfaceID
	for i := 0; i < 10; i++ {
		surface := mocks.NewMockSurface(t)
		surface.EXPECT().Close().Return(nil).Maybe()

		id, err := reg.Register(surface, navstate.New("about:blank"))
		require.NoError(t, err)
		assert.Greater(t, id, last)
		last = id

		if i%2 == 0 {
			require.NoError(t, reg.Unregister(id))
		}
	}

	assert.Equal(t, entity.SurfaceID(10), last)
	assert.Equal(t, 5, reg.Len())
}

func TestRegister_StartsAtOne(t *testing.T) {
	reg, _ := newTestRegistry(t)

	id, err := reg.Register(mocks.NewMockSurface(t), navstate.New("about:blank"))
	require.NoError(t, err)
	assert.Equal(t, entity.SurfaceID(1), id)
}

func TestRegister_RejectsNil(t *testing.T) {
	reg, _ := newTestRegistry(t)

	_, err := reg.Register(nil, navstate.New(""))
	assert.True(t, errors.Is(err, errs.ErrInternal))
}

func TestWith_RunsOnOwnerThread(t *testing.T) {
	reg, _ := newTestRegistry(t)
	surface := mocks.NewMockSurface(t)
	surface.EXPECT().Reload().Return(nil).Once()

	id, err := reg.Register(surface, navstate.New("about:blank"))
	require.NoError(t, err)

	err = reg.With(id, func(s port.Surface) error { return s.Reload() })
	assert.NoError(t, err)
}

func TestWith_PropagatesBodyError(t *testing.T) {
	reg, _ := newTestRegistry(t)
	id, err := reg.Register(mocks.NewMockSurface(t), navstate.New("about:blank"))
	require.NoError(t, err)

	boom := errors.New("boom")
	assert.ErrorIs(t, reg.With(id, func(port.Surface) error { return boom }), boom)
}

func TestWith_NotFound(t *testing.T) {
	reg, _ := newTestRegistry(t)

	called := false
	err := reg.With(42, func(port.Surface) error { called = true; return nil })

	assert.True(t, errors.Is(err, errs.ErrNotFound))
	assert.False(t, called)

	var e *errs.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, uint64(42), e.SurfaceID)
}

func TestWith_WrongThread(t *testing.T) {
	reg, threads := newTestRegistry(t)
	id, err := reg.Register(mocks.NewMockSurface(t), navstate.New("about:blank"))
	require.NoError(t, err)

	threads.set(200)

	called := false
	err = reg.With(id, func(port.Surface) error { called = true; return nil })
	assert.True(t, errors.Is(err, errs.ErrWrongThread))
	assert.False(t, called)
}

func TestWith_LockReleasedDuringBody(t *testing.T) {
	reg, _ := newTestRegistry(t)
	id, err := reg.Register(mocks.NewMockSurface(t), navstate.New("https://a.test"))
	require.NoError(t, err)

	// an engine callback re-entering the registry must not deadlock
	err = reg.With(id, func(port.Surface) error {
		state, err := reg.State(id)
		if err != nil {
			return err
		}
		state.MarkLoading()
		assert.Equal(t, 1, reg.Len())
		return nil
	})
	assert.NoError(t, err)
}

func TestUnregister_ClosesExactlyOnce(t *testing.T) {
	reg, _ := newTestRegistry(t)
	surface := mocks.NewMockSurface(t)
	surface.EXPECT().Close().Return(nil).Once()

	id, err := reg.Register(surface, navstate.New("about:blank"))
	require.NoError(t, err)

	require.NoError(t, reg.Unregister(id))
	require.NoError(t, reg.Unregister(id))
	assert.Equal(t, 0, reg.Len())

	err = reg.With(id, func(port.Surface) error { return nil })
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestUnregister_NeverIssuedIsNoop(t *testing.T) {
	reg, _ := newTestRegistry(t)
	assert.NoError(t, reg.Unregister(999))
}

func TestUnregister_WrongThreadKeepsEntry(t *testing.T) {
	reg, threads := newTestRegistry(t)
	surface := mocks.NewMockSurface(t)

	id, err := reg.Register(surface, navstate.New("about:blank"))
	require.NoError(t, err)

	threads.set(7)
	err = reg.Unregister(id)
	assert.True(t, errors.Is(err, errs.ErrWrongThread))
	assert.Equal(t, 1, reg.Len())
	surface.AssertNotCalled(t, "Close")
}

func TestUnregister_CloseFailureIsEngineError(t *testing.T) {
	reg, _ := newTestRegistry(t)
	surface := mocks.NewMockSurface(t)
	surface.EXPECT().Close().Return(errors.New("widget already finalized")).Once()

	id, err := reg.Register(surface, navstate.New("about:blank"))
	require.NoError(t, err)

	err = reg.Unregister(id)
	assert.True(t, errors.Is(err, errs.ErrUnderlyingEngine))
	// the entry is gone regardless
	assert.Equal(t, 0, reg.Len())
}

func TestState_NoThreadAffinity(t *testing.T) {
	reg, threads := newTestRegistry(t)
	state := navstate.New("https://a.test")
	id, err := reg.Register(mocks.NewMockSurface(t), state)
	require.NoError(t, err)

	threads.set(999)
	got, err := reg.State(id)
	require.NoError(t, err)
	assert.Same(t, state, got)

	_, err = reg.State(id + 1)
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestState_OutlivesUnregister(t *testing.T) {
	reg, _ := newTestRegistry(t)
	surface := mocks.NewMockSurface(t)
	surface.EXPECT().Close().Return(nil).Once()

	id, err := reg.Register(surface, navstate.New("https://a.test"))
	require.NoError(t, err)

	state, err := reg.State(id)
	require.NoError(t, err)
	require.NoError(t, reg.Unregister(id))

	// a reader holding the state keeps working after destroy
	state.PageLoad(entity.LoadFinished, "https://b.test")
	assert.Equal(t, "https://b.test", state.URL())
}

func TestIDs_Sorted(t *testing.T) {
	reg, _ := newTestRegistry(t)
	for i := 0; i < 3; i++ {
		_, err := reg.Register(mocks.NewMockSurface(t), navstate.New(""))
		require.NoError(t, err)
	}
	assert.Equal(t, []entity.SurfaceID{1, 2, 3}, reg.IDs())
}

func TestRegister_ConcurrentUniqueIDs(t *testing.T) {
	reg, _ := newTestRegistry(t)

	const n = 64
	var (
		mu   sync.Mutex
		seen = make(map[entity.SurfaceID]bool, n)
		g    errgroup.Group
	)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			id, err := reg.Register(stubSurface{}, navstate.New(""))
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			if seen[id] {
				return fmt.Errorf("duplicate id %d", id)
			}
			seen[id] = true
			return nil
		})
	}

	require.NoError(t, g.Wait())
	assert.Len(t, seen, n)
	assert.Equal(t, n, reg.Len())
}

// stubSurface avoids mock bookkeeping in the concurrency test.
type stubSurface struct{}

func (stubSurface) SetBounds(entity.Bounds) error { return nil }
func (stubSurface) LoadURL(string) error          { return nil }
func (stubSurface) GoBack() error                 { return nil }
func (stubSurface) GoForward() error              { return nil }
func (stubSurface) Reload() error                 { return nil }
func (stubSurface) Focus() error                  { return nil }
func (stubSurface) Close() error                  { return nil }
