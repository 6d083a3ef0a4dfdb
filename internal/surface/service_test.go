package surface_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/webembed/internal/application/port"
	"github.com/bnema/webembed/internal/application/port/mocks"
	"github.com/bnema/webembed/internal/dispatch"
	mock_dispatch "github.com/bnema/webembed/internal/dispatch/mocks"
	"github.com/bnema/webembed/internal/domain/entity"
	"github.com/bnema/webembed/internal/domain/errs"
	"github.com/bnema/webembed/internal/handle"
	"github.com/bnema/webembed/internal/platform"
	"github.com/bnema/webembed/internal/surface"
	"github.com/bnema/webembed/internal/thread"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"
)

const parentXID = 0x3a00007

type fixture struct {
	svc     *surface.Service
	engine  *mocks.MockEngine
	threads *atomic.Uint64
	pumped  *atomic.Int32
}

func linuxResolver(raw uint64) (handle.Window, error) {
	return handle.ResolveFor(platform.Linux, raw, nil)
}

// newFixture wires a Service on the Direct strategy with a spoofable thread identity.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		engine:  mocks.NewMockEngine(t),
		threads: &atomic.Uint64{},
		pumped:  &atomic.Int32{},
	}
	f.threads.Store(1)

	threads := port.ThreadSourceFunc(func() thread.ID { return thread.ID(f.threads.Load()) })
	d := dispatch.NewDirect(func() { f.pumped.Add(1) }, zerolog.Nop())
	f.svc = surface.NewService(f.engine, d,
		surface.WithResolver(linuxResolver),
		surface.WithThreadSource(threads),
	)
	return f
}

// expectBuild makes the engine return native and captures the build options.
func (f *fixture) expectBuild(native port.Surface) *port.BuildOptions {
	var got port.BuildOptions
	f.engine.EXPECT().Build(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, opts port.BuildOptions) (port.Surface, error) {
			got = opts
			return native, nil
		}).Once()
	return &got
}

func (f *fixture) create(t *testing.T, native port.Surface) (entity.SurfaceID, *port.BuildOptions) {
	t.Helper()
	opts := f.expectBuild(native)
	id, err := f.svc.Create(context.Background(), parentXID, 800, 600, "https://start.test")
	require.NoError(t, err)
	return id, opts
}

func TestCreate(t *testing.T) {
	f := newFixture(t)
	native := mocks.NewMockSurface(t)

	id, opts := f.create(t, native)

	assert.Equal(t, entity.SurfaceID(1), id)
	assert.Equal(t, handle.Window{Kind: handle.KindXlib, XID: parentXID}, opts.Parent)
	assert.Equal(t, entity.Bounds{Width: 800, Height: 600}, opts.Bounds)
	assert.Equal(t, "https://start.test", opts.URL)

	ctx := context.Background()
	url, err := f.svc.URL(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "https://start.test", url)

	loading, err := f.svc.IsLoading(ctx, id)
	require.NoError(t, err)
	assert.True(t, loading)
}

func TestCreate_IDsIncrease(t *testing.T) {
	f := newFixture(t)

	first, _ := f.create(t, mocks.NewMockSurface(t))
	second, _ := f.create(t, mocks.NewMockSurface(t))
	assert.Greater(t, second, first)
}

func TestCreate_ZeroHandle(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), 0, 800, 600, "https://start.test")
	assert.True(t, errors.Is(err, errs.ErrInvalidWindowHandle))
	f.engine.AssertNotCalled(t, "Build", mock.Anything, mock.Anything)
}

func TestCreate_XIDOutOfRange(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), 1<<32, 800, 600, "https://start.test")
	assert.True(t, errors.Is(err, errs.ErrInvalidWindowHandle))
}

func TestCreate_NoEngine(t *testing.T) {
	svc := surface.NewService(nil, dispatch.NewDirect(nil, zerolog.Nop()),
		surface.WithResolver(linuxResolver),
		surface.WithPlatform(platform.Darwin),
	)

	_, err := svc.Create(context.Background(), parentXID, 800, 600, "https://start.test")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrUnsupportedPlatform))
	assert.Contains(t, err.Error(), "darwin")

	// an invalid handle is still reported first
	_, err = svc.Create(context.Background(), 0, 800, 600, "https://start.test")
	assert.True(t, errors.Is(err, errs.ErrInvalidWindowHandle))
}

func TestCreate_EngineFailure(t *testing.T) {
	f := newFixture(t)
	f.engine.EXPECT().Build(mock.Anything, mock.Anything).
		Return(nil, errors.New("webview creation failed")).Once()

	_, err := f.svc.Create(context.Background(), parentXID, 800, 600, "https://start.test")
	assert.True(t, errors.Is(err, errs.ErrUnderlyingEngine))
	assert.Contains(t, err.Error(), "webview creation failed")
	assert.Zero(t, f.svc.Registry().Len())
}

func TestCreate_ClampsInitialSize(t *testing.T) {
	f := newFixture(t)
	opts := f.expectBuild(mocks.NewMockSurface(t))

	_, err := f.svc.Create(context.Background(), parentXID, 0, -5, "about:blank")
	require.NoError(t, err)
	assert.Equal(t, entity.Bounds{Width: 1, Height: 1}, opts.Bounds)
}

func TestCallbacks_UpdateState(t *testing.T) {
	f := newFixture(t)
	id, opts := f.create(t, mocks.NewMockSurface(t))
	ctx := context.Background()

	opts.Callbacks.OnPageLoad(entity.LoadFinished, "https://start.test/home")
	url, _ := f.svc.URL(ctx, id)
	loading, _ := f.svc.IsLoading(ctx, id)
	assert.Equal(t, "https://start.test/home", url)
	assert.False(t, loading)

	assert.True(t, opts.Callbacks.OnNavigationStarted("https://other.test"))
	url, _ = f.svc.URL(ctx, id)
	loading, _ = f.svc.IsLoading(ctx, id)
	assert.Equal(t, "https://other.test", url)
	assert.True(t, loading)

	// a started event does not touch the url
	opts.Callbacks.OnPageLoad(entity.LoadStarted, "https://ignored.test")
	url, _ = f.svc.URL(ctx, id)
	assert.Equal(t, "https://other.test", url)
}

func TestNavigation_MarksLoadingEagerly(t *testing.T) {
	tests := []struct {
		name   string
		expect func(*mocks.MockSurface)
		call   func(*surface.Service, entity.SurfaceID) error
	}{
		{
			name:   "load url",
			expect: func(s *mocks.MockSurface) { s.EXPECT().LoadURL("https://next.test").Return(nil).Once() },
			call: func(svc *surface.Service, id entity.SurfaceID) error {
				return svc.LoadURL(context.Background(), id, "https://next.test")
			},
		},
		{
			name:   "go back",
			expect: func(s *mocks.MockSurface) { s.EXPECT().GoBack().Return(nil).Once() },
			call: func(svc *surface.Service, id entity.SurfaceID) error {
				return svc.GoBack(context.Background(), id)
			},
		},
		{
			name:   "go forward",
			expect: func(s *mocks.MockSurface) { s.EXPECT().GoForward().Return(nil).Once() },
			call: func(svc *surface.Service, id entity.SurfaceID) error {
				return svc.GoForward(context.Background(), id)
			},
		},
		{
			name:   "reload",
			expect: func(s *mocks.MockSurface) { s.EXPECT().Reload().Return(nil).Once() },
			call: func(svc *surface.Service, id entity.SurfaceID) error {
				return svc.Reload(context.Background(), id)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			native := mocks.NewMockSurface(t)
			id, opts := f.create(t, native)

			opts.Callbacks.OnPageLoad(entity.LoadFinished, "https://start.test")
			tt.expect(native)

			require.NoError(t, tt.call(f.svc, id))

			loading, err := f.svc.IsLoading(context.Background(), id)
			require.NoError(t, err)
			assert.True(t, loading)

			// the url only moves once the engine reports the navigation
			url, _ := f.svc.URL(context.Background(), id)
			assert.Equal(t, "https://start.test", url)
		})
	}
}

func TestFocus(t *testing.T) {
	f := newFixture(t)
	native := mocks.NewMockSurface(t)
	id, opts := f.create(t, native)
	opts.Callbacks.OnPageLoad(entity.LoadFinished, "https://start.test")

	native.EXPECT().Focus().Return(nil).Once()
	require.NoError(t, f.svc.Focus(context.Background(), id))

	// focus is not a navigation
	loading, _ := f.svc.IsLoading(context.Background(), id)
	assert.False(t, loading)
}

func TestSetBounds_Clamps(t *testing.T) {
	f := newFixture(t)
	native := mocks.NewMockSurface(t)
	id, _ := f.create(t, native)

	native.EXPECT().SetBounds(entity.Bounds{X: 10, Y: 20, Width: 1, Height: 1}).Return(nil).Once()
	require.NoError(t, f.svc.SetBounds(context.Background(), id, 10, 20, 0, 0))

	native.EXPECT().SetBounds(entity.Bounds{X: -4, Y: 0, Width: 320, Height: 240}).Return(nil).Once()
	require.NoError(t, f.svc.SetBounds(context.Background(), id, -4, 0, 320, 240))
}

func TestEngineErrorsAreWrapped(t *testing.T) {
	f := newFixture(t)
	native := mocks.NewMockSurface(t)
	id, _ := f.create(t, native)

	native.EXPECT().Reload().Return(errors.New("web process crashed")).Once()
	err := f.svc.Reload(context.Background(), id)
	assert.True(t, errors.Is(err, errs.ErrUnderlyingEngine))
	assert.Contains(t, err.Error(), "web process crashed")
}

func TestDestroy_Idempotent(t *testing.T) {
	f := newFixture(t)
	native := mocks.NewMockSurface(t)
	id, _ := f.create(t, native)
	ctx := context.Background()

	native.EXPECT().Close().Return(nil).Once()
	require.NoError(t, f.svc.Destroy(ctx, id))
	require.NoError(t, f.svc.Destroy(ctx, id))
	require.NoError(t, f.svc.Destroy(ctx, 12345))

	_, err := f.svc.URL(ctx, id)
	assert.True(t, errors.Is(err, errs.ErrNotFound))
	_, err = f.svc.IsLoading(ctx, id)
	assert.True(t, errors.Is(err, errs.ErrNotFound))
	assert.True(t, errors.Is(f.svc.LoadURL(ctx, id, "https://x.test"), errs.ErrNotFound))
}

func TestUnknownID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	const id = entity.SurfaceID(99)

	for name, err := range map[string]error{
		"set bounds": f.svc.SetBounds(ctx, id, 0, 0, 10, 10),
		"load url":   f.svc.LoadURL(ctx, id, "https://x.test"),
		"go back":    f.svc.GoBack(ctx, id),
		"go forward": f.svc.GoForward(ctx, id),
		"reload":     f.svc.Reload(ctx, id),
		"focus":      f.svc.Focus(ctx, id),
	} {
		assert.True(t, errors.Is(err, errs.ErrNotFound), name)
	}
}

func TestWrongThread(t *testing.T) {
	f := newFixture(t)
	native := mocks.NewMockSurface(t)
	id, opts := f.create(t, native)
	ctx := context.Background()
	opts.Callbacks.OnPageLoad(entity.LoadFinished, "https://start.test")

	f.threads.Store(2)

	assert.True(t, errors.Is(f.svc.LoadURL(ctx, id, "https://x.test"), errs.ErrWrongThread))
	assert.True(t, errors.Is(f.svc.Focus(ctx, id), errs.ErrWrongThread))
	assert.True(t, errors.Is(f.svc.SetBounds(ctx, id, 0, 0, 1, 1), errs.ErrWrongThread))
	assert.True(t, errors.Is(f.svc.Destroy(ctx, id), errs.ErrWrongThread))

	// state stays readable from anywhere
	url, err := f.svc.URL(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "https://start.test", url)

	native.AssertNotCalled(t, "LoadURL", mock.Anything)
	native.AssertNotCalled(t, "Close")
}

func TestPumpEvents(t *testing.T) {
	f := newFixture(t)
	f.svc.PumpEvents(context.Background())
	f.svc.PumpEvents(context.Background())
	assert.Equal(t, int32(2), f.pumped.Load())
}

func TestClose_DestroysRemainingSurfaces(t *testing.T) {
	f := newFixture(t)
	first := mocks.NewMockSurface(t)
	second := mocks.NewMockSurface(t)
	f.create(t, first)
	f.create(t, second)

	first.EXPECT().Close().Return(nil).Once()
	second.EXPECT().Close().Return(errors.New("already gone")).Once()

	require.NoError(t, f.svc.Close(context.Background()))
	assert.Zero(t, f.svc.Registry().Len())
}

func TestClose_NothingBuilt(t *testing.T) {
	ctrl := gomock.NewController(t)
	// a toolkit without expectations fails the test if the runner ever starts
	toolkit := mock_dispatch.NewMockToolkit(ctrl)
	runner := dispatch.NewRunner(toolkit, time.Millisecond, zerolog.Nop())

	svc := surface.NewService(mocks.NewMockEngine(t), runner)
	require.NoError(t, svc.Close(context.Background()))
	assert.Equal(t, dispatch.StateUninitialized, runner.State())
}

func TestRunner_ConcurrentHostsShareOneUIThread(t *testing.T) {
	ctrl := gomock.NewController(t)
	toolkit := mock_dispatch.NewMockToolkit(ctrl)
	toolkit.EXPECT().Init().Return(nil).Times(1)
	toolkit.EXPECT().Iterate().AnyTimes()

	runner := dispatch.NewRunner(toolkit, time.Millisecond, zerolog.Nop())
	engine := mocks.NewMockEngine(t)
	var uiThread atomic.Uint64
	engine.EXPECT().Build(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, port.BuildOptions) (port.Surface, error) {
			uiThread.Store(uint64(thread.Current()))
			return &recordingSurface{}, nil
		})

	// real OS thread identity: only the runner thread may touch surfaces
	svc := surface.NewService(engine, runner, surface.WithResolver(linuxResolver))
	t.Cleanup(func() { _ = svc.Close(context.Background()) })

	ctx := context.Background()
	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			id, err := svc.Create(ctx, parentXID, 640, 480, fmt.Sprintf("https://host%d.test", i))
			if err != nil {
				return err
			}
			if err := svc.LoadURL(ctx, id, "https://next.test"); err != nil {
				return err
			}
			if err := svc.SetBounds(ctx, id, 0, 0, 100, 100); err != nil {
				return err
			}
			if _, err := svc.IsLoading(ctx, id); err != nil {
				return err
			}
			return svc.Destroy(ctx, id)
		})
	}
	require.NoError(t, g.Wait())
	assert.Zero(t, svc.Registry().Len())

	// the test goroutine is not the UI thread
	id, err := svc.Create(ctx, parentXID, 640, 480, "https://direct.test")
	require.NoError(t, err)
	err = svc.Registry().With(id, func(port.Surface) error { return nil })
	assert.True(t, errors.Is(err, errs.ErrWrongThread))
	assert.NotEqual(t, thread.Current(), thread.ID(uiThread.Load()))
}

// recordingSurface is a no-op surface safe for concurrent tests.
type recordingSurface struct {
	closed atomic.Int32
}

func (*recordingSurface) SetBounds(entity.Bounds) error { return nil }
func (*recordingSurface) LoadURL(string) error          { return nil }
func (*recordingSurface) GoBack() error                 { return nil }
func (*recordingSurface) GoForward() error              { return nil }
func (*recordingSurface) Reload() error                 { return nil }
func (*recordingSurface) Focus() error                  { return nil }
func (s *recordingSurface) Close() error {
	if s.closed.Add(1) > 1 {
		return errors.New("closed twice")
	}
	return nil
}
