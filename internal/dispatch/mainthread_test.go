package dispatch_test

import (
	"errors"
	"testing"

	"github.com/bnema/webembed/internal/dispatch"
	mock_dispatch "github.com/bnema/webembed/internal/dispatch/mocks"
	"github.com/bnema/webembed/internal/domain/errs"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMainThread_InlineOnMainThread(t *testing.T) {
	ctrl := gomock.NewController(t)
	queue := mock_dispatch.NewMockMainQueue(ctrl)
	queue.EXPECT().IsMainThread().Return(true).Times(2)

	m := dispatch.NewMainThread(queue, zerolog.Nop())
	assert.Equal(t, dispatch.StrategyMainThread, m.Strategy())

	ran := 0
	require.NoError(t, m.Run(func() error { ran++; return nil }))
	require.NoError(t, m.Post(func() error { ran++; return nil }))
	assert.Equal(t, 2, ran)
}

func TestMainThread_RunBlocksThroughSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	queue := mock_dispatch.NewMockMainQueue(ctrl)
	queue.EXPECT().IsMainThread().Return(false)
	queue.EXPECT().Sync(gomock.Any()).Do(func(fn func()) { fn() })

	m := dispatch.NewMainThread(queue, zerolog.Nop())
	boom := errors.New("boom")
	assert.ErrorIs(t, m.Run(func() error { return boom }), boom)
}

func TestMainThread_PostDoesNotWait(t *testing.T) {
	ctrl := gomock.NewController(t)
	queue := mock_dispatch.NewMockMainQueue(ctrl)

	var scheduled func()
	queue.EXPECT().IsMainThread().Return(false)
	queue.EXPECT().Async(gomock.Any()).Do(func(fn func()) { scheduled = fn })

	m := dispatch.NewMainThread(queue, zerolog.Nop())

	ran := false
	err := m.Post(func() error { ran = true; return errors.New("ignored") })
	require.NoError(t, err)
	assert.False(t, ran)

	require.NotNil(t, scheduled)
	scheduled()
	assert.True(t, ran)
}

func TestMainThread_PanicIsInternal(t *testing.T) {
	ctrl := gomock.NewController(t)
	queue := mock_dispatch.NewMockMainQueue(ctrl)
	queue.EXPECT().IsMainThread().Return(false)
	queue.EXPECT().Sync(gomock.Any()).Do(func(fn func()) { fn() })

	m := dispatch.NewMainThread(queue, zerolog.Nop())
	err := m.Run(func() error { panic("released view") })
	assert.True(t, errors.Is(err, errs.ErrInternal))
}

func TestMainThread_Closed(t *testing.T) {
	ctrl := gomock.NewController(t)
	queue := mock_dispatch.NewMockMainQueue(ctrl)

	m := dispatch.NewMainThread(queue, zerolog.Nop())
	require.NoError(t, m.Close())

	assert.True(t, errors.Is(m.Run(func() error { return nil }), errs.ErrInternal))
	assert.True(t, errors.Is(m.Post(func() error { return nil }), errs.ErrInternal))
}
