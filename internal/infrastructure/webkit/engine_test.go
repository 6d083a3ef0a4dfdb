//go:build linux

package webkit

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/webembed/internal/application/port"
	"github.com/bnema/webembed/internal/domain/errs"
	"github.com/bnema/webembed/internal/handle"
	"github.com/bnema/webembed/internal/infrastructure/x11"
)

func TestEngine_DisplayFailureIsCached(t *testing.T) {
	e := NewEngine(Options{Logger: zerolog.Nop()})

	dials := 0
	e.dial = func() (*x11.Connection, error) {
		dials++
		return nil, errors.New("cannot open display")
	}

	opts := port.BuildOptions{Parent: handle.Window{Kind: handle.KindXlib, XID: 0x1e00007}}
	for i := 0; i < 2; i++ {
		_, err := e.Build(context.Background(), opts)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrPlatformInit)
		assert.Contains(t, err.Error(), "cannot open display")
	}
	assert.Equal(t, 1, dials)

	require.NoError(t, e.Close())
	_, err := e.Build(context.Background(), opts)
	assert.ErrorIs(t, err, errs.ErrPlatformInit)
	assert.Equal(t, 1, dials)
}

func TestEngine_RejectsNonXlibParent(t *testing.T) {
	e := NewEngine(Options{Logger: zerolog.Nop()})
	e.dial = func() (*x11.Connection, error) {
		t.Fatal("display dialed for a foreign handle")
		return nil, nil
	}

	_, err := e.Build(context.Background(), port.BuildOptions{Parent: handle.Window{Kind: handle.KindWin32, HWND: 1}})
	assert.ErrorIs(t, err, errs.ErrUnderlyingEngine)
}
