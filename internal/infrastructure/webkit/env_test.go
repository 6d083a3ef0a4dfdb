package webkit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeEnv(initial map[string]string) (*renderEnv, map[string]string) {
	store := make(map[string]string, len(initial))
	for k, v := range initial {
		store[k] = v
	}
	e := newRenderEnv()
	e.lookup = func(k string) (string, bool) {
		v, ok := store[k]
		return v, ok
	}
	e.set = func(k, v string) error {
		store[k] = v
		return nil
	}
	return e, store
}

func TestRenderEnv_HardwareAccelerated(t *testing.T) {
	e, store := fakeEnv(nil)

	require.NoError(t, e.apply("x11", true))
	assert.Equal(t, map[string]string{"GDK_BACKEND": "x11"}, store)
	assert.Equal(t, map[string]string{"GDK_BACKEND": "x11"}, e.vars())
}

func TestRenderEnv_SoftwareRendering(t *testing.T) {
	e, store := fakeEnv(map[string]string{"GSK_RENDERER": "ngl", "GDK_BACKEND": "wayland"})

	require.NoError(t, e.apply("x11", false))

	assert.Equal(t, "x11", store["GDK_BACKEND"])
	assert.Equal(t, "ngl", store["GSK_RENDERER"], "user choice is kept")
	assert.Equal(t, "1", store["WEBKIT_DISABLE_DMABUF_RENDERER"])
	assert.Equal(t, "1", store["WEBKIT_DISABLE_COMPOSITING_MODE"])
	assert.NotContains(t, e.vars(), "GSK_RENDERER")
}

func TestRenderEnv_EmptyBackendLeavesEnvironment(t *testing.T) {
	e, store := fakeEnv(map[string]string{"GDK_BACKEND": "wayland"})

	require.NoError(t, e.apply("", true))
	assert.Equal(t, "wayland", store["GDK_BACKEND"])
	assert.Empty(t, e.vars())
}

func TestRenderEnv_SetFailure(t *testing.T) {
	e, _ := fakeEnv(nil)
	e.set = func(string, string) error { return errors.New("denied") }

	assert.EqualError(t, e.apply("x11", true), "denied")
	assert.Empty(t, e.vars())
}
