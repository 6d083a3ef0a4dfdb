package styles

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/webembed/internal/domain/build"
	"github.com/bnema/webembed/internal/handle"
	"github.com/bnema/webembed/internal/platform"
)

func TestNewTheme_UsesAccentForSuccess(t *testing.T) {
	theme := NewTheme()
	assert.Equal(t, theme.Accent, theme.Success)
	assert.EqualValues(t, DefaultDarkPalette().Accent, theme.Accent)
}

func TestAboutRenderer_Render(t *testing.T) {
	out := NewAboutRenderer(NewTheme()).Render(build.Info{
		Version:   "v1.2.3",
		Commit:    "abc123",
		BuildDate: "2026-01-01",
		GoVersion: "go1.25.3",
	}, platform.Platform("plan9"))

	for _, want := range []string{"v1.2.3", "abc123", "go1.25.3", "plan9", "unsupported", build.RepoURL()} {
		assert.Contains(t, out, want)
	}
}

func TestSurfaceRenderer(t *testing.T) {
	r := NewSurfaceRenderer(NewTheme())
	w := handle.Window{Kind: handle.KindXlib, XID: 0x1e00007}

	assert.Contains(t, r.RenderHandle(0x1e00007, w), "xlib:0x1e00007")
	assert.Contains(t, r.RenderCreated(3, w, "https://example.com"), "#3")
	assert.Contains(t, r.RenderState(3, "https://example.com", true), "loading")
	assert.Contains(t, r.RenderState(3, "https://example.com", false), "idle")
	assert.Contains(t, r.RenderError(errors.New("boom")), "boom")
}

func TestConfigRenderer_RenderConfigInfo(t *testing.T) {
	r := NewConfigRenderer(NewTheme())

	assert.Contains(t, r.RenderConfigInfo("/tmp/config.yaml"), "/tmp/config.yaml")
	assert.Contains(t, r.RenderConfigInfo(""), "using defaults")
}
