package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/webembed/internal/handle"
)

// SurfaceRenderer renders surface and handle status lines.
type SurfaceRenderer struct {
	theme *Theme
}

// NewSurfaceRenderer creates a new surface renderer with the given theme.
func NewSurfaceRenderer(theme *Theme) *SurfaceRenderer {
	return &SurfaceRenderer{theme: theme}
}

// RenderHandle renders a resolved parent window.
func (r *SurfaceRenderer) RenderHandle(raw uint64, w handle.Window) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"  %s %s %s %s",
		iconStyle.Render(IconCheck),
		r.theme.Subtle.Render(fmt.Sprintf("0x%x", raw)),
		r.theme.Subtle.Render(IconArrow),
		r.theme.Badge.Render(w.Kind.String())+" "+r.theme.Highlight.Render(w.String()),
	)
}

// RenderCreated renders the id of a newly embedded surface.
func (r *SurfaceRenderer) RenderCreated(id uint64, w handle.Window, url string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	return fmt.Sprintf(
		"  %s surface %s in %s %s",
		iconStyle.Render(IconGlobe),
		r.theme.Highlight.Render(fmt.Sprintf("#%d", id)),
		r.theme.Subtle.Render(w.String()),
		r.theme.Title.Render(url),
	)
}

// RenderState renders the navigation state of a surface.
func (r *SurfaceRenderer) RenderState(id uint64, url string, loading bool) string {
	badge := r.theme.BadgeMuted.Render("idle")
	if loading {
		badge = r.theme.Badge.Render("loading")
	}

	return fmt.Sprintf(
		"  %s %s %s",
		r.theme.Subtle.Render(fmt.Sprintf("#%d", id)),
		badge,
		r.theme.Title.Render(url),
	)
}

// RenderError renders an error message.
func (r *SurfaceRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf("  %s %v", iconStyle.Render(IconX), err)
}
