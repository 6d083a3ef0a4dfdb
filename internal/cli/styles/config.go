package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file path, or a note that defaults are in use.
func (r *ConfigRenderer) RenderConfigInfo(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	if path == "" {
		return fmt.Sprintf(
			"  %s Config %s",
			iconStyle.Render(IconConfig),
			r.theme.Subtle.Render("no file found, using defaults"),
		)
	}
	return fmt.Sprintf("  %s Config %s", iconStyle.Render(IconConfig), r.theme.Subtle.Render(path))
}

// RenderBody wraps a rendered document in the theme box.
func (r *ConfigRenderer) RenderBody(body string) string {
	return r.theme.Box.Render(body)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf("  %s Config error: %v", iconStyle.Render(IconX), err)
}
