//go:build linux

package backend

import (
	"github.com/bnema/webembed/internal/application/port"
	"github.com/bnema/webembed/internal/config"
	"github.com/bnema/webembed/internal/dispatch"
	"github.com/bnema/webembed/internal/infrastructure/webkit"
	"github.com/bnema/webembed/internal/platform"
	"github.com/rs/zerolog"
)

// Defaults returns the WebKitGTK engine and a Runner driving GTK on its own thread.
func Defaults(cfg *config.Config, logger zerolog.Logger) (port.Engine, dispatch.Dispatcher) {
	engine := webkit.NewEngine(webkit.Options{
		EmbedTimeout:         cfg.Linux.EmbedTimeout,
		HardwareAcceleration: cfg.Linux.HardwareAcceleration,
		Logger:               logger,
	})
	toolkit := webkit.NewToolkit(webkit.ToolkitOptions{
		GdkBackend:           cfg.Linux.GdkBackend,
		HardwareAcceleration: cfg.Linux.HardwareAcceleration,
	}, logger)
	d := dispatch.ForPlatform(dispatch.Options{
		Platform:     platform.Linux,
		Toolkit:      toolkit,
		PumpInterval: cfg.Dispatch.PumpInterval,
		Logger:       logger,
	})
	return engine, d
}
