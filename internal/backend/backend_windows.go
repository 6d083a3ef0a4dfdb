//go:build windows

package backend

import (
	"github.com/bnema/webembed/internal/application/port"
	"github.com/bnema/webembed/internal/config"
	"github.com/bnema/webembed/internal/dispatch"
	"github.com/bnema/webembed/internal/infrastructure/win32"
	"github.com/bnema/webembed/internal/platform"
	"github.com/rs/zerolog"
)

// No engine renders on Windows yet: handles are resolved, then Create fails
// with ErrUnsupportedPlatform.
func Defaults(_ *config.Config, logger zerolog.Logger) (port.Engine, dispatch.Dispatcher) {
	return nil, dispatch.ForPlatform(dispatch.Options{
		Platform: platform.Windows,
		Pump:     win32.Pump,
		Logger:   logger,
	})
}
