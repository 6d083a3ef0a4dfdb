//go:build !linux && !darwin && !windows

package backend

import (
	"github.com/bnema/webembed/internal/application/port"
	"github.com/bnema/webembed/internal/config"
	"github.com/bnema/webembed/internal/dispatch"
	"github.com/bnema/webembed/internal/platform"
	"github.com/rs/zerolog"
)

// Defaults returns a Direct dispatcher and no engine.
func Defaults(_ *config.Config, logger zerolog.Logger) (port.Engine, dispatch.Dispatcher) {
	return nil, dispatch.ForPlatform(dispatch.Options{Platform: platform.Current(), Logger: logger})
}
