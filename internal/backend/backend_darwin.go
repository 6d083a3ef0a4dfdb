//go:build darwin

package backend

import (
	"github.com/bnema/webembed/internal/application/port"
	"github.com/bnema/webembed/internal/config"
	"github.com/bnema/webembed/internal/dispatch"
	"github.com/bnema/webembed/internal/infrastructure/darwin"
	"github.com/bnema/webembed/internal/platform"
	"github.com/rs/zerolog"
)

// No engine renders on macOS yet: handles are resolved, then Create fails
// with ErrUnsupportedPlatform.
func Defaults(_ *config.Config, logger zerolog.Logger) (port.Engine, dispatch.Dispatcher) {
	opts := dispatch.Options{Platform: platform.Darwin, Logger: logger}
	if queue, err := darwin.NewMainQueue(); err != nil {
		logger.Error().Err(err).Msg("libdispatch unavailable")
	} else {
		opts.Queue = queue
	}
	return nil, dispatch.ForPlatform(opts)
}
