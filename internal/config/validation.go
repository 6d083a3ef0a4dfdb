package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/webembed/internal/logging"
)

// validateConfig reports every invalid value at once.
func validateConfig(config *Config) error {
	var validationErrors []string

	if _, ok := logging.ParseLevel(config.Logging.Level); !ok {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error, disabled (got: %s)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be one of: console, json (got: %s)", config.Logging.Format))
	}

	if config.Dispatch.PumpInterval < time.Millisecond || config.Dispatch.PumpInterval > time.Second {
		validationErrors = append(validationErrors, fmt.Sprintf("dispatch.pump_interval must be between 1ms and 1s (got: %s)", config.Dispatch.PumpInterval))
	}

	switch config.Linux.GdkBackend {
	case "", "x11", "wayland":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("linux.gdk_backend must be one of: x11, wayland, or empty (got: %s)", config.Linux.GdkBackend))
	}
	if config.Linux.EmbedTimeout <= 0 {
		validationErrors = append(validationErrors, "linux.embed_timeout must be positive")
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}
