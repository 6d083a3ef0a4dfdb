package config

import "time"

const (
	defaultPumpInterval = 10 * time.Millisecond
	defaultEmbedTimeout = 2 * time.Second
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Dispatch: DispatchConfig{
			PumpInterval: defaultPumpInterval,
		},
		Linux: LinuxConfig{
			GdkBackend:           "x11",
			EmbedTimeout:         defaultEmbedTimeout,
			HardwareAcceleration: true,
		},
	}
}
