// Package config provides configuration management for webembed with Viper integration.
package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bnema/webembed/internal/logging"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const envPrefix = "WEBEMBED"

// Config represents the complete configuration for webembed.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging" json:"logging"`
	Dispatch DispatchConfig `mapstructure:"dispatch" yaml:"dispatch" json:"dispatch"`
	Linux    LinuxConfig    `mapstructure:"linux" yaml:"linux" json:"linux"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" yaml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// DispatchConfig tunes the dedicated UI thread.
type DispatchConfig struct {
	// PumpInterval is the wait between two iterations of the UI loop.
	PumpInterval time.Duration `mapstructure:"pump_interval" yaml:"pump_interval" json:"pump_interval" jsonschema:"type=string,example=10ms"`
}

// LinuxConfig holds WebKitGTK specific settings.
type LinuxConfig struct {
	// GdkBackend is exported as GDK_BACKEND before GTK starts. Embedding needs x11.
	GdkBackend string `mapstructure:"gdk_backend" yaml:"gdk_backend" json:"gdk_backend"`
	// EmbedTimeout bounds the wait for a new surface window to be mapped.
	EmbedTimeout         time.Duration `mapstructure:"embed_timeout" yaml:"embed_timeout" json:"embed_timeout" jsonschema:"type=string,example=2s"`
	HardwareAcceleration bool          `mapstructure:"hardware_acceleration" yaml:"hardware_acceleration" json:"hardware_acceleration"`
}

// LoggerConfig converts the logging section for logging.New.
func (c LoggingConfig) LoggerConfig() logging.Config {
	cfg := logging.DefaultConfig()
	if level, ok := logging.ParseLevel(c.Level); ok {
		cfg.Level = level
	}
	if c.Format != "" {
		cfg.Format = c.Format
	}
	return cfg
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager. configDir overrides the
// XDG config directory when non-empty.
func NewManager(configDir string) (*Manager, error) {
	v := viper.New()

	// Supports yaml, json, toml automatically
	v.SetConfigName("config")

	if configDir == "" {
		dir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get config directory: %w", err)
		}
		configDir = dir
	}
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The logging package reads these two on its own; keep both spellings in sync.
	bindings := map[string][]string{
		"logging.level":  {envPrefix + "_LOGGING_LEVEL", logging.EnvLevel},
		"logging.format": {envPrefix + "_LOGGING_FORMAT", logging.EnvFormat},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("failed to bind environment variables for %s: %w", key, err)
		}
	}

	return &Manager{viper: v}, nil
}

// Load reads defaults, then the config file if one exists, then the environment.
func (m *Manager) Load() error {
	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config, err := m.decode()
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.config = config
	m.mu.Unlock()
	return nil
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// Watch starts watching the config file for changes and reloads automatically.
// An invalid file keeps the previous configuration.
func (m *Manager) Watch(logger zerolog.Logger) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}
	if m.viper.ConfigFileUsed() == "" {
		return errors.New("no config file to watch")
	}

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		logger.Debug().Str("file", e.Name).Stringer("op", e.Op).Msg("config file changed")
		m.handleChange(logger)
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// ConfigFile returns the path to the configuration file being used, if any.
func (m *Manager) ConfigFile() string {
	return m.viper.ConfigFileUsed()
}

func (m *Manager) handleChange(logger zerolog.Logger) {
	config, err := m.decode()
	if err != nil {
		logger.Warn().Err(err).Msg("failed to reload config")
		return
	}

	m.mu.Lock()
	m.config = config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		configCopy := *config
		callback(&configCopy)
	}
}

func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.Logging.Level = strings.ToLower(config.Logging.Level)
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.viper.SetDefault("dispatch.pump_interval", defaults.Dispatch.PumpInterval)

	m.viper.SetDefault("linux.gdk_backend", defaults.Linux.GdkBackend)
	m.viper.SetDefault("linux.embed_timeout", defaults.Linux.EmbedTimeout)
	m.viper.SetDefault("linux.hardware_acceleration", defaults.Linux.HardwareAcceleration)
}
