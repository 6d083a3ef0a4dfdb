// Package cli holds the dependencies shared by the webembed commands.
package cli

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/webembed/internal/cli/styles"
	"github.com/bnema/webembed/internal/config"
	"github.com/bnema/webembed/internal/domain/build"
	"github.com/bnema/webembed/internal/logging"
)

// Options are the persistent flags of the root command.
type Options struct {
	ConfigDir string
	LogLevel  string
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	Logger    zerolog.Logger

	// LoadErr is set when the config file could not be used and defaults apply.
	LoadErr error
}

// NewApp loads the configuration and builds the logger. A broken config file
// is not fatal: defaults are used and the error is kept in LoadErr.
func NewApp(opts Options) (*App, error) {
	mgr, err := config.NewManager(opts.ConfigDir)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:  config.DefaultConfig(),
		Manager: mgr,
		Theme:   styles.NewTheme(),
	}
	if err := mgr.Load(); err != nil {
		app.LoadErr = err
	} else {
		app.Config = mgr.Get()
	}

	logCfg := logging.ConfigFromEnv(app.Config.Logging.LoggerConfig())
	logCfg.Output = os.Stderr
	logCfg.TimeFormat = "15:04:05"
	if opts.LogLevel != "" {
		if level, ok := logging.ParseLevel(opts.LogLevel); ok {
			logCfg.Level = level
		}
	}
	app.Logger = logging.New(logCfg)

	if app.LoadErr != nil {
		app.Logger.Warn().Err(app.LoadErr).Msg("using default configuration")
	}
	return app, nil
}
