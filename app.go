package hjarta

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/config/env"
	"github.com/0xalexb/hjarta-config/logging"
)

var errAppNotInitialized = errors.New("app not initialized")

// App is a configured starting point for application using Fx.
type App struct {
	app *fx.App
}

// NewApp creates a new instance of App with Fx configured.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	if options.Env == nil {
		options.Env = env.OS()
	}

	return &App{
		app: configure(&options, os.Stderr),
	}
}

func configure(options *Options, w io.Writer) *fx.App {
	loggerConfig, loggerErr := resolveLoggerConfig(options)

	logger := logging.NewLogger(loggerConfig, w)
	slog.SetDefault(logger)

	if loggerErr != nil {
		logger.Warn("invalid logger configuration, using defaults", slog.String("error", loggerErr.Error()))
	}

	logger.Debug("configuring app", slog.Any("build", Build()))

	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Provide(func() env.Provider { return options.Env }),
		fx.Supply(loggerConfig),
		fx.Supply(logger),
		fx.Options(options.Modules...),
	)
}

// resolveLoggerConfig layers the logger defaults, the LOG_* environment and
// the explicit options. Any failure falls back to the defaults.
func resolveLoggerConfig(options *Options) (logging.LoggerConfig, error) {
	var explicit logging.LoggerConfigPartial
	if options.LogLevel != "" {
		explicit.Level = config.Ptr(options.LogLevel)
	}

	cfg, err := config.Resolve[logging.LoggerConfig](
		config.Defaults[logging.LoggerConfigPartial](),
		config.Environment[logging.LoggerConfigPartial](options.Env),
		config.Static(explicit),
	)
	if err != nil {
		return logging.DefaultConfig(), fmt.Errorf("resolving logger config: %w", err)
	}

	return cfg, nil
}

// Start starts the Fx application.
func (app *App) Start() error {
	if app != nil && app.app != nil {
		err := app.app.Start(context.Background())
		if err != nil {
			return fmt.Errorf("failed to start app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Run starts the application and blocks until an OS signal is received, then shuts down gracefully.
func (app *App) Run() {
	if app == nil || app.app == nil {
		slog.Error("attempted to run an uninitialized app")

		return
	}

	app.app.Run()
}

// Stop stops the Fx application gracefully.
func (app *App) Stop() error {
	if app != nil && app.app != nil {
		err := app.app.Stop(context.Background())
		if err != nil {
			return fmt.Errorf("failed to stop app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}
