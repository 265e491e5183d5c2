package hjarta_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	hjarta "github.com/0xalexb/hjarta-config"
	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/config/env"
	tomlparser "github.com/0xalexb/hjarta-config/config/parser/toml"
	yamlparser "github.com/0xalexb/hjarta-config/config/parser/yaml"
	"github.com/0xalexb/hjarta-config/internal/testconfig"
	"github.com/0xalexb/hjarta-config/logging"
)

type staticFetcher string

func (f staticFetcher) Fetch() ([]byte, error) {
	if f == "" {
		return nil, config.ErrNoDocument
	}

	return []byte(f), nil
}

func TestNewApp_CreatesAppWithDefaultLogLevel(t *testing.T) {
	t.Parallel()

	app := hjarta.NewApp()
	require.NotNil(t, app)
}

func TestNewApp_WithModules(t *testing.T) {
	t.Parallel()

	var invoked bool

	module := fx.Module("test",
		fx.Invoke(func() {
			invoked = true
		}),
	)

	app := hjarta.NewApp(hjarta.WithEnv(env.Map(nil)), hjarta.WithModules(module))
	require.NotNil(t, app)

	err := app.Start()
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Stop() })
	require.True(t, invoked)
}

func TestNewApp_LoggerIsAvailableInFxContainer(t *testing.T) {
	t.Parallel()

	var capturedLogger *slog.Logger

	module := fx.Module("test",
		fx.Invoke(func(logger *slog.Logger) {
			capturedLogger = logger
		}),
	)

	app := hjarta.NewApp(
		hjarta.WithLogLevel("debug"),
		hjarta.WithEnv(env.Map(nil)),
		hjarta.WithModules(module),
	)
	require.NotNil(t, app)

	err := app.Start()
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Stop() })
	require.NotNil(t, capturedLogger)
	require.True(t, capturedLogger.Enabled(context.Background(), slog.LevelDebug))
}

func TestNewApp_LoggerConfigLayers(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		vars     map[string]string
		level    string
		expected logging.LoggerConfig
	}{
		{
			name:     "defaults",
			expected: logging.LoggerConfig{Level: "info", Format: "json"},
		},
		{
			name:     "environment",
			vars:     map[string]string{"LOG_LEVEL": "error", "LOG_FORMAT": "text"},
			expected: logging.LoggerConfig{Level: "error", Format: "text"},
		},
		{
			name:     "option overrides environment",
			vars:     map[string]string{"LOG_LEVEL": "error"},
			level:    "warn",
			expected: logging.LoggerConfig{Level: "warn", Format: "json"},
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var capturedConfig logging.LoggerConfig

			module := fx.Module("test",
				fx.Invoke(func(cfg logging.LoggerConfig) {
					capturedConfig = cfg
				}),
			)

			app := hjarta.NewApp(
				hjarta.WithLogLevel(testCase.level),
				hjarta.WithEnv(env.Map(testCase.vars)),
				hjarta.WithModules(module),
			)

			err := app.Start()
			require.NoError(t, err)
			t.Cleanup(func() { _ = app.Stop() })
			require.Equal(t, testCase.expected, capturedConfig)
		})
	}
}

func TestNewApp_UnreadableEnvironmentFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	provider := env.ProviderFunc(func(string) (string, bool, error) {
		return "", false, errors.New("environment unavailable")
	})

	var capturedConfig logging.LoggerConfig

	app := hjarta.NewApp(
		hjarta.WithEnv(provider),
		hjarta.WithModules(fx.Invoke(func(cfg logging.LoggerConfig) {
			capturedConfig = cfg
		})),
	)

	err := app.Start()
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Stop() })
	require.Equal(t, logging.DefaultConfig(), capturedConfig)
}

func TestNewApp_EnvProviderIsAvailableInFxContainer(t *testing.T) {
	t.Parallel()

	var value string

	app := hjarta.NewApp(
		hjarta.WithEnv(env.Map(map[string]string{"GREETING": "hello"})),
		hjarta.WithModules(fx.Invoke(func(provider env.Provider) error {
			v, _, err := provider.Fetch("GREETING")
			value = v

			return err
		})),
	)

	err := app.Start()
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Stop() })
	require.Equal(t, "hello", value)
}

func TestNewApp_WithConfig(t *testing.T) {
	t.Parallel()

	document := staticFetcher(`
[api]
name = "api"
peer_list = ["10.0.0.1"]

[api.sample]
required_baz = true
`)

	var service testconfig.Service

	app := hjarta.NewApp(
		hjarta.WithEnv(env.Map(map[string]string{"SERVICE_TIMEOUT": "2s", "FOO": "env foo"})),
		hjarta.WithConfig[testconfig.Service, testconfig.ServicePartial]("api", tomlparser.NewParser(), document),
		hjarta.WithModules(fx.Invoke(func(cfg testconfig.Service) {
			service = cfg
		})),
	)

	err := app.Start()
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Stop() })

	assert.Equal(t, "api", service.Name)
	assert.Equal(t, []string{"10.0.0.1"}, service.Peers)
	assert.Equal(t, "2s", service.Timeout.String())
	assert.Equal(t, uint32(1), service.Workers)
	assert.True(t, service.Sample.RequiredBaz)
	assert.Equal(t, "env foo", service.Sample.Nested.FooEnv)
}

func TestNewApp_WithConfigFailureStopsStart(t *testing.T) {
	t.Parallel()

	app := hjarta.NewApp(
		hjarta.WithEnv(env.Map(nil)),
		hjarta.WithConfig[testconfig.Sample, testconfig.SamplePartial]("", yamlparser.NewParser(), staticFetcher("")),
		hjarta.WithModules(fx.Invoke(func(testconfig.Sample) {})),
	)

	err := app.Start()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "required_baz: missing field")
}

func TestApp_Stop(t *testing.T) {
	t.Parallel()

	var stopCalled bool

	module := fx.Module("test",
		fx.Invoke(func(lc fx.Lifecycle) {
			lc.Append(fx.Hook{
				OnStop: func(_ context.Context) error {
					stopCalled = true

					return nil
				},
			})
		}),
	)

	app := hjarta.NewApp(hjarta.WithModules(module))
	require.NotNil(t, app)

	err := app.Start()
	require.NoError(t, err)

	err = app.Stop()
	require.NoError(t, err)
	require.True(t, stopCalled, "OnStop hook should be called")
}

func TestApp_NilApp(t *testing.T) {
	t.Parallel()

	var app *hjarta.App

	require.Error(t, app.Start())
	require.Error(t, app.Stop())
	require.NotPanics(t, func() {
		app.Run()
	})
}

func TestApp_Run(t *testing.T) {
	t.Parallel()

	module := fx.Module("test",
		fx.Invoke(func(shutdowner fx.Shutdowner) {
			go func() {
				_ = shutdowner.Shutdown()
			}()
		}),
	)

	app := hjarta.NewApp(hjarta.WithModules(module))
	require.NotNil(t, app)

	require.NotPanics(t, func() {
		app.Run()
	})
}
