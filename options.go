package hjarta

import (
	"go.uber.org/fx"

	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/config/env"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules  []fx.Option
	LogLevel string
	// Env is the environment every layered configuration reads from.
	// Defaults to the process environment.
	Env env.Provider
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// It overrides LOG_LEVEL. If neither is set or the level is invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithEnv replaces the process environment as the source of environment layers.
// The provider is also available to Fx modules as env.Provider.
func WithEnv(provider env.Provider) Option {
	return func(opts *Options) {
		opts.Env = provider
	}
}

// WithConfig provides a T to the Fx container, resolved from the defaults of P,
// the section at path of the document read by fetcher and parsed by parser,
// and the application environment.
func WithConfig[T any, P config.Partial[P, T]](path string, parser config.Parser, fetcher config.DataFetcher) Option {
	return func(opts *Options) {
		provide := config.Provider[T, P](path)

		opts.Modules = append(opts.Modules, fx.Provide(func(provider env.Provider) (T, error) {
			return provide(parser, fetcher, provider)
		}))
	}
}
