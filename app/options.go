package app

import (
	"io"

	"github.com/PascalWirtz/pwtext"
	"github.com/PascalWirtz/pwtext/config"
	"github.com/PascalWirtz/pwtext/listener"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
	LogOutput io.Writer
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithDocument provides a *pwtext.Document to the application.
// fetcherConstructor is an Fx constructor for a config.DataFetcher implementation,
// such as file.NewFetcher(path); parse options are passed on to pwtext.New.
func WithDocument(fetcherConstructor any, parseOpts ...pwtext.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, fx.Module("document",
			fx.Provide(
				fx.Annotate(fetcherConstructor, fx.As(new(config.DataFetcher))),
				config.DocumentProvider(parseOpts...),
			),
		))
	}
}

// WithDocumentListener adds a named HTTP listener serving the application's document.
// Call multiple times with different names to create multiple listeners.
func WithDocumentListener(name string, opts ...listener.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, listener.NewModule(name, opts...))
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat sets the log format, "json" (default) or "text".
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithLogOutput redirects application logs, which go to stderr by default.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogOutput = w
	}
}
