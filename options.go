package cfg

import (
	"log/slog"

	"github.com/0xalexb/hjarta-cfg/diag"
	"github.com/0xalexb/hjarta-cfg/fetch"
)

// Options holds configuration settings for a Parser.
type Options struct {
	BasePath string
	File     string
	Fetcher  fetch.Fetcher
	Sink     diag.Sink
	Logger   *slog.Logger
	LogLevel string
}

// Option defines a function type for applying parser options.
type Option func(*Options)

// WithBasePath sets the directory against which #include targets are resolved.
func WithBasePath(path string) Option {
	return func(opts *Options) {
		opts.BasePath = path
	}
}

// WithFile names the configuration file the fx module loads when it
// provides the parser. New itself does not load anything.
func WithFile(path string) Option {
	return func(opts *Options) {
		opts.File = path
	}
}

// WithFetcher replaces the filesystem fetcher, for example with a
// fetch.Map in tests or for configuration embedded in the binary.
func WithFetcher(fetcher fetch.Fetcher) Option {
	return func(opts *Options) {
		opts.Fetcher = fetcher
	}
}

// WithSink sets the diagnostics sink.
func WithSink(sink diag.Sink) Option {
	return func(opts *Options) {
		opts.Sink = sink
	}
}

// WithLogger routes diagnostics to the given logger at warn level.
// Ignored when WithSink is also set.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithLogLevel sets the log level for the diagnostics logger the fx
// module builds when neither WithSink nor WithLogger is set.
// Valid levels are: "debug", "info", "warn", "error".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}
