package stylize

import "github.com/rs/zerolog"

// Options holds the settings a Stylizer is built with.
type Options struct {
	Config *RenderConfig
	Logger *zerolog.Logger
}

// Option is a function that configures Options.
type Option func(*Options)

// WithConfig replaces the whole RenderConfig. The config is copied.
func WithConfig(config *RenderConfig) Option {
	return func(opts *Options) {
		opts.Config = config.Clone()
	}
}

// WithAssetBaseURL sets the prefix put in front of every validated asset path.
func WithAssetBaseURL(url string) Option {
	return func(opts *Options) {
		opts.Config.AssetBaseURL = url
	}
}

// WithIterationLimit caps every fixpoint loop at n replacements.
// n <= 0 derives the cap from the input length.
func WithIterationLimit(n int) Option {
	return func(opts *Options) {
		opts.Config.IterationLimit = n
	}
}

// WithLogger sets the logger used for internal failures and stage tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = &logger
	}
}

// defaultOptions returns the default options.
func defaultOptions() *Options {
	return &Options{
		Config: DefaultConfig().Clone(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *Options {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
