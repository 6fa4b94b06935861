package linkmarkup

// ConvertOptions holds options for markup conversion.
type ConvertOptions struct {
	Config *RenderConfig
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithConfig sets a custom RenderConfig. Options given after it apply on
// top of a copy of config.
func WithConfig(config *RenderConfig) Option {
	return func(opts *ConvertOptions) {
		opts.Config = config.Clone()
	}
}

// WithMnemonics sets whether '&' markers are stripped from label text.
func WithMnemonics(enable bool) Option {
	return func(opts *ConvertOptions) {
		opts.Config.Mnemonics = enable
	}
}

// WithNormalize sets whether markup is NFC-normalized before scanning.
func WithNormalize(enable bool) Option {
	return func(opts *ConvertOptions) {
		opts.Config.Normalize = enable
	}
}

// WithLogDiscards sets whether dropped markup spans are logged to Logger.
func WithLogDiscards(enable bool) Option {
	return func(opts *ConvertOptions) {
		opts.Config.LogDiscards = enable
	}
}

// defaultConvertOptions returns the default conversion options.
func defaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		Config: DefaultConfig().Clone(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
