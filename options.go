package gifintext

// SegmentOptions holds options for building a Segmenter.
type SegmentOptions struct {
	// Label is the bracketed word of the marker, "GIF" in ![GIF](url).
	Label string
}

// Option is a function that configures SegmentOptions.
type Option func(*SegmentOptions)

// WithLabel sets the marker label. An empty label keeps the default.
func WithLabel(label string) Option {
	return func(opts *SegmentOptions) {
		if label != "" {
			opts.Label = label
		}
	}
}

// defaultSegmentOptions returns the default segmenter options.
func defaultSegmentOptions() *SegmentOptions {
	return &SegmentOptions{
		Label: DefaultLabel,
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *SegmentOptions {
	options := defaultSegmentOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
