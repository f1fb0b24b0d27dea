package pathwalk

// Options holds Walker settings.
type Options struct {
	Indexer Indexer
}

// Option defines a function type for applying Walker settings.
type Option func(*Options)

// WithIndexer sets the lookup used for every step. A nil indexer keeps the
// default.
func WithIndexer(indexer Indexer) Option {
	return func(opts *Options) {
		opts.Indexer = indexer
	}
}
