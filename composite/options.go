package composite

import (
	"go.uber.org/zap"

	"type-transformer/codec"
	"type-transformer/codec/json"
)

// DefaultPrefix marks tag keys unless WithPrefix says otherwise.
const DefaultPrefix = "$"

// Options configures a Composite.
type Options struct {
	// Prefix starts every tag key. It must not begin any single-key map the
	// caller stores as ordinary data.
	Prefix string
	// Serializer is used by Stringify and Parse only; the walker never
	// calls it.
	Serializer codec.Serializer
	Logger     *zap.Logger
}

// Option overrides one field of Options. Zero arguments leave the field
// untouched, so unspecified options are inherited.
type Option func(*Options)

// WithPrefix sets the tag key prefix. An empty prefix is ignored.
func WithPrefix(prefix string) Option {
	return func(o *Options) {
		if prefix != "" {
			o.Prefix = prefix
		}
	}
}

// WithSerializer sets the serializer used by Stringify and Parse.
func WithSerializer(s codec.Serializer) Option {
	return func(o *Options) {
		if s != nil {
			o.Serializer = s
		}
	}
}

// WithLogger sets the logger. It defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns the options a Composite gets from New without any
// Option: prefix "$", the JSON serializer and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Prefix:     DefaultPrefix,
		Serializer: json.New(),
		Logger:     zap.NewNop(),
	}
}

func (o Options) apply(opts []Option) Options {
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
