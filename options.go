package enumerable

import "github.com/denismitr/enumerable/comparer"

type (
	config[T any] struct {
		comparer comparer.EqualityComparer[T]
	}

	// Option configures comparer-driven operators and collections.
	Option[T any] func(c *config[T])
)

// WithComparer sets the equality used for keys or elements. Without it the
// comparer.Default fallback applies.
func WithComparer[T any](c comparer.EqualityComparer[T]) Option[T] {
	return func(cfg *config[T]) {
		cfg.comparer = c
	}
}

func newConfig[T any](options []Option[T]) config[T] {
	var cfg config[T]
	for _, o := range options {
		o(&cfg)
	}

	cfg.comparer = comparer.Resolve(cfg.comparer)
	return cfg
}
