package pairwise

import (
	"github.com/arloliu/warp/internal/options"
)

// Option configures the pairwise orchestrator.
type Option = options.Option[*Config]

// WithWorkers sets the number of concurrent workers. Values below 1 leave
// the default (GOMAXPROCS) in place; counts larger than the left collection
// are clamped to its size.
func WithWorkers(n int) Option {
	return options.NoError(func(cfg *Config) {
		cfg.setWorkers(n)
	})
}

func applyOptions(cfg *Config, opts ...Option) error {
	return options.Apply(cfg, opts...)
}
