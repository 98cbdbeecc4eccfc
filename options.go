package warp

import (
	"github.com/apache/arrow/go/v17/arrow/memory"

	"github.com/arloliu/warp/decompose"
	"github.com/arloliu/warp/frame"
	"github.com/arloliu/warp/internal/options"
)

// Config holds facade settings, populated through Option values.
type Config struct {
	idColumn    string
	valueColumn string
	workers     int
	method      decompose.Method
	allocator   memory.Allocator
}

// Option configures the facade entry points.
type Option = options.Option[*Config]

func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		idColumn:    frame.DefaultIDColumn,
		valueColumn: frame.DefaultValueColumn,
		workers:     0, // pairwise defaults to GOMAXPROCS
		method:      decompose.MethodAdditive,
		allocator:   memory.NewGoAllocator(),
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithIDColumn sets the identifier column name. Default: "unique_id".
func WithIDColumn(name string) Option {
	return options.NoError(func(cfg *Config) {
		cfg.idColumn = name
	})
}

// WithValueColumn sets the value column name. Default: "y".
func WithValueColumn(name string) Option {
	return options.NoError(func(cfg *Config) {
		cfg.valueColumn = name
	})
}

// WithWorkers sets the pairwise worker count. Default: GOMAXPROCS.
func WithWorkers(n int) Option {
	return options.NoError(func(cfg *Config) {
		cfg.workers = n
	})
}

// WithMethod selects the decomposition model for DecomposeFeatures.
// Default: additive.
func WithMethod(m decompose.Method) Option {
	return options.NoError(func(cfg *Config) {
		cfg.method = m
	})
}

// WithAllocator sets the Arrow allocator used for output records.
func WithAllocator(mem memory.Allocator) Option {
	return options.NoError(func(cfg *Config) {
		if mem != nil {
			cfg.allocator = mem
		}
	})
}
