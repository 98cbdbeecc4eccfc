package decompose

import (
	"fmt"

	"github.com/arloliu/warp/errs"
	"github.com/arloliu/warp/internal/options"
)

// Config holds decomposition settings, populated through Option values.
type Config struct {
	method Method
}

// Option configures Decompose and Features.
type Option = options.Option[*Config]

func defaultConfig() Config {
	return Config{method: MethodAdditive}
}

// WithMethod selects the decomposition model. The default is
// MethodAdditive.
func WithMethod(m Method) Option {
	return options.New(func(cfg *Config) error {
		if m != MethodAdditive && m != MethodMultiplicative {
			return fmt.Errorf("%w: %d", errs.ErrInvalidMethod, m)
		}
		cfg.method = m

		return nil
	})
}

func applyOptions(cfg *Config, opts ...Option) error {
	return options.Apply(cfg, opts...)
}
