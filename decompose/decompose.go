package decompose

import (
	"fmt"
	"math"

	"github.com/arloliu/warp/errs"
	"github.com/arloliu/warp/internal/pool"
	"github.com/arloliu/warp/series"
)

// Method selects the decomposition model.
type Method uint8

const (
	// MethodAdditive models y = trend + seasonal + resid.
	MethodAdditive Method = 0x1
	// MethodMultiplicative models y = trend × seasonal × resid.
	MethodMultiplicative Method = 0x2
)

func (m Method) String() string {
	switch m {
	case MethodAdditive:
		return "additive"
	case MethodMultiplicative:
		return "multiplicative"
	default:
		return "unknown"
	}
}

// ParseMethod maps a method name to its Method value.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "additive":
		return MethodAdditive, nil
	case "multiplicative":
		return MethodMultiplicative, nil
	default:
		return 0, fmt.Errorf("%w: %q, want additive or multiplicative", errs.ErrInvalidMethod, name)
	}
}

// Components holds one identifier's decomposition. All three slices have
// the series length; positions where the centered moving average is
// undefined hold NaN in every component.
type Components struct {
	ID       string
	Trend    []float64
	Seasonal []float64
	Resid    []float64
}

// Decompose splits every series in the collection into trend, seasonal,
// and residual components at the given seasonal frequency.
//
// freq must be greater than 1 (errs.ErrInvalidFrequency). The collection
// must be non-empty (errs.ErrEmptyCollection), and every series must have
// at least 2×freq observations (errs.ErrSeriesTooShort, naming the
// identifier).
func Decompose(c *series.Collection, freq int, opts ...Option) ([]Components, error) {
	cfg := defaultConfig()
	if err := applyOptions(&cfg, opts...); err != nil {
		return nil, err
	}
	if err := validate(c, freq); err != nil {
		return nil, err
	}

	result := make([]Components, 0, c.Len())
	for name, values := range c.All() {
		if len(values) < 2*freq {
			return nil, fmt.Errorf("%w: series %q has %d observations, want at least %d",
				errs.ErrSeriesTooShort, name, len(values), 2*freq)
		}
		result = append(result, decomposeOne(name, values, freq, cfg.method))
	}

	return result, nil
}

func validate(c *series.Collection, freq int) error {
	if freq <= 1 {
		return fmt.Errorf("%w: %d, frequency must be greater than 1", errs.ErrInvalidFrequency, freq)
	}
	if c.Len() == 0 {
		return fmt.Errorf("%w: nothing to decompose", errs.ErrEmptyCollection)
	}

	return nil
}

func decomposeOne(name string, values []float32, freq int, method Method) Components {
	n := len(values)
	y := make([]float64, n)
	for i, v := range values {
		y[i] = float64(v)
	}

	trend := movingAverage(y, freq)

	// Detrend, then estimate one seasonal effect per phase from the
	// positions where the trend is defined. The detrended scratch does not
	// outlive this call, so it is pooled.
	detrended, release := pool.GetFloat64Slice(n)
	defer release()
	for i := range y {
		if method == MethodAdditive {
			detrended[i] = y[i] - trend[i]
		} else {
			detrended[i] = y[i] / trend[i]
		}
	}

	effects := phaseMeans(detrended, freq)
	normalizeEffects(effects, method)

	seasonal := make([]float64, n)
	resid := make([]float64, n)
	for i := range y {
		seasonal[i] = effects[i%freq]
		if math.IsNaN(trend[i]) {
			seasonal[i] = math.NaN()
			resid[i] = math.NaN()

			continue
		}
		if method == MethodAdditive {
			resid[i] = y[i] - trend[i] - seasonal[i]
		} else {
			resid[i] = y[i] / (trend[i] * seasonal[i])
		}
	}

	return Components{ID: name, Trend: trend, Seasonal: seasonal, Resid: resid}
}

// movingAverage computes the centered moving average of window freq.
// An even freq uses the standard 2×freq average: a window of freq+1 points
// with half weight on the endpoints. Edge positions hold NaN.
func movingAverage(y []float64, freq int) []float64 {
	n := len(y)
	trend := make([]float64, n)
	for i := range trend {
		trend[i] = math.NaN()
	}

	if freq%2 == 1 {
		half := freq / 2
		for i := half; i < n-half; i++ {
			sum := 0.0
			for j := i - half; j <= i+half; j++ {
				sum += y[j]
			}
			trend[i] = sum / float64(freq)
		}

		return trend
	}

	half := freq / 2
	for i := half; i < n-half; i++ {
		sum := 0.5*y[i-half] + 0.5*y[i+half]
		for j := i - half + 1; j <= i+half-1; j++ {
			sum += y[j]
		}
		trend[i] = sum / float64(freq)
	}

	return trend
}

// phaseMeans averages the detrended values by phase (index mod freq),
// skipping NaN positions.
func phaseMeans(detrended []float64, freq int) []float64 {
	sums := make([]float64, freq)
	counts := make([]int, freq)
	for i, v := range detrended {
		if math.IsNaN(v) {
			continue
		}
		sums[i%freq] += v
		counts[i%freq]++
	}

	effects := make([]float64, freq)
	for p := range effects {
		if counts[p] == 0 {
			effects[p] = math.NaN()

			continue
		}
		effects[p] = sums[p] / float64(counts[p])
	}

	return effects
}

// normalizeEffects re-centers the seasonal effects so they carry no trend:
// additive effects sum to zero, multiplicative effects average to one.
func normalizeEffects(effects []float64, method Method) {
	total := 0.0
	count := 0
	for _, e := range effects {
		if math.IsNaN(e) {
			continue
		}
		total += e
		count++
	}
	if count == 0 {
		return
	}
	mean := total / float64(count)

	for p := range effects {
		if method == MethodAdditive {
			effects[p] -= mean
		} else if mean != 0 {
			effects[p] /= mean
		}
	}
}
