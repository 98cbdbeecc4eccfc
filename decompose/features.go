package decompose

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/warp/series"
)

// FeatureRow summarizes one identifier's decomposition strength features.
type FeatureRow struct {
	ID               string
	TrendStrength    float64
	SeasonalStrength float64
	ResidVar         float64
}

// Features decomposes every series in the collection and reduces each to
// its strength features:
//
//	trend_strength    = max(0, 1 − Var(resid)/Var(trend+resid))
//	seasonal_strength = max(0, 1 − Var(resid)/Var(seasonal+resid))
//	resid_var         = Std(resid)/Mean(y)
//
// NaN edge positions are excluded from the moments. A degenerate series
// whose variance denominators vanish (e.g. a constant series) reports zero
// strength rather than a division artifact.
func Features(c *series.Collection, freq int, opts ...Option) ([]FeatureRow, error) {
	components, err := Decompose(c, freq, opts...)
	if err != nil {
		return nil, err
	}

	rows := make([]FeatureRow, len(components))
	for i := range components {
		values, _ := c.Values(components[i].ID)
		rows[i] = featureRow(&components[i], values)
	}

	return rows, nil
}

func featureRow(comp *Components, values []float32) FeatureRow {
	n := len(comp.Resid)
	resid := make([]float64, 0, n)
	trendPlusResid := make([]float64, 0, n)
	seasonalPlusResid := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(comp.Resid[i]) {
			continue
		}
		resid = append(resid, comp.Resid[i])
		trendPlusResid = append(trendPlusResid, comp.Trend[i]+comp.Resid[i])
		seasonalPlusResid = append(seasonalPlusResid, comp.Seasonal[i]+comp.Resid[i])
	}

	y := make([]float64, len(values))
	for i, v := range values {
		y[i] = float64(v)
	}

	residVariance := stat.Variance(resid, nil)

	return FeatureRow{
		ID:               comp.ID,
		TrendStrength:    strength(residVariance, stat.Variance(trendPlusResid, nil)),
		SeasonalStrength: strength(residVariance, stat.Variance(seasonalPlusResid, nil)),
		ResidVar:         stat.StdDev(resid, nil) / stat.Mean(y, nil),
	}
}

// strength computes max(0, 1 − residVar/componentVar), guarding the
// degenerate zero-variance denominator.
func strength(residVar, componentVar float64) float64 {
	if componentVar == 0 || math.IsNaN(componentVar) {
		return 0
	}
	s := 1 - residVar/componentVar
	if s < 0 || math.IsNaN(s) {
		return 0
	}

	return s
}
