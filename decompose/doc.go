// Package decompose implements classical seasonal decomposition of series
// collections and the derived strength features.
//
// Each series is split into trend, seasonal, and residual components using
// a centered moving average of the given frequency and phase-mean seasonal
// estimation, in either additive or multiplicative form. Edge positions
// where the moving average is undefined hold NaN and are excluded from the
// feature moments.
//
// Per-identifier features summarize the decomposition:
//
//	trend_strength    = max(0, 1 − Var(resid)/Var(trend+resid))
//	seasonal_strength = max(0, 1 − Var(resid)/Var(seasonal+resid))
//	resid_var         = Std(resid)/Mean(y)
//
// This path works in float64 throughout, unlike the float32 distance
// kernel, since the moving averages and variance ratios are far more
// sensitive to accumulation error than absolute-difference costs.
package decompose
