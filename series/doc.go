// Package series holds the pieces shared by the truncated-series evaluators:
// functional options, the real/complex narrowing step and a few numeric
// helpers.
//
// Evaluators follow one pattern. Input is lifted to an [ndarray.Array] (bare
// scalars become rank-0 arrays), a scalar kernel runs over every element in
// complex128, and [Narrow] inspects the finished collection to pick a real or
// complex representation:
//
//	cfg := series.ApplyOptions(series.Config{Terms: 100}, opts...)
//	out := ndarray.Map(z, kernel)
//	return series.Narrow(out, cfg.NarrowTolerance)
package series
