package stats

import (
	"math"
	"sort"
)

// Percentiles returns the requested quantiles of vals using the R-7
// linear-interpolation estimator (the default model in R). Each entry of ps
// is a quantile in [0, 1]. Empty input yields all NaN; single-element input
// repeats that element for every quantile. NaN values order above every
// real value.
func Percentiles(vals, ps []float64) []float64 {
	out := make([]float64, len(ps))

	n := len(vals)
	if n == 0 {
		for i := range out {
			out[i] = math.NaN()
		}

		return out
	}

	if n == 1 {
		for i := range out {
			out[i] = vals[0]
		}

		return out
	}

	sorted := append([]float64(nil), vals...)
	// NaN entries sort above every real value, so a NaN-bearing epoch
	// keeps its high quantiles NaN and its low ones real.
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j] || (math.IsNaN(sorted[j]) && !math.IsNaN(sorted[i]))
	})

	for i, p := range ps {
		h := p*float64(n-1) + 1

		switch {
		case h <= 1:
			out[i] = sorted[0]
		case h >= float64(n):
			out[i] = sorted[n-1]
		default:
			// Interpolate between the two bracketing order statistics:
			// x[h] + (h - floor(h)) * (x[h+1] - x[h]), 1-based.
			hf := math.Floor(h)
			lo := sorted[int(hf)-1]
			hi := sorted[int(hf)]
			out[i] = lo + (h-hf)*(hi-lo)
		}
	}

	return out
}
