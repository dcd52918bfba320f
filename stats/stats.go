package stats

import "math"

// stuckThreshold is the mean magnitude above which a zero-variance axis is
// considered saturated.
const stuckThreshold = 1.5

// Sum returns the sum of vals, skipping NaN entries.
// Returns NaN for empty input.
func Sum(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}

	sum := 0.0
	for _, v := range vals {
		if !math.IsNaN(v) {
			sum += v
		}
	}

	return sum
}

// Mean returns the arithmetic mean of vals. NaN entries are skipped in the
// numerator but still count toward the divisor. Returns NaN for empty input.
func Mean(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}

	return Sum(vals) / float64(len(vals))
}

// Range returns max-min over vals, ignoring NaN entries.
// Returns NaN for empty input.
func Range(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}

	minVal := math.MaxFloat64
	maxVal := -math.MaxFloat64

	for _, v := range vals {
		if v < minVal {
			minVal = v
		}

		if v > maxVal {
			maxVal = v
		}
	}

	return maxVal - minVal
}

// Std returns the population standard deviation (divide by n) of vals
// around the given mean. NaN entries are skipped in the sum of squares but
// still count toward the divisor. Returns NaN for empty input.
func Std(vals []float64, mean float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}

	variance := 0.0
	for _, v := range vals {
		if !math.IsNaN(v) {
			d := v - mean
			variance += d * d
		}
	}

	return math.Sqrt(variance / float64(len(vals)))
}

// StdR returns the sample standard deviation (divide by n-1, Bessel's
// correction) of vals around the given mean. NaN handling matches [Std].
// Returns NaN for empty input.
func StdR(vals []float64, mean float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}

	variance := 0.0
	for _, v := range vals {
		if !math.IsNaN(v) {
			d := v - mean
			variance += d * d
		}
	}

	return math.Sqrt(variance / float64(len(vals)-1))
}

// VectorMagnitude returns the Euclidean norm of one triaxial sample.
func VectorMagnitude(x, y, z float64) float64 {
	return math.Sqrt(x*x + y*y + z*z)
}

// Covariance returns the covariance of a and b with the given lag in
// samples. The sign of lag is ignored. The divisor is len(a)+1-lag
// regardless of how many pairs were skipped.
//
// The NaN guard inspects the lagged a-index while the products use the
// aligned one; downstream consumers depend on this exact convention.
func Covariance(a, b []float64, meanA, meanB float64, lag int) (float64, error) {
	if lag < 0 {
		lag = -lag
	}

	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}

	if len(a) <= lag {
		return 0, ErrLagTooLarge
	}

	cov := 0.0
	for i := lag; i < len(a); i++ {
		if !math.IsNaN(a[i-lag]) && !math.IsNaN(b[i]) {
			cov += (a[i] - meanA) * (b[i] - meanB)
		}
	}

	return cov / float64(len(a)+1-lag), nil
}

// Correlation returns the Pearson correlation of a and b with the given lag
// in samples. The sign of lag is ignored. The estimator is biased (moments
// divide by the aligned-pair count) and NaN samples propagate into the
// result rather than being skipped.
func Correlation(a, b []float64, lag int) (float64, error) {
	if lag < 0 {
		lag = -lag
	}

	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}

	if len(a) <= lag {
		return 0, ErrLagTooLarge
	}

	var sx, sy, sxx, syy, sxy float64

	nmax := len(a)
	n := float64(nmax - lag)

	for i := lag; i < nmax; i++ {
		x := a[i-lag]
		y := b[i]

		sx += x
		sy += y
		sxx += x * x
		syy += y * y
		sxy += x * y
	}

	cov := sxy/n - sx*sy/n/n
	sigmaX := math.Sqrt(sxx/n - sx*sx/n/n)
	sigmaY := math.Sqrt(syy/n - sy*sy/n/n)

	return cov / sigmaX / sigmaY, nil
}

// AngleMeanStd returns the arithmetic mean and sample standard deviation of
// the per-index angles atan2(a[i], b[i]). Inputs shorter than two samples
// or of mismatched lengths yield (NaN, NaN): the sentinel is contractual,
// angle statistics on such input are undefined rather than an error.
func AngleMeanStd(a, b []float64) (mean, std float64) {
	n := len(a)
	if n < 2 || n != len(b) {
		return math.NaN(), math.NaN()
	}

	angles := make([]float64, n)
	total := 0.0

	for i := range angles {
		angles[i] = math.Atan2(a[i], b[i])
		total += angles[i]
	}

	mean = total / float64(n)

	variance := 0.0
	for _, ang := range angles {
		d := ang - mean
		variance += d * d
	}

	return mean, math.Sqrt(variance / float64(n-1))
}

// CountStuck returns the number of axes (0..3) whose samples appear frozen
// at a large constant value during the epoch, indicating sensor saturation.
// An axis is flagged when its population standard deviation is exactly zero
// and its mean magnitude exceeds 1.5.
func CountStuck(x, y, z []float64) int {
	count := 0

	for _, axis := range [][]float64{x, y, z} {
		m := Mean(axis)
		if Std(axis, m) == 0 && (m < -stuckThreshold || m > stuckThreshold) {
			count++
		}
	}

	return count
}

// Combine returns the concatenation of a and b in a new slice.
func Combine(a, b []float64) []float64 {
	out := make([]float64, 0, len(a)+len(b))
	out = append(out, a...)

	return append(out, b...)
}
