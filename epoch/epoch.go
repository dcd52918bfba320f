package epoch

import (
	"fmt"
	"math"
	"strings"

	"github.com/ahrends/acc-features/features"
	"github.com/ahrends/acc-features/stats"
)

// Filter mutates a signal in place. The caller injects it to band-pass the
// vector-magnitude signal before feature extraction; implementations must
// not keep state across calls.
type Filter interface {
	Apply(signal []float64)
}

// Config carries the per-call extraction parameters. There is no global
// state; every call is configured independently.
type Config struct {
	// SampleRate is the capture rate of the epoch in Hz.
	SampleRate int
	// FFTBins is the number of bins reported by each banded or
	// per-channel spectral block of the extended features.
	FFTBins int
	// ExtendedFeatures appends the movement feature groups to the basic
	// summary statistics.
	ExtendedFeatures bool
}

func (c Config) validate(n int) error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("epoch: sample rate must be > 0: %d", c.SampleRate)
	}

	if n == 0 {
		return fmt.Errorf("epoch: empty epoch")
	}

	if c.ExtendedFeatures && c.FFTBins <= 0 {
		return fmt.Errorf("epoch: fft bins must be > 0: %d", c.FFTBins)
	}

	return nil
}

// Summary returns the epoch's output vector. The column order is frozen:
//
//	enmoTrunc, enmoAbs,
//	xMean, yMean, zMean,
//	xRange, yRange, zRange,
//	xStd, yStd, zStd,
//	xyCov, xzCov, yzCov,
//	[extended features]
//
// and always matches [Header] for the same configuration. NaN samples
// follow the kernel conventions and NaN output values must be preserved by
// consumers, not coerced to zero.
func Summary(x, y, z []float64, filter Filter, cfg Config) ([]float64, error) {
	if len(x) != len(y) || len(x) != len(z) {
		return nil, fmt.Errorf("epoch: %w: x=%d y=%d z=%d", stats.ErrLengthMismatch, len(x), len(y), len(z))
	}

	if err := cfg.validate(len(x)); err != nil {
		return nil, err
	}

	xMean := stats.Mean(x)
	yMean := stats.Mean(y)
	zMean := stats.Mean(z)

	xyCov, err := stats.Covariance(x, y, xMean, yMean, 0)
	if err != nil {
		return nil, fmt.Errorf("epoch: xy covariance: %w", err)
	}

	xzCov, err := stats.Covariance(x, z, xMean, zMean, 0)
	if err != nil {
		return nil, fmt.Errorf("epoch: xz covariance: %w", err)
	}

	yzCov, err := stats.Covariance(y, z, yMean, zMean, 0)
	if err != nil {
		return nil, fmt.Errorf("epoch: yz covariance: %w", err)
	}

	enmo := make([]float64, len(x))
	for i := range x {
		enmo[i] = stats.VectorMagnitude(x[i], y[i], z[i]) - 1
	}

	if filter != nil {
		filter.Apply(enmo)
	}

	enmoTrunc := truncate(enmo)
	enmoAbs := absolute(enmo)

	basic := []float64{
		stats.Mean(enmoTrunc), stats.Mean(enmoAbs),
		xMean, yMean, zMean,
		stats.Range(x), stats.Range(y), stats.Range(z),
		stats.Std(x, xMean), stats.Std(y, yMean), stats.Std(z, zMean),
		xyCov, xzCov, yzCov,
	}

	if !cfg.ExtendedFeatures {
		return basic, nil
	}

	feats, err := features.Extract(x, y, z, enmoTrunc, cfg.SampleRate, cfg.FFTBins)
	if err != nil {
		return nil, fmt.Errorf("epoch: %w", err)
	}

	return stats.Combine(basic, feats), nil
}

// Header returns the comma-separated column names of [Summary]'s output
// for the given configuration. The field count equals the vector length
// for every valid configuration.
func Header(cfg Config) string {
	cols := []string{
		"enmoTrunc", "enmoAbs",
		"xMean", "yMean", "zMean",
		"xRange", "yRange", "zRange",
		"xStd", "yStd", "zStd",
		"xyCov", "xzCov", "yzCov",
	}

	header := strings.Join(cols, ",")
	if cfg.ExtendedFeatures {
		header += "," + features.Header(cfg.FFTBins)
	}

	return header
}

// truncate returns vals with negative entries replaced by zero.
// NaN entries pass through unchanged.
func truncate(vals []float64) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		if v < 0 {
			v = 0
		}

		out[i] = v
	}

	return out
}

// absolute returns the elementwise absolute value of vals.
func absolute(vals []float64) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = math.Abs(v)
	}

	return out
}
