package features

import (
	"fmt"
	"math"

	"github.com/ahrends/acc-features/dsp/spectrum"
	"github.com/ahrends/acc-features/dsp/window"
	"github.com/ahrends/acc-features/stats"
)

// gravityWeight is the exponential moving average weight of the gravity
// estimator, approximating a 0.5 Hz low-pass filter.
const gravityWeight = 0.9

// Walking and general movement concentrate below a few Hz; the banded
// dominant-frequency search excludes everything outside this range.
const (
	walkBandLow  = 0.3
	walkBandHigh = 3.0
)

// sanDiego computes the orientation, correlation, and spectral features of
// the gravity-adjusted signal. Needs more than sampleRate samples: the
// gravity estimator discards one second of warm-up and the autocorrelation
// uses a one-second lag.
func sanDiego(x, y, z []float64, sampleRate, numBins int) (*set, error) {
	n := len(x)
	if n <= sampleRate {
		return nil, fmt.Errorf("%w: %d samples at %d Hz", spectrum.ErrSignalTooShort, n, sampleRate)
	}

	gx, gy, gz := averageGravity(x, y, z, sampleRate)

	// Gravity-adjusted components and their vector magnitude.
	v := make([]float64, n)
	wx := make([]float64, n)
	wy := make([]float64, n)
	wz := make([]float64, n)

	for i := 0; i < n; i++ {
		wx[i] = x[i] - gx
		wy[i] = y[i] - gy
		wz[i] = z[i] - gz
		v[i] = stats.VectorMagnitude(wx[i], wy[i], wz[i])
	}

	mean := stats.Mean(v)
	sd := stats.StdR(v, mean)

	coefVariation := 0.0
	if mean != 0 {
		coefVariation = sd / mean
	}

	quartiles := stats.Percentiles(v, []float64{0, 0.25, 0.5, 0.75, 1})

	autoCorr, err := stats.Correlation(v, v, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("autocorrelation: %w", err)
	}

	xyCorr, err := stats.Correlation(wx, wy, 0)
	if err != nil {
		return nil, fmt.Errorf("xy correlation: %w", err)
	}

	xzCorr, err := stats.Correlation(wx, wz, 0)
	if err != nil {
		return nil, fmt.Errorf("xz correlation: %w", err)
	}

	yzCorr, err := stats.Correlation(wy, wz, 0)
	if err != nil {
		return nil, fmt.Errorf("yz correlation: %w", err)
	}

	avgRoll, sdRoll := stats.AngleMeanStd(wy, wz)
	avgPitch, sdPitch := stats.AngleMeanStd(wz, wx)
	avgYaw, sdYaw := stats.AngleMeanStd(wy, wx)

	s := &set{}
	s.add("mean", mean)
	s.add("sd", sd)
	s.add("coefvariation", coefVariation)
	// Quartile output order is frozen with the header; it is not the
	// computation order.
	s.add("median", quartiles[2])
	s.add("min", quartiles[0])
	s.add("max", quartiles[4])
	s.add("25thp", quartiles[1])
	s.add("75thp", quartiles[3])
	s.add("autocorr", autoCorr)
	s.add("corrxy", xyCorr)
	s.add("corrxz", xzCorr)
	s.add("corryz", yzCorr)
	s.add("avgroll", avgRoll)
	s.add("avgpitch", avgPitch)
	s.add("avgyaw", avgYaw)
	s.add("sdroll", sdRoll)
	s.add("sdpitch", sdPitch)
	s.add("sdyaw", sdYaw)
	s.add("rollg", math.Atan2(gy, gz))
	s.add("pitchg", math.Atan2(gz, gx))
	s.add("yawg", math.Atan2(gy, gx))

	if err := sanDiegoSpectral(s, v, sampleRate, numBins); err != nil {
		return nil, err
	}

	return s, nil
}

func sanDiegoNames(numBins int) []string {
	names := []string{
		"mean", "sd", "coefvariation",
		"median", "min", "max", "25thp", "75thp",
		"autocorr", "corrxy", "corrxz", "corryz",
		"avgroll", "avgpitch", "avgyaw",
		"sdroll", "sdpitch", "sdyaw",
		"rollg", "pitchg", "yawg",
		"fmax", "pmax", "fmaxband", "pmaxband", "entropy",
	}

	return append(names, seriesNames("fft", numBins)...)
}

// averageGravity estimates the gravity direction per axis with an
// exponential moving average seeded by (1-weight)*sample[0], discarding the
// first sampleRate-1 warm-up values before averaging the converged tail.
func averageGravity(x, y, z []float64, sampleRate int) (gx, gy, gz float64) {
	n := len(x)
	gn := n - (sampleRate - 1)
	gStart := n - gn

	xTail := make([]float64, gn)
	yTail := make([]float64, gn)
	zTail := make([]float64, gn)

	xAvg := (1 - gravityWeight) * x[0]
	yAvg := (1 - gravityWeight) * y[0]
	zAvg := (1 - gravityWeight) * z[0]

	for c := 1; c < n; c++ {
		xAvg = xAvg*gravityWeight + (1-gravityWeight)*x[c]
		yAvg = yAvg*gravityWeight + (1-gravityWeight)*y[c]
		zAvg = zAvg*gravityWeight + (1-gravityWeight)*z[c]

		if c >= gStart {
			xTail[c-gStart] = xAvg
			yTail[c-gStart] = yAvg
			zTail[c-gStart] = zAvg
		}
	}

	return stats.Mean(xTail), stats.Mean(yTail), stats.Mean(zTail)
}

// sanDiegoSpectral appends the spectral sub-block: dominant frequencies of
// the mean-centered, Hann-windowed magnitude signal, its normalized
// spectral entropy, and the Welch-banded log magnitudes.
func sanDiegoSpectral(s *set, v []float64, sampleRate, numBins int) error {
	n := len(v)
	vMean := stats.Mean(v)

	centered := make([]float64, n)
	for i, val := range v {
		centered[i] = val - vMean // remove the 0 Hz component
	}

	window.Apply(window.TypeHann, centered)

	power := spectrum.Power(spectrum.HalfSpectrum(centered), n, true)

	overall := spectrum.DominantFrequency(power, float64(sampleRate), n)
	banded := spectrum.DominantFrequencyInBand(power, float64(sampleRate), n, walkBandLow, walkBandHigh)
	entropy := spectrum.Entropy(power)

	welch, err := spectrum.WelchBandedMagnitude(v, sampleRate, numBins)
	if err != nil {
		return fmt.Errorf("welch banding: %w", err)
	}

	s.add("fmax", overall.Frequency)
	s.add("pmax", math.Log(overall.Power+spectrum.Epsilon))
	s.add("fmaxband", banded.Frequency)
	s.add("pmaxband", math.Log(banded.Power+spectrum.Epsilon))
	s.add("entropy", entropy)
	s.addSeries("fft", welch)

	return nil
}
