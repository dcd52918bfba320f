package spectrum

import (
	"fmt"
	"math"

	"github.com/ahrends/acc-features/dsp/window"
)

// WelchBandedMagnitude estimates the low-frequency spectrum of signal by
// averaging the magnitude spectra of Hann-windowed sub-windows (Welch's
// method with 50% overlap) and log-transforming the first numBins averaged
// values. Sub-windows are sampleRate samples long, so bin i spans i Hz to
// (i+1) Hz. Magnitudes are averaged instead of powers; the banded values
// feed classifiers trained on that scale.
//
// The signal must cover at least one full sub-window plus one overlap step,
// otherwise ErrSignalTooShort is returned. Requesting more bins than a
// sub-window spectrum holds returns ErrTooManyBins.
func WelchBandedMagnitude(signal []float64, sampleRate, numBins int) ([]float64, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("spectrum: sample rate must be > 0: %d", sampleRate)
	}

	if numBins <= 0 {
		return nil, fmt.Errorf("spectrum: bin count must be > 0: %d", numBins)
	}

	maxBins := (sampleRate + 1) / 2
	if numBins > maxBins {
		return nil, fmt.Errorf("%w: %d requested, %d available", ErrTooManyBins, numBins, maxBins)
	}

	windowOverlap := sampleRate / 2
	if windowOverlap == 0 {
		windowOverlap = 1
	}

	numWindows := len(signal)/windowOverlap - 1
	if numWindows <= 0 || len(signal) < sampleRate {
		return nil, fmt.Errorf("%w: %d samples, need at least %d at %d Hz",
			ErrSignalTooShort, len(signal), sampleRate, sampleRate)
	}

	// Odd sample rates can place the last 50%-overlap window past the end
	// of the signal; drop windows that do not fit.
	for numWindows > 1 && (numWindows-1)*windowOverlap+sampleRate > len(signal) {
		numWindows--
	}

	coeffs := window.Generate(window.TypeHann, sampleRate)

	binned := make([]float64, numBins)
	sub := make([]float64, sampleRate)

	for w := 0; w < numWindows; w++ {
		copy(sub, signal[w*windowOverlap:w*windowOverlap+sampleRate])

		if err := window.ApplyCoefficientsInPlace(sub, coeffs); err != nil {
			return nil, fmt.Errorf("spectrum: windowing sub-window: %w", err)
		}

		mag := Magnitude(HalfSpectrum(sub), sampleRate, true)
		for j := 0; j < numBins; j++ {
			binned[j] += mag[j]
		}
	}

	for i := range binned {
		binned[i] = math.Log(binned[i]/float64(numWindows) + Epsilon)
	}

	return binned, nil
}
