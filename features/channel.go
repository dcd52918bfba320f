package features

import (
	"fmt"

	"github.com/ahrends/acc-features/dsp/spectrum"
	"github.com/ahrends/acc-features/dsp/window"
)

// channelSpectral returns the first numBins magnitude values of the
// Hann-windowed channel spectrum, on a linear scale.
//
// Unlike the banded groups, no mean removal or log scaling is applied, and
// the magnitudes are normalized by twice the transform length. Both
// asymmetries are load-bearing: the classifiers consuming these columns
// were trained on this exact scale.
func channelSpectral(channel []float64, numBins int) ([]float64, error) {
	n := len(channel)

	available := (n + 1) / 2
	if numBins > available {
		return nil, fmt.Errorf("%w: %d requested, %d available", spectrum.ErrTooManyBins, numBins, available)
	}

	buf := append([]float64(nil), channel...)
	window.Apply(window.TypeHann, buf)

	mag := spectrum.Magnitude(spectrum.HalfSpectrum(buf), 2*n, true)

	return mag[:numBins], nil
}
