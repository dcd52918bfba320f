package features

import (
	"fmt"
	"strings"
)

// Extract computes the extended feature vector for one epoch: the San Diego
// orientation group, the MAD moment group, the Unilever banded-power group,
// and the per-channel spectra of x, y, z, and the filtered vector-magnitude
// signal, concatenated in that order. filteredVM is the (optionally
// band-passed) vector-magnitude-minus-one signal, truncated at zero.
//
// The column order matches [Header] for the same bin count.
func Extract(x, y, z, filteredVM []float64, sampleRate, numBins int) ([]float64, error) {
	out, err := sanDiego(x, y, z, sampleRate, numBins)
	if err != nil {
		return nil, fmt.Errorf("features: san diego group: %w", err)
	}

	out.merge(mad(x, y, z))
	out.merge(unilever(filteredVM, sampleRate))

	channels := []struct {
		prefix string
		data   []float64
	}{
		{"xfft", x},
		{"yfft", y},
		{"zfft", z},
		{"mfft", filteredVM},
	}

	for _, ch := range channels {
		mag, err := channelSpectral(ch.data, numBins)
		if err != nil {
			return nil, fmt.Errorf("features: %s spectrum: %w", ch.prefix, err)
		}

		out.addSeries(ch.prefix, mag)
	}

	return out.values, nil
}

// Names returns the column names of [Extract]'s output in order.
func Names(numBins int) []string {
	names := sanDiegoNames(numBins)
	names = append(names, madNames()...)
	names = append(names, unileverNames()...)
	names = append(names, seriesNames("xfft", numBins)...)
	names = append(names, seriesNames("yfft", numBins)...)
	names = append(names, seriesNames("zfft", numBins)...)
	names = append(names, seriesNames("mfft", numBins)...)

	return names
}

// Header returns the comma-joined column names matching [Extract]'s order.
func Header(numBins int) string {
	return strings.Join(Names(numBins), ",")
}
