package spectrum

import (
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"
	"github.com/mjibson/go-dsp/fft"
)

// Epsilon stabilizes logarithms and ratios of near-zero power. The floor
// values it produces are designed behavior, not error conditions.
const Epsilon = 1e-8

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// HalfSpectrum returns the one-sided spectrum of a real signal: the first
// ceil(n/2) bins of its forward DFT. The transform runs at the exact signal
// length; callers rely on the bin spacing sampleRate/n, so no padding is
// applied.
func HalfSpectrum(signal []float64) []complex128 {
	if len(signal) == 0 {
		return nil
	}

	full := fft.FFTReal(signal)

	return full[:(len(signal)+1)/2]
}

// Power returns Re^2+Im^2 per bin, divided by fftSize when normalize is
// set. fftSize is passed explicitly rather than derived from the bin count
// because one consumer normalizes by twice its transform length.
func Power(bins []complex128, fftSize int, normalize bool) []float64 {
	if len(bins) == 0 {
		return nil
	}

	out := make([]float64, len(bins))
	re, im, buf := getScratch(len(bins))

	for i, c := range bins {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	putScratch(buf)

	if normalize && fftSize > 0 {
		inv := 1 / float64(fftSize)
		for i := range out {
			out[i] *= inv
		}
	}

	return out
}

// Magnitude returns the elementwise square root of [Power].
func Magnitude(bins []complex128, fftSize int, normalize bool) []float64 {
	out := Power(bins, fftSize, normalize)
	for i, v := range out {
		out[i] = math.Sqrt(v)
	}

	return out
}

// Entropy returns the normalized Shannon entropy of a power spectrum.
// Powers are scaled to a probability-like distribution with an epsilon
// floor on the total; non-positive probabilities are skipped; the result
// is divided by ln(binCount) so a flat spectrum approaches 1.
// Returns NaN for empty input.
func Entropy(power []float64) float64 {
	if len(power) == 0 {
		return math.NaN()
	}

	total := 0.0
	for _, p := range power {
		if !math.IsNaN(p) {
			total += p
		}
	}

	entropy := 0.0
	for _, v := range power {
		p := v / (total + Epsilon)
		if p <= 0 {
			continue
		}

		entropy += -p * math.Log(p+Epsilon)
	}

	return entropy / math.Log(float64(len(power)))
}

// Peak is a dominant-frequency search result. Power is the raw bin power;
// callers log-scale it themselves.
type Peak struct {
	Frequency float64
	Power     float64
}

// DominantFrequency returns the frequency and power of the strongest bin.
// fftSize is the transform length that produced the power spectrum; bin
// spacing is sampleRate/fftSize. When no bin has positive power the
// sentinel {-1, 0} is returned.
func DominantFrequency(power []float64, sampleRate float64, fftSize int) Peak {
	return DominantFrequencyInBand(power, sampleRate, fftSize, math.Inf(-1), math.Inf(1))
}

// DominantFrequencyInBand restricts the search to frequencies strictly
// inside (lo, hi); bins on the boundary are excluded. Ties keep the
// earliest bin. When no bin qualifies the sentinel {-1, 0} is returned.
func DominantFrequencyInBand(power []float64, sampleRate float64, fftSize int, lo, hi float64) Peak {
	interval := sampleRate / float64(fftSize)
	best := Peak{Frequency: -1, Power: 0}

	for i, p := range power {
		freq := interval * float64(i)
		if freq <= lo || freq >= hi {
			continue
		}

		if p > best.Power {
			best = Peak{Frequency: freq, Power: p}
		}
	}

	return best
}
