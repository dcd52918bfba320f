package features

import (
	"math"

	"github.com/ahrends/acc-features/dsp/spectrum"
	"github.com/ahrends/acc-features/dsp/window"
	"github.com/ahrends/acc-features/stats"
)

// The banded-power scan covers 0.3-15 Hz inclusive; the stride-frequency
// search is restricted to the strictly interior 0.6-2.5 Hz band.
const (
	uniBandLow  = 0.3
	uniBandHigh = 15.0

	strideBandLow  = 0.6
	strideBandHigh = 2.5
)

// unilever computes the banded-power features of the filtered
// vector-magnitude signal: the two strongest frequencies in the movement
// band (f1 >= f2 by power), the dominant stride frequency, and the total
// band power, with all powers log-scaled. Frequency sentinels are -1 and
// power sentinels log(epsilon) when a band holds no positive-power bin.
func unilever(v []float64, sampleRate int) *set {
	n := len(v)
	vMean := stats.Mean(v)

	centered := make([]float64, n)
	for i, val := range v {
		centered[i] = val - vMean // remove the 0 Hz component
	}

	window.Apply(window.TypeHann, centered)

	power := spectrum.Power(spectrum.HalfSpectrum(centered), n, true)

	interval := float64(sampleRate) / float64(n)

	f1, f2, f625 := -1.0, -1.0, -1.0

	var p1, p2, p625, total float64

	for i, p := range power {
		freq := interval * float64(i)
		if freq < uniBandLow || freq > uniBandHigh {
			continue
		}

		total += p

		switch {
		case p > p1:
			f2, p2 = f1, p1
			f1, p1 = freq, p
		case p > p2:
			f2, p2 = freq, p
		}

		if p > p625 && freq > strideBandLow && freq < strideBandHigh {
			f625, p625 = freq, p
		}
	}

	s := &set{}
	s.add("f1", f1)
	s.add("p1", math.Log(p1+spectrum.Epsilon))
	s.add("f2", f2)
	s.add("p2", math.Log(p2+spectrum.Epsilon))
	s.add("f625", f625)
	s.add("p625", math.Log(p625+spectrum.Epsilon))
	s.add("total", math.Log(total+spectrum.Epsilon))

	return s
}

func unileverNames() []string {
	return []string{"f1", "p1", "f2", "p2", "f625", "p625", "total"}
}
