package features

import (
	"math"

	"github.com/ahrends/acc-features/dsp/spectrum"
	"github.com/ahrends/acc-features/stats"
)

// mad computes the amplitude-deviation and moment features of the
// unfiltered vector-magnitude-minus-one signal.
//
// An index is written only when its x sample is non-NaN, leaving a zero
// otherwise, while NaN y or z samples flow into the magnitude and poison
// the moment sums. The asymmetry is preserved because the classifiers were
// trained on it.
// TODO: confirm with the data owners whether the x-only NaN mask is
// intended before ever aligning it across axes.
//
// Skewness and kurtosis use bias-corrected estimators whose denominators
// vanish for fewer than five samples; such epochs yield IEEE NaN or Inf
// rather than an error.
func mad(x, y, z []float64) *set {
	vm := make([]float64, len(x))
	for i := range x {
		if !math.IsNaN(x[i]) {
			vm[i] = stats.VectorMagnitude(x[i], y[i], z[i]) - 1
		}
	}

	n := float64(len(vm))
	mean := stats.Mean(vm)
	sd := stats.Std(vm, mean)

	var mad, mpd, skew, kurt float64

	for _, v := range vm {
		d := v - mean
		zs := d / (sd + spectrum.Epsilon)

		mad += math.Abs(d)
		mpd += math.Pow(math.Abs(d), 1.5)
		skew += math.Pow(zs, 3)
		kurt += math.Pow(zs, 4)
	}

	mad /= n
	mpd /= math.Pow(n, 1.5)
	skew *= n / ((n - 1) * (n - 2))
	kurt = kurt*n*(n+1)/((n-1)*(n-2)*(n-3)*(n-4)) - 3*(n-1)*(n-1)/((n-2)*(n-3))

	s := &set{}
	s.add("MAD", mad)
	s.add("MPD", mpd)
	s.add("skew", skew)
	s.add("kurt", kurt)

	return s
}

func madNames() []string {
	return []string{"MAD", "MPD", "skew", "kurt"}
}
