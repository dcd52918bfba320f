// Package testutil provides deterministic accelerometer test signals and
// tolerance helpers shared by the package tests.
package testutil

import (
	"math"
	"math/rand"
)

// SineAxis generates a deterministic sine wave for one axis.
func SineAxis(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate

	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// NoiseAxis generates white noise with a fixed seed for reproducibility.
func NoiseAxis(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))

	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}

	return out
}

// GravityEpoch generates a still epoch with the given constant gravity
// components on each axis.
func GravityEpoch(gx, gy, gz float64, length int) (x, y, z []float64) {
	return DC(gx, length), DC(gy, length), DC(gz, length)
}

// WithNaN returns a copy of vals with NaN written at the given indices.
func WithNaN(vals []float64, indices ...int) []float64 {
	out := append([]float64(nil), vals...)
	for _, i := range indices {
		out[i] = math.NaN()
	}

	return out
}
