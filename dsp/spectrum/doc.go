// Package spectrum provides the frequency-domain kernel for accelerometer
// epoch feature extraction: one-sided spectra of real signals, normalized
// power and magnitude conversion, spectral entropy, dominant-frequency
// search, and Welch-style banded magnitude averaging.
//
// Power and magnitude values reproduce the conventions the downstream
// activity classifiers were trained on, including the epsilon floor on
// logarithms of near-zero power.
package spectrum
