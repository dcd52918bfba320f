// Package window generates and applies tapering windows for spectral
// analysis of accelerometer epochs.
//
// Only the symmetric cosine-sum family is provided; the feature pipeline
// frames every transform with a Hann window.
package window
