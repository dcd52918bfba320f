// Package epoch computes the summary vector for one window of triaxial
// accelerometer samples: raw per-axis statistics, Euclidean-norm-minus-one
// averages, and optionally the full movement feature groups.
//
// Extraction is a pure function of its inputs. Epochs are independent, so
// callers are free to fan out across goroutines; the package itself holds
// no state.
package epoch
