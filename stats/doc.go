// Package stats provides the time-domain statistics kernel for
// accelerometer epoch feature extraction.
//
// The numeric conventions are deliberately non-standard and must not be
// "corrected": NaN samples reduce sums but never the divisor, covariance
// divides by len+1-lag, correlation is the biased Pearson estimator, and
// percentiles follow the R-7 interpolation model. Classifiers downstream
// of this package were trained on exactly these conventions.
package stats
