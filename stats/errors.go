package stats

import "errors"

var (
	// ErrLengthMismatch reports two sequences of different lengths.
	ErrLengthMismatch = errors.New("stats: sequences must have the same length")
	// ErrLagTooLarge reports a lag that leaves no aligned sample pairs.
	ErrLagTooLarge = errors.New("stats: lag must be smaller than the sequence length")
)
