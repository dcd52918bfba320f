package spectrum

import "errors"

var (
	// ErrSignalTooShort reports a signal too short for the requested
	// windowing scheme.
	ErrSignalTooShort = errors.New("spectrum: signal too short")
	// ErrTooManyBins reports a bin count exceeding the spectrum size.
	ErrTooManyBins = errors.New("spectrum: requested bins exceed spectrum size")
)
