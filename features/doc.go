// Package features assembles the named movement feature groups of the
// epoch pipeline: the San Diego orientation/correlation group, the MAD
// moment group, the Unilever banded-power group, and the per-channel
// spectral group.
//
// Each group appends (name, value) pairs through a shared builder so the
// column order of the vector and the header cannot drift apart. The
// formulas carry several deliberate asymmetries (x-only NaN masking in the
// MAD group, linear per-channel magnitudes next to log-scaled banded
// groups) that downstream classifiers depend on.
//
// The groups derive from four papers: Ellis et al. (hip and wrist
// algorithms for free-living behavior classification), Vaha-Ypya et al.
// (MAD intensity classification), Zhang/Rowlands et al. (GENEA wrist
// classification), and Mannini et al. (single-site activity recognition).
package features
