package testutil

import (
	"math"
	"testing"
)

// NearlyEqual reports whether a and b differ by at most eps. NaN equals
// NaN and same-signed infinities are equal, so sentinel conventions can be
// asserted directly.
func NearlyEqual(a, b, eps float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}

	if math.IsInf(a, 1) && math.IsInf(b, 1) {
		return true
	}

	if math.IsInf(a, -1) && math.IsInf(b, -1) {
		return true
	}

	return math.Abs(a-b) <= eps
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair fails [NearlyEqual].
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		if !NearlyEqual(got[i], want[i], eps) {
			t.Fatalf("index %d: got %v, want %v (eps %v)", i, got[i], want[i], eps)
		}
	}
}
