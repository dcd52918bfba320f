package features

import (
	"math"
	"testing"

	"github.com/ahrends/acc-features/internal/testutil"
)

func TestMad_NamesLockstep(t *testing.T) {
	x := testutil.NoiseAxis(4, 0.2, 100)
	y := testutil.NoiseAxis(5, 0.2, 100)
	z := testutil.NoiseAxis(6, 0.2, 100)

	s := mad(x, y, z)
	want := madNames()
	if len(s.names) != len(want) {
		t.Fatalf("got %d names, want %d", len(s.names), len(want))
	}
	for i := range want {
		if s.names[i] != want[i] {
			t.Fatalf("name %d = %q, want %q", i, s.names[i], want[i])
		}
	}
}

func TestMad_ConstantEpoch(t *testing.T) {
	// Zero input puts the magnitude-minus-one signal at a constant -1:
	// no deviation, and the kurtosis correction collapses to its
	// constant-signal value.
	const n = 100
	zero := make([]float64, n)

	s := mad(zero, zero, zero)

	if got := valueByName(t, s, "MAD"); got != 0 {
		t.Fatalf("MAD = %v, want 0", got)
	}
	if got := valueByName(t, s, "MPD"); got != 0 {
		t.Fatalf("MPD = %v, want 0", got)
	}
	if got := valueByName(t, s, "skew"); got != 0 {
		t.Fatalf("skew = %v, want 0", got)
	}
	wantKurt := -3 * float64(n-1) * float64(n-1) / (float64(n-2) * float64(n-3))
	if got := valueByName(t, s, "kurt"); !testutil.NearlyEqual(got, wantKurt, 1e-12) {
		t.Fatalf("kurt = %v, want %v", got, wantKurt)
	}
}

func TestMad_ShortEpochBoundaries(t *testing.T) {
	// The moment estimators divide by products of n-1..n-4; short
	// constant epochs yield IEEE NaN instead of an error.
	nan := math.NaN()
	cases := []struct {
		n    int
		want []float64 // MAD, MPD, skew, kurt
	}{
		{0, []float64{nan, nan, 0, -0.5}},
		{1, []float64{0, 0, nan, nan}},
		{2, []float64{0, 0, nan, nan}},
		{3, []float64{0, 0, 0, nan}},
		{4, []float64{0, 0, 0, nan}},
	}

	for _, tc := range cases {
		zero := make([]float64, tc.n)
		s := mad(zero, zero, zero)
		testutil.RequireSliceNearlyEqual(t, s.values, tc.want, 1e-12)
	}
}

func TestMad_KnownDeviation(t *testing.T) {
	// x alternates the magnitude between 1 and 3, so vm-1 alternates
	// between 0 and 2 with mean 1 and |d| = 1 everywhere.
	const n = 10
	x := make([]float64, n)
	y := make([]float64, n)
	z := make([]float64, n)
	for i := range x {
		if i%2 == 0 {
			x[i] = 1
		} else {
			x[i] = 3
		}
	}

	s := mad(x, y, z)
	if got := valueByName(t, s, "MAD"); !testutil.NearlyEqual(got, 1, 1e-12) {
		t.Fatalf("MAD = %v, want 1", got)
	}
	// MPD divides the same deviations by n^1.5 instead of n.
	if got := valueByName(t, s, "MPD"); !testutil.NearlyEqual(got, 1/math.Sqrt(n), 1e-12) {
		t.Fatalf("MPD = %v, want %v", got, 1/math.Sqrt(n))
	}
	// A symmetric two-point distribution has zero skewness.
	if got := valueByName(t, s, "skew"); !testutil.NearlyEqual(got, 0, 1e-9) {
		t.Fatalf("skew = %v, want 0", got)
	}
}

func TestMad_NaNMaskIsXOnly(t *testing.T) {
	const n = 10
	zero := make([]float64, n)

	// NaN in x masks that index to zero instead of poisoning the sums.
	x := testutil.WithNaN(make([]float64, n), 0)
	s := mad(x, zero, zero)
	// vm-1 is 0 at the masked index and -1 elsewhere.
	if got := valueByName(t, s, "MAD"); !testutil.NearlyEqual(got, 0.18, 1e-12) {
		t.Fatalf("MAD with NaN x = %v, want 0.18", got)
	}

	// NaN in y flows into the magnitude and the deviation sums.
	y := testutil.WithNaN(make([]float64, n), 0)
	s = mad(zero, y, zero)
	if got := valueByName(t, s, "MAD"); !math.IsNaN(got) {
		t.Fatalf("MAD with NaN y = %v, want NaN", got)
	}
}
