package features

import (
	"strings"
	"testing"

	"github.com/ahrends/acc-features/internal/testutil"
)

func noisyEpoch(length int) (x, y, z, vm []float64) {
	x = testutil.NoiseAxis(11, 0.2, length)
	y = testutil.NoiseAxis(12, 0.2, length)
	z = testutil.NoiseAxis(13, 0.2, length)
	for i := range z {
		z[i] += 1
	}

	vm = testutil.NoiseAxis(14, 0.1, length)
	for i := range vm {
		if vm[i] < 0 {
			vm[i] = 0
		}
	}

	return x, y, z, vm
}

func TestExtract_MatchesNamesForEveryBinCount(t *testing.T) {
	const (
		sampleRate = 128
		n          = 11 * sampleRate
	)
	x, y, z, vm := noisyEpoch(n)

	// 64 is the half-spectrum limit of a one-second sub-window at 128 Hz.
	for bins := 1; bins <= 64; bins++ {
		vals, err := Extract(x, y, z, vm, sampleRate, bins)
		if err != nil {
			t.Fatalf("bins=%d: Extract: %v", bins, err)
		}

		names := Names(bins)
		if len(vals) != len(names) {
			t.Fatalf("bins=%d: %d values, %d names", bins, len(vals), len(names))
		}

		header := strings.Split(Header(bins), ",")
		if len(header) != len(names) {
			t.Fatalf("bins=%d: header has %d columns, want %d", bins, len(header), len(names))
		}
	}
}

func TestExtract_GroupOrder(t *testing.T) {
	names := Names(2)

	if names[0] != "mean" {
		t.Fatalf("first column = %q, want mean", names[0])
	}

	// The per-channel spectra close the vector in x, y, z, magnitude
	// order.
	tail := names[len(names)-8:]
	want := []string{"xfft0", "xfft1", "yfft0", "yfft1", "zfft0", "zfft1", "mfft0", "mfft1"}
	for i := range want {
		if tail[i] != want[i] {
			t.Fatalf("tail column %d = %q, want %q", i, tail[i], want[i])
		}
	}
}

func TestExtract_Deterministic(t *testing.T) {
	const (
		sampleRate = 100
		n          = 10 * sampleRate
	)
	x, y, z, vm := noisyEpoch(n)

	first, err := Extract(x, y, z, vm, sampleRate, 12)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	second, err := Extract(x, y, z, vm, sampleRate, 12)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, second, first, 0)
}

func TestExtract_PropagatesBinLimit(t *testing.T) {
	const (
		sampleRate = 100
		n          = 10 * sampleRate
	)
	x, y, z, vm := noisyEpoch(n)

	// 50 bins is the Welch sub-window limit at 100 Hz.
	if _, err := Extract(x, y, z, vm, sampleRate, 51); err == nil {
		t.Fatal("51 bins at 100 Hz: expected error")
	}
	if _, err := Extract(x, y, z, vm, sampleRate, 50); err != nil {
		t.Fatalf("50 bins at 100 Hz: %v", err)
	}
}

func TestExtract_ShortEpoch(t *testing.T) {
	x, y, z, vm := noisyEpoch(100)

	if _, err := Extract(x, y, z, vm, 100, 12); err == nil {
		t.Fatal("epoch of one second: expected error")
	}
}
