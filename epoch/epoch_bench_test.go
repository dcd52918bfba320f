//nolint:revive
package epoch

import (
	"strconv"
	"testing"

	"github.com/ahrends/acc-features/internal/testutil"
)

func BenchmarkSummary(b *testing.B) {
	const sampleRate = 100
	seconds := []int{10, 30, 60}

	for _, sec := range seconds {
		n := sec * sampleRate
		x := testutil.NoiseAxis(31, 0.2, n)
		y := testutil.NoiseAxis(32, 0.2, n)
		z := testutil.NoiseAxis(33, 0.2, n)
		for i := range z {
			z[i] += 1
		}

		b.Run(strconv.Itoa(sec)+"s/basic", func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(3 * n * 8))

			cfg := Config{SampleRate: sampleRate}
			for range b.N {
				Summary(x, y, z, nil, cfg) //nolint:errcheck
			}
		})

		b.Run(strconv.Itoa(sec)+"s/extended", func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(3 * n * 8))

			cfg := Config{SampleRate: sampleRate, FFTBins: 12, ExtendedFeatures: true}
			for range b.N {
				Summary(x, y, z, nil, cfg) //nolint:errcheck
			}
		})
	}
}
