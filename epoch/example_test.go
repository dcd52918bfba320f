package epoch_test

import (
	"fmt"
	"strings"

	"github.com/ahrends/acc-features/epoch"
)

func ExampleSummary() {
	// One second of a motionless device measuring 1 g along z.
	x := make([]float64, 100)
	y := make([]float64, 100)
	z := make([]float64, 100)
	for i := range z {
		z[i] = 1
	}

	vals, _ := epoch.Summary(x, y, z, nil, epoch.Config{SampleRate: 100})
	fmt.Printf("enmoTrunc=%.1f zMean=%.1f columns=%d\n", vals[0], vals[4], len(vals))
	// Output:
	// enmoTrunc=0.0 zMean=1.0 columns=14
}

func ExampleHeader() {
	cfg := epoch.Config{SampleRate: 100, FFTBins: 3, ExtendedFeatures: true}
	cols := strings.Split(epoch.Header(cfg), ",")
	fmt.Println(len(cols), cols[0], cols[len(cols)-1])
	// Output:
	// 66 enmoTrunc mfft2
}
