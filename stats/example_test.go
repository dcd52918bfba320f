package stats_test

import (
	"fmt"

	"github.com/ahrends/acc-features/stats"
)

func ExamplePercentiles() {
	q := stats.Percentiles([]float64{4, 1, 3, 2}, []float64{0.25, 0.5, 0.75})
	fmt.Printf("%.2f %.2f %.2f\n", q[0], q[1], q[2])
	// Output:
	// 1.75 2.50 3.25
}

func ExampleMean() {
	fmt.Printf("%.1f\n", stats.Mean([]float64{1, 2, 3, 6}))
	// Output:
	// 3.0
}

func ExampleCorrelation() {
	a := []float64{1, 2, 3, 4, 5}
	r, _ := stats.Correlation(a, a, 0)
	fmt.Printf("%.2f\n", r)
	// Output:
	// 1.00
}

func ExampleVectorMagnitude() {
	fmt.Printf("%.1f\n", stats.VectorMagnitude(1, 2, 2))
	// Output:
	// 3.0
}
