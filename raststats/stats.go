// Package raststats provides the small sample-statistics helpers the
// benchmark harness reports on. No pack example depends on a dedicated
// stats library, so these two functions stay on math rather than reaching
// for an unjustified third-party dependency.
package raststats

import "math"

// Mean returns the arithmetic mean of numbers. It returns 0 for an empty
// slice.
func Mean(numbers []float64) float64 {
	if len(numbers) == 0 {
		return 0
	}
	var sum float64
	for _, x := range numbers {
		sum += x
	}
	return sum / float64(len(numbers))
}

// SampleStdDev returns the sample standard deviation √(Σ(x-µ)²/(n-1)) of
// numbers around the given mean. It returns 0 for fewer than two samples.
func SampleStdDev(numbers []float64, mean float64) float64 {
	if len(numbers) < 2 {
		return 0
	}
	var sum float64
	for _, x := range numbers {
		d := x - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(numbers)-1))
}
