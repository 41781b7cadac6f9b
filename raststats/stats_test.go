package raststats

import (
	"math"
	"testing"
)

func TestMeanAndSampleStdDev(t *testing.T) {
	input := []float64{9, 2, 5, 4}

	mean := Mean(input)
	if mean != 5 {
		t.Fatalf("Mean = %v, want 5", mean)
	}

	std := SampleStdDev(input, mean)
	want := math.Sqrt(26.0 / 3.0)
	if math.Abs(std-want) > 1e-12 {
		t.Fatalf("SampleStdDev = %v, want %v", std, want)
	}
}

func TestMeanEmpty(t *testing.T) {
	if Mean(nil) != 0 {
		t.Fatal("Mean(nil) should be 0")
	}
}

func TestSampleStdDevSingleSample(t *testing.T) {
	if SampleStdDev([]float64{42}, 42) != 0 {
		t.Fatal("SampleStdDev of a single sample should be 0")
	}
}
