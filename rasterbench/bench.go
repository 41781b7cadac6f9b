// Package rasterbench runs the clustering algorithms under timing and
// repeats them for a statistically meaningful sample, mirroring the
// original benchmark harness's cluster_iter (original_source
// benchmark_lib.rs).
package rasterbench

import (
	"fmt"
	"time"

	"github.com/FraunhoferChalmersCentre/raster"
	"github.com/FraunhoferChalmersCentre/raster/parallel"
	"github.com/FraunhoferChalmersCentre/raster/parallel/dual"
	"github.com/FraunhoferChalmersCentre/raster/prime"
	primeparallel "github.com/FraunhoferChalmersCentre/raster/prime/parallel"
	"github.com/FraunhoferChalmersCentre/raster/raststats"
)

// Algorithm identifies which clustering variant to benchmark.
type Algorithm int

const (
	Seq Algorithm = iota
	SeqPrime
	Par
	ParPrime
	Dual
)

func (a Algorithm) String() string {
	switch a {
	case Seq:
		return "Seq"
	case SeqPrime:
		return "SeqPrime"
	case Par:
		return "Par"
	case ParPrime:
		return "ParPrime"
	case Dual:
		return "Dual"
	default:
		return "Unknown"
	}
}

// RunParams configures one benchmark run.
type RunParams struct {
	Precision      raster.Float
	Threshold      int
	MinClusterSize int
	NrCores        int
	Iterations     int
	// XMin/XMax bound the vertical split for Par/ParPrime, mirroring the
	// original harness's fixed [-180, 180] longitude range. Callers
	// working outside that domain should override these.
	XMin, XMax int32
}

// Summary is the benchmark report for one (algorithm, params) pairing.
type Summary struct {
	Algorithm         Algorithm
	NrCores           int
	NrClusters        int
	Mean              float64
	StdDev            float64
	ProjMean          float64
	ProjStdDev        float64
	ProjTimes         []float64
	ClustMean         float64
	ClustStdDev       float64
	ClustTimes        []float64
	NrClustersPercent float64
}

func defaultXBounds(p RunParams) (int32, int32) {
	if p.XMin == 0 && p.XMax == 0 {
		return -180, 180
	}
	return p.XMin, p.XMax
}

func runOnce(algorithm Algorithm, points []raster.Point, p RunParams) (projSecs, clustSecs float64, nrClusters int, err error) {
	switch algorithm {
	case Seq:
		start := time.Now()
		tiles, _, err := raster.Project(points, p.Precision, p.Threshold)
		if err != nil {
			return 0, 0, 0, err
		}
		projSecs = time.Since(start).Seconds()

		start = time.Now()
		clusters := raster.ClusterSeq(tiles, p.MinClusterSize)
		clustSecs = time.Since(start).Seconds()
		return projSecs, clustSecs, len(clusters), nil

	case SeqPrime:
		start := time.Now()
		tiles, _, err := prime.Project(points, p.Precision, p.Threshold)
		if err != nil {
			return 0, 0, 0, err
		}
		projSecs = time.Since(start).Seconds()

		start = time.Now()
		clusters := prime.ClusterTiles(tiles, p.MinClusterSize)
		clustSecs = time.Since(start).Seconds()
		return projSecs, clustSecs, len(clusters), nil

	case Par:
		xMin, xMax := defaultXBounds(p)
		start := time.Now()
		tiles, scalar, err := parallel.ProjectPar(points, p.Precision, p.Threshold, p.NrCores)
		if err != nil {
			return 0, 0, 0, err
		}
		strips := parallel.SplitVertical(tiles, xMin, xMax, scalar, p.NrCores)
		projSecs = time.Since(start).Seconds()

		start = time.Now()
		clusters, err := parallel.ClusterPar(strips, p.MinClusterSize)
		if err != nil {
			return 0, 0, 0, err
		}
		clustSecs = time.Since(start).Seconds()
		return projSecs, clustSecs, len(clusters), nil

	case ParPrime:
		xMin, xMax := defaultXBounds(p)
		start := time.Now()
		tiles, scalar, err := primeparallel.ProjectPar(points, p.Precision, p.Threshold, p.NrCores)
		if err != nil {
			return 0, 0, 0, err
		}
		strips := primeparallel.SplitVertical(tiles, xMin, xMax, scalar, p.NrCores)
		projSecs = time.Since(start).Seconds()

		start = time.Now()
		clusters, err := primeparallel.ClusterPar(strips, p.MinClusterSize)
		if err != nil {
			return 0, 0, 0, err
		}
		clustSecs = time.Since(start).Seconds()
		return projSecs, clustSecs, len(clusters), nil

	case Dual:
		start := time.Now()
		left, right, _, err := dual.MapToTileSlices(points, p.Precision, p.Threshold, p.NrCores)
		if err != nil {
			return 0, 0, 0, err
		}
		projSecs = time.Since(start).Seconds()

		start = time.Now()
		clusters := dual.ClusterTiles(left, right, p.MinClusterSize)
		clustSecs = time.Since(start).Seconds()
		return projSecs, clustSecs, len(clusters), nil

	default:
		return 0, 0, 0, fmt.Errorf("rasterbench: unknown algorithm %v", algorithm)
	}
}

// Run executes an algorithm p.Iterations times and reports timing
// statistics. Every iteration must report the same cluster count; a
// mismatch is returned as an error rather than silently accepted, since
// it would indicate a non-deterministic or incorrectly split run.
func Run(algorithm Algorithm, points []raster.Point, nrClusters int, p RunParams) (Summary, error) {
	if p.Iterations < 1 {
		return Summary{}, fmt.Errorf("rasterbench: iterations must be >= 1, got %d", p.Iterations)
	}

	var projTimes, clustTimes []float64
	identified := -1

	for i := 0; i < p.Iterations; i++ {
		projSecs, clustSecs, n, err := runOnce(algorithm, points, p)
		if err != nil {
			return Summary{}, fmt.Errorf("rasterbench: iteration %d: %w", i, err)
		}
		projTimes = append(projTimes, projSecs)
		clustTimes = append(clustTimes, clustSecs)

		if identified == -1 {
			identified = n
		} else if identified != n {
			return Summary{}, fmt.Errorf("rasterbench: iteration %d found %d clusters, previous iterations found %d", i, n, identified)
		}
	}

	projMean := raststats.Mean(projTimes)
	projStdDev := raststats.SampleStdDev(projTimes, projMean)
	clustMean := raststats.Mean(clustTimes)
	clustStdDev := raststats.SampleStdDev(clustTimes, clustMean)

	totals := make([]float64, len(projTimes))
	for i := range totals {
		totals[i] = projTimes[i] + clustTimes[i]
	}
	mean := projMean + clustMean
	stdDev := raststats.SampleStdDev(totals, mean)

	var percent float64
	if nrClusters > 0 {
		percent = float64(identified) / float64(nrClusters)
	}

	return Summary{
		Algorithm:         algorithm,
		NrCores:           p.NrCores,
		NrClusters:        identified,
		Mean:              mean,
		StdDev:            stdDev,
		ProjMean:          projMean,
		ProjStdDev:        projStdDev,
		ProjTimes:         projTimes,
		ClustMean:         clustMean,
		ClustStdDev:       clustStdDev,
		ClustTimes:        clustTimes,
		NrClustersPercent: percent,
	}, nil
}
