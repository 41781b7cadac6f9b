// Package parallel implements the vertical-strip concurrent variant of
// Contraction Clustering: points are projected to tiles by a pool of
// goroutines, the tile space is split into vertical strips, each strip is
// clustered independently, and the strip borders are joined back together
// (spec.md §4.1, §4.3-§4.5).
package parallel

import (
	"fmt"
	"sync"

	"github.com/FraunhoferChalmersCentre/raster"
)

// batchData splits points into len(points)/nrParts-sized chunks, floor
// division. If that leaves a remainder, the final chunk is shorter than
// the rest rather than absorbing the overflow — this reproduces the
// original Rust implementation's `points.chunks(chunk_size)` behavior, so
// a non-divisible (points, nrParts) pair can yield more than nrParts
// batches (spec.md Design Notes §9).
func batchData(points []raster.Point, nrParts int) [][]raster.Point {
	chunkSize := len(points) / nrParts
	if chunkSize == 0 {
		return nil
	}
	batches := make([][]raster.Point, 0, (len(points)+chunkSize-1)/chunkSize)
	for i := 0; i < len(points); i += chunkSize {
		end := i + chunkSize
		if end > len(points) {
			end = len(points)
		}
		batches = append(batches, points[i:end])
	}
	return batches
}

// ProjectPar is the concurrent counterpart to raster.Project: nrWorkers
// goroutines each bucket their share of points into a local tile-count
// map, and a single reducer merges the partial counts before the
// threshold filter is applied (spec.md §4.1).
func ProjectPar(points []raster.Point, precision raster.Float, threshold, nrWorkers int) ([]raster.Tile, raster.Float, error) {
	if nrWorkers < 1 {
		return nil, 0, fmt.Errorf("parallel: nr_workers must be >= 1, got %d", nrWorkers)
	}
	if threshold < 1 {
		return nil, 0, fmt.Errorf("parallel: threshold must be >= 1, got %d", threshold)
	}

	scalar := raster.Scalar(precision)

	batches := batchData(points, nrWorkers)
	if batches == nil {
		if len(points) > 0 {
			return nil, 0, fmt.Errorf("parallel: nr_workers (%d) exceeds point count (%d)", nrWorkers, len(points))
		}
		return nil, scalar, nil
	}

	results := make(chan map[raster.Tile]int, len(batches))
	var wg sync.WaitGroup
	for _, batch := range batches {
		wg.Add(1)
		go func(b []raster.Point) {
			defer wg.Done()
			local := make(map[raster.Tile]int, len(b))
			for _, p := range b {
				local[p.Truncate(scalar)]++
			}
			results <- local
		}(batch)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	accumulated := make(map[raster.Tile]int)
	for local := range results {
		for t, n := range local {
			accumulated[t] += n
		}
	}

	tiles := make([]raster.Tile, 0, len(accumulated))
	for t, n := range accumulated {
		if n >= threshold {
			tiles = append(tiles, t)
		}
	}
	return tiles, scalar, nil
}
