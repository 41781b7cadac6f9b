// Package parallel is the concurrent variant of RASTER' (package prime):
// projection, vertical splitting, slice clustering, and border joining all
// carry each tile's retained points alongside its coordinate
// (original_source prime/par.rs).
package parallel

import (
	"fmt"
	"sync"

	"github.com/FraunhoferChalmersCentre/raster"
	"github.com/FraunhoferChalmersCentre/raster/prime"
)

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

// ProjectPar is prime.Project's concurrent counterpart.
func ProjectPar(points []raster.Point, precision raster.Float, threshold, nrWorkers int) (*prime.TileMap, raster.Float, error) {
	if nrWorkers < 1 {
		return nil, 0, fmt.Errorf("prime/parallel: nr_workers must be >= 1, got %d", nrWorkers)
	}
	if threshold < 1 {
		return nil, 0, fmt.Errorf("prime/parallel: threshold must be >= 1, got %d", threshold)
	}

	scalar := raster.Scalar(precision)

	batches := batchData(points, nrWorkers)
	if batches == nil {
		if len(points) > 0 {
			return nil, 0, fmt.Errorf("prime/parallel: nr_workers (%d) exceeds point count (%d)", nrWorkers, len(points))
		}
		return prime.NewTileMap(0), scalar, nil
	}

	results := make(chan map[raster.Tile][]raster.Point, len(batches))
	var wg sync.WaitGroup
	for _, batch := range batches {
		wg.Add(1)
		go func(b []raster.Point) {
			defer wg.Done()
			local := make(map[raster.Tile][]raster.Point, len(b))
			for _, p := range b {
				t := p.Truncate(scalar)
				local[t] = append(local[t], p)
			}
			results <- local
		}(batch)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	accumulated := make(map[raster.Tile][]raster.Point)
	for local := range results {
		for t, pts := range local {
			accumulated[t] = append(accumulated[t], pts...)
		}
	}

	significant := prime.NewTileMap(len(accumulated))
	for t, pts := range accumulated {
		if len(pts) >= threshold {
			significant.Insert(t, pts)
		}
	}
	return significant, scalar, nil
}
