package raster

import "fmt"

// tileCounts builds a tile population histogram over points at the given
// scalar.
func tileCounts(points []Point, scalar Float) map[Tile]int {
	counts := make(map[Tile]int, len(points))
	for _, p := range points {
		counts[p.Truncate(scalar)]++
	}
	return counts
}

// Project buckets points into tiles at the given precision and keeps only
// tiles whose population is at least threshold (spec.md §4.1).
//
// The returned TileSet's iteration order follows Go map iteration (which is
// randomized) and is therefore not stable across runs; only the *set* of
// retained tiles is deterministic (invariant I1).
func Project(points []Point, precision Float, threshold int) (*TileSet, Float, error) {
	if threshold < 1 {
		return nil, 0, fmt.Errorf("raster: threshold must be >= 1, got %d", threshold)
	}

	scalar := Scalar(precision)
	counts := tileCounts(points, scalar)

	tiles := NewTileSet(len(counts))
	for t, n := range counts {
		if n >= threshold {
			tiles.Add(t)
		}
	}
	return tiles, scalar, nil
}
