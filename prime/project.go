package prime

import (
	"fmt"

	"github.com/FraunhoferChalmersCentre/raster"
)

// Project buckets points into tiles exactly like raster.Project, but keeps
// each surviving tile's original points instead of discarding them.
func Project(points []raster.Point, precision raster.Float, threshold int) (*TileMap, raster.Float, error) {
	if threshold < 1 {
		return nil, 0, fmt.Errorf("prime: threshold must be >= 1, got %d", threshold)
	}

	scalar := raster.Scalar(precision)
	all := NewTileMap(0)
	for _, p := range points {
		all.Append(p.Truncate(scalar), p)
	}

	significant := NewTileMap(all.Len())
	for _, e := range all.Entries() {
		if len(e.Points) >= threshold {
			significant.Insert(e.Tile, e.Points)
		}
	}
	return significant, scalar, nil
}
