package parallel

import (
	"math"

	"github.com/FraunhoferChalmersCentre/raster"
	"github.com/FraunhoferChalmersCentre/raster/prime"
)

// Strip is one vertical slice of a TileMap, the prime counterpart to
// github.com/FraunhoferChalmersCentre/raster/parallel.Strip.
type Strip struct {
	Left  int32
	Tiles *prime.TileMap
	Right int32
}

func absInt32(x int32) int64 {
	if x < 0 {
		return -int64(x)
	}
	return int64(x)
}

// SplitVertical is the prime counterpart to parallel.SplitVertical.
func SplitVertical(all *prime.TileMap, xMin, xMax int32, scalar raster.Float, nrSlices int) []Strip {
	if nrSlices < 2 {
		return []Strip{{Left: math.MinInt32, Tiles: all, Right: math.MaxInt32}}
	}

	step := int32((absInt32(xMin) + absInt32(xMax)) / int64(nrSlices))
	splits := make([]int32, 0, nrSlices-1)
	split := xMin + step
	for i := 1; i < nrSlices; i++ {
		splits = append(splits, int32(raster.Float(split)*scalar))
		split += step
	}

	strips := make([]Strip, nrSlices)
	for i := range strips {
		left := int32(math.MinInt32)
		if i-1 >= 0 && i-1 < len(splits) {
			left = splits[i-1]
		}
		right := int32(math.MaxInt32) // matches Rust's wrapping_sub(MinInt32, 1), which wraps to MaxInt32
		if i < len(splits) {
			right = splits[i] - 1
		}
		strips[i] = Strip{Left: left, Tiles: prime.NewTileMap(0), Right: right}
	}

	for _, e := range all.Entries() {
		placed := false
		for i := 0; i < len(splits); i++ {
			if e.Tile.TX < splits[i] {
				strips[i].Tiles.Insert(e.Tile, e.Points)
				placed = true
				break
			}
		}
		if !placed {
			strips[len(splits)].Tiles.Insert(e.Tile, e.Points)
		}
	}

	return strips
}
