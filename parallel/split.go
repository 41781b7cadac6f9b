package parallel

import (
	"math"

	"github.com/FraunhoferChalmersCentre/raster"
)

// Strip is one vertical slice of the tile space produced by SplitVertical.
// Left and Right are the inclusive X bounds of the slice; the leftmost and
// rightmost strips carry the sentinel bounds math.MinInt32/math.MaxInt32
// so the border joiner can recognize them as having no neighbor strip.
type Strip struct {
	Left  int32
	Tiles *raster.TileSet
	Right int32
}

func absInt32(x int32) int64 {
	if x < 0 {
		return -int64(x)
	}
	return int64(x)
}

// SplitVertical partitions tiles into nrSlices vertical strips of
// (approximately) equal X-extent, bounded by xMin and xMax (spec.md §4.3).
// With nrSlices < 2 every tile goes into a single strip with sentinel
// bounds — the caller should fall back to the sequential clusterer.
func SplitVertical(tiles []raster.Tile, xMin, xMax int32, scalar raster.Float, nrSlices int) []Strip {
	if nrSlices < 2 {
		all := raster.NewTileSet(len(tiles))
		for _, t := range tiles {
			all.Add(t)
		}
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
		strips[i] = Strip{Left: left, Tiles: raster.NewTileSet(0), Right: right}
	}

	for _, x := range tiles {
		placed := false
		for i := 0; i < len(splits); i++ {
			if x.TX < splits[i] {
				strips[i].Tiles.Add(x)
				placed = true
				break
			}
		}
		if !placed {
			strips[len(splits)].Tiles.Add(x)
		}
	}

	return strips
}
