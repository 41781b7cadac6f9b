// Package raster implements Contraction Clustering (RASTER), an
// approximation clustering algorithm for 2D point data. Points are bucketed
// into a uniform integer grid, sparse buckets below a density threshold are
// discarded, and the remaining tiles are grouped into clusters under
// 8-connected (Moore) adjacency.
//
// This package holds the sequential core. See the parallel subpackage for
// the vertical-strip concurrent variant, and the prime subpackage for the
// point-retaining payload variant.
package raster

import "math"

// Float is the coordinate and precision type used throughout RASTER.
type Float = float64

// Point is a real-valued 2D coordinate in the input space.
type Point struct {
	X, Y Float
}

// NewPoint builds a Point from its coordinates.
func NewPoint(x, y Float) Point {
	return Point{X: x, Y: y}
}

// Tile is an integer grid cell obtained by truncating a scaled Point.
// No tile may carry math.MinInt32 or math.MaxInt32 on its X axis: those
// values are reserved sentinels used by the parallel strip border joiner.
type Tile struct {
	TX, TY int32
}

// Scalar returns s = 10^precision, the factor used to convert a Point into
// a Tile by truncation toward zero.
func Scalar(precision Float) Float {
	return math.Pow(10, precision)
}

// Truncate maps a Point to its Tile at the given scalar, truncating toward
// zero the way Rust's `as i32` float-to-int cast does for in-range values.
// Scaled coordinates that do not fit in int32 produce an undefined Tile;
// callers must keep points and precision bounded (spec.md §4.1, §9).
func (p Point) Truncate(scalar Float) Tile {
	return Tile{
		TX: int32(math.Trunc(p.X * scalar)),
		TY: int32(math.Trunc(p.Y * scalar)),
	}
}
