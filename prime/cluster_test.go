package prime

import (
	"testing"

	"github.com/FraunhoferChalmersCentre/raster"
)

func buildTileMap(entries map[raster.Tile]raster.Point) *TileMap {
	m := NewTileMap(len(entries))
	for tile, p := range entries {
		m.Insert(tile, []raster.Point{p})
	}
	return m
}

func TestClusterTilesTwoComponentsRetainPoints(t *testing.T) {
	input := buildTileMap(map[raster.Tile]raster.Point{
		{TX: 0, TY: 0}:   raster.NewPoint(0, 0),
		{TX: -1, TY: 0}:  raster.NewPoint(-1, 0),
		{TX: 5, TY: 0}:   raster.NewPoint(5, 0),
		{TX: 5, TY: 1}:   raster.NewPoint(5, 1),
	})

	clusters := ClusterTiles(input, 1)
	if len(clusters) != 2 {
		t.Fatalf("got %d clusters, want 2", len(clusters))
	}

	total := 0
	for _, c := range clusters {
		for _, e := range c.Entries() {
			total += len(e.Points)
		}
	}
	if total != 4 {
		t.Fatalf("clusters retain %d points total, want 4", total)
	}
}

func TestClusterTilesExhaustsWorkingMap(t *testing.T) {
	input := buildTileMap(map[raster.Tile]raster.Point{
		{TX: 0, TY: 0}: raster.NewPoint(0, 0),
		{TX: 9, TY: 9}: raster.NewPoint(9, 9),
	})
	ClusterTiles(input, 1)
	if input.Len() != 0 {
		t.Fatalf("working map left with %d entries, want 0", input.Len())
	}
}

func TestClusterTilesMinSizeFilter(t *testing.T) {
	input := buildTileMap(map[raster.Tile]raster.Point{
		{TX: 0, TY: 0}: raster.NewPoint(0, 0),
	})
	clusters := ClusterTiles(input, 2)
	if len(clusters) != 0 {
		t.Fatalf("got %d clusters, want 0", len(clusters))
	}
}
