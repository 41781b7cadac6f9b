package dual

import (
	"testing"

	"github.com/FraunhoferChalmersCentre/raster"
)

func buildTileSet(tiles ...raster.Tile) *raster.TileSet {
	s := raster.NewTileSet(len(tiles))
	for _, t := range tiles {
		s.Add(t)
	}
	return s
}

// TestJoinClustersZipsTheClusters mirrors the original implementation's
// zip_the_clusters scenario: four left-side clusters joined against three
// right-side clusters across the X=0 border collapse into three merged
// clusters once the min size filter (4) is applied.
func TestJoinClustersZipsTheClusters(t *testing.T) {
	xs := []*raster.TileSet{
		buildTileSet(raster.Tile{TX: -1, TY: 4}, raster.Tile{TX: -1, TY: 3}),
		buildTileSet(raster.Tile{TX: -1, TY: -1}),
		buildTileSet(raster.Tile{TX: -1, TY: -3}),
		buildTileSet(raster.Tile{TX: -1, TY: -5}),
	}
	ys := []*raster.TileSet{
		buildTileSet(raster.Tile{TX: 0, TY: 5}, raster.Tile{TX: 0, TY: 4}),
		buildTileSet(raster.Tile{TX: 0, TY: 1}, raster.Tile{TX: 1, TY: 1}, raster.Tile{TX: 1, TY: 0}, raster.Tile{TX: 1, TY: -1}),
		buildTileSet(raster.Tile{TX: 0, TY: -3}, raster.Tile{TX: 0, TY: -4}, raster.Tile{TX: 0, TY: -5}),
	}

	got := joinClusters(xs, ys, 4)
	if len(got) != 3 {
		t.Fatalf("got %d clusters, want 3", len(got))
	}
}

func TestClusterTilesSplitsAcrossBorder(t *testing.T) {
	left := buildTileSet(raster.Tile{TX: -3, TY: 0}, raster.Tile{TX: -2, TY: 0}, raster.Tile{TX: -1, TY: 0})
	right := buildTileSet(raster.Tile{TX: 0, TY: 0}, raster.Tile{TX: 1, TY: 0}, raster.Tile{TX: 2, TY: 0})

	clusters := ClusterTiles(left, right, 1)
	if len(clusters) != 1 {
		t.Fatalf("got %d clusters, want 1 (chain spans the border)", len(clusters))
	}
	if clusters[0].Len() != 6 {
		t.Fatalf("cluster has %d tiles, want 6", clusters[0].Len())
	}
}

func TestClusterTilesDisjointSidesStayApart(t *testing.T) {
	left := buildTileSet(raster.Tile{TX: -5, TY: 0})
	right := buildTileSet(raster.Tile{TX: 5, TY: 0})

	clusters := ClusterTiles(left, right, 1)
	if len(clusters) != 2 {
		t.Fatalf("got %d clusters, want 2", len(clusters))
	}
}

func TestMapToTileSlicesPartitionsOnX(t *testing.T) {
	points := []raster.Point{
		raster.NewPoint(-1.5, 0), raster.NewPoint(-1.55, 0),
		raster.NewPoint(2.5, 0), raster.NewPoint(2.55, 0),
	}
	left, right, scalar, err := MapToTileSlices(points, 0, 2, 2)
	if err != nil {
		t.Fatalf("MapToTileSlices: %v", err)
	}
	if scalar != 1 {
		t.Fatalf("scalar = %v, want 1", scalar)
	}
	if left.Len() != 1 || !left.Contains(raster.Tile{TX: -1, TY: 0}) {
		t.Fatalf("left = %v, want {(-1,0)}", left.Tiles())
	}
	if right.Len() != 1 || !right.Contains(raster.Tile{TX: 2, TY: 0}) {
		t.Fatalf("right = %v, want {(2,0)}", right.Tiles())
	}
}
