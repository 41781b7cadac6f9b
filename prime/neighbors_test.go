package prime

import (
	"testing"

	"github.com/FraunhoferChalmersCentre/raster"
)

func TestPopNeighborsRetainsPoints(t *testing.T) {
	m := NewTileMap(0)
	m.Append(raster.Tile{TX: 1, TY: 0}, raster.NewPoint(1, 0))
	m.Append(raster.Tile{TX: 5, TY: 5}, raster.NewPoint(5, 5))

	got := PopNeighbors(raster.Tile{TX: 0, TY: 0}, m)
	if len(got) != 1 {
		t.Fatalf("got %d neighbors, want 1", len(got))
	}
	if len(got[0].Points) != 1 || got[0].Points[0] != raster.NewPoint(1, 0) {
		t.Fatalf("neighbor entry lost its points: %+v", got[0])
	}
	if !m.Contains(raster.Tile{TX: 5, TY: 5}) {
		t.Fatal("non-neighbor should not have been removed")
	}
}

func TestClusterTouches(t *testing.T) {
	a := NewTileMap(0)
	a.Append(raster.Tile{TX: 0, TY: 0}, raster.NewPoint(0, 0))

	touching := NewTileMap(0)
	touching.Append(raster.Tile{TX: 1, TY: 1}, raster.NewPoint(1, 1))
	if !ClusterTouches(a, touching) {
		t.Fatal("expected diagonal-adjacent clusters to touch")
	}

	apart := NewTileMap(0)
	apart.Append(raster.Tile{TX: 10, TY: 10}, raster.NewPoint(10, 10))
	if ClusterTouches(a, apart) {
		t.Fatal("expected distant clusters not to touch")
	}
}
