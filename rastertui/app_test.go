package rastertui

import (
	"strings"
	"testing"

	"github.com/FraunhoferChalmersCentre/raster"
)

func TestBoundingBox(t *testing.T) {
	tiles := []raster.Tile{{TX: 3, TY: -2}, {TX: -1, TY: 5}, {TX: 0, TY: 0}}
	minX, minY, maxX, maxY := boundingBox(tiles)
	if minX != -1 || minY != -2 || maxX != 3 || maxY != 5 {
		t.Fatalf("got (%d,%d)..(%d,%d)", minX, minY, maxX, maxY)
	}
}

func TestNewAppSkipsEmptyClusters(t *testing.T) {
	clusters := []ClusterInfo{
		{Index: 1, Tiles: []raster.Tile{{TX: 0, TY: 0}}},
		{Index: 2, Tiles: nil},
		{Index: 3, Tiles: []raster.Tile{{TX: 5, TY: 5}, {TX: 6, TY: 6}}},
	}
	a := NewApp(clusters)
	if a.list.GetItemCount() != 2 {
		t.Fatalf("got %d list items, want 2 (empty cluster skipped)", a.list.GetItemCount())
	}
}

func TestShowDetailRendersBoundingBoxAndTiles(t *testing.T) {
	clusters := []ClusterInfo{
		{Index: 1, Tiles: []raster.Tile{{TX: 1, TY: 1}, {TX: 2, TY: 2}}, Scalar: 10},
	}
	a := NewApp(clusters)
	a.showDetail(0)
	text := a.detail.GetText(true)
	if !strings.Contains(text, "tiles: 2") {
		t.Errorf("detail missing tile count: %q", text)
	}
	if !strings.Contains(text, "bbox: (1, 1) .. (2, 2)") {
		t.Errorf("detail missing bbox: %q", text)
	}
	if !strings.Contains(text, "bbox (unscaled): (0.1, 0.1) .. (0.2, 0.2)") {
		t.Errorf("detail missing unscaled bbox: %q", text)
	}
}

func TestShowDetailTruncatesLongSampleList(t *testing.T) {
	tiles := make([]raster.Tile, 15)
	for i := range tiles {
		tiles[i] = raster.Tile{TX: int32(i), TY: int32(i)}
	}
	clusters := []ClusterInfo{{Index: 1, Tiles: tiles}}
	a := NewApp(clusters)
	a.showDetail(0)
	text := a.detail.GetText(true)
	if !strings.Contains(text, "and 5 more") {
		t.Errorf("expected truncation message, got %q", text)
	}
}
