package prime

import "github.com/FraunhoferChalmersCentre/raster"

func moorePositions(t raster.Tile) [8]raster.Tile {
	x, y := t.TX, t.TY
	return [8]raster.Tile{
		{TX: x + 1, TY: y},
		{TX: x - 1, TY: y},
		{TX: x, TY: y + 1},
		{TX: x, TY: y - 1},
		{TX: x + 1, TY: y - 1},
		{TX: x + 1, TY: y + 1},
		{TX: x - 1, TY: y - 1},
		{TX: x - 1, TY: y + 1},
	}
}

// PopNeighbors removes and returns the Moore-neighbor entries of t present
// in m.
func PopNeighbors(t raster.Tile, m *TileMap) []Entry {
	candidates := moorePositions(t)
	out := make([]Entry, 0, 8)
	for _, c := range candidates {
		if points, ok := m.Remove(c); ok {
			out = append(out, Entry{Tile: c, Points: points})
		}
	}
	return out
}

func isNeighbor(t raster.Tile, m *TileMap) bool {
	candidates := moorePositions(t)
	for _, c := range candidates {
		if m.Contains(c) {
			return true
		}
	}
	return false
}

// ClusterTouches reports whether any tile in a is a Moore neighbor of any
// tile in b.
func ClusterTouches(a, b *TileMap) bool {
	for _, t := range a.Tiles() {
		if isNeighbor(t, b) {
			return true
		}
	}
	return false
}
