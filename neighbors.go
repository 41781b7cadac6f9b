package raster

// moorePositions returns the 8 Moore-neighborhood candidate positions
// around t: the four orthogonal neighbors and the four diagonals.
func moorePositions(t Tile) [8]Tile {
	x, y := t.TX, t.TY
	return [8]Tile{
		{x + 1, y},
		{x - 1, y},
		{x, y + 1},
		{x, y - 1},
		{x + 1, y - 1},
		{x + 1, y + 1},
		{x - 1, y - 1},
		{x - 1, y + 1},
	}
}

// PopNeighbors removes and returns the Moore neighbors of t that are
// present in set. Exported for reuse by the parallel and dual variants,
// which perform the same destructive flood-fill over a TileSet (the prime
// package has its own PopNeighbors over a TileMap).
func PopNeighbors(t Tile, set *TileSet) []Tile {
	return popNeighbors(t, set)
}

// popNeighbors removes and returns the Moore neighbors of t that are
// present in set.
func popNeighbors(t Tile, set *TileSet) []Tile {
	candidates := moorePositions(t)
	out := make([]Tile, 0, 8)
	for _, c := range candidates {
		if set.Remove(c) {
			out = append(out, c)
		}
	}
	return out
}

// isNeighbor reports whether t has any of its 8 Moore neighbors present in
// set, without mutating set.
func isNeighbor(t Tile, set *TileSet) bool {
	candidates := moorePositions(t)
	for _, c := range candidates {
		if set.Contains(c) {
			return true
		}
	}
	return false
}

// ClusterTouches reports whether any tile in a is a Moore neighbor of any
// tile in b.
func ClusterTouches(a, b *TileSet) bool {
	for _, t := range a.Tiles() {
		if isNeighbor(t, b) {
			return true
		}
	}
	return false
}
