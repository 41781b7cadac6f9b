// Package prime implements RASTER' ("raster prime"): the point-retaining
// variant of Contraction Clustering where each surviving tile keeps the
// original points that were bucketed into it, instead of only the tile
// coordinate (spec.md §4.1 Prime note, original_source prime.rs).
package prime

import "github.com/FraunhoferChalmersCentre/raster"

// Entry pairs a tile with the points that were truncated into it.
type Entry struct {
	Tile   raster.Tile
	Points []raster.Point
}

// TileMap is an insertion-ordered Tile -> []Point map, the prime
// counterpart to raster.TileSet. Pop/Remove use the same O(1)
// swap-with-last-element strategy.
type TileMap struct {
	entries []Entry
	index   map[raster.Tile]int
}

// NewTileMap creates an empty TileMap, optionally pre-sizing its storage.
func NewTileMap(capacity int) *TileMap {
	return &TileMap{
		entries: make([]Entry, 0, capacity),
		index:   make(map[raster.Tile]int, capacity),
	}
}

// Append adds a point to tile's entry, creating it if absent.
func (m *TileMap) Append(tile raster.Tile, p raster.Point) {
	if i, ok := m.index[tile]; ok {
		m.entries[i].Points = append(m.entries[i].Points, p)
		return
	}
	m.index[tile] = len(m.entries)
	m.entries = append(m.entries, Entry{Tile: tile, Points: []raster.Point{p}})
}

// Insert sets tile's full point payload, overwriting any existing entry.
func (m *TileMap) Insert(tile raster.Tile, points []raster.Point) {
	if i, ok := m.index[tile]; ok {
		m.entries[i].Points = points
		return
	}
	m.index[tile] = len(m.entries)
	m.entries = append(m.entries, Entry{Tile: tile, Points: points})
}

// Contains reports whether tile has an entry.
func (m *TileMap) Contains(tile raster.Tile) bool {
	_, ok := m.index[tile]
	return ok
}

// Remove deletes tile's entry if present, returning its points.
func (m *TileMap) Remove(tile raster.Tile) ([]raster.Point, bool) {
	i, ok := m.index[tile]
	if !ok {
		return nil, false
	}
	last := len(m.entries) - 1
	removed := m.entries[i]
	moved := m.entries[last]
	m.entries[i] = moved
	m.entries = m.entries[:last]
	if i != last {
		m.index[moved.Tile] = i
	}
	delete(m.index, tile)
	return removed.Points, true
}

// Pop removes and returns the most recently inserted (or swapped-in) entry.
func (m *TileMap) Pop() (raster.Tile, []raster.Point, bool) {
	if len(m.entries) == 0 {
		return raster.Tile{}, nil, false
	}
	last := len(m.entries) - 1
	e := m.entries[last]
	m.entries = m.entries[:last]
	delete(m.index, e.Tile)
	return e.Tile, e.Points, true
}

// Len returns the number of entries currently in the map.
func (m *TileMap) Len() int {
	return len(m.entries)
}

// Entries returns the map's members in current insertion order. The
// returned slice aliases internal storage and must not be mutated.
func (m *TileMap) Entries() []Entry {
	return m.entries
}

// Tiles returns just the keys, in current insertion order.
func (m *TileMap) Tiles() []raster.Tile {
	tiles := make([]raster.Tile, len(m.entries))
	for i, e := range m.entries {
		tiles[i] = e.Tile
	}
	return tiles
}

// Points flattens every entry's retained points into one slice.
func (m *TileMap) Points() []raster.Point {
	var pts []raster.Point
	for _, e := range m.entries {
		pts = append(pts, e.Points...)
	}
	return pts
}
