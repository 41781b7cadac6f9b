package raster

import "testing"

func buildSet(tiles ...Tile) *TileSet {
	s := NewTileSet(len(tiles))
	for _, t := range tiles {
		s.Add(t)
	}
	return s
}

func containsEqualSet(clusters []*TileSet, want *TileSet) bool {
	for _, c := range clusters {
		if c.Equal(want) {
			return true
		}
	}
	return false
}

func TestClusterSeqTwoComponents(t *testing.T) {
	input := buildSet(
		Tile{0, 0}, Tile{-1, 0}, Tile{-1, -1}, Tile{0, -1},
		Tile{5, 0}, Tile{5, 1}, Tile{5, 2},
	)

	clusters := ClusterSeq(input, 1)
	if len(clusters) != 2 {
		t.Fatalf("got %d clusters, want 2", len(clusters))
	}

	want1 := buildSet(Tile{0, 0}, Tile{-1, 0}, Tile{-1, -1}, Tile{0, -1})
	want2 := buildSet(Tile{5, 0}, Tile{5, 1}, Tile{5, 2})

	if !containsEqualSet(clusters, want1) {
		t.Errorf("missing cluster %v", want1.Tiles())
	}
	if !containsEqualSet(clusters, want2) {
		t.Errorf("missing cluster %v", want2.Tiles())
	}
}

func TestClusterSeqSingleTileEmittedIffMinSizeOne(t *testing.T) {
	input := buildSet(Tile{0, 0})

	clusters := ClusterSeq(input.Clone(), 1)
	if len(clusters) != 1 {
		t.Fatalf("min=1: got %d clusters, want 1", len(clusters))
	}

	clusters = ClusterSeq(input.Clone(), 2)
	if len(clusters) != 0 {
		t.Fatalf("min=2: got %d clusters, want 0", len(clusters))
	}
}

func TestClusterSeqExhaustsWorkingSet(t *testing.T) {
	input := buildSet(Tile{0, 0}, Tile{1, 1}, Tile{10, 10})
	ClusterSeq(input, 1)
	if input.Len() != 0 {
		t.Fatalf("working set left with %d tiles, want 0", input.Len())
	}
}

func TestPopNeighbors(t *testing.T) {
	set := buildSet(Tile{3, 5}, Tile{0, 5}, Tile{2, 4}, Tile{1, 4})
	got := popNeighbors(Tile{2, 5}, set)

	want := map[Tile]bool{{3, 5}: true, {2, 4}: true, {1, 4}: true}
	if len(got) != len(want) {
		t.Fatalf("got %v, want neighbors from %v", got, want)
	}
	for _, g := range got {
		if !want[g] {
			t.Errorf("unexpected neighbor %v", g)
		}
	}
	if set.Contains(Tile{0, 5}) == false {
		t.Errorf("non-neighbor (0,5) should remain in set")
	}
	if set.Len() != 1 {
		t.Errorf("set should retain only the non-neighbor, has %d", set.Len())
	}
}

func TestPopNeighborsEmptySet(t *testing.T) {
	set := NewTileSet(0)
	got := popNeighbors(Tile{2, 5}, set)
	if len(got) != 0 {
		t.Fatalf("got %v, want none", got)
	}
}
