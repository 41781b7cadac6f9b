package parallel

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

func totalTiles(clusters []*raster.TileSet) int {
	n := 0
	for _, c := range clusters {
		n += c.Len()
	}
	return n
}

// TestClusterParChainAcrossStripsMatchesSequential builds a single
// 8-connected chain of tiles spanning x=-8..8 and checks that splitting it
// into 1, 2, 4, or 8 vertical strips and joining the borders back together
// always recovers the one connected component the sequential clusterer
// finds (spec.md invariant I3).
func TestClusterParChainAcrossStripsMatchesSequential(t *testing.T) {
	var tiles []raster.Tile
	for x := int32(-8); x <= 8; x++ {
		tiles = append(tiles, raster.Tile{TX: x, TY: 0})
	}

	seq := raster.ClusterSeq(buildTileSet(tiles...), 1)
	if len(seq) != 1 || seq[0].Len() != len(tiles) {
		t.Fatalf("sequential baseline: got %d clusters, want 1 cluster of %d tiles", len(seq), len(tiles))
	}

	for _, k := range []int{1, 2, 4, 8} {
		strips := SplitVertical(tiles, -8, 8, 1, k)
		clusters, err := ClusterPar(strips, 1)
		if err != nil {
			t.Fatalf("k=%d: ClusterPar: %v", k, err)
		}
		if len(clusters) != 1 {
			t.Fatalf("k=%d: got %d clusters, want 1", k, len(clusters))
		}
		if clusters[0].Len() != len(tiles) {
			t.Fatalf("k=%d: cluster has %d tiles, want %d", k, clusters[0].Len(), len(tiles))
		}
	}
}

// TestClusterParTwoComponentsStayApart checks that two far-apart groups of
// tiles remain two separate clusters after a vertical split that cuts
// neither of them.
func TestClusterParTwoComponentsStayApart(t *testing.T) {
	var tiles []raster.Tile
	for x := int32(-10); x <= -8; x++ {
		tiles = append(tiles, raster.Tile{TX: x, TY: 0})
	}
	for x := int32(8); x <= 10; x++ {
		tiles = append(tiles, raster.Tile{TX: x, TY: 0})
	}

	strips := SplitVertical(tiles, -10, 10, 1, 2)
	clusters, err := ClusterPar(strips, 1)
	if err != nil {
		t.Fatalf("ClusterPar: %v", err)
	}
	if len(clusters) != 2 {
		t.Fatalf("got %d clusters, want 2", len(clusters))
	}
	if totalTiles(clusters) != len(tiles) {
		t.Fatalf("clusters cover %d tiles, want %d", totalTiles(clusters), len(tiles))
	}
}

// TestClusterParBothEdgeBridge exercises a middle strip whose single
// cluster spans from its left bound to its right bound, bridging clusters
// in both of its neighboring strips in one join pass.
func TestClusterParBothEdgeBridge(t *testing.T) {
	var tiles []raster.Tile
	for x := int32(-6); x <= 6; x++ {
		tiles = append(tiles, raster.Tile{TX: x, TY: 0})
	}

	strips := SplitVertical(tiles, -6, 6, 1, 3)
	clusters, err := ClusterPar(strips, 1)
	if err != nil {
		t.Fatalf("ClusterPar: %v", err)
	}
	if len(clusters) != 1 {
		t.Fatalf("got %d clusters, want 1", len(clusters))
	}
	if clusters[0].Len() != len(tiles) {
		t.Fatalf("cluster has %d tiles, want %d", clusters[0].Len(), len(tiles))
	}
}

func TestClusterParSingleStripDelegatesToSequential(t *testing.T) {
	tiles := []raster.Tile{{TX: 0, TY: 0}, {TX: 1, TY: 0}}
	strips := SplitVertical(tiles, 0, 1, 1, 1)
	clusters, err := ClusterPar(strips, 1)
	if err != nil {
		t.Fatalf("ClusterPar: %v", err)
	}
	if len(clusters) != 1 || clusters[0].Len() != 2 {
		t.Fatalf("got %v, want one 2-tile cluster", clusters)
	}
}

func TestJoinClustersMinSizeFilter(t *testing.T) {
	left := []*raster.TileSet{buildTileSet(raster.Tile{TX: -1, TY: 0})}
	right := []*raster.TileSet{buildTileSet(raster.Tile{TX: 0, TY: 0})}

	clusters, transient := joinClusters(right, left, nil, 3)
	if len(clusters) != 0 {
		t.Fatalf("got %d clusters, want 0 (below min size)", len(clusters))
	}
	if len(transient) != 0 {
		t.Fatalf("got %d transient, want 0", len(transient))
	}
}
