package parallel

import (
	"fmt"
	"sync"

	"github.com/FraunhoferChalmersCentre/raster"
)

// clusterSlice clusters one strip's tiles in isolation, flood-filling
// exactly as raster.ClusterSeq does but also tagging, for every emitted
// cluster, whether it touches the strip's leftEdge and/or rightEdge X
// coordinate (spec.md §4.4). Clusters touching neither edge are subject to
// the minClusterSize filter immediately; edge clusters are always returned
// since they may grow once joined across a border.
func clusterSlice(tiles *raster.TileSet, minClusterSize int, leftEdge, rightEdge int32) (interior, left, both, right []*raster.TileSet) {
	for {
		seed, ok := tiles.Pop()
		if !ok {
			break
		}

		isLeft := seed.TX == leftEdge
		isRight := seed.TX == rightEdge

		cluster := raster.NewTileSet(1)
		cluster.Add(seed)

		toCheck := raster.PopNeighbors(seed, tiles)
		for len(toCheck) > 0 {
			p := toCheck[len(toCheck)-1]
			toCheck = toCheck[:len(toCheck)-1]

			if p.TX == leftEdge {
				isLeft = true
			}
			if p.TX == rightEdge {
				isRight = true
			}
			cluster.Add(p)
			toCheck = append(toCheck, raster.PopNeighbors(p, tiles)...)
		}

		switch {
		case isLeft && isRight:
			both = append(both, cluster)
		case isLeft:
			left = append(left, cluster)
		case isRight:
			right = append(right, cluster)
		case cluster.Len() >= minClusterSize:
			interior = append(interior, cluster)
		}
	}
	return
}

// joinClusters resolves one border between two adjacent strips. leftClusters
// are the clusters touching the border from their strip's right edge,
// rightClusters are the ones touching it from the neighboring strip's left
// edge (already extended with any transient clusters carried over from a
// border further right), and leftRightClusters are clusters that touch both
// of their own strip's edges and are therefore treated as belonging to the
// left side of this particular border too (spec.md §4.5).
//
// A merged cluster that absorbed a leftRightClusters member still touches
// the next border to the left, so it is returned as transient instead of
// being emitted; leftRightClusters members that joined nothing are returned
// as transient too.
func joinClusters(leftClusters, rightClusters, leftRightClusters []*raster.TileSet, minClusterSize int) (clusters, transient []*raster.TileSet) {
	type visit struct {
		goRight bool
		cluster *raster.TileSet
	}

	left := leftClusters
	right := rightClusters
	leftRight := leftRightClusters

	for len(right) > 0 {
		start := right[len(right)-1]
		right = right[:len(right)-1]

		isLeftAndRight := false
		toVisit := []visit{{goRight: false, cluster: start}}
		cluster := raster.NewTileSet(start.Len())

		for len(toVisit) > 0 {
			v := toVisit[len(toVisit)-1]
			toVisit = toVisit[:len(toVisit)-1]

			if v.goRight {
				kept := right[:0:0]
				for _, c := range right {
					if raster.ClusterTouches(c, v.cluster) {
						toVisit = append(toVisit, visit{goRight: false, cluster: c})
					} else {
						kept = append(kept, c)
					}
				}
				right = kept
			} else {
				keptLeft := left[:0:0]
				for _, c := range left {
					if raster.ClusterTouches(c, v.cluster) {
						toVisit = append(toVisit, visit{goRight: true, cluster: c})
					} else {
						keptLeft = append(keptLeft, c)
					}
				}
				left = keptLeft

				keptLR := leftRight[:0:0]
				for _, c := range leftRight {
					if raster.ClusterTouches(c, v.cluster) {
						isLeftAndRight = true
						toVisit = append(toVisit, visit{goRight: true, cluster: c})
					} else {
						keptLR = append(keptLR, c)
					}
				}
				leftRight = keptLR
			}

			for _, t := range v.cluster.Tiles() {
				cluster.Add(t)
			}
		}

		if isLeftAndRight {
			transient = append(transient, cluster)
		} else if cluster.Len() >= minClusterSize {
			clusters = append(clusters, cluster)
		}
	}

	for _, c := range left {
		if c.Len() >= minClusterSize {
			clusters = append(clusters, c)
		}
	}
	transient = append(transient, leftRight...)
	return clusters, transient
}

func filterBySize(sets []*raster.TileSet, minClusterSize int) []*raster.TileSet {
	var out []*raster.TileSet
	for _, c := range sets {
		if c.Len() >= minClusterSize {
			out = append(out, c)
		}
	}
	return out
}

// ClusterPar clusters a set of vertical strips produced by SplitVertical
// and joins the results back across strip borders (spec.md §4.4-§4.5).
// With a single strip it degrades to raster.ClusterSeq.
func ClusterPar(strips []Strip, minClusterSize int) ([]*raster.TileSet, error) {
	if len(strips) == 0 {
		return nil, nil
	}
	if len(strips) == 1 {
		return raster.ClusterSeq(strips[0].Tiles, minClusterSize), nil
	}

	n := len(strips)
	type sliceOut struct {
		interior, left, both, right []*raster.TileSet
	}
	outs := make([]sliceOut, n)

	var wg sync.WaitGroup
	for i := range strips {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			interior, left, both, right := clusterSlice(strips[i].Tiles, minClusterSize, strips[i].Left, strips[i].Right)
			outs[i] = sliceOut{interior: interior, left: left, both: both, right: right}
		}(i)
	}
	wg.Wait()

	var clusters []*raster.TileSet
	leftEdges := make([][]*raster.TileSet, n)
	bothEdges := make([][]*raster.TileSet, n)
	rightEdges := make([][]*raster.TileSet, n)
	for i, o := range outs {
		clusters = append(clusters, o.interior...)
		leftEdges[i] = o.left
		bothEdges[i] = o.both
		rightEdges[i] = o.right
	}

	if len(rightEdges[n-1]) != 0 {
		return nil, fmt.Errorf("parallel: rightmost strip carries %d right-edge clusters, sentinel bound must be unreachable", len(rightEdges[n-1]))
	}
	if len(bothEdges[n-1]) != 0 {
		return nil, fmt.Errorf("parallel: rightmost strip carries %d both-edge clusters, sentinel bound must be unreachable", len(bothEdges[n-1]))
	}

	var transient []*raster.TileSet
	for m := n - 2; m >= 0; m-- {
		right := rightEdges[m]
		left := append(append([]*raster.TileSet{}, leftEdges[m+1]...), transient...)
		both := bothEdges[m]

		joined, nextTransient := joinClusters(right, left, both, minClusterSize)
		clusters = append(clusters, joined...)
		transient = nextTransient
	}

	clusters = append(clusters, filterBySize(transient, minClusterSize)...)

	if len(leftEdges[0]) != 0 {
		return nil, fmt.Errorf("parallel: leftmost strip carries %d left-edge clusters, sentinel bound must be unreachable", len(leftEdges[0]))
	}

	return clusters, nil
}
