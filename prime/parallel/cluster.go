package parallel

import (
	"fmt"
	"sync"

	"github.com/FraunhoferChalmersCentre/raster/prime"
)

func clusterSlice(tiles *prime.TileMap, minClusterSize int, leftEdge, rightEdge int32) (interior, left, both, right []*prime.TileMap) {
	for {
		tile, points, ok := tiles.Pop()
		if !ok {
			break
		}

		isLeft := tile.TX == leftEdge
		isRight := tile.TX == rightEdge

		cluster := prime.NewTileMap(1)
		cluster.Insert(tile, points)

		toCheck := prime.PopNeighbors(tile, tiles)
		for len(toCheck) > 0 {
			e := toCheck[len(toCheck)-1]
			toCheck = toCheck[:len(toCheck)-1]

			if e.Tile.TX == leftEdge {
				isLeft = true
			}
			if e.Tile.TX == rightEdge {
				isRight = true
			}
			cluster.Insert(e.Tile, e.Points)
			toCheck = append(toCheck, prime.PopNeighbors(e.Tile, tiles)...)
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

func joinClusters(leftClusters, rightClusters, leftRightClusters []*prime.TileMap, minClusterSize int) (clusters, transient []*prime.TileMap) {
	type visit struct {
		goRight bool
		cluster *prime.TileMap
	}

	left := leftClusters
	right := rightClusters
	leftRight := leftRightClusters

	for len(right) > 0 {
		start := right[len(right)-1]
		right = right[:len(right)-1]

		isLeftAndRight := false
		toVisit := []visit{{goRight: false, cluster: start}}
		cluster := prime.NewTileMap(start.Len())

		for len(toVisit) > 0 {
			v := toVisit[len(toVisit)-1]
			toVisit = toVisit[:len(toVisit)-1]

			if v.goRight {
				kept := right[:0:0]
				for _, c := range right {
					if prime.ClusterTouches(c, v.cluster) {
						toVisit = append(toVisit, visit{goRight: false, cluster: c})
					} else {
						kept = append(kept, c)
					}
				}
				right = kept
			} else {
				keptLeft := left[:0:0]
				for _, c := range left {
					if prime.ClusterTouches(c, v.cluster) {
						toVisit = append(toVisit, visit{goRight: true, cluster: c})
					} else {
						keptLeft = append(keptLeft, c)
					}
				}
				left = keptLeft

				keptLR := leftRight[:0:0]
				for _, c := range leftRight {
					if prime.ClusterTouches(c, v.cluster) {
						isLeftAndRight = true
						toVisit = append(toVisit, visit{goRight: true, cluster: c})
					} else {
						keptLR = append(keptLR, c)
					}
				}
				leftRight = keptLR
			}

			for _, e := range v.cluster.Entries() {
				cluster.Insert(e.Tile, e.Points)
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

func filterBySize(sets []*prime.TileMap, minClusterSize int) []*prime.TileMap {
	var out []*prime.TileMap
	for _, c := range sets {
		if c.Len() >= minClusterSize {
			out = append(out, c)
		}
	}
	return out
}

// ClusterPar is the prime counterpart to
// github.com/FraunhoferChalmersCentre/raster/parallel.ClusterPar.
func ClusterPar(strips []Strip, minClusterSize int) ([]*prime.TileMap, error) {
	if len(strips) == 0 {
		return nil, nil
	}
	if len(strips) == 1 {
		return prime.ClusterTiles(strips[0].Tiles, minClusterSize), nil
	}

	n := len(strips)
	type sliceOut struct {
		interior, left, both, right []*prime.TileMap
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

	var clusters []*prime.TileMap
	leftEdges := make([][]*prime.TileMap, n)
	bothEdges := make([][]*prime.TileMap, n)
	rightEdges := make([][]*prime.TileMap, n)
	for i, o := range outs {
		clusters = append(clusters, o.interior...)
		leftEdges[i] = o.left
		bothEdges[i] = o.both
		rightEdges[i] = o.right
	}

	if len(rightEdges[n-1]) != 0 {
		return nil, fmt.Errorf("prime/parallel: rightmost strip carries %d right-edge clusters, sentinel bound must be unreachable", len(rightEdges[n-1]))
	}
	if len(bothEdges[n-1]) != 0 {
		return nil, fmt.Errorf("prime/parallel: rightmost strip carries %d both-edge clusters, sentinel bound must be unreachable", len(bothEdges[n-1]))
	}

	var transient []*prime.TileMap
	for m := n - 2; m >= 0; m-- {
		right := rightEdges[m]
		left := append(append([]*prime.TileMap{}, leftEdges[m+1]...), transient...)
		both := bothEdges[m]

		joined, nextTransient := joinClusters(right, left, both, minClusterSize)
		clusters = append(clusters, joined...)
		transient = nextTransient
	}

	clusters = append(clusters, filterBySize(transient, minClusterSize)...)

	if len(leftEdges[0]) != 0 {
		return nil, fmt.Errorf("prime/parallel: leftmost strip carries %d left-edge clusters, sentinel bound must be unreachable", len(leftEdges[0]))
	}

	return clusters, nil
}
