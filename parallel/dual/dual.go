// Package dual is the fixed-parallelism K=2 baseline: the tile space is
// split on a single fixed border at X=0 instead of SplitVertical's
// arbitrary K slices, which makes the border-join step a plain two-way
// merge (spec.md §4.7).
package dual

import (
	"fmt"
	"sync"

	"github.com/FraunhoferChalmersCentre/raster"
)

// edge marks which strip a cluster's tiles are checked against: left
// clusters are tagged on X == -1, right clusters on X == 0 — the two tile
// columns immediately straddling the border.
type edge int32

const (
	edgeLeft  edge = -1
	edgeRight edge = 0
)

// MapToTileSlices buckets points into tiles with the usual worker pool and
// reduce step, then partitions the surviving tiles into a left set
// (X < 0) and a right set (X >= 0) instead of returning one combined set.
func MapToTileSlices(points []raster.Point, precision raster.Float, threshold, nrWorkers int) (left, right *raster.TileSet, scalar raster.Float, err error) {
	if nrWorkers < 1 {
		return nil, nil, 0, fmt.Errorf("dual: nr_workers must be >= 1, got %d", nrWorkers)
	}
	if threshold < 1 {
		return nil, nil, 0, fmt.Errorf("dual: threshold must be >= 1, got %d", threshold)
	}

	scalar = raster.Scalar(precision)

	batches := batchData(points, nrWorkers)
	if batches == nil {
		if len(points) > 0 {
			return nil, nil, 0, fmt.Errorf("dual: nr_workers (%d) exceeds point count (%d)", nrWorkers, len(points))
		}
		return raster.NewTileSet(0), raster.NewTileSet(0), scalar, nil
	}

	results := make(chan map[raster.Tile]int, len(batches))
	var wg sync.WaitGroup
	for _, batch := range batches {
		wg.Add(1)
		go func(b []raster.Point) {
			defer wg.Done()
			local := make(map[raster.Tile]int, len(b))
			for _, p := range b {
				local[p.Truncate(scalar)]++
			}
			results <- local
		}(batch)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	accumulated := make(map[raster.Tile]int)
	for local := range results {
		for t, n := range local {
			accumulated[t] += n
		}
	}

	left = raster.NewTileSet(0)
	right = raster.NewTileSet(0)
	for t, n := range accumulated {
		if n < threshold {
			continue
		}
		if t.TX < 0 {
			left.Add(t)
		} else {
			right.Add(t)
		}
	}
	return left, right, scalar, nil
}

func batchData(points []raster.Point, nrParts int) [][]raster.Point {
	if nrParts < 1 {
		return nil
	}
	chunkSize := len(points) / nrParts
	if chunkSize == 0 {
		return nil
	}
	var batches [][]raster.Point
	for i := 0; i < len(points); i += chunkSize {
		end := i + chunkSize
		if end > len(points) {
			end = len(points)
		}
		batches = append(batches, points[i:end])
	}
	return batches
}

// ClusterTiles clusters the two fixed strips concurrently and joins the
// result across the X=0 border (spec.md §4.7).
func ClusterTiles(leftTiles, rightTiles *raster.TileSet, minClusterSize int) []*raster.TileSet {
	var leftClusters, rightClusters, leftJoin, rightJoin []*raster.TileSet
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		leftClusters, leftJoin = clusterSlice(leftTiles, minClusterSize, edgeLeft)
	}()
	go func() {
		defer wg.Done()
		rightClusters, rightJoin = clusterSlice(rightTiles, minClusterSize, edgeRight)
	}()
	wg.Wait()

	midClusters := joinClusters(leftJoin, rightJoin, minClusterSize)

	all := make([]*raster.TileSet, 0, len(leftClusters)+len(midClusters)+len(rightClusters))
	all = append(all, leftClusters...)
	all = append(all, midClusters...)
	all = append(all, rightClusters...)
	return all
}

// clusterSlice flood-fills tiles exactly like raster.ClusterSeq, but routes
// any cluster touching the border column (X == int32(e)) into a separate
// edge-cluster list instead of applying the size filter to it directly.
func clusterSlice(tiles *raster.TileSet, minClusterSize int, e edge) (clusters, edgeClusters []*raster.TileSet) {
	for {
		seed, ok := tiles.Pop()
		if !ok {
			break
		}

		isEdge := seed.TX == int32(e)
		cluster := raster.NewTileSet(1)
		cluster.Add(seed)

		toCheck := raster.PopNeighbors(seed, tiles)
		for len(toCheck) > 0 {
			p := toCheck[len(toCheck)-1]
			toCheck = toCheck[:len(toCheck)-1]

			if p.TX == int32(e) {
				isEdge = true
			}
			cluster.Add(p)
			toCheck = append(toCheck, raster.PopNeighbors(p, tiles)...)
		}

		if isEdge {
			edgeClusters = append(edgeClusters, cluster)
		} else if cluster.Len() >= minClusterSize {
			clusters = append(clusters, cluster)
		}
	}
	return
}

// joinClusters merges leftClusters (bordering from the left) against
// rightClusters (bordering from the right) with a single alternating
// flood-fill, since a K=2 split has exactly one border to resolve.
func joinClusters(leftClusters, rightClusters []*raster.TileSet, minClusterSize int) []*raster.TileSet {
	type visit struct {
		goRight bool
		cluster *raster.TileSet
	}

	var clusters []*raster.TileSet
	xs := leftClusters
	ys := rightClusters

	for len(xs) > 0 {
		start := xs[len(xs)-1]
		xs = xs[:len(xs)-1]

		toVisit := []visit{{goRight: true, cluster: start}}
		cluster := raster.NewTileSet(start.Len())
		for _, t := range start.Tiles() {
			cluster.Add(t)
		}

		for len(toVisit) > 0 {
			v := toVisit[len(toVisit)-1]
			toVisit = toVisit[:len(toVisit)-1]

			if v.goRight {
				keptYs := ys[:0:0]
				for _, c := range ys {
					if raster.ClusterTouches(c, v.cluster) {
						toVisit = append(toVisit, visit{goRight: false, cluster: c})
						for _, t := range c.Tiles() {
							cluster.Add(t)
						}
					} else {
						keptYs = append(keptYs, c)
					}
				}
				ys = keptYs
			} else {
				keptXs := xs[:0:0]
				for _, c := range xs {
					if raster.ClusterTouches(c, v.cluster) {
						toVisit = append(toVisit, visit{goRight: true, cluster: c})
						for _, t := range c.Tiles() {
							cluster.Add(t)
						}
					} else {
						keptXs = append(keptXs, c)
					}
				}
				xs = keptXs
			}
		}

		if cluster.Len() >= minClusterSize {
			clusters = append(clusters, cluster)
		}
	}

	for _, c := range ys {
		if c.Len() >= minClusterSize {
			clusters = append(clusters, c)
		}
	}
	return clusters
}
