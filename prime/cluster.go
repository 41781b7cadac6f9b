package prime

// ClusterTiles groups the entries in working into clusters of at least
// minClusterSize tiles each, the point-retaining counterpart to
// raster.ClusterSeq. working is consumed destructively.
func ClusterTiles(working *TileMap, minClusterSize int) []*TileMap {
	var clusters []*TileMap

	for {
		tile, points, ok := working.Pop()
		if !ok {
			break
		}

		cluster := NewTileMap(1)
		cluster.Insert(tile, points)

		toCheck := PopNeighbors(tile, working)
		for len(toCheck) > 0 {
			e := toCheck[len(toCheck)-1]
			toCheck = toCheck[:len(toCheck)-1]

			cluster.Insert(e.Tile, e.Points)
			toCheck = append(toCheck, PopNeighbors(e.Tile, working)...)
		}

		if cluster.Len() >= minClusterSize {
			clusters = append(clusters, cluster)
		}
	}

	return clusters
}
