package main

import (
	"fmt"
	"time"

	cli "github.com/urfave/cli/v2"

	"github.com/FraunhoferChalmersCentre/raster"
	"github.com/FraunhoferChalmersCentre/raster/parallel"
	"github.com/FraunhoferChalmersCentre/raster/parallel/dual"
	"github.com/FraunhoferChalmersCentre/raster/prime"
	primeparallel "github.com/FraunhoferChalmersCentre/raster/prime/parallel"
	"github.com/FraunhoferChalmersCentre/raster/rasterbench"
	"github.com/FraunhoferChalmersCentre/raster/rasterconfig"
	"github.com/FraunhoferChalmersCentre/raster/rasterio"
	"github.com/FraunhoferChalmersCentre/raster/rastertui"
)

// Shared flag definitions to eliminate duplication, following the style of
// cidrx's cli package.
var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "Path to a TOML configuration file; when set, the input and clustering flags are ignored (--output, --plotPath and --tui still apply)",
	}
	inputFlag = &cli.StringFlag{
		Name:  "input",
		Usage: "Path to a CSV file of x,y points",
	}
	precisionFlag = &cli.Float64Flag{
		Name:  "precision",
		Usage: "Decimal places to keep when projecting points onto the tile grid",
		Value: 0,
	}
	thresholdFlag = &cli.IntFlag{
		Name:  "threshold",
		Usage: "Minimum number of points a tile must contain to be considered significant",
		Value: 1,
	}
	minClusterSizeFlag = &cli.IntFlag{
		Name:  "minClusterSize",
		Usage: "Minimum number of tiles a cluster must contain to be kept",
		Value: 1,
	}
	coresFlag = &cli.IntFlag{
		Name:  "cores",
		Usage: "Number of workers to split the work across; 1 runs the sequential algorithm",
		Value: 1,
	}
	primeFlag = &cli.BoolFlag{
		Name:  "prime",
		Usage: "Retain the original points backing each tile instead of just tile coordinates",
	}
	dualFlag = &cli.BoolFlag{
		Name:  "dual",
		Usage: "Use the fixed two-way (K=2) parallel split instead of the general n-way split",
	}
	outputFlag = &cli.StringFlag{
		Name:  "output",
		Usage: "Path to write the clustered points as CSV (cluster,x,y)",
	}
	plotPathFlag = &cli.StringFlag{
		Name:  "plotPath",
		Usage: "Path to write an HTML scatter plot of the clusters",
	}
	tuiFlag = &cli.BoolFlag{
		Name:  "tui",
		Usage: "Browse the resulting clusters in a terminal UI after printing the summary",
	}
	iterationsFlag = &cli.IntFlag{
		Name:  "iterations",
		Usage: "Number of timed iterations to run per algorithm",
		Value: 5,
	}
	benchOutputFlag = &cli.StringFlag{
		Name:  "output",
		Usage: "Path to append benchmark results as CSV",
		Value: "bench.csv",
	}
)

func loadPoints(inputPath string) ([]raster.Point, error) {
	if inputPath == "" {
		return nil, fmt.Errorf("input is required")
	}
	return rasterio.ReadCSV(inputPath)
}

// handleRun is the Action for the "run" command: it always clusters, then
// reports results according to --output/--plotPath/--tui, whichever the
// caller asked for (more than one may be set at once).
func handleRun(c *cli.Context) error {
	configPath := c.String("config")
	var (
		inputPath      string
		precision      float64
		threshold      int
		minClusterSize int
		cores          int
		usePrime       bool
		useDual        bool
		outputPath     string
		plotPath       string
		showTUI        bool
	)

	if configPath != "" {
		cfg, err := rasterconfig.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if len(cfg.Input) == 0 {
			return fmt.Errorf("config has no [[input]] entries")
		}
		inputPath = cfg.Input[0].Path
		precision = cfg.Precision[0]
		threshold = cfg.Threshold
		minClusterSize = cfg.MinClusterSize
		usePrime = cfg.Prime
		useDual = cfg.Dual
		if len(cfg.Cores) > 0 {
			cores = cfg.Cores[0]
		} else {
			cores = 1
		}
		outputPath = c.String("output")
		plotPath = c.String("plotPath")
		showTUI = c.Bool("tui")
	} else {
		if !c.IsSet("input") {
			return fmt.Errorf("input is required when not using --config")
		}
		inputPath = c.String("input")
		precision = c.Float64("precision")
		threshold = c.Int("threshold")
		minClusterSize = c.Int("minClusterSize")
		cores = c.Int("cores")
		usePrime = c.Bool("prime")
		useDual = c.Bool("dual")
		outputPath = c.String("output")
		plotPath = c.String("plotPath")
		showTUI = c.Bool("tui")
	}

	points, err := loadPoints(inputPath)
	if err != nil {
		return err
	}

	var (
		seqClusters   []*raster.TileSet
		primeClusters []*prime.TileMap
		scalar        raster.Float
	)

	switch {
	case useDual:
		left, right, s, err := dual.MapToTileSlices(points, raster.Float(precision), threshold, cores)
		if err != nil {
			return err
		}
		scalar = s
		seqClusters = dual.ClusterTiles(left, right, minClusterSize)

	case cores <= 1 && !usePrime:
		tiles, s, err := raster.Project(points, raster.Float(precision), threshold)
		if err != nil {
			return err
		}
		scalar = s
		seqClusters = raster.ClusterSeq(tiles, minClusterSize)

	case cores <= 1 && usePrime:
		tiles, s, err := prime.Project(points, raster.Float(precision), threshold)
		if err != nil {
			return err
		}
		scalar = s
		primeClusters = prime.ClusterTiles(tiles, minClusterSize)

	case usePrime:
		xMin, xMax := boundsOf(points, raster.Float(precision))
		tiles, s, err := primeparallel.ProjectPar(points, raster.Float(precision), threshold, cores)
		if err != nil {
			return err
		}
		scalar = s
		strips := primeparallel.SplitVertical(tiles, xMin, xMax, scalar, cores)
		primeClusters, err = primeparallel.ClusterPar(strips, minClusterSize)
		if err != nil {
			return err
		}

	default:
		xMin, xMax := boundsOf(points, raster.Float(precision))
		tiles, s, err := parallel.ProjectPar(points, raster.Float(precision), threshold, cores)
		if err != nil {
			return err
		}
		scalar = s
		strips := parallel.SplitVertical(tiles, xMin, xMax, scalar, cores)
		seqClusters, err = parallel.ClusterPar(strips, minClusterSize)
		if err != nil {
			return err
		}
	}

	if primeClusters != nil {
		seqClusters = make([]*raster.TileSet, len(primeClusters))
		for i, pc := range primeClusters {
			set := raster.NewTileSet(0)
			for _, t := range pc.Tiles() {
				set.Add(t)
			}
			seqClusters[i] = set
		}
	}

	fmt.Printf("found %d clusters from %d points (scalar=%g)\n", len(seqClusters), len(points), float64(scalar))

	if outputPath != "" {
		if err := rasterio.WriteClusters(outputPath, seqClusters, scalar); err != nil {
			return err
		}
		fmt.Printf("wrote clustered points to %s\n", outputPath)
	}

	if plotPath != "" {
		if err := rasterio.PlotClusters(seqClusters, scalar, plotPath); err != nil {
			return err
		}
	}

	if showTUI {
		infos := make([]rastertui.ClusterInfo, len(seqClusters))
		for i, c := range seqClusters {
			infos[i] = rastertui.ClusterInfo{Index: i + 1, Tiles: c.Tiles(), Scalar: scalar}
		}
		return rastertui.NewApp(infos).Run()
	}

	return nil
}

// boundsOf computes the x bounds of points in the input coordinate space,
// truncated to int32, as the vertical split range for the parallel
// variants. SplitVertical scales that range by the projection scalar
// itself, so precision does not enter the result.
func boundsOf(points []raster.Point, _ raster.Float) (int32, int32) {
	if len(points) == 0 {
		return 0, 0
	}
	minX, maxX := int32(points[0].X), int32(points[0].X)
	for _, p := range points[1:] {
		tx := int32(p.X)
		if tx < minX {
			minX = tx
		}
		if tx > maxX {
			maxX = tx
		}
	}
	return minX, maxX
}

// handleBench is the Action for the "bench" command: it times every
// algorithm over the same input and appends one CSV row per algorithm.
func handleBench(c *cli.Context) error {
	if !c.IsSet("input") {
		return fmt.Errorf("input is required")
	}
	points, err := loadPoints(c.String("input"))
	if err != nil {
		return err
	}

	params := rasterbench.RunParams{
		Precision:      raster.Float(c.Float64("precision")),
		Threshold:      c.Int("threshold"),
		MinClusterSize: c.Int("minClusterSize"),
		NrCores:        c.Int("cores"),
		Iterations:     c.Int("iterations"),
	}

	algorithms := []rasterbench.Algorithm{rasterbench.Seq, rasterbench.SeqPrime, rasterbench.Par, rasterbench.ParPrime, rasterbench.Dual}
	outputPath := c.String("output")

	for _, alg := range algorithms {
		summary, err := rasterbench.Run(alg, points, 0, params)
		if err != nil {
			return fmt.Errorf("%v: %w", alg, err)
		}
		fmt.Printf("%-10s mean=%.6fs stddev=%.6fs clusters=%d\n", alg, summary.Mean, summary.StdDev, summary.NrClusters)
		if err := rasterbench.WriteSummaryCSV(outputPath, summary); err != nil {
			return err
		}
	}
	return nil
}

var App = &cli.App{
	Name:     "raster",
	Usage:    "Cluster points with the RASTER contraction-clustering algorithm",
	Version:  "0.1.0",
	Compiled: time.Now(),
	Commands: []*cli.Command{
		{
			Name:  "run",
			Usage: "Project and cluster a set of points",
			Flags: []cli.Flag{
				configFlag,
				inputFlag,
				precisionFlag,
				thresholdFlag,
				minClusterSizeFlag,
				coresFlag,
				primeFlag,
				dualFlag,
				outputFlag,
				plotPathFlag,
				tuiFlag,
			},
			Action: handleRun,
		},
		{
			Name:  "bench",
			Usage: "Benchmark all clustering algorithms on the same input",
			Flags: []cli.Flag{
				inputFlag,
				precisionFlag,
				thresholdFlag,
				minClusterSizeFlag,
				coresFlag,
				iterationsFlag,
				benchOutputFlag,
			},
			Action: handleBench,
		},
	},
}
