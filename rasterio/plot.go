package rasterio

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/FraunhoferChalmersCentre/raster"
)

// PlotClusters renders each cluster as its own scatter series so clusters
// are visually distinguishable, scaling tile coordinates back down by
// scalar (mirrors cidrx's output.PlotHeatmap: go-echarts scatter instead
// of heatmap, since tiles are sparse rather than a dense grid).
func PlotClusters(clusters []*raster.TileSet, scalar raster.Float, filename string) error {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:       "RASTER clusters",
			Width:           "180vh",
			Height:          "100vh",
			Theme:           types.ThemeVintage,
			BackgroundColor: "transparent",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%d clusters", len(clusters)),
			Left:  "center",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "item"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "y", Type: "value"}),
	)

	for i, c := range clusters {
		data := make([]opts.ScatterData, 0, c.Len())
		for _, t := range c.Tiles() {
			x := raster.Float(t.TX) / scalar
			y := raster.Float(t.TY) / scalar
			data = append(data, opts.ScatterData{Value: [2]float64{x, y}})
		}
		scatter.AddSeries(fmt.Sprintf("cluster %d", i+1), data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))
	}

	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(scatter)

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("rasterio: create %s: %w", filename, err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("rasterio: rendering chart to %s: %w", filename, err)
	}

	fmt.Printf("Cluster plot saved to %s\n", filename)
	return nil
}
