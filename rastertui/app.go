// Package rastertui is a small terminal browser for paging through the
// clusters produced by a completed run: tile count, bounding box, and a
// handful of sample tiles per cluster. It is a proportionate cut-down of
// cidrx's tui package (src/tui/app.go), which drives a much larger
// multi-panel analysis view over tview/tcell; here there is one list and
// one detail panel.
package rastertui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/FraunhoferChalmersCentre/raster"
)

// ClusterInfo is the data rastertui needs about one cluster; callers build
// this from whichever clustering variant (raster.ClusterSeq, parallel.ClusterPar,
// prime.ClusterTiles, dual.ClusterTiles, ...) produced the run's output.
type ClusterInfo struct {
	Index  int
	Tiles  []raster.Tile
	Scalar raster.Float
}

func boundingBox(tiles []raster.Tile) (minX, minY, maxX, maxY int32) {
	minX, minY = tiles[0].TX, tiles[0].TY
	maxX, maxY = tiles[0].TX, tiles[0].TY
	for _, t := range tiles[1:] {
		if t.TX < minX {
			minX = t.TX
		}
		if t.TX > maxX {
			maxX = t.TX
		}
		if t.TY < minY {
			minY = t.TY
		}
		if t.TY > maxY {
			maxY = t.TY
		}
	}
	return
}

// App is the cluster-browser TUI.
type App struct {
	app   *tview.Application
	pages *tview.Pages

	list   *tview.List
	detail *tview.TextView
	status *tview.TextView

	clusters []ClusterInfo
}

// NewApp builds a cluster browser over clusters. Clusters with no tiles are
// skipped since a bounding box is undefined for them.
func NewApp(clusters []ClusterInfo) *App {
	a := &App{
		app:      tview.NewApplication(),
		pages:    tview.NewPages(),
		clusters: clusters,
	}
	a.setupUI()
	return a
}

func (a *App) setupUI() {
	a.list = tview.NewList().ShowSecondaryText(true)
	a.list.SetBorder(true).SetTitle(" clusters ").SetTitleAlign(tview.AlignLeft)

	for _, c := range a.clusters {
		if len(c.Tiles) == 0 {
			continue
		}
		label := fmt.Sprintf("cluster %d", c.Index)
		secondary := fmt.Sprintf("%d tiles", len(c.Tiles))
		a.list.AddItem(label, secondary, 0, nil)
	}
	a.list.SetChangedFunc(func(i int, _, _ string, _ rune) {
		a.showDetail(i)
	})

	a.detail = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(true)
	a.detail.SetBorder(true).SetTitle(" detail ").SetTitleAlign(tview.AlignLeft)

	a.status = tview.NewTextView().
		SetDynamicColors(true).
		SetText("[yellow]arrows[white] to browse, [yellow]q[white] to quit")

	main := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(a.list, 0, 1, true).
		AddItem(a.detail, 0, 2, false)

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(main, 0, 1, true).
		AddItem(a.status, 1, 0, false)

	a.pages.AddPage("browser", root, true, true)

	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 'q', 'Q':
			a.app.Stop()
			return nil
		}
		return event
	})

	if len(a.clusters) > 0 {
		a.showDetail(0)
	}
	a.app.SetRoot(a.pages, true)
}

const maxSampleTiles = 10

func (a *App) showDetail(listIndex int) {
	nonEmpty := make([]ClusterInfo, 0, len(a.clusters))
	for _, c := range a.clusters {
		if len(c.Tiles) > 0 {
			nonEmpty = append(nonEmpty, c)
		}
	}
	if listIndex < 0 || listIndex >= len(nonEmpty) {
		return
	}
	c := nonEmpty[listIndex]

	minX, minY, maxX, maxY := boundingBox(c.Tiles)

	var b strings.Builder
	fmt.Fprintf(&b, "[yellow]cluster %d[white]\n", c.Index)
	fmt.Fprintf(&b, "tiles: %d\n", len(c.Tiles))
	fmt.Fprintf(&b, "bbox: (%d, %d) .. (%d, %d)\n", minX, minY, maxX, maxY)
	if c.Scalar != 0 {
		fmt.Fprintf(&b, "bbox (unscaled): (%g, %g) .. (%g, %g)\n",
			float64(raster.Float(minX)/c.Scalar), float64(raster.Float(minY)/c.Scalar),
			float64(raster.Float(maxX)/c.Scalar), float64(raster.Float(maxY)/c.Scalar))
	}
	b.WriteString("\n[yellow]sample tiles:[white]\n")
	for i, t := range c.Tiles {
		if i >= maxSampleTiles {
			fmt.Fprintf(&b, "... and %d more\n", len(c.Tiles)-maxSampleTiles)
			break
		}
		fmt.Fprintf(&b, "(%d, %d)\n", t.TX, t.TY)
	}

	a.detail.SetText(b.String())
}

// Run starts the TUI event loop. It blocks until the user quits.
func (a *App) Run() error {
	return a.app.Run()
}
