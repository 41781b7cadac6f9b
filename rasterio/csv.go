// Package rasterio holds RASTER's data-plane collaborators: reading point
// data in from CSV, writing clustering results back out, and rendering a
// chart of the result. None of this is part of the clustering algorithm
// itself (spec.md calls it out as an external collaborator), but a
// complete tool needs it, built the way the teacher builds its own
// ingestion and output layers.
package rasterio

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/FraunhoferChalmersCentre/raster"
)

// ReadCSV reads a headerless CSV file of "x,y" rows into points.
func ReadCSV(path string) ([]raster.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rasterio: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2

	var points []raster.Point
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("rasterio: read %s: %w", path, err)
		}
		p, err := parseRow(record[0], record[1])
		if err != nil {
			return nil, fmt.Errorf("rasterio: %s: %w", path, err)
		}
		points = append(points, p)
	}
	return points, nil
}

// ReadCSVParallel reads the same "x,y" CSV format as ReadCSV but parses
// lines across a pool of goroutines, preserving input order in the
// returned slice (mirrors the original's rayon `par_lines` parallel
// reader).
func ReadCSVParallel(path string, nrWorkers int) ([]raster.Point, error) {
	if nrWorkers < 1 {
		return nil, fmt.Errorf("rasterio: nr_workers must be >= 1, got %d", nrWorkers)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rasterio: open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("rasterio: read %s: %w", path, err)
	}

	points := make([]raster.Point, len(lines))
	errs := make([]error, len(lines))

	chunkSize := (len(lines) + nrWorkers - 1) / nrWorkers
	if chunkSize == 0 {
		return points, nil
	}

	var wg sync.WaitGroup
	for start := 0; start < len(lines); start += chunkSize {
		end := start + chunkSize
		if end > len(lines) {
			end = len(lines)
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				parts := strings.SplitN(lines[i], ",", 2)
				if len(parts) != 2 {
					errs[i] = fmt.Errorf("line %d: expected \"x,y\", got %q", i+1, lines[i])
					continue
				}
				p, err := parseRow(parts[0], parts[1])
				if err != nil {
					errs[i] = fmt.Errorf("line %d: %w", i+1, err)
					continue
				}
				points[i] = p
			}
		}(start, end)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("rasterio: %s: %w", path, err)
		}
	}
	return points, nil
}

func parseRow(xs, ys string) (raster.Point, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return raster.Point{}, fmt.Errorf("invalid x %q: %w", xs, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return raster.Point{}, fmt.Errorf("invalid y %q: %w", ys, err)
	}
	return raster.NewPoint(x, y), nil
}

// WriteClusters writes one row per tile as "cluster,x,y" (scaled back down
// by scalar) to path, numbering clusters starting at 1 in the order given
// (mirrors the original's data::write_clusters).
func WriteClusters(path string, clusters []*raster.TileSet, scalar raster.Float) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("rasterio: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for i, c := range clusters {
		clusterNr := i + 1
		for _, t := range c.Tiles() {
			x := strconv.FormatFloat(raster.Float(t.TX)/scalar, 'g', -1, 64)
			y := strconv.FormatFloat(raster.Float(t.TY)/scalar, 'g', -1, 64)
			if err := w.Write([]string{strconv.Itoa(clusterNr), x, y}); err != nil {
				return fmt.Errorf("rasterio: write %s: %w", path, err)
			}
		}
	}
	w.Flush()
	return w.Error()
}
