package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePoints(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "points.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func samplePointsCSV() string {
	var b strings.Builder
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			fmt.Fprintf(&b, "%d,%d\n", x, y)
		}
	}
	return b.String()
}

func TestHandleRunRequiresInputWithoutConfig(t *testing.T) {
	args := []string{"raster", "run", "--minClusterSize", "1"}
	if err := App.Run(args); err == nil {
		t.Fatal("expected error when --input and --config are both missing")
	}
}

func TestHandleRunWritesOutput(t *testing.T) {
	inputPath := writePoints(t, samplePointsCSV())
	outputPath := filepath.Join(t.TempDir(), "clustered.csv")

	args := []string{
		"raster", "run",
		"--input", inputPath,
		"--threshold", "1",
		"--minClusterSize", "1",
		"--output", outputPath,
	}
	if err := App.Run(args); err != nil {
		t.Fatalf("App.Run: %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty clustered output")
	}
}

func TestHandleRunRejectsMissingConfigFile(t *testing.T) {
	args := []string{"raster", "run", "--config", "/nonexistent/config.toml"}
	if err := App.Run(args); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestHandleBenchRequiresInput(t *testing.T) {
	args := []string{"raster", "bench"}
	if err := App.Run(args); err == nil {
		t.Fatal("expected error when --input is missing")
	}
}

func TestBoundsOfEmptyPoints(t *testing.T) {
	minX, maxX := boundsOf(nil, 0)
	if minX != 0 || maxX != 0 {
		t.Fatalf("got (%d, %d), want (0, 0)", minX, maxX)
	}
}
