package rasterbench

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

var header = []string{
	"#clusters",
	"#clusters identified [ratio]",
	"#cores",
	"mean [s]",
	"sample std_dev [s]",
	"mean projection [s]",
	"mean clustering [s]",
	"sample std_dev projection [s]",
	"sample std_dev clustering [s]",
	"times projection [s]",
	"times clustering [s]",
}

func floatsToString(xs []float64) string {
	s := "["
	for i, x := range xs {
		if i > 0 {
			s += ", "
		}
		s += strconv.FormatFloat(x, 'g', -1, 64)
	}
	return s + "]"
}

// WriteSummaryCSV appends one semicolon-delimited row per Summary to path,
// writing the header only if the file doesn't already exist (mirrors the
// original harness's write_bench_times, which accumulates rows across
// separate benchmark invocations).
func WriteSummaryCSV(path string, s Summary) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("rasterbench: create %s: %w", dir, err)
		}
	}

	addHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		addHeader = true
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("rasterbench: open %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'

	if addHeader {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("rasterbench: write header to %s: %w", path, err)
		}
	}

	record := []string{
		strconv.Itoa(s.NrClusters),
		strconv.FormatFloat(s.NrClustersPercent, 'g', -1, 64),
		strconv.Itoa(s.NrCores),
		strconv.FormatFloat(s.Mean, 'g', -1, 64),
		strconv.FormatFloat(s.StdDev, 'g', -1, 64),
		strconv.FormatFloat(s.ProjMean, 'g', -1, 64),
		strconv.FormatFloat(s.ClustMean, 'g', -1, 64),
		strconv.FormatFloat(s.ProjStdDev, 'g', -1, 64),
		strconv.FormatFloat(s.ClustStdDev, 'g', -1, 64),
		floatsToString(s.ProjTimes),
		floatsToString(s.ClustTimes),
	}
	if err := w.Write(record); err != nil {
		return fmt.Errorf("rasterbench: write %s: %w", path, err)
	}

	w.Flush()
	return w.Error()
}
