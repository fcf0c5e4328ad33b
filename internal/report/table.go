package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/slcs-jsc/netcdf-bench/internal/models"
)

const logNameWidth = 23

// WriteTable prints the per-log statistics table in the aggregator's order.
func WriteTable(w io.Writer, stats []models.FileStat) {
	fmt.Fprintln(w, "NetCDF Benchmark Results:")
	fmt.Fprintln(w, "Log File                | Mean (s)  | Std (s)   | Size (MB) | Speed (MB/s) | Files | Config")
	fmt.Fprintln(w, strings.Repeat("-", 105))

	for _, fs := range stats {
		fmt.Fprintf(w, "%-23s | %8.6f | %8.6f | %8.1f | %11.2f | %5d | %s\n",
			truncate(fs.LogFile, logNameWidth),
			fs.MeanTime,
			fs.StdTime,
			fs.FilesizeMB,
			fs.IOSpeed(),
			fs.FileCount(),
			fs.ConfigString(),
		)
	}

	fmt.Fprintln(w)
}

// WriteAggregates prints the pooled totals for a batch. Nothing is printed
// when the batch held no independent-access groups.
func WriteAggregates(w io.Writer, batch string, summaries []models.AggregateSummary) {
	if len(summaries) == 0 {
		return
	}

	fmt.Fprintf(w, "Aggregate summary (%s):\n", batch)
	for _, s := range summaries {
		fmt.Fprintf(w, "%s: Total time = (%.2f ± %.2f) s [%d files, %d runs]\n",
			s.Config, s.TotalTime, s.TotalUncertainty, s.Files, s.Runs)
	}
	fmt.Fprintln(w)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
