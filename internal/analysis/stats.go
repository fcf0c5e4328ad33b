package analysis

import (
	"log/slog"
	"path/filepath"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/slcs-jsc/netcdf-bench/internal/models"
)

// BuildFileStats reduces each parsed log to its per-file critical path and
// the statistics over it. Logs without usable timing data are skipped with
// a warning; the returned slice keeps the input order.
func BuildFileStats(logs []models.ParsedLog) []models.FileStat {
	stats := make([]models.FileStat, 0, len(logs))

	for _, pl := range logs {
		if len(pl.Timings) == 0 {
			slog.Warn("Skipping log without timing data", "path", pl.Path)
			continue
		}

		// 1. Sort ranks and settle on a common file count. Ranks should all
		// report the same number of files; if one is short, clamp to the
		// shortest sequence instead of indexing past it.
		ranks := make([]int, 0, len(pl.Timings))
		for rank := range pl.Timings {
			ranks = append(ranks, rank)
		}
		sort.Ints(ranks)

		numFiles := len(pl.Timings[ranks[0]])
		longest := numFiles
		for _, rank := range ranks {
			if n := len(pl.Timings[rank]); n < numFiles {
				numFiles = n
			} else if n > longest {
				longest = n
			}
		}
		if longest != numFiles {
			slog.Warn("Ranks report differing timing counts, clamping",
				"path", pl.Path, "used", numFiles, "longest", longest)
		}
		if numFiles == 0 {
			slog.Warn("Skipping log with empty timing sequences", "path", pl.Path)
			continue
		}

		// 2. Per file index, the slowest rank sets the completion time of
		// that step.
		maxTimes := make([]float64, numFiles)
		row := make([]float64, len(ranks))
		for i := 0; i < numFiles; i++ {
			for j, rank := range ranks {
				row[j] = pl.Timings[rank][i]
			}
			maxTimes[i] = floats.Max(row)
		}

		// 3. Statistics over the per-file maxima. Std is the population
		// form, not the sample form.
		fs := models.FileStat{
			LogFile:       filepath.Base(pl.Path),
			HaloSize:      pl.HaloSize,
			ProcessGrid:   pl.ProcessGrid,
			Independent:   pl.Independent,
			NumFiles:      pl.NumFiles,
			FilesizeBytes: pl.FilesizeBytes,
			NumRanks:      len(ranks),
			MaxTimes:      maxTimes,
			MeanTime:      stat.Mean(maxTimes, nil),
			StdTime:       stat.PopStdDev(maxTimes, nil),
			MinTime:       floats.Min(maxTimes),
			MaxTime:       floats.Max(maxTimes),
			StartTime:     pl.StartTime,
		}
		if pl.FilesizeBytes != nil {
			fs.FilesizeMB = *pl.FilesizeBytes / (1024 * 1024)
		}

		stats = append(stats, fs)
	}

	return stats
}
