package analysis

import (
	"log/slog"
	"math"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"

	"github.com/slcs-jsc/netcdf-bench/internal/models"
)

// PooledSummaries combines the repeated independent-access runs of each
// configuration in a batch into one total-time estimate. A run's mean and
// std already summarize fileCount observations, so the combined variance
// follows the law of total variance over runs: within-run variance plus the
// squared deviation of the run mean from the overall mean, averaged and
// scaled back to a single file-level observation.
func PooledSummaries(batch string, groups []models.ConfigGroup) []models.AggregateSummary {
	var summaries []models.AggregateSummary

	for _, g := range groups {
		if !g.Independent || len(g.Points) == 0 {
			continue
		}

		files := g.Points[0].Files
		if files <= 0 {
			slog.Warn("Skipping aggregate for group without a usable file count",
				"batch", batch, "config", g.Config)
			continue
		}

		means := lo.Map(g.Points, func(p models.RunPoint, _ int) float64 { return p.Mean })
		overall := stat.Mean(means, nil)

		// Mismatched file counts across runs would need per-run weights;
		// warn and keep the first run's count as the reference.
		var combined float64
		for _, p := range g.Points {
			if p.Files != files {
				slog.Warn("File count differs across runs in group",
					"batch", batch, "config", g.Config, "expected", files, "got", p.Files)
			}
			dev := p.Mean - overall
			combined += float64(files) * (p.Std*p.Std + dev*dev)
		}
		combined /= float64(files * len(g.Points))

		std := math.Sqrt(combined)
		summaries = append(summaries, models.AggregateSummary{
			Batch:            batch,
			Config:           g.Config,
			Mean:             overall,
			Std:              std,
			Files:            files,
			Runs:             len(g.Points),
			TotalTime:        overall * float64(files),
			TotalUncertainty: std * float64(files),
		})
	}

	return summaries
}
