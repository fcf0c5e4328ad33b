package runner

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/samber/lo"

	"github.com/slcs-jsc/netcdf-bench/internal/analysis"
	"github.com/slcs-jsc/netcdf-bench/internal/config"
	"github.com/slcs-jsc/netcdf-bench/internal/models"
	"github.com/slcs-jsc/netcdf-bench/internal/parser"
	"github.com/slcs-jsc/netcdf-bench/internal/plot"
	"github.com/slcs-jsc/netcdf-bench/internal/report"
)

// Runner walks the configured batches and runs the parse -> aggregate ->
// report -> plot pipeline for each one. Batches are independent: a batch
// with no usable logs is reported and skipped while the rest continue.
type Runner struct {
	cfg *config.Config
	out io.Writer
}

func New(cfg *config.Config, out io.Writer) *Runner {
	return &Runner{cfg: cfg, out: out}
}

// Run processes every configured batch in order. A missing logs root or an
// unwritable output directory is fatal; everything below that is per batch.
func (r *Runner) Run() error {
	if _, err := os.Stat(r.cfg.LogsDir); err != nil {
		return fmt.Errorf("logs directory %s: %w", r.cfg.LogsDir, err)
	}
	if err := os.MkdirAll(r.cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", r.cfg.OutputDir, err)
	}

	for _, batch := range r.cfg.Batches {
		if err := r.processBatch(batch); err != nil {
			return err
		}
	}

	return nil
}

func (r *Runner) processBatch(batch string) error {
	dir := filepath.Join(r.cfg.LogsDir, batch)

	files, err := parser.FindLogFiles(dir, r.cfg.LogExt)
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "=== Processing %s ===\n\n", batch)

	if len(files) == 0 {
		fmt.Fprintf(r.out, "No log files found in %s\n\n", dir)
		return nil
	}

	fmt.Fprintf(r.out, "Found %d log file(s) to process:\n", len(files))
	for _, name := range lo.Map(files, func(f string, _ int) string { return filepath.Base(f) }) {
		fmt.Fprintf(r.out, "  - %s\n", name)
	}
	fmt.Fprintln(r.out)

	var parsed []models.ParsedLog
	for _, file := range files {
		pl, err := parser.ParseLogFile(file)
		if err != nil {
			fmt.Fprintf(r.out, "Error parsing %s: %v\n", filepath.Base(file), err)
			slog.Warn("Failed to parse log", "path", file, "error", err)
			continue
		}
		parsed = append(parsed, pl)
		fmt.Fprintf(r.out, "Successfully parsed: %s\n", filepath.Base(file))
	}

	if len(parsed) == 0 {
		fmt.Fprintf(r.out, "No data could be parsed from log files.\n\n")
		return nil
	}

	fmt.Fprintln(r.out)

	stats := analysis.BuildFileStats(parsed)
	report.WriteTable(r.out, stats)

	groups := analysis.GroupByConfig(stats)
	if r.cfg.SkipCollective {
		groups = lo.Filter(groups, func(g models.ConfigGroup, _ int) bool { return g.Independent })
	}

	plotPath := filepath.Join(r.cfg.OutputDir,
		fmt.Sprintf("io_speed_over_time_%s.%s", batch, r.cfg.PlotFormat))
	if err := plot.RenderSpeedOverTime(r.out, groups, plotPath); err != nil {
		return fmt.Errorf("failed to render plot for batch %s: %w", batch, err)
	}
	slog.Info("Wrote plot", "batch", batch, "path", plotPath)
	fmt.Fprintln(r.out)

	report.WriteAggregates(r.out, batch, analysis.PooledSummaries(batch, groups))

	return nil
}
