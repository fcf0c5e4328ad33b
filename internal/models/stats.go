package models

import (
	"fmt"
	"time"
)

// FileStat holds the derived statistics for one successfully parsed log.
// MaxTimes is the per-file maximum across ranks; the scalar statistics are
// computed over that sequence.
type FileStat struct {
	LogFile string

	HaloSize      *int
	ProcessGrid   *Grid
	Independent   *bool
	NumFiles      *int
	FilesizeBytes *float64
	FilesizeMB    float64

	NumRanks int
	MaxTimes []float64

	MeanTime float64
	StdTime  float64
	MinTime  float64
	MaxTime  float64

	StartTime string
}

// ConfigString renders the grouping key for this run, e.g. "3x3, h=2, ind".
// Missing grid or halo render as "N/A"; a missing access mode counts as
// collective.
func (s FileStat) ConfigString() string {
	grid := "N/A"
	if s.ProcessGrid != nil {
		grid = fmt.Sprintf("%dx%d", s.ProcessGrid.Rows, s.ProcessGrid.Cols)
	}
	halo := "N/A"
	if s.HaloSize != nil {
		halo = fmt.Sprintf("%d", *s.HaloSize)
	}
	access := "col"
	if s.Independent != nil && *s.Independent {
		access = "ind"
	}
	return fmt.Sprintf("%s, h=%s, %s", grid, halo, access)
}

// FileCount returns the declared file count, falling back to the number of
// derived per-file samples when the log never printed one.
func (s FileStat) FileCount() int {
	if s.NumFiles != nil {
		return *s.NumFiles
	}
	return len(s.MaxTimes)
}

// IOSpeed returns the derived throughput in MB/s. It is zero whenever the
// mean time or the file size is unusable, never negative.
func (s FileStat) IOSpeed() float64 {
	if s.MeanTime <= 0 || s.FilesizeMB <= 0 {
		return 0
	}
	return s.FilesizeMB / s.MeanTime
}

// IOSpeedUncertainty propagates the relative timing error onto the
// throughput: (std/mean) * speed, zero when the mean is unusable.
func (s FileStat) IOSpeedUncertainty() float64 {
	if s.MeanTime <= 0 {
		return 0
	}
	return (s.StdTime / s.MeanTime) * s.IOSpeed()
}

// RunPoint is one run's contribution to a configuration group.
// Time is the zero value when the log's start timestamp was absent or
// unparsable; such points keep their place in the group but are left out of
// the plotted series.
type RunPoint struct {
	Time        time.Time
	Mean        float64
	Std         float64
	Speed       float64
	Uncertainty float64
	Files       int
}

// ConfigGroup collects the runs sharing one configuration descriptor,
// ordered by start time ascending (unknown times first).
type ConfigGroup struct {
	Config      string
	Independent bool
	Points      []RunPoint
}

// AggregateSummary pools the repeated independent-access runs of one
// configuration within a batch into a single total-time estimate.
type AggregateSummary struct {
	Batch  string
	Config string

	// Mean is the arithmetic mean of the per-run means; Std is the pooled
	// standard deviation of a single file-level observation.
	Mean float64
	Std  float64

	Files int
	Runs  int

	TotalTime        float64
	TotalUncertainty float64
}
