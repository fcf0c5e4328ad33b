package analysis

import (
	"sort"
	"strings"
	"time"

	"github.com/slcs-jsc/netcdf-bench/internal/models"
)

// startTimeLayout matches the `date` output the job scripts print,
// e.g. "Wed Sep 24 10:19:41 PM CEST 2025".
const startTimeLayout = "Mon Jan _2 03:04:05 PM MST 2006"

// ParseStartTime parses a log's start timestamp. The zero time stands in for
// an absent or unparsable value and sorts before every real one.
func ParseStartTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(startTimeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// GroupByConfig buckets run statistics by configuration descriptor, keeping
// first-seen descriptor order, and sorts each bucket by start time ascending
// with unknown times first.
func GroupByConfig(stats []models.FileStat) []models.ConfigGroup {
	var groups []models.ConfigGroup
	index := make(map[string]int)

	for _, fs := range stats {
		config := fs.ConfigString()
		i, ok := index[config]
		if !ok {
			i = len(groups)
			index[config] = i
			groups = append(groups, models.ConfigGroup{
				Config:      config,
				Independent: fs.Independent != nil && *fs.Independent,
			})
		}
		groups[i].Points = append(groups[i].Points, models.RunPoint{
			Time:        ParseStartTime(fs.StartTime),
			Mean:        fs.MeanTime,
			Std:         fs.StdTime,
			Speed:       fs.IOSpeed(),
			Uncertainty: fs.IOSpeedUncertainty(),
			Files:       fs.FileCount(),
		})
	}

	for i := range groups {
		points := groups[i].Points
		sort.SliceStable(points, func(a, b int) bool {
			return points[a].Time.Before(points[b].Time)
		})
	}

	return groups
}
