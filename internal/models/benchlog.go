package models

// Grid is the two-dimensional process arrangement (rows x columns) of a run.
type Grid struct {
	Rows int
	Cols int
}

// ParsedLog holds the raw fields extracted from a single benchmark log file.
// Every field except Path and Timings is optional; a nil pointer means the
// log never printed that line.
type ParsedLog struct {
	Path string

	HaloSize    *int
	ProcessGrid *Grid
	// Independent is true for independent access, false for collective.
	Independent *bool
	NumFiles    *int
	// FilesizeBytes is the per-file size as declared by the benchmark.
	FilesizeBytes *float64

	// Timings maps rank -> elapsed seconds per file, in file order.
	// All ranks are expected to report the same number of files.
	Timings map[int][]float64

	// StartTime is the free-text remainder of the "Job started at:" line,
	// e.g. "Wed Sep 24 10:19:41 PM CEST 2025".
	StartTime string
}
