package parser

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/slcs-jsc/netcdf-bench/internal/models"
)

// Patterns for the lines the benchmark prints. A log is free text around
// these markers; anything that does not match is ignored.
//
//	Halo size: 2
//	Process grid: 3x3
//	Use independent access: yes
//	Number of files: 4
//	filesize=1048576 bytes        (or: filesize=2.500000 MB)
//	rank=0 ; times=1.0,2.0,3.0,4.0
//	Job started at: Wed Sep 24 10:19:41 PM CEST 2025
var (
	haloRe      = regexp.MustCompile(`Halo size: (\d+)`)
	gridRe      = regexp.MustCompile(`Process grid: (\d+)x(\d+)`)
	accessRe    = regexp.MustCompile(`Use independent access: (yes|no)`)
	numFilesRe  = regexp.MustCompile(`Number of files: (\d+)`)
	sizeBytesRe = regexp.MustCompile(`filesize=(\d+) bytes`)
	sizeMBRe    = regexp.MustCompile(`filesize=(\d+(?:\.\d+)?) MB`)
	timingRe    = regexp.MustCompile(`rank=(\d+) ; times=([\d.,]+)`)
	startRe     = regexp.MustCompile(`Job started at: (.+)`)
)

// ParseLogFile reads a benchmark log and extracts its fields.
func ParseLogFile(path string) (models.ParsedLog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.ParsedLog{}, fmt.Errorf("failed to read log %s: %w", path, err)
	}
	return ParseLogText(path, string(data)), nil
}

// ParseLogText extracts the benchmark fields from log content. Every field
// is optional; the first match wins, except timing lines where the last
// occurrence of a rank replaces earlier ones.
func ParseLogText(path, content string) models.ParsedLog {
	log := models.ParsedLog{
		Path:    path,
		Timings: make(map[int][]float64),
	}

	if m := haloRe.FindStringSubmatch(content); m != nil {
		halo, _ := strconv.Atoi(m[1])
		log.HaloSize = &halo
	}

	if m := gridRe.FindStringSubmatch(content); m != nil {
		rows, _ := strconv.Atoi(m[1])
		cols, _ := strconv.Atoi(m[2])
		log.ProcessGrid = &models.Grid{Rows: rows, Cols: cols}
	}

	if m := accessRe.FindStringSubmatch(content); m != nil {
		independent := m[1] == "yes"
		log.Independent = &independent
	}

	if m := numFilesRe.FindStringSubmatch(content); m != nil {
		n, _ := strconv.Atoi(m[1])
		log.NumFiles = &n
	}

	// The byte form takes precedence over the MB form; only one size is
	// ever recorded.
	if m := sizeBytesRe.FindStringSubmatch(content); m != nil {
		size, _ := strconv.ParseFloat(m[1], 64)
		log.FilesizeBytes = &size
	} else if m := sizeMBRe.FindStringSubmatch(content); m != nil {
		mb, _ := strconv.ParseFloat(m[1], 64)
		size := mb * 1024 * 1024
		log.FilesizeBytes = &size
	}

	for _, m := range timingRe.FindAllStringSubmatch(content, -1) {
		rank, _ := strconv.Atoi(m[1])
		log.Timings[rank] = parseTimes(m[2])
	}

	if m := startRe.FindStringSubmatch(content); m != nil {
		log.StartTime = strings.TrimSpace(m[1])
	}

	return log
}

// parseTimes splits a comma-separated list of seconds. Empty or unparsable
// entries (possible with a trailing comma) are dropped.
func parseTimes(s string) []float64 {
	parts := strings.Split(s, ",")
	times := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		t, err := strconv.ParseFloat(p, 64)
		if err != nil {
			continue
		}
		times = append(times, t)
	}
	return times
}
