package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }

func gridPtr(r, c int) *Grid { return &Grid{Rows: r, Cols: c} }

func TestFileStat_ConfigString(t *testing.T) {
	tests := []struct {
		name string
		stat FileStat
		want string
	}{
		{
			name: "all fields",
			stat: FileStat{ProcessGrid: gridPtr(3, 3), HaloSize: intPtr(2), Independent: boolPtr(true)},
			want: "3x3, h=2, ind",
		},
		{
			name: "collective access",
			stat: FileStat{ProcessGrid: gridPtr(2, 4), HaloSize: intPtr(1), Independent: boolPtr(false)},
			want: "2x4, h=1, col",
		},
		{
			name: "missing access counts as collective",
			stat: FileStat{ProcessGrid: gridPtr(3, 3), HaloSize: intPtr(2)},
			want: "3x3, h=2, col",
		},
		{
			name: "missing grid and halo",
			stat: FileStat{Independent: boolPtr(true)},
			want: "N/A, h=N/A, ind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.stat.ConfigString())
		})
	}
}

func TestFileStat_FileCount(t *testing.T) {
	declared := FileStat{NumFiles: intPtr(4), MaxTimes: []float64{1, 2, 3}}
	assert.Equal(t, 4, declared.FileCount())

	derived := FileStat{MaxTimes: []float64{1, 2, 3}}
	assert.Equal(t, 3, derived.FileCount())
}

func TestFileStat_IOSpeed(t *testing.T) {
	stat := FileStat{MeanTime: 2.0, FilesizeMB: 1.0}
	assert.Equal(t, 0.5, stat.IOSpeed())

	zeroMean := FileStat{MeanTime: 0, FilesizeMB: 1.0}
	assert.Zero(t, zeroMean.IOSpeed())

	noSize := FileStat{MeanTime: 2.0}
	assert.Zero(t, noSize.IOSpeed())

	negativeMean := FileStat{MeanTime: -1.0, FilesizeMB: 1.0}
	assert.Zero(t, negativeMean.IOSpeed())
}

func TestFileStat_IOSpeedUncertainty(t *testing.T) {
	stat := FileStat{MeanTime: 2.0, StdTime: 0.2, FilesizeMB: 1.0}
	assert.InDelta(t, 0.05, stat.IOSpeedUncertainty(), 1e-12)

	zeroMean := FileStat{MeanTime: 0, StdTime: 0.2, FilesizeMB: 1.0}
	assert.Zero(t, zeroMean.IOSpeedUncertainty())
}
