package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "logs", cfg.LogsDir)
	assert.Equal(t, []string{"scratch", "fastdata", "largedata"}, cfg.Batches)
	assert.Equal(t, ".out", cfg.LogExt)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "svg", cfg.PlotFormat)
	assert.False(t, cfg.SkipCollective)
	assert.False(t, cfg.Debug)
}

func TestLoad_FromFile(t *testing.T) {
	viper.Reset()

	content := `logs_dir: /data/logs
batches:
  - scratch
log_ext: out
plot_format: PNG
skip_collective: true
`
	path := filepath.Join(t.TempDir(), "timingstat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/logs", cfg.LogsDir)
	assert.Equal(t, []string{"scratch"}, cfg.Batches)
	assert.Equal(t, ".out", cfg.LogExt, "extension gains a leading dot")
	assert.Equal(t, "png", cfg.PlotFormat, "format is lowercased")
	assert.True(t, cfg.SkipCollective)
	assert.Equal(t, ".", cfg.OutputDir, "unset keys keep their defaults")
}

func TestLoad_EnvOverrides(t *testing.T) {
	viper.Reset()
	t.Setenv("NCBENCH_PLOT_FORMAT", "png")
	t.Setenv("NCBENCH_BATCHES", "scratch,work")
	t.Setenv("NCBENCH_DEBUG", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "png", cfg.PlotFormat)
	assert.Equal(t, []string{"scratch", "work"}, cfg.Batches)
	assert.True(t, cfg.Debug)
}

func TestLoad_InvalidPlotFormat(t *testing.T) {
	viper.Reset()
	t.Setenv("NCBENCH_PLOT_FORMAT", "pdf")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid plot format 'pdf'")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	viper.Reset()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   Config
		want Config
	}{
		{
			name: "empty gets all defaults",
			want: Config{
				LogsDir:    "logs",
				Batches:    []string{"scratch", "fastdata", "largedata"},
				LogExt:     ".out",
				OutputDir:  ".",
				PlotFormat: "svg",
			},
		},
		{
			name: "extension without dot",
			in:   Config{LogsDir: "l", Batches: []string{"b"}, LogExt: "log", OutputDir: "o", PlotFormat: "svg"},
			want: Config{LogsDir: "l", Batches: []string{"b"}, LogExt: ".log", OutputDir: "o", PlotFormat: "svg"},
		},
		{
			name: "format is lowercased",
			in:   Config{LogsDir: "l", Batches: []string{"b"}, LogExt: ".out", OutputDir: "o", PlotFormat: "SVG"},
			want: Config{LogsDir: "l", Batches: []string{"b"}, LogExt: ".out", OutputDir: "o", PlotFormat: "svg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.in
			applyDefaults(&cfg)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validate(&Config{PlotFormat: "svg"}))
	assert.NoError(t, validate(&Config{PlotFormat: "png"}))
	assert.Error(t, validate(&Config{PlotFormat: "jpeg"}))
}
