package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	envPrefix = "NCBENCH"

	defaultLogsDir    = "logs"
	defaultLogExt     = ".out"
	defaultOutputDir  = "."
	defaultPlotFormat = "svg"
)

// defaultBatches names the filesystems the benchmark campaign writes to; each
// has its own subdirectory under the logs root.
var defaultBatches = []string{"scratch", "fastdata", "largedata"}

// Config controls where logs are found and how results are written.
type Config struct {
	LogsDir        string   `mapstructure:"logs_dir"`
	Batches        []string `mapstructure:"batches"`
	LogExt         string   `mapstructure:"log_ext"`
	OutputDir      string   `mapstructure:"output_dir"`
	PlotFormat     string   `mapstructure:"plot_format"`
	SkipCollective bool     `mapstructure:"skip_collective"`
	Debug          bool     `mapstructure:"debug"`
}

func initConfig(configFile string) error {
	// env
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("logs_dir", defaultLogsDir)
	viper.SetDefault("batches", defaultBatches)
	viper.SetDefault("log_ext", defaultLogExt)
	viper.SetDefault("output_dir", defaultOutputDir)
	viper.SetDefault("plot_format", defaultPlotFormat)
	viper.SetDefault("skip_collective", false)
	viper.SetDefault("debug", false)

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("viper read config: %w", err)
		}
		return nil
	}

	// An implicit config file next to the logs is optional.
	viper.SetConfigName("timingstat")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("viper read config: %w", err)
		}
	}

	return nil
}

// Load reads the configuration from defaults, an optional YAML file, bound
// flags and NCBENCH_* environment variables, in ascending precedence.
func Load(configFile string) (*Config, error) {
	if err := initConfig(configFile); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.LogsDir == "" {
		cfg.LogsDir = defaultLogsDir
	}
	if len(cfg.Batches) == 0 {
		cfg.Batches = defaultBatches
	}
	if cfg.LogExt == "" {
		cfg.LogExt = defaultLogExt
	}
	if !strings.HasPrefix(cfg.LogExt, ".") {
		cfg.LogExt = "." + cfg.LogExt
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = defaultOutputDir
	}
	if cfg.PlotFormat == "" {
		cfg.PlotFormat = defaultPlotFormat
	}
	cfg.PlotFormat = strings.ToLower(cfg.PlotFormat)
}

func validate(cfg *Config) error {
	switch cfg.PlotFormat {
	case "svg", "png":
	default:
		return fmt.Errorf("invalid plot format '%s'. Must be one of: svg, png", cfg.PlotFormat)
	}
	return nil
}
