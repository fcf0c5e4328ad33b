package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/slcs-jsc/netcdf-bench/internal/config"
	"github.com/slcs-jsc/netcdf-bench/internal/runner"
	"github.com/slcs-jsc/netcdf-bench/internal/version"
)

var configFile string

func main() {
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "timingstat",
	Short:        "NetCDF read-benchmark timing analyzer",
	Long:         "Parse NetCDF read-benchmark logs, summarize per-run timing statistics and plot I/O speed over time per configuration",
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to configuration file")

	flags := rootCmd.Flags()
	flags.String("logs-dir", "logs", "Root directory holding one subdirectory per batch")
	flags.StringSlice("batches", []string{"scratch", "fastdata", "largedata"}, "Batch subdirectories to process")
	flags.String("ext", ".out", "Log file extension")
	flags.StringP("output-dir", "o", ".", "Directory the plot images are written to")
	flags.String("plot-format", "svg", "Plot image format (svg or png)")
	flags.Bool("skip-collective", false, "Leave collective access groups out of the plots")
	flags.Bool("debug", false, "Enable debug logging")

	cobra.CheckErr(viper.BindPFlag("logs_dir", flags.Lookup("logs-dir")))
	cobra.CheckErr(viper.BindPFlag("batches", flags.Lookup("batches")))
	cobra.CheckErr(viper.BindPFlag("log_ext", flags.Lookup("ext")))
	cobra.CheckErr(viper.BindPFlag("output_dir", flags.Lookup("output-dir")))
	cobra.CheckErr(viper.BindPFlag("plot_format", flags.Lookup("plot-format")))
	cobra.CheckErr(viper.BindPFlag("skip_collective", flags.Lookup("skip-collective")))
	cobra.CheckErr(viper.BindPFlag("debug", flags.Lookup("debug")))
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	return runner.New(cfg, os.Stdout).Run()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Long:  "Display version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("timingstat version %s\n", version.String())
	},
}
