// Command starplot compares experiment runs: it reads one CSV result file per configuration and draws
// win-rate trends next to box plots of the final generation.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/iafilius/CoevolutionPlot/src/analysis"
	"github.com/iafilius/CoevolutionPlot/src/config"
	"github.com/iafilius/CoevolutionPlot/src/logging"
	"github.com/iafilius/CoevolutionPlot/src/render"
	"github.com/iafilius/CoevolutionPlot/src/report"
	"github.com/iafilius/CoevolutionPlot/src/results"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}

// app carries the per-invocation state shared by the root command and its subcommands.
type app struct {
	v          *viper.Viper
	configPath string
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}
	root := &cobra.Command{
		Use:           "starplot",
		Short:         "Plot win-rate trends and final-generation box plots of experiment runs",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runPlot(cfg)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.String("data-dir", "", "directory holding the series CSV files (default: data next to the executable, else ./data)")
	pf.String("output", render.DefaultOutputFile, "chart file, .svg or .png")
	pf.String("log-level", "info", "debug, info, warn or error")
	pf.String("log-format", "console", "console or json")
	root.Flags().String("xlsx", "", "also write a summary workbook to this .xlsx file")
	a.bind(map[string]*pflag.Flag{
		"data_dir":     pf.Lookup("data-dir"),
		"output":       pf.Lookup("output"),
		"log.level":    pf.Lookup("log-level"),
		"log.format":   pf.Lookup("log-format"),
		"summary_xlsx": root.Flags().Lookup("xlsx"),
	})

	root.AddCommand(newSummaryCmd(a))
	return root
}

func newSummaryCmd(a *app) *cobra.Command {
	var format, xlsx string
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print per-series statistics without drawing the chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			data, err := loadSeries(cfg)
			if err != nil {
				return err
			}
			rows := report.Build(data)
			if err := report.Write(cmd.OutOrStdout(), format, rows); err != nil {
				return err
			}
			if xlsx != "" {
				if err := report.SaveXLSX(xlsx, rows); err != nil {
					return err
				}
				logging.Infof("[summary] wrote %s", xlsx)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "text, json or yaml")
	cmd.Flags().StringVar(&xlsx, "xlsx", "", "also write the summary to this .xlsx file")
	return cmd
}

// bind ties config keys to flags. A failure means a flag was renamed without its key, so it panics.
func (a *app) bind(flags map[string]*pflag.Flag) {
	for key, f := range flags {
		if f == nil {
			panic(fmt.Sprintf("starplot: no flag bound to %s", key))
		}
		if err := a.v.BindPFlag(key, f); err != nil {
			panic(fmt.Sprintf("starplot: bind %s: %v", key, err))
		}
	}
}

// load reads the configuration and points the logger at logOut.
func (a *app) load(logOut io.Writer) (*config.Config, error) {
	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return nil, err
	}
	logging.SetOutput(logOut, cfg.Log.Format)
	logging.SetLogLevel(cfg.Log.Level)
	return cfg, nil
}

// loadSeries resolves, reads and aggregates every configured series file in order.
func loadSeries(cfg *config.Config) ([]analysis.SeriesData, error) {
	defer logging.TimeTrack(time.Now(), "load series")
	dir := cfg.DataDir
	if dir == "" {
		d, err := results.DefaultDataDir()
		if err != nil {
			return nil, fmt.Errorf("locate data directory: %w", err)
		}
		dir = d
	}
	paths, err := results.NewLocator(dir).Resolve(cfg.Series)
	if err != nil {
		return nil, err
	}
	data, err := analysis.AnalyzeAll(cfg.Series, paths)
	if err != nil {
		return nil, err
	}
	for _, sd := range data {
		logging.Debugf("[series] %s: %d rows, final box n=%d median=%.2f", sd.Series.Label, sd.Rows, sd.Stats.N, sd.Stats.Median)
	}
	return data, nil
}

func runPlot(cfg *config.Config) error {
	defer logging.TimeTrack(time.Now(), "plot")
	data, err := loadSeries(cfg)
	if err != nil {
		return err
	}
	if err := render.SaveFile(cfg.OutputPath(), data, cfg.RenderOptions()); err != nil {
		return err
	}
	if cfg.SummaryXLSX != "" {
		if err := report.SaveXLSX(cfg.SummaryXLSX, report.Build(data)); err != nil {
			return err
		}
		logging.Infof("[summary] wrote %s", cfg.SummaryXLSX)
	}
	return nil
}
