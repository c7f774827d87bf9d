package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/komsit37/cryptosent/pkg/cryptosent/columns"
	"github.com/komsit37/cryptosent/pkg/cryptosent/config"
	"github.com/komsit37/cryptosent/pkg/cryptosent/filter"
	"github.com/komsit37/cryptosent/pkg/cryptosent/metrics"
	"github.com/komsit37/cryptosent/pkg/cryptosent/output"
	"github.com/komsit37/cryptosent/pkg/cryptosent/pipeline"
	"github.com/komsit37/cryptosent/pkg/cryptosent/render"
	"github.com/komsit37/cryptosent/pkg/cryptosent/source"
	"github.com/komsit37/cryptosent/pkg/cryptosent/trend"
	"github.com/komsit37/cryptosent/pkg/cryptosent/types"
	"github.com/komsit37/cryptosent/pkg/logger"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, errStyle.Render("error:"), err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "cryptosent [universe.yaml]",
		Short: "Simulate social media sentiment for crypto assets and report on it",
		Long: "cryptosent generates 31 days of synthetic sentiment, engagement and price data per asset,\n" +
			"summarizes it and renders a text report, a JSON export or a table.\n\n" +
			"Settings resolve from flags, then CRYPTOSENT_* environment variables (a .env file is\n" +
			"loaded when present), then the --config file.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				v.Set("universe", args[0])
			}
			config.LoadDotEnv()
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, stdout, stderr)
		},
	}

	f := cmd.Flags()
	f.String("config", "", "config file (yaml, json or toml)")
	f.String("universe", "", "YAML file or directory describing assets and word lists (default: built-in top 10)")
	f.Uint64("seed", 0, "random seed; 0 picks one and logs it")
	f.String("end-date", "", "last day of the series, YYYY-MM-DD (default: today)")
	f.StringP("format", "f", "report", "output format: "+strings.Join(render.Formats, ", "))
	f.StringP("out", "o", "", "write output to this file instead of stdout")
	f.String("data-out", "", "also write the JSON data export to this file")
	f.String("metrics-file", "", "write Prometheus textfile metrics for the run")
	f.StringP("assets", "a", "", "asset filter: BTC,ETH | glob US* | /regex/ | substring")
	f.String("trend", "", "force one trend for every asset: uptrend, downtrend, volatile, stable, recovery, correction")
	f.StringSliceP("columns", "c", nil, "table columns in order (available: "+strings.Join(columns.Available(), ", ")+")")
	f.StringSlice("set", nil, "table column sets to prepend (e.g. summary,engagement)")
	f.Int("workers", 4, "assets generated concurrently")
	f.Int("chart-height", 8, "rows per sentiment chart in the report")
	f.Int("width", 0, "max table width; 0 uses the terminal width")
	f.Int("max-col-width", 40, "wrap table cells wider than this")
	f.Bool("color", false, "colorize table output")
	f.Bool("pretty", true, "indent JSON output")
	f.String("log-level", "info", "log level: debug, info, warn, error")
	f.String("log-env", "development", "log encoding: development or production")
	_ = v.BindPFlags(f)

	return cmd
}

func run(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) error {
	if err := logger.Init(cfg.LogLevel, cfg.LogEnv); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck
	log := logger.Get()

	var (
		src  source.Source = source.BuiltinSource{}
		spec any
	)
	if cfg.Universe != "" {
		src, spec = source.YAMLSource{}, cfg.Universe
	}

	flt, err := filter.Parse(cfg.Assets)
	if err != nil {
		return err
	}

	var forced types.Trend
	if cfg.Trend != "" {
		if forced, err = trend.Parse(cfg.Trend); err != nil {
			return err
		}
	}

	cols := cfg.Columns
	if len(cfg.Sets) > 0 {
		expanded, err := columns.ExpandSets(cfg.Sets)
		if err != nil {
			return err
		}
		cols = append(expanded, cols...)
	}

	renderer, err := render.ForFormat(cfg.Format)
	if err != nil {
		return err
	}

	now := time.Now()
	end, err := cfg.End(now)
	if err != nil {
		return err
	}

	width := cfg.Width
	if width == 0 && cfg.Out == "" {
		if f, ok := stdout.(*os.File); ok && isTerminal(f) {
			width = terminalWidth(f)
		}
	}

	var buf bytes.Buffer
	runner := &pipeline.Runner{Source: src, Renderer: renderer, Writer: &buf, Log: log}
	started := time.Now()
	ds, err := runner.Execute(ctx, spec, pipeline.ExecuteOptions{
		Filter:  flt,
		Seed:    cfg.Seed,
		End:     end,
		Trend:   forced,
		Workers: cfg.Workers,
		Render: render.RenderOptions{
			Columns:     cols,
			Color:       cfg.Color,
			PrettyJSON:  cfg.PrettyJSON,
			MaxColWidth: cfg.MaxColWidth,
			Width:       width,
			ChartHeight: cfg.ChartHeight,
		},
	})
	if err != nil {
		return err
	}
	took := time.Since(started)
	log.Infow("run complete", "run", ds.RunID, "seed", ds.Seed, "assets", len(ds.Rows), "took", took)

	if cfg.Out == "" {
		if _, err := stdout.Write(buf.Bytes()); err != nil {
			return &output.WriteError{Op: "write", Path: "stdout", Err: err}
		}
	} else {
		if err := output.WriteFile(cfg.Out, buf.Bytes()); err != nil {
			return err
		}
		status(stderr, "%s written to %s", cfg.Format, cfg.Out)
	}

	if cfg.DataOut != "" {
		var data bytes.Buffer
		if err := render.NewJSONRenderer().Render(&data, ds, render.RenderOptions{PrettyJSON: true}); err != nil {
			return fmt.Errorf("render data export: %w", err)
		}
		if err := output.WriteFile(cfg.DataOut, data.Bytes()); err != nil {
			return err
		}
		status(stderr, "data written to %s", cfg.DataOut)
	}

	if cfg.MetricsFile != "" {
		rec := metrics.NewRecorder()
		rec.Observe(ds, took)
		if err := rec.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
		status(stderr, "metrics written to %s", cfg.MetricsFile)
	}
	return nil
}

func status(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, okStyle.Render("✓"), hintStyle.Render(fmt.Sprintf(format, args...)))
}
