// Package cmd — scrape command.
// This is the main command that orchestrates the pipeline:
// fetch weekly → extract → fetch daily → overlay → render → write.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gaurav-prasanna/hyeat/core"
	"github.com/gaurav-prasanna/hyeat/core/catalog"
	"github.com/gaurav-prasanna/hyeat/core/config"
	"github.com/gaurav-prasanna/hyeat/core/extract"
	"github.com/gaurav-prasanna/hyeat/core/fetch"
	"github.com/gaurav-prasanna/hyeat/core/metrics"
	"github.com/gaurav-prasanna/hyeat/core/output"
	"github.com/gaurav-prasanna/hyeat/core/pipeline"
	"github.com/gaurav-prasanna/hyeat/core/render"
	"github.com/spf13/cobra"
)

// Flag variables.
var (
	flagConfig      string
	flagEndpoint    string
	flagOutputDir   string
	flagUserAgent   string
	flagFormat      string
	flagMetricsFile string
	flagVerbose     bool
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape [YYYY-MM-DD]",
	Short: "Scrape the week containing the given date (default: current week)",
	Long: `Scrape fetches the weekly menu grid, seeds every date of that week, then
overlays each date's daily view and writes one file per date.

Examples:
  hyeat scrape
  hyeat scrape 2024-05-20
  hyeat scrape 2024-05-20 --output_dir ./menus --format markdown
  hyeat scrape --config hyeat.yaml --metrics_file /var/lib/node_exporter/hyeat.prom`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	scrapeCmd.Flags().StringVar(&flagConfig, "config", "", "YAML config file")
	scrapeCmd.Flags().StringVar(&flagEndpoint, "endpoint", "", "Portal menu URL")
	scrapeCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: menus)")
	scrapeCmd.Flags().StringVar(&flagUserAgent, "user_agent", "", "User-Agent header sent to the portal")
	scrapeCmd.Flags().StringVar(&flagFormat, "format", "", "Output format: json or markdown (default: json)")
	scrapeCmd.Flags().StringVar(&flagMetricsFile, "metrics_file", "", "Write run counters to this Prometheus textfile")
	scrapeCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log skipped units at debug level")
}

func runScrape(cmd *cobra.Command, args []string) error {
	var target string
	if len(args) == 1 {
		target = args[0]
		if _, err := time.Parse("2006-01-02", target); err != nil {
			return fmt.Errorf("invalid date: %s (want YYYY-MM-DD)", target)
		}
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(flagVerbose)
	excluded, err := cfg.Excluded()
	if err != nil {
		return err
	}

	// Initialize pipeline components.
	rec := metrics.New()
	fetcher := fetch.New(
		fetch.WithEndpoint(cfg.Endpoint),
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithTimeout(cfg.Timeout),
	)
	extractor := extract.New(extract.Config{
		Catalog: catalog.New(catalog.WithDailyExclude(excluded...)),
		Logger:  logger,
		Metrics: rec,
	})
	renderer := selectRenderer(cfg.Format)

	if cfg.MetricsFile != "" {
		defer func() {
			if err := rec.WriteTextfile(cfg.MetricsFile); err != nil {
				logger.Error("metrics not written", "error", err)
			}
		}()
	}

	if target != "" {
		fmt.Fprintf(os.Stdout, "Fetching menu for date: %s\n", target)
	} else {
		fmt.Fprintln(os.Stdout, "Fetching menu for current week")
	}

	set, err := pipeline.New(fetcher, extractor, logger, rec).Run(cmd.Context(), target)
	if err != nil {
		return err
	}

	writer, err := output.New(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}
	return writeAll(set, renderer, writer)
}

// writeAll renders and writes every date. Rendering happens before any file
// is written so a render failure leaves the output directory untouched.
func writeAll(set *core.DailyMenuSet, renderer core.Renderer, writer *output.Writer) error {
	dates := set.Dates()
	rendered := make([][]byte, len(dates))
	for i, date := range dates {
		data, err := renderer.Render(date, set.Day(date))
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		rendered[i] = data
	}

	for i, date := range dates {
		path, err := writer.WriteDate(date, rendered[i], renderer.Extension())
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	}
	return nil
}

// applyFlags lets explicitly set flags win over file and environment values.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		cfg.Endpoint = flagEndpoint
	}
	if flags.Changed("output_dir") {
		cfg.OutputDir = flagOutputDir
	}
	if flags.Changed("user_agent") {
		cfg.UserAgent = flagUserAgent
	}
	if flags.Changed("format") {
		cfg.Format = flagFormat
	}
	if flags.Changed("metrics_file") {
		cfg.MetricsFile = flagMetricsFile
	}
}

// selectRenderer creates the Renderer for a validated format.
func selectRenderer(format string) core.Renderer {
	if format == config.FormatMarkdown {
		return render.NewMarkdownRenderer()
	}
	return render.NewJSONRenderer()
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
