package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"rpglogs-typegen/config"
	"rpglogs-typegen/fetch"
	"rpglogs-typegen/pipeline"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	indexURL   string
	outputPath string
	browser    bool
	headless   bool
	rawDir     string
	timeout    time.Duration
	verbose    bool
}

func newRootCmd() *cobra.Command {
	return newCommand(&options{})
}

func newCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scraper",
		Short: "Generates RpgLogs.d.ts from the WarcraftLogs scripting API documentation.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}

			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}
			applyFlags(cmd, opts, &cfg)

			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", config.DefaultFile, "Config file, <name>.local.<ext> next to it overrides it.")
	flags.StringVar(&opts.indexURL, "index", config.DefaultIndexURL, "Documentation index page.")
	flags.StringVarP(&opts.outputPath, "out", "o", config.DefaultOutputPath, "Declaration file to write.")
	flags.BoolVar(&opts.browser, "browser", false, "Render pages with Chrome instead of plain HTTP.")
	flags.BoolVar(&opts.headless, "headless", true, "Run Chrome headless, only used with --browser.")
	flags.StringVar(&opts.rawDir, "raw-dir", "", "Archive every fetched page into this directory.")
	flags.DurationVar(&opts.timeout, "timeout", 0, "Timeout of a single fetch, 0 waits forever.")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Additional debug info.")

	return cmd
}

// applyFlags lets explicitly passed flags win over the config files.
func applyFlags(cmd *cobra.Command, opts *options, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("index") {
		cfg.IndexURL = opts.indexURL
	}
	if flags.Changed("out") {
		cfg.OutputPath = opts.outputPath
	}
	if flags.Changed("browser") {
		cfg.Browser = opts.browser
	}
	if flags.Changed("headless") {
		cfg.Headless = opts.headless
	}
	if flags.Changed("raw-dir") {
		cfg.RawDir = opts.rawDir
	}
	if flags.Changed("timeout") {
		cfg.Timeout = opts.timeout
	}
}

func run(ctx context.Context, cfg config.Config) error {
	var fetcher fetch.Fetcher = fetch.NewHTTPFetcher(cfg.Timeout)
	if cfg.Browser {
		browserFetcher, cancel := fetch.NewBrowserFetcher(ctx, cfg.Headless)
		defer cancel()
		fetcher = browserFetcher
	}

	if err := os.MkdirAll(filepath.Dir(cfg.OutputPath), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	outputFile, err := os.Create(cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", cfg.OutputPath, err)
	}
	defer outputFile.Close()

	p := &pipeline.Pipeline{
		Fetcher:  fetcher,
		IndexURL: cfg.IndexURL,
		Output:   outputFile,
		RawDir:   cfg.RawDir,
		Log:      logrus.StandardLogger(),
	}

	t1 := time.Now()
	results, err := p.Run(ctx)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Kind", "Name", "URL"})
	for i, r := range results {
		t.AppendRow(table.Row{i + 1, r.Kind, r.Name, r.URL})
	}
	t.AppendFooter(table.Row{"", "", "Total", len(results)})
	t.SetStyle(table.StyleRounded)
	t.Render()

	logrus.WithFields(logrus.Fields{
		"output":  cfg.OutputPath,
		"seconds": time.Since(t1).Seconds(),
	}).Info("finished")
	return nil
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
