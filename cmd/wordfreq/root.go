package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/cognicore/wordfreq/pkg/wordfreq/config"
)

type rootFlags struct {
	configPath  string
	input       string
	extension   string
	output      string
	sqlite      string
	workers     int
	batchLines  int
	shards      int
	stripCR     bool
	csvHeader   bool
	top         int
	logLevel    string
	logFormat   string
	metricsAddr string
	noProgress  bool
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "wordfreq",
		Short: "Extract word frequencies from large quantities of text files",
		Long: "wordfreq walks a directory for files with the given extension, keeps the\n" +
			"tokens that look like plain English words and writes word,count rows to CSV.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			flags.apply(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runWordfreq(cmd.Context(), cfg, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.StringVarP(&flags.configPath, "config", "c", "", "YAML configuration file")
	f.StringVarP(&flags.input, "input", "i", "", "Root dir containing text files")
	f.StringVarP(&flags.extension, "extension", "e", "txt", "File name suffix to match")
	f.StringVarP(&flags.output, "output", "o", "", "CSV output file")
	f.StringVar(&flags.sqlite, "sqlite", "", "Also record the run in this SQLite database")
	f.IntVarP(&flags.workers, "workers", "w", 0, "Concurrent line batches per file (0 = number of CPUs)")
	f.IntVar(&flags.batchLines, "batch-lines", 0, "Lines per worker batch")
	f.IntVar(&flags.shards, "shards", 0, "Frequency table shards")
	f.BoolVar(&flags.stripCR, "strip-cr", false, "Strip a trailing carriage return from each line")
	f.BoolVar(&flags.csvHeader, "csv-header", false, "Write a word,count header row")
	f.IntVar(&flags.top, "top", 0, "Number of most frequent words to print")
	f.StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	f.StringVar(&flags.logFormat, "log-format", "", "Log format (text, json)")
	f.StringVar(&flags.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address during the run")
	f.BoolVar(&flags.noProgress, "no-progress", false, "Disable the progress bar")

	return cmd
}

// apply copies the flags the user actually set over cfg.
func (fl *rootFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("input") {
		cfg.Input = fl.input
	}
	if changed("extension") {
		cfg.Extension = fl.extension
	}
	if changed("output") {
		cfg.Output = fl.output
	}
	if changed("sqlite") {
		cfg.SQLite = fl.sqlite
	}
	if changed("workers") {
		cfg.Workers = fl.workers
	}
	if changed("batch-lines") {
		cfg.Batch = fl.batchLines
	}
	if changed("shards") {
		cfg.Shards = fl.shards
	}
	if changed("strip-cr") {
		cfg.StripCR = fl.stripCR
	}
	if changed("csv-header") {
		cfg.CSVHeader = fl.csvHeader
	}
	if changed("top") {
		cfg.Top = fl.top
	}
	if changed("log-level") {
		cfg.Logging.Level = fl.logLevel
	}
	if changed("log-format") {
		cfg.Logging.Format = fl.logFormat
	}
	if changed("metrics-addr") {
		cfg.Metrics.Addr = fl.metricsAddr
	}
	if changed("no-progress") {
		cfg.Progress = !fl.noProgress
	}
}
