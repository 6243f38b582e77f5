package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/cognicore/wordfreq/internal/display"
	"github.com/cognicore/wordfreq/internal/logging"
	"github.com/cognicore/wordfreq/internal/metrics"
	"github.com/cognicore/wordfreq/internal/progress"
	"github.com/cognicore/wordfreq/pkg/wordfreq/config"
	"github.com/cognicore/wordfreq/pkg/wordfreq/pipeline"
	"github.com/cognicore/wordfreq/pkg/wordfreq/report"
	"github.com/cognicore/wordfreq/pkg/wordfreq/store"
	"github.com/cognicore/wordfreq/pkg/wordfreq/store/csvstore"
	"github.com/cognicore/wordfreq/pkg/wordfreq/store/sqlite"
)

func runWordfreq(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer) error {
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format, stderr)
	logger := logging.WithComponent("cli")
	console := display.New(stdout)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	if cfg.Metrics.Addr != "" {
		shutdown, err := metrics.StartServer(cfg.Metrics.Addr, reg)
		if err != nil {
			return err
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(sctx); err != nil {
				logger.Warn("metrics server shutdown", "error", err)
			}
		}()
		logger.Info("serving metrics", "addr", cfg.Metrics.Addr)
	}

	console.Banner(cfg.Extension, cfg.Input)

	// Discovery failures end the run before any output exists.
	files, err := pipeline.Discover(cfg.Input, cfg.Extension)
	if err != nil {
		return err
	}
	console.Found(len(files))

	run := store.Run{
		ID:        store.NewRunID(),
		Root:      cfg.Input,
		Extension: cfg.Extension,
		Files:     len(files),
		StartedAt: time.Now().UTC(),
	}

	comp := cfg.Components()
	runner := comp.NewRunner()
	runner.SetMetrics(m)
	runner.SetReporter(progress.New(stderr, cfg.Progress, logging.WithComponent("progress")))

	console.Info("Start processing...")
	stats, err := runner.Run(ctx, files)
	if err != nil {
		return err
	}
	run.FinishedAt = time.Now().UTC()

	entries := comp.Table.Snapshot()
	summary := report.New(run.ID, stats, entries, cfg.Top, run.FinishedAt.Sub(run.StartedAt))
	console.Success(summary.Headline())

	// The CSV rename commits last, after the SQLite transaction.
	var sinks store.Multi
	if cfg.SQLite != "" {
		db, err := sqlite.OpenSQLite(ctx, cfg.SQLite)
		if err != nil {
			return err
		}
		sinks = append(sinks, db)
	}
	sinks = append(sinks, csvstore.New(cfg.Output, cfg.CSVHeader))
	defer func() {
		if err := sinks.Close(); err != nil {
			logger.Warn("closing output", "error", err)
		}
	}()

	console.Value("Writing output CSV to", cfg.Output)
	if err := sinks.WriteTable(ctx, run, entries); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	if cfg.SQLite != "" {
		console.Value("Recorded run in", cfg.SQLite)
	}

	console.Print(summary.Render())
	console.Success("ALL DONE!")
	return nil
}
