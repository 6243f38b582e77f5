// Package pipeline runs the word count over a set of files: files one at a
// time, the lines of each file in parallel batches, all feeding one shared
// frequency table.
package pipeline

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cognicore/wordfreq/internal/logging"
	"github.com/cognicore/wordfreq/internal/metrics"
	"github.com/cognicore/wordfreq/pkg/wordfreq/filter"
	"github.com/cognicore/wordfreq/pkg/wordfreq/freq"
	"github.com/cognicore/wordfreq/pkg/wordfreq/ingest"
)

// DefaultBatchLines is how many lines one worker task handles.
const DefaultBatchLines = 512

// Reporter is told about per-file progress.
type Reporter interface {
	Start(total int)
	Advance(path string)
	Finish()
}

type nopReporter struct{}

func (nopReporter) Start(int)      {}
func (nopReporter) Advance(string) {}
func (nopReporter) Finish()        {}

// Config tunes the worker pool.
type Config struct {
	Workers    int // concurrent batches per file; <= 0 means GOMAXPROCS
	BatchLines int // lines per batch; <= 0 means DefaultBatchLines
	Splitter   ingest.Splitter
}

// Runner drives files through ingest, filter and the frequency table.
type Runner struct {
	cfg      Config
	filter   *filter.Filter
	table    *freq.Table
	reporter Reporter
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewRunner creates a runner that counts into table.
func NewRunner(cfg Config, f *filter.Filter, table *freq.Table) *Runner {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if cfg.BatchLines <= 0 {
		cfg.BatchLines = DefaultBatchLines
	}
	if f == nil {
		f = filter.New()
	}
	return &Runner{
		cfg:      cfg,
		filter:   f,
		table:    table,
		reporter: nopReporter{},
		logger:   logging.WithComponent("pipeline"),
	}
}

// SetReporter assigns the progress reporter.
func (r *Runner) SetReporter(rep Reporter) {
	if rep == nil {
		rep = nopReporter{}
	}
	r.reporter = rep
}

// SetMetrics assigns the metrics sink. nil disables metrics.
func (r *Runner) SetMetrics(m *metrics.Metrics) {
	r.metrics = m
}

// Table returns the table the runner counts into.
func (r *Runner) Table() *freq.Table {
	return r.table
}

// Run processes files in order. The first failure stops the run; files
// after it are not read.
func (r *Runner) Run(ctx context.Context, files []string) (Stats, error) {
	var total Stats

	r.reporter.Start(len(files))
	defer r.reporter.Finish()

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		s, err := r.ProcessFile(ctx, path)
		if err != nil {
			return total, err
		}
		total.add(s)
		r.reporter.Advance(path)
	}

	r.metrics.SetUniqueWords(r.table.Len())
	r.logger.Info("run complete",
		"files", total.Files,
		"tokens", total.Tokens,
		"accepted", total.Accepted(),
		"unique_words", r.table.Len(),
	)
	return total, nil
}

// ProcessFile reads one file and counts its words.
func (r *Runner) ProcessFile(ctx context.Context, path string) (Stats, error) {
	start := time.Now()

	doc, err := ingest.ReadDocument(path)
	if err != nil {
		return Stats{}, err
	}

	s, err := r.CountText(ctx, doc.Text)
	if err != nil {
		return Stats{}, err
	}
	s.Files = 1
	s.Bytes = doc.Size

	elapsed := time.Since(start)
	r.metrics.ObserveFile(s.Bytes, s.Lines, elapsed)
	r.logger.Debug("file processed",
		"path", path,
		"bytes", s.Bytes,
		"lines", s.Lines,
		"accepted", s.Accepted(),
		"elapsed", elapsed,
	)
	return s, nil
}

// CountText splits text into lines and counts them across the worker pool.
// Lines are handed out in batches; their order does not matter because
// increments commute.
func (r *Runner) CountText(ctx context.Context, text string) (Stats, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)

	var acc tally
	batch := make([]string, 0, r.cfg.BatchLines)
	for line := range r.cfg.Splitter.Lines(text) {
		batch = append(batch, line)
		if len(batch) < r.cfg.BatchLines {
			continue
		}
		lines := batch
		g.Go(func() error { return r.countLines(gctx, lines, &acc) })
		batch = make([]string, 0, r.cfg.BatchLines)
	}
	if len(batch) > 0 {
		g.Go(func() error { return r.countLines(gctx, batch, &acc) })
	}

	if err := g.Wait(); err != nil {
		return Stats{}, err
	}
	return acc.stats(), nil
}

func (r *Runner) countLines(ctx context.Context, lines []string, acc *tally) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var outcomes [filter.NumReasons]int64
	for _, line := range lines {
		for tok := range ingest.Tokens(line) {
			word, reason := r.filter.Check(tok)
			outcomes[reason]++
			if reason == filter.Accepted {
				r.table.Increment(word)
			}
		}
	}

	acc.add(int64(len(lines)), &outcomes)
	r.metrics.ObserveTokens(&outcomes)
	return nil
}
