// Package progress reports per-file progress of a run, as a bar on a
// terminal and as log lines elsewhere.
package progress

import (
	"io"
	"log/slog"
	"path/filepath"

	"github.com/schollz/progressbar/v3"

	"github.com/cognicore/wordfreq/internal/display"
)

// Reporter matches pipeline.Reporter.
type Reporter interface {
	Start(total int)
	Advance(path string)
	Finish()
}

// New picks a bar when w is a terminal and enabled is set, log lines
// otherwise.
func New(w io.Writer, enabled bool, logger *slog.Logger) Reporter {
	if enabled && display.IsTerminal(w) {
		return NewBar(w)
	}
	return NewLog(logger)
}

// Bar draws a progress bar.
type Bar struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

// NewBar creates a bar on w. The bar is sized in Start.
func NewBar(w io.Writer) *Bar {
	return &Bar{w: w}
}

// Start sizes the bar for total files.
func (b *Bar) Start(total int) {
	b.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(b.w),
		progressbar.OptionSetDescription("files"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionClearOnFinish(),
	)
}

// Advance moves the bar one file on and shows its name.
func (b *Bar) Advance(path string) {
	if b.bar == nil {
		return
	}
	b.bar.Describe(filepath.Base(path))
	_ = b.bar.Add(1)
}

// Finish completes the bar and clears it.
func (b *Bar) Finish() {
	if b.bar == nil {
		return
	}
	_ = b.bar.Finish()
}

// Log writes one debug line per file and an info line at the end.
type Log struct {
	logger *slog.Logger
	total  int
	done   int
}

// NewLog creates a log reporter. A nil logger uses slog.Default.
func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{logger: logger}
}

// Start logs how many files will be processed.
func (l *Log) Start(total int) {
	l.total = total
	l.done = 0
	l.logger.Info("processing files", "total", total)
}

// Advance logs one finished file at debug level.
func (l *Log) Advance(path string) {
	l.done++
	l.logger.Debug("file done", "path", path, "done", l.done, "total", l.total)
}

// Finish logs the final file count.
func (l *Log) Finish() {
	l.logger.Info("processing finished", "done", l.done, "total", l.total)
}

// Done reports how many files have been advanced past.
func (l *Log) Done() int {
	return l.done
}
