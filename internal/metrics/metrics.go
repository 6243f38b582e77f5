// Package metrics defines the Prometheus collectors for a word frequency run
// and an optional HTTP endpoint to scrape them while the run is in progress.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/cognicore/wordfreq/pkg/wordfreq/filter"
)

const namespace = "wordfreq"

// Metrics holds the collectors for one run. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	FilesProcessed prometheus.Counter
	BytesRead      prometheus.Counter
	LinesProcessed prometheus.Counter
	Tokens         *prometheus.CounterVec
	FileDuration   prometheus.Histogram
	UniqueWords    prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		FilesProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_processed_total",
			Help:      "Input files fully processed.",
		}),
		BytesRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bytes_read_total",
			Help:      "Raw bytes read from input files.",
		}),
		LinesProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lines_processed_total",
			Help:      "Lines tokenized.",
		}),
		Tokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tokens_total",
			Help:      "Token candidates by filter outcome (accepted or rejection reason).",
		}, []string{"result"}),
		FileDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "file_duration_seconds",
			Help:      "Time spent reading and counting one file.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		}),
		UniqueWords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "unique_words",
			Help:      "Unique words in the frequency table.",
		}),
	}

	reg.MustRegister(
		m.FilesProcessed,
		m.BytesRead,
		m.LinesProcessed,
		m.Tokens,
		m.FileDuration,
		m.UniqueWords,
	)
	return m
}

// ObserveFile records one completed file.
func (m *Metrics) ObserveFile(bytes, lines int64, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.FilesProcessed.Inc()
	m.BytesRead.Add(float64(bytes))
	m.LinesProcessed.Add(float64(lines))
	m.FileDuration.Observe(elapsed.Seconds())
}

// ObserveTokens adds a per-reason tally of filter outcomes.
func (m *Metrics) ObserveTokens(tally *[filter.NumReasons]int64) {
	if m == nil {
		return
	}
	for r, n := range tally {
		if n > 0 {
			m.Tokens.WithLabelValues(filter.Reason(r).String()).Add(float64(n))
		}
	}
}

// SetUniqueWords records the size of the table.
func (m *Metrics) SetUniqueWords(n int) {
	if m == nil {
		return
	}
	m.UniqueWords.Set(float64(n))
}
