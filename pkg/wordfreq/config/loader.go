package config

import (
	"github.com/cognicore/wordfreq/pkg/wordfreq/filter"
	"github.com/cognicore/wordfreq/pkg/wordfreq/freq"
	"github.com/cognicore/wordfreq/pkg/wordfreq/ingest"
	"github.com/cognicore/wordfreq/pkg/wordfreq/pipeline"
)

// Components holds the pieces a run is assembled from.
type Components struct {
	Filter   *filter.Filter
	Table    *freq.Table
	Pipeline pipeline.Config
}

// Components builds a fresh filter, an empty table and the worker pool
// settings from c.
func (c *Config) Components() *Components {
	return &Components{
		Filter: filter.New(),
		Table:  freq.New(c.Shards),
		Pipeline: pipeline.Config{
			Workers:    c.Workers,
			BatchLines: c.Batch,
			Splitter:   ingest.Splitter{StripCR: c.StripCR},
		},
	}
}

// NewRunner wires the components into a pipeline runner.
func (comp *Components) NewRunner() *pipeline.Runner {
	return pipeline.NewRunner(comp.Pipeline, comp.Filter, comp.Table)
}
