// Package config loads run settings from YAML or TOML with environment
// overrides, and builds the pipeline components they describe.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/cognicore/wordfreq/pkg/wordfreq/freq"
	"github.com/cognicore/wordfreq/pkg/wordfreq/internalerr"
	"github.com/cognicore/wordfreq/pkg/wordfreq/pipeline"
)

// Config is everything a run needs.
type Config struct {
	Input     string        `yaml:"input" toml:"input"`
	Extension string        `yaml:"extension" toml:"extension"`
	Output    string        `yaml:"output" toml:"output"`
	SQLite    string        `yaml:"sqlite" toml:"sqlite"`
	CSVHeader bool          `yaml:"csvHeader" toml:"csvHeader"`
	Workers   int           `yaml:"workers" toml:"workers"`
	Batch     int           `yaml:"batchLines" toml:"batchLines"`
	Shards    int           `yaml:"shards" toml:"shards"`
	StripCR   bool          `yaml:"stripCR" toml:"stripCR"`
	Top       int           `yaml:"top" toml:"top"`
	Progress  bool          `yaml:"progress" toml:"progress"`
	Logging   LoggingConfig `yaml:"logging" toml:"logging"`
	Metrics   MetricsConfig `yaml:"metrics" toml:"metrics"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// MetricsConfig controls the optional Prometheus scrape endpoint.
type MetricsConfig struct {
	Addr string `yaml:"addr" toml:"addr"`
}

// Default returns the settings used when nothing overrides them.
func Default() *Config {
	return &Config{
		Extension: "txt",
		Batch:     pipeline.DefaultBatchLines,
		Shards:    freq.DefaultShards,
		Top:       20,
		Progress:  true,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a YAML or TOML config file (if path is not empty) over the defaults,
// then applies WORDFREQ_* environment overrides: INPUT, EXTENSION, OUTPUT,
// SQLITE, CSV_HEADER, WORKERS, BATCH_LINES, SHARDS, STRIP_CR, TOP, PROGRESS,
// LOG_LEVEL, LOG_FORMAT and METRICS_ADDR. Values that do not parse are ignored.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w: %w", path, internalerr.ErrInvalidConfig, err)
		}
		if err := decode(path, data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w: %w", path, internalerr.ErrInvalidConfig, err)
		}
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// decode picks TOML for .toml files and YAML for everything else.
func decode(path string, data []byte, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

func applyEnvOverrides(cfg *Config) {
	envString("WORDFREQ_INPUT", &cfg.Input)
	envString("WORDFREQ_EXTENSION", &cfg.Extension)
	envString("WORDFREQ_OUTPUT", &cfg.Output)
	envString("WORDFREQ_SQLITE", &cfg.SQLite)
	envBool("WORDFREQ_CSV_HEADER", &cfg.CSVHeader)
	envInt("WORDFREQ_WORKERS", &cfg.Workers)
	envInt("WORDFREQ_BATCH_LINES", &cfg.Batch)
	envInt("WORDFREQ_SHARDS", &cfg.Shards)
	envBool("WORDFREQ_STRIP_CR", &cfg.StripCR)
	envInt("WORDFREQ_TOP", &cfg.Top)
	envBool("WORDFREQ_PROGRESS", &cfg.Progress)
	envString("WORDFREQ_LOG_LEVEL", &cfg.Logging.Level)
	envString("WORDFREQ_LOG_FORMAT", &cfg.Logging.Format)
	envString("WORDFREQ_METRICS_ADDR", &cfg.Metrics.Addr)
}

func envString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envBool(key string, dst *bool) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

// Validate checks that the settings describe a runnable job.
func (c *Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Input) == "" {
		problems = append(problems, "input directory is required")
	}
	if strings.TrimSpace(c.Output) == "" {
		problems = append(problems, "output file is required")
	}
	if c.Extension == "" {
		problems = append(problems, "extension must not be empty")
	}
	if c.Workers < 0 {
		problems = append(problems, "workers must not be negative")
	}
	if c.Batch < 0 {
		problems = append(problems, "batchLines must not be negative")
	}
	if c.Shards < 0 {
		problems = append(problems, "shards must not be negative")
	}
	if c.Top < 0 {
		problems = append(problems, "top must not be negative")
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "text", "json":
	default:
		problems = append(problems, fmt.Sprintf("unknown log format %q", c.Logging.Format))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", internalerr.ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
