// Package report summarizes a finished run for people: totals, rejection
// breakdown and the most frequent words.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/cognicore/wordfreq/pkg/wordfreq/filter"
	"github.com/cognicore/wordfreq/pkg/wordfreq/freq"
	"github.com/cognicore/wordfreq/pkg/wordfreq/pipeline"
)

// Summary is the outcome of one run.
type Summary struct {
	RunID   string
	Stats   pipeline.Stats
	Unique  int
	Elapsed time.Duration
	Top     []freq.Entry
}

// New builds a summary, keeping the n most frequent entries.
func New(runID string, stats pipeline.Stats, entries []freq.Entry, n int, elapsed time.Duration) Summary {
	return Summary{
		RunID:   runID,
		Stats:   stats,
		Unique:  len(entries),
		Elapsed: elapsed,
		Top:     TopN(entries, n),
	}
}

// TopN returns the n most frequent entries, ties broken alphabetically.
// entries is not modified.
func TopN(entries []freq.Entry, n int) []freq.Entry {
	if n <= 0 || len(entries) == 0 {
		return nil
	}
	sorted := make([]freq.Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}
		return sorted[i].Word < sorted[j].Word
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Headline is the one-line result, e.g. "Got 1,234 unique words in 3.2s".
func (s Summary) Headline() string {
	return fmt.Sprintf("Got %s unique words in %s", humanize.Comma(int64(s.Unique)), s.Elapsed.Round(time.Millisecond))
}

// Render formats the totals, the rejection breakdown and the top words as
// tables.
func (s Summary) Render() string {
	var b strings.Builder

	totals := table.NewWriter()
	totals.SetStyle(table.StyleRounded)
	totals.AppendHeader(table.Row{"Run", s.RunID})
	totals.AppendRows([]table.Row{
		{"Files", humanize.Comma(int64(s.Stats.Files))},
		{"Read", humanize.Bytes(uint64(s.Stats.Bytes))},
		{"Lines", humanize.Comma(s.Stats.Lines)},
		{"Candidates", humanize.Comma(s.Stats.Tokens)},
		{"Accepted", humanize.Comma(s.Stats.Accepted())},
		{"Unique words", humanize.Comma(int64(s.Unique))},
		{"Elapsed", s.Elapsed.Round(time.Millisecond).String()},
	})
	totals.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	b.WriteString(totals.Render())
	b.WriteString("\n")

	rejected := table.NewWriter()
	rejected.SetStyle(table.StyleRounded)
	rejected.AppendHeader(table.Row{"Rejected by", "Candidates"})
	for r := filter.Reason(1); r < filter.NumReasons; r++ {
		rejected.AppendRow(table.Row{r.String(), humanize.Comma(s.Stats.Outcomes[r])})
	}
	rejected.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	b.WriteString(rejected.Render())

	if len(s.Top) > 0 {
		top := table.NewWriter()
		top.SetStyle(table.StyleRounded)
		top.AppendHeader(table.Row{"#", "Word", "Count"})
		for i, e := range s.Top {
			top.AppendRow(table.Row{i + 1, e.Word, humanize.Comma(int64(e.Count))})
		}
		top.SetColumnConfigs([]table.ColumnConfig{
			{Number: 1, Align: text.AlignRight},
			{Number: 3, Align: text.AlignRight},
		})
		b.WriteString("\n")
		b.WriteString(top.Render())
	}

	return b.String()
}
