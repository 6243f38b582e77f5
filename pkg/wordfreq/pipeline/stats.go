package pipeline

import (
	"sync/atomic"

	"github.com/cognicore/wordfreq/pkg/wordfreq/filter"
)

// Stats summarizes what a run (or one file of it) went through.
type Stats struct {
	Files    int
	Bytes    int64
	Lines    int64
	Tokens   int64
	Outcomes [filter.NumReasons]int64 // indexed by filter.Reason
}

// Accepted is the number of candidates counted into the table.
func (s Stats) Accepted() int64 {
	return s.Outcomes[filter.Accepted]
}

// Rejected is the number of candidates the filter dropped.
func (s Stats) Rejected() int64 {
	return s.Tokens - s.Accepted()
}

func (s *Stats) add(o Stats) {
	s.Files += o.Files
	s.Bytes += o.Bytes
	s.Lines += o.Lines
	s.Tokens += o.Tokens
	for i := range s.Outcomes {
		s.Outcomes[i] += o.Outcomes[i]
	}
}

// tally collects per-batch counts from concurrent workers.
type tally struct {
	lines    atomic.Int64
	outcomes [filter.NumReasons]atomic.Int64
}

func (t *tally) add(lines int64, outcomes *[filter.NumReasons]int64) {
	t.lines.Add(lines)
	for i, n := range outcomes {
		if n != 0 {
			t.outcomes[i].Add(n)
		}
	}
}

func (t *tally) stats() Stats {
	var s Stats
	s.Lines = t.lines.Load()
	for i := range t.outcomes {
		s.Outcomes[i] = t.outcomes[i].Load()
		s.Tokens += s.Outcomes[i]
	}
	return s
}
