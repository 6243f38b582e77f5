// Package ingest turns input files into token candidates: a file is read and
// decoded into a Document, split into lines, and each line into candidates.
package ingest

import (
	"iter"
	"strings"
)

// Splitter divides document text into lines.
type Splitter struct {
	// StripCR drops one trailing '\r' from each line. Off by default, in
	// which case CRLF input leaves '\r' on the last candidate of each line.
	StripCR bool
}

// Lines yields the lines of text, split strictly on '\n'.
func (s Splitter) Lines(text string) iter.Seq[string] {
	lines := strings.SplitSeq(text, "\n")
	if !s.StripCR {
		return lines
	}
	return func(yield func(string) bool) {
		for line := range lines {
			if !yield(strings.TrimSuffix(line, "\r")) {
				return
			}
		}
	}
}

// Tokens yields the candidates of line, split on single spaces. Runs of
// spaces produce empty candidates.
func Tokens(line string) iter.Seq[string] {
	return strings.SplitSeq(line, " ")
}
