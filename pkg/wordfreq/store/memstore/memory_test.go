package memstore

import (
	"context"
	"testing"

	"github.com/cognicore/wordfreq/pkg/wordfreq/freq"
	"github.com/cognicore/wordfreq/pkg/wordfreq/store"
)

func TestMemStore(t *testing.T) {
	s := New()
	var _ store.Store = s

	run := store.Run{ID: "run-1"}
	if err := s.WriteTable(context.Background(), run, []freq.Entry{{Word: "word", Count: 2}}); err != nil {
		t.Fatal(err)
	}

	counts := s.Counts("run-1")
	if counts["word"] != 2 {
		t.Errorf("Expected word=2, got %d", counts["word"])
	}
	counts["word"] = 99
	if s.Counts("run-1")["word"] != 2 {
		t.Error("Counts should return a copy")
	}
	if len(s.Runs()) != 1 {
		t.Errorf("Expected 1 run, got %d", len(s.Runs()))
	}
	if len(s.Counts("unknown")) != 0 {
		t.Error("Unknown run should have no counts")
	}

	s.Close()
	if !s.Closed() {
		t.Error("Store should report closed")
	}
}
