package progress

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNewFallsBackToLog(t *testing.T) {
	var buf bytes.Buffer
	if _, ok := New(&buf, true, nil).(*Log); !ok {
		t.Error("Expected log reporter for a non-terminal writer")
	}
}

func TestLogReporter(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	r := NewLog(logger)
	r.Start(2)
	r.Advance("a.txt")
	r.Advance("b.txt")
	r.Finish()

	if r.Done() != 2 {
		t.Errorf("Expected 2 files done, got %d", r.Done())
	}
	out := buf.String()
	for _, want := range []string{"processing files", "path=b.txt", "done=2", "processing finished"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in log output:\n%s", want, out)
		}
	}
}

func TestBarWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	b := NewBar(&buf)
	b.Advance("ignored-before-start.txt")

	b.Start(3)
	b.Advance("dir/a.txt")
	b.Finish()

	if buf.Len() == 0 {
		t.Error("Expected the bar to draw something")
	}
}
