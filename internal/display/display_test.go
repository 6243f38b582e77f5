package display

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestConsoleLines(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)

	c.Banner("txt", "/corpus")
	c.Found(3)
	c.Info("Start processing...")
	c.Value("Writing output CSV to", "out.csv")
	c.Success("ALL DONE!")
	c.Error(errors.New("boom"))

	out := buf.String()
	for _, want := range []string{
		"Looking for txt files in /corpus",
		"Got 3 files!",
		"Start processing...",
		"Writing output CSV to out.csv",
		"ALL DONE!",
		"boom",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("Expected no escape codes when writing to a buffer")
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("A buffer is not a terminal")
	}
}
