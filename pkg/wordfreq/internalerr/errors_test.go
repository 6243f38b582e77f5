package internalerr

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestPathErrorUnwrapsKindAndCause(t *testing.T) {
	err := WithPath(ErrFileOpen, "/corpus/a.txt", fs.ErrNotExist)

	if !errors.Is(err, ErrFileOpen) {
		t.Error("Should match its kind")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("Should match its cause")
	}
	if errors.Is(err, ErrFileRead) {
		t.Error("Should not match an unrelated kind")
	}

	var pe *PathError
	if !errors.As(err, &pe) {
		t.Fatal("Should be a *PathError")
	}
	if pe.Path != "/corpus/a.txt" {
		t.Errorf("Expected path /corpus/a.txt, got %q", pe.Path)
	}
}

func TestPathErrorMessage(t *testing.T) {
	err := WithPath(ErrFileRead, "b.txt", errors.New("is a directory"))
	msg := err.Error()
	if !strings.Contains(msg, "failed to read file") || !strings.Contains(msg, "b.txt") {
		t.Errorf("Unexpected message %q", msg)
	}

	noCause := WithPath(ErrInputPathNotFound, "/missing", nil)
	if noCause.Error() != "input path does not exist /missing" {
		t.Errorf("Unexpected message %q", noCause.Error())
	}
	if !errors.Is(noCause, ErrInputPathNotFound) {
		t.Error("Should match its kind without a cause")
	}
}

func TestKind(t *testing.T) {
	wrapped := fmt.Errorf("write csv: %w", WithPath(ErrOutputWrite, "out.csv", nil))
	if Kind(wrapped) != ErrOutputWrite {
		t.Errorf("Expected ErrOutputWrite, got %v", Kind(wrapped))
	}
	if Kind(errors.New("boom")) != nil {
		t.Error("Unknown errors should have no kind")
	}
}
