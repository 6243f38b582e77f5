package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/cognicore/wordfreq/pkg/wordfreq/internalerr"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscoverRecursiveSuffixMatch(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.txt"), "b")
	writeFile(t, filepath.Join(root, "a.txt"), "a")
	writeFile(t, filepath.Join(root, "nested", "deep", "c.txt"), "c")
	writeFile(t, filepath.Join(root, "notreallytxt"), "suffix only")
	writeFile(t, filepath.Join(root, "skip.md"), "md")
	if err := os.MkdirAll(filepath.Join(root, "dir.txt"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := Discover(root, "txt")
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	expected := []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "b.txt"),
		filepath.Join(root, "nested", "deep", "c.txt"),
		filepath.Join(root, "notreallytxt"),
	}
	if !reflect.DeepEqual(files, expected) {
		t.Errorf("Expected %v, got %v", expected, files)
	}
}

func TestDiscoverMissingRoot(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"), "txt")
	if !errors.Is(err, internalerr.ErrInputPathNotFound) {
		t.Errorf("Expected ErrInputPathNotFound, got %v", err)
	}
}

func TestDiscoverNoMatches(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "readme.md"), "x")

	_, err := Discover(root, "txt")
	if !errors.Is(err, internalerr.ErrNoMatchingFiles) {
		t.Errorf("Expected ErrNoMatchingFiles, got %v", err)
	}
}

func TestDiscoverRootIsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "single.txt")
	writeFile(t, path, "one file")

	files, err := Discover(path, "txt")
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if len(files) != 1 || files[0] != path {
		t.Errorf("Expected [%s], got %v", path, files)
	}
}
