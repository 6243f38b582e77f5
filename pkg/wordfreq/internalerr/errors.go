package internalerr

import (
	"errors"
	"fmt"
)

// Error kinds. Every one of them is fatal to a run.
var (
	ErrInputPathNotFound = errors.New("input path does not exist")
	ErrNoMatchingFiles   = errors.New("input path does not contain any files matching the specified extension")
	ErrFileOpen          = errors.New("failed to open file")
	ErrFileRead          = errors.New("failed to read file")
	ErrOutputWrite       = errors.New("failed to write output")
	ErrInvalidConfig     = errors.New("invalid configuration")
)

// PathError ties an error kind to the file it happened on.
type PathError struct {
	Kind error
	Path string
	Err  error
}

func (e *PathError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Path, e.Err)
}

// Unwrap exposes both the kind and the underlying cause to errors.Is/As.
func (e *PathError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// WithPath wraps err as kind for path.
func WithPath(kind error, path string, err error) error {
	return &PathError{Kind: kind, Path: path, Err: err}
}

// Kind reports which error kind err carries, or nil if it is not one of ours.
func Kind(err error) error {
	for _, k := range []error{
		ErrInputPathNotFound,
		ErrNoMatchingFiles,
		ErrFileOpen,
		ErrFileRead,
		ErrOutputWrite,
		ErrInvalidConfig,
	} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
