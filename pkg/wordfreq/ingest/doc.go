package ingest

import (
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"

	"github.com/cognicore/wordfreq/pkg/wordfreq/internalerr"
)

// Replacement stands in for every byte sequence that is not valid UTF-8.
const Replacement = '\uFFFD'

// Document is one input file decoded to text.
type Document struct {
	Path string
	Text string
	Size int64 // raw bytes read
}

// ReadDocument reads the whole file at path and decodes it with DecodeLossy.
// Open and read failures come back as internalerr.ErrFileOpen and
// internalerr.ErrFileRead respectively.
func ReadDocument(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, internalerr.WithPath(internalerr.ErrFileOpen, path, err)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, internalerr.WithPath(internalerr.ErrFileRead, path, err)
	}

	return &Document{
		Path: path,
		Text: DecodeLossy(raw),
		Size: int64(len(raw)),
	}, nil
}

// DecodeLossy turns raw bytes into UTF-8 text. Invalid sequences are
// replaced with Replacement; decoding never fails.
func DecodeLossy(raw []byte) string {
	out, err := unicode.UTF8.NewDecoder().Bytes(raw)
	if err != nil {
		// The UTF-8 decoder replaces rather than errors; keep the bytes
		// rather than lose the document if that ever changes.
		return string(raw)
	}
	return string(out)
}
