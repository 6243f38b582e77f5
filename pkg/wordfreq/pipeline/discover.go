package pipeline

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cognicore/wordfreq/internal/logging"
	"github.com/cognicore/wordfreq/pkg/wordfreq/internalerr"
)

// Discover walks root and returns every non-directory entry whose file name
// ends with suffix, sorted for a deterministic processing order. The match
// is a plain suffix test, so "notreallytxt" matches "txt". Entries that
// cannot be read during the walk are skipped with a warning.
func Discover(root, suffix string) ([]string, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, internalerr.WithPath(internalerr.ErrInputPathNotFound, root, err)
	}

	logger := logging.WithComponent("discover")
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("skipping unreadable entry", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), suffix) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, internalerr.WithPath(internalerr.ErrFileRead, root, err)
	}

	if len(files) == 0 {
		return nil, internalerr.WithPath(internalerr.ErrNoMatchingFiles, root, nil)
	}
	sort.Strings(files)
	return files, nil
}
