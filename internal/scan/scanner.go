// Package scan enumerates documentation files under a content root.
// Pure enumeration: contents are never interpreted here.
package scan

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	dcerrors "git.home.luguber.info/inful/doccheck/internal/errors"
	"git.home.luguber.info/inful/doccheck/internal/logfields"
)

// Scanner walks a content root collecting documentation files.
type Scanner struct {
	root      string
	extension string
}

// NewScanner creates a scanner for the given root and file extension (e.g. ".md").
func NewScanner(root, extension string) *Scanner {
	return &Scanner{root: root, extension: extension}
}

// Scan returns all documentation file paths under the root in lexical
// traversal order. The order is what makes run reports reproducible, so it
// must not depend on filesystem enumeration quirks; WalkDir guarantees
// lexical ordering per directory.
//
// An unreadable root is fatal: no partial result is returned.
func (s *Scanner) Scan() ([]string, error) {
	if _, err := os.Stat(s.root); err != nil {
		return nil, dcerrors.FatalScan(s.root, err)
	}

	var files []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Skip hidden directories and files
		if strings.HasPrefix(d.Name(), ".") && path != s.root {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), s.extension) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, dcerrors.FatalScan(s.root, err)
	}

	slog.Debug("Scanned content root", logfields.File(s.root), slog.Int("files", len(files)))
	return files, nil
}
