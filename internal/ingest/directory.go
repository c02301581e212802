// SPDX-License-Identifier: Apache-2.0

// Package ingest loads plain-text intake form exports from disk into
// documents for the extraction engine. Converting the original Word forms
// to text happens upstream; this package only reads the results.
package ingest

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/PazParaTi/epifield-mpxv-dashboard/internal/intake"
)

// Stats summarises one directory load.
type Stats struct {
	Scanned uint32
	Matched uint32
	Loaded  uint32
	Failed  uint32
}

// Loader reads document text files from a directory tree.
type Loader struct {
	logger *slog.Logger
}

func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// LoadDirectory walks root, filters by includeExts (default: txt), skips
// hidden files and directories, and reads each matching file into a
// Document keyed by its file name. A file that fails to read is logged and
// skipped; it never aborts the walk. Document order follows walk order.
func (l *Loader) LoadDirectory(root string, includeExts []string) ([]intake.Document, Stats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, Stats{}, errors.New("root path is required")
	}

	exts := map[string]struct{}{}
	if len(includeExts) == 0 {
		exts["txt"] = struct{}{}
	} else {
		for _, e := range includeExts {
			e = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
			if e != "" {
				exts[e] = struct{}{}
			}
		}
	}

	var docs []intake.Document
	var stats Stats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			l.logger.Warn("ingest.walk.failed", "path", path, "error", walkErr)
			stats.Failed++
			return nil // continue walking
		}
		if isHidden(path) && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
		if _, ok := exts[ext]; !ok {
			return nil
		}
		stats.Matched++

		text, err := os.ReadFile(path)
		if err != nil {
			l.logger.Warn("ingest.read.failed", "path", path, "error", err)
			stats.Failed++
			return nil
		}
		docs = append(docs, intake.Document{
			ID:   filepath.Base(path),
			Text: string(text),
		})
		stats.Loaded++
		return nil
	})
	if err != nil {
		return docs, stats, err
	}

	l.logger.Info("ingest.dir.ok",
		"root", root,
		"scanned", stats.Scanned,
		"loaded", stats.Loaded,
		"failed", stats.Failed,
	)
	return docs, stats, nil
}

func isHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".") && base != "." && base != ".."
}
