// Package walk enumerates the files under a root directory.
package walk

import (
	"context"
	"io"
	"io/fs"
	"iter"
	"log"
	"path/filepath"
	"strings"
)

// Filter selects which files are yielded. An empty Ext matches any file;
// otherwise the base name must end with Ext (case-sensitive).
type Filter struct {
	Ext string
}

// Match reports whether name passes the filter.
func (f Filter) Match(name string) bool {
	return f.Ext == "" || strings.HasSuffix(name, f.Ext)
}

// Files lazily yields the absolute path of every regular file under root that
// passes filter, in lexical walk order. Directories are descended but never
// yielded. Symbolic links are neither followed nor yielded, so the walk stays
// inside root. Unreadable entries are logged and skipped.
func Files(ctx context.Context, root string, filter Filter, logger *log.Logger) iter.Seq[string] {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return func(yield func(string) bool) {
		base, err := resolveRoot(root)
		if err != nil {
			logger.Printf("walk: resolve root %s: %v", root, err)
			return
		}
		_ = filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
			if ctx.Err() != nil {
				return filepath.SkipAll
			}
			if err != nil {
				logger.Printf("walk: error processing %s: %v", path, err)
				return nil // Continue walking
			}
			if d.IsDir() {
				return nil
			}
			if !d.Type().IsRegular() {
				// symlinks, sockets, devices and pipes
				return nil
			}
			if !filter.Match(d.Name()) {
				return nil
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// resolveRoot makes root absolute and resolves links in the root itself, so a
// configured root that is a symlink to a directory is still descended.
func resolveRoot(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
