// Package walker enumerates eligible files under a root directory. A single
// unreadable entry never aborts the walk: it is logged and skipped.
package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"docindex/internal/domain"
	"docindex/internal/logging"
)

// Options narrows the set of files a walk yields.
type Options struct {
	// Exclude is a glob pattern (doublestar syntax, e.g. "**/drafts/*")
	// matched against the path relative to the walk root.
	Exclude string
	// MaxSize skips files larger than this many bytes. Zero means unlimited.
	MaxSize int64
}

var allowedExts = map[string]struct{}{
	".txt":  {},
	".md":   {},
	".csv":  {},
	".json": {},
	".pdf":  {},
}

// Walk returns the paths of all indexable files under root in lexical order.
// Directory symlinks are not descended, which also breaks symlink cycles.
func Walk(root string, opts Options) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrDirNotFound, root)
	}
	log := logging.WithComponent("walker")
	var paths []string
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warn("skipping unreadable entry", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if _, ok := allowedExts[ext]; !ok {
			return nil
		}
		if opts.Exclude != "" {
			rel, err := filepath.Rel(root, path)
			if err == nil {
				if ok, _ := doublestar.Match(opts.Exclude, filepath.ToSlash(rel)); ok {
					return nil
				}
			}
		}
		if opts.MaxSize > 0 {
			fi, err := d.Info()
			if err != nil {
				log.Warn("skipping entry, stat failed", "path", path, "error", err)
				return nil
			}
			if fi.Size() > opts.MaxSize {
				log.Warn("skipping file over size limit", "path", path, "size", fi.Size(), "limit", opts.MaxSize)
				return nil
			}
		}
		paths = append(paths, path)
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return paths, nil
}
