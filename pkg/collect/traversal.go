package collect

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// CollectRoot walks a single root directory and returns the entries accepted
// by the filter, in the deterministic lexical order of filepath.WalkDir.
// Directories whose basename is in the exclusion set are pruned before
// descent. Entries that cannot be accessed mid-traversal are logged and
// skipped; only a root that cannot be resolved, is not a directory, or
// cannot be listed at all makes CollectRoot return an error.
//
// Symbolic links are reported as plain entries and are not followed into
// directories, so link cycles do not recurse.
func CollectRoot(root string, excl *ExcludeSet, filter Filter, logger *zap.Logger) ([]FileEntry, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %q: %w", root, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("cannot access %s: %w", absRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", absRoot)
	}

	rootName := filepath.Base(absRoot)
	logger.Debug("Walking root", zap.String("root", absRoot))

	var entries []FileEntry
	walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == absRoot {
				return err
			}
			logger.Warn("Skipping unreadable path", zap.String("path", path), zap.Error(err))
			return nil
		}

		if d.IsDir() {
			if path != absRoot && excl.Contains(d.Name()) {
				logger.Debug("Pruning excluded directory", zap.String("dir", path))
				return filepath.SkipDir
			}
			return nil
		}

		if !filter.Accept(d.Name()) {
			return nil
		}

		rel, relErr := filepath.Rel(absRoot, path)
		if relErr != nil {
			logger.Warn("Cannot determine relative path", zap.String("path", path), zap.Error(relErr))
			return nil
		}

		entries = append(entries, FileEntry{
			Path:   path,
			Header: rootName + "/" + filepath.ToSlash(rel),
		})
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", absRoot, walkErr)
	}

	logger.Debug("Finished walking root", zap.String("root", absRoot), zap.Int("entries", len(entries)))
	return entries, nil
}
