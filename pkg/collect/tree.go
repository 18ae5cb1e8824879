package collect

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// RenderTree renders a box-drawing tree for every root, pruned by the same
// exclusion set as the main collection. Roots that cannot be accessed are
// logged and skipped, matching the collection behavior.
func RenderTree(roots []string, excl *ExcludeSet, logger *zap.Logger) string {
	var builder strings.Builder

	for _, root := range roots {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			logger.Warn("Failed to resolve path for tree rendering", zap.String("path", root), zap.Error(err))
			continue
		}

		info, err := os.Stat(absRoot)
		if err != nil || !info.IsDir() {
			logger.Warn("Skipping root in tree rendering", zap.String("path", absRoot), zap.Error(err))
			continue
		}

		builder.WriteString(filepath.Base(absRoot) + "/\n")
		subtree := renderSubtree(absRoot, excl, "", logger)
		if subtree != "" {
			builder.WriteString(subtree)
			builder.WriteString("\n")
		}
	}

	return builder.String()
}

// WriteTree renders the tree for the given roots and writes it to path.
func WriteTree(path string, roots []string, excl *ExcludeSet, logger *zap.Logger) error {
	content := RenderTree(roots, excl, logger)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return err
	}
	logger.Info("Wrote tree rendering", zap.String("path", path))
	return nil
}

// renderSubtree builds the tree lines for one directory level. Entries are
// sorted directories first, then files, case-insensitively.
func renderSubtree(directory string, excl *ExcludeSet, prefix string, logger *zap.Logger) string {
	entries, err := os.ReadDir(directory)
	if err != nil {
		logger.Warn("Failed to read directory for tree rendering", zap.String("directory", directory), zap.Error(err))
		return ""
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	var lines []string
	visible := entries[:0]
	for _, entry := range entries {
		if entry.IsDir() && excl.Contains(entry.Name()) {
			continue
		}
		visible = append(visible, entry)
	}

	for i, entry := range visible {
		connector := "├── "
		extension := "│   "
		if i == len(visible)-1 {
			connector = "└── "
			extension = "    "
		}

		if entry.IsDir() {
			lines = append(lines, fmt.Sprintf("%s%s%s/", prefix, connector, entry.Name()))
			subtree := renderSubtree(filepath.Join(directory, entry.Name()), excl, prefix+extension, logger)
			if subtree != "" {
				lines = append(lines, subtree)
			}
		} else {
			lines = append(lines, prefix+connector+entry.Name())
		}
	}

	return strings.Join(lines, "\n")
}
