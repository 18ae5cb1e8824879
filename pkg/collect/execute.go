package collect

import (
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Run executes a full collection: every root is walked and filtered, the
// surviving entries are appended to the output artifact in root order, and
// the tree rendering is written if requested.
//
// Per-root and per-file failures are logged and skipped. Run returns an
// error only when no root was processable or the output artifact could not
// be written.
func Run(args Arguments, logger *zap.Logger) (*Summary, error) {
	start := time.Now()

	excl := NewExcludeSet(args.ExcludeNames...)
	filter := Filter{AllFiles: args.AllFiles}

	output := args.Output
	if output == "" {
		output = DefaultOutput
	}
	absOutput, err := filepath.Abs(output)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output path %q: %w", output, err)
	}

	logger.Info("Starting collection",
		zap.Int("rootCount", len(args.Roots)),
		zap.Bool("allFiles", args.AllFiles),
		zap.Strings("excludedDirs", excl.Names()))

	var entries []FileEntry
	validRoots := 0
	for _, root := range args.Roots {
		rootEntries, err := CollectRoot(root, excl, filter, logger)
		if err != nil {
			logger.Warn("Skipping root", zap.String("root", root), zap.Error(err))
			continue
		}
		validRoots++
		entries = append(entries, rootEntries...)
		logger.Info("Processed root", zap.String("root", root), zap.Int("files", len(rootEntries)))
	}
	if validRoots == 0 {
		return nil, fmt.Errorf("none of the %d supplied paths is a readable directory", len(args.Roots))
	}

	agg, err := NewAggregator(absOutput, logger)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		// A stale artifact discovered inside a root must not collect itself.
		if entry.Path == absOutput {
			logger.Debug("Skipping output artifact found inside a root", zap.String("path", entry.Path))
			continue
		}
		if err := agg.Add(entry); err != nil {
			_ = agg.Close()
			return nil, err
		}
	}
	if err := agg.Close(); err != nil {
		return nil, err
	}

	if args.Tree != "" {
		if err := WriteTree(args.Tree, args.Roots, excl, logger); err != nil {
			return nil, fmt.Errorf("failed to write tree rendering: %w", err)
		}
	}

	collected, failed := agg.Counts()
	logger.Info("Collection completed",
		zap.Int("collected", collected),
		zap.Int("failed", failed),
		zap.String("output", absOutput),
		zap.Duration("elapsed", time.Since(start)))

	return &Summary{
		Collected: collected,
		Failed:    failed,
		Output:    absOutput,
	}, nil
}
