package collect

import (
	"bufio"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Aggregator writes accepted files into the single output artifact. Each
// entry is a header line of the form [root/relative/path], the file's
// verbatim content, and a trailing blank line. The whole block is composed
// in memory and written in one call, so a failure mid-file never tears a
// previously completed entry.
type Aggregator struct {
	file      *os.File
	writer    *bufio.Writer
	logger    *zap.Logger
	collected int
	failed    int
}

// NewAggregator creates (or truncates) the output artifact. A create
// failure here is the one fatal error of a run.
func NewAggregator(outputPath string, logger *zap.Logger) (*Aggregator, error) {
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %s: %w", outputPath, err)
	}
	return &Aggregator{
		file:   file,
		writer: bufio.NewWriter(file),
		logger: logger,
	}, nil
}

// Add appends one entry block for the given file. Read and decode failures
// are absorbed: the entry is written with an error placeholder in place of
// content and the run goes on. Only a write failure on the artifact itself
// is returned.
func (a *Aggregator) Add(entry FileEntry) error {
	content, err := readText(entry.Path)
	if err != nil {
		a.logger.Warn("Failed to read file",
			zap.String("file", entry.Path),
			zap.Error(err))
		content = fmt.Sprintf("<<Error reading file: %v>>", err)
		a.failed++
	} else {
		a.collected++
	}

	block := fmt.Sprintf("[%s]\n%s\n\n", entry.Header, content)
	if _, err := a.writer.WriteString(block); err != nil {
		return fmt.Errorf("failed to write entry for %s: %w", entry.Path, err)
	}
	return nil
}

// Counts returns how many files were collected and how many were replaced
// by placeholders.
func (a *Aggregator) Counts() (collected, failed int) {
	return a.collected, a.failed
}

// Close flushes buffered entries and releases the artifact handle.
func (a *Aggregator) Close() error {
	flushErr := a.writer.Flush()
	closeErr := a.file.Close()
	if flushErr != nil {
		return fmt.Errorf("failed to flush output: %w", flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close output: %w", closeErr)
	}
	return nil
}

// readText reads a file fully and decodes it as UTF-8 text. One input
// handle is open at a time; os.ReadFile closes it before returning.
func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return decodeText(data)
}
