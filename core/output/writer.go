// Package output handles file naming and writing for hyeat outputs.
// Each date is written to <output_dir>/<YYYY-MM-DD><ext>.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultDir is used when no output directory is configured.
const DefaultDir = "menus"

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to DefaultDir.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		outputDir = DefaultDir
	}

	// Ensure the output directory exists.
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// WriteDate writes data for date. The date must be an ISO calendar date,
// which also keeps path separators out of the file name.
func (w *Writer) WriteDate(date string, data []byte, ext string) (string, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	path := filepath.Join(w.OutputDir, date+ext)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}
