// Package export writes match-export payloads fetched from the companion API
// to disk.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Format represents the export format.
type Format string

const (
	// FormatCSV represents CSV export format.
	FormatCSV Format = "csv"
	// FormatJSON represents JSON export format.
	FormatJSON Format = "json"
)

// Options holds configuration for export operations.
type Options struct {
	Format    Format
	OutputDir string // "" writes to the current directory
	Overwrite bool
}

// Writer persists export payloads received from the service.
type Writer struct {
	opts Options
}

// NewWriter creates a new Writer with the given options.
func NewWriter(opts Options) *Writer {
	return &Writer{opts: opts}
}

// Write stores the payload and returns the file path. CSV payloads are
// written verbatim; JSON payloads are re-indented for readability but
// otherwise untouched.
func (w *Writer) Write(payload []byte) (string, error) {
	switch w.opts.Format {
	case FormatCSV:
		return w.writeToFile(payload)
	case FormatJSON:
		var indented bytes.Buffer
		if err := json.Indent(&indented, payload, "", "  "); err != nil {
			// Not valid JSON; store what the service sent
			return w.writeToFile(payload)
		}
		return w.writeToFile(indented.Bytes())
	default:
		return "", fmt.Errorf("unsupported export format: %s", w.opts.Format)
	}
}

// writeToFile writes data to a timestamped file in the output directory.
func (w *Writer) writeToFile(data []byte) (string, error) {
	filename := fmt.Sprintf("matches-%s.%s", time.Now().Format("20060102-150405"), w.opts.Format)
	path := filepath.Join(w.opts.OutputDir, filename)

	if !w.opts.Overwrite {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("file already exists: %s", path)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return path, nil
}
