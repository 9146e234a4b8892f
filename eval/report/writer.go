/*
Copyright 2026 RangerIO, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"rangerio.dev/rageval/eval"
)

// fileTimestampFormat keeps report filenames sortable.
const fileTimestampFormat = "20060102_150405"

// Writer persists report documents as timestamped JSON files in one
// directory.
type Writer struct {
	dir string
	now func() time.Time
}

// NewWriter creates a Writer, creating the output directory if needed.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create report directory: %w", err)
	}
	return &Writer{dir: dir, now: time.Now}, nil
}

// WriteBatch writes one batch report and returns the file path.
func (w *Writer) WriteBatch(b *eval.BatchResult) (string, error) {
	now := w.now()
	doc := FromBatch(b)
	doc.GeneratedAt = timestamp(now)

	path := filepath.Join(w.dir, fmt.Sprintf("batch_%s_%s.json", b.BatchName, now.Format(fileTimestampFormat)))
	return path, w.write(path, doc)
}

// WriteSummary writes the cross-batch summary report and returns the file
// path.
func (w *Writer) WriteSummary(batches []*eval.BatchResult) (string, error) {
	now := w.now()
	doc := NewSummary(batches)
	doc.GeneratedAt = timestamp(now)

	path := filepath.Join(w.dir, fmt.Sprintf("summary_%s.json", now.Format(fileTimestampFormat)))
	return path, w.write(path, doc)
}

func (w *Writer) write(path string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
