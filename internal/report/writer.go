// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package report

import (
	"fmt"
	"io"
	"sync"
)

// LineWriter writes records as lines to the underlying writer. It is safe for
// concurrent use. Each record is written with a single write call, so lines of
// concurrent writers never mix, while their order is undefined.
type LineWriter struct {
	mu       sync.Mutex
	w        io.Writer
	extended bool
}

// NewLineWriter creates a new [LineWriter]. With extended set, lines are
// written in the extended format.
func NewLineWriter(w io.Writer, extended bool) *LineWriter {
	return &LineWriter{
		w:        w,
		extended: extended,
	}
}

// WriteRecord writes the record as a single line.
func (w *LineWriter) WriteRecord(record Record) error {
	line := record.String()
	if w.extended {
		line = record.Extended()
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := io.WriteString(w.w, line+"\n"); err != nil {
		return fmt.Errorf("write line: %w", err)
	}

	return nil
}

// Collector gathers the records of a run. It is safe for concurrent use.
type Collector struct {
	mu      sync.Mutex
	records []Record
}

// Add appends a record.
func (c *Collector) Add(record Record) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records = append(c.records, record)
}

// Records returns a copy of all records added so far.
func (c *Collector) Records() []Record {
	c.mu.Lock()
	defer c.mu.Unlock()

	records := make([]Record, len(c.records))
	copy(records, c.records)

	return records
}
