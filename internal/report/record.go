// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package report

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	format         = "process=%09d hostname=%s thread=%02d cpu=%02d"
	extendedFormat = format + " node=%d tid=%d"
)

// Record is what a single thread reports about itself.
type Record struct {
	PID      int
	Hostname string
	Thread   int
	CPU      int
	Node     int
	TID      int
}

// String returns the record in the standard line format without newline.
func (r Record) String() string {
	return fmt.Sprintf(format, r.PID, r.Hostname, r.Thread, r.CPU)
}

// Extended returns the record in the extended line format without newline.
func (r Record) Extended() string {
	return fmt.Sprintf(extendedFormat,
		r.PID, r.Hostname, r.Thread, r.CPU, r.Node, r.TID)
}

// Parse parses a line in standard or extended format. Surrounding whitespace
// is ignored. The hostname may be empty.
func Parse(line string) (Record, error) {
	line = strings.TrimSpace(line)

	record, err := parseFields(strings.Split(line, " "))
	if err != nil {
		return Record{}, &ParseError{Line: line, Err: err}
	}

	return record, nil
}

func parseFields(fields []string) (Record, error) {
	var record Record

	// Fixed widths of the format are minimum widths, so numbers are parsed
	// without width limits.
	targets := []struct {
		key string
		num *int
		str *string
	}{
		{key: "process", num: &record.PID},
		{key: "hostname", str: &record.Hostname},
		{key: "thread", num: &record.Thread},
		{key: "cpu", num: &record.CPU},
		{key: "node", num: &record.Node},
		{key: "tid", num: &record.TID},
	}

	if len(fields) != standardFields && len(fields) != len(targets) {
		return Record{}, fmt.Errorf("%d fields: %w", len(fields), ErrMalformed)
	}

	for idx, field := range fields {
		target := targets[idx]

		value, found := strings.CutPrefix(field, target.key+"=")
		if !found {
			return Record{}, fmt.Errorf("field %d is not %s: %w",
				idx, target.key, ErrMalformed)
		}

		if target.str != nil {
			*target.str = value
			continue
		}

		num, err := strconv.Atoi(value)
		if err != nil {
			return Record{}, fmt.Errorf("%s: %w", target.key, err)
		}

		*target.num = num
	}

	return record, nil
}

// standardFields is the number of fields of a line in standard format.
const standardFields = 4
