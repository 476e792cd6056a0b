// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package report

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Check verifies the records of a run with n threads: exactly n records,
// each thread index in [0, n) reported once, and identical process ID and
// hostname across all records. All violations found are returned joined.
//
// CPU IDs are not checked. Which CPU a thread runs on is up to the scheduler.
func Check(records []Record, n int) error {
	var errs []error

	if len(records) != n {
		errs = append(errs, fmt.Errorf("%w: got %d, want %d",
			ErrLineCount, len(records), n))
	}

	seen := make(map[int]bool, len(records))

	for _, record := range records {
		switch {
		case record.Thread < 0 || record.Thread >= n:
			errs = append(errs, fmt.Errorf("%w: %d not in [0, %d)",
				ErrThreadIndex, record.Thread, n))
		case seen[record.Thread]:
			errs = append(errs, fmt.Errorf("%w: %d reported twice",
				ErrThreadIndex, record.Thread))
		}

		seen[record.Thread] = true
	}

	if len(records) > 0 {
		first := records[0]

		for _, record := range records[1:] {
			if record.PID == first.PID && record.Hostname == first.Hostname {
				continue
			}

			errs = append(errs, fmt.Errorf(
				"%w: thread %d reports %d@%s, thread %d reports %d@%s",
				ErrIdentityMismatch,
				first.Thread, first.PID, first.Hostname,
				record.Thread, record.PID, record.Hostname,
			))
		}
	}

	return errors.Join(errs...)
}

// Summary describes how the threads of a run were spread.
type Summary struct {
	Threads int
	CPUs    []int
	Nodes   []int
}

// Summarize creates a [Summary] of the given records.
func Summarize(records []Record) Summary {
	summary := Summary{
		Threads: len(records),
	}

	for _, record := range records {
		summary.CPUs = append(summary.CPUs, record.CPU)
		summary.Nodes = append(summary.Nodes, record.Node)
	}

	slices.Sort(summary.CPUs)
	slices.Sort(summary.Nodes)

	summary.CPUs = slices.Compact(summary.CPUs)
	summary.Nodes = slices.Compact(summary.Nodes)

	return summary
}

// String returns the summary as a single line without newline.
func (s Summary) String() string {
	cpus := make([]string, len(s.CPUs))
	for idx, cpu := range s.CPUs {
		cpus[idx] = strconv.Itoa(cpu)
	}

	return fmt.Sprintf("threads=%d cpus=%d [%s] nodes=%d",
		s.Threads, len(s.CPUs), strings.Join(cpus, ","), len(s.Nodes))
}
