// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package report_test

import (
	"testing"

	"github.com/aibor/corecheck/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records(n int) []report.Record {
	records := make([]report.Record, n)
	for idx := range records {
		records[idx] = report.Record{
			PID:      100,
			Hostname: "host",
			Thread:   idx,
			CPU:      idx % 3,
			Node:     idx % 2,
		}
	}

	return records
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name         string
		records      func() []report.Record
		n            int
		expectedErrs []error
	}{
		{
			name:    "valid",
			records: func() []report.Record { return records(36) },
			n:       36,
		},
		{
			name: "valid with same cpu for all",
			records: func() []report.Record {
				r := records(4)
				for idx := range r {
					r[idx].CPU = 0
				}

				return r
			},
			n: 4,
		},
		{
			name:         "empty",
			records:      func() []report.Record { return nil },
			n:            2,
			expectedErrs: []error{report.ErrLineCount},
		},
		{
			name:         "too many",
			records:      func() []report.Record { return records(5) },
			n:            4,
			expectedErrs: []error{report.ErrLineCount, report.ErrThreadIndex},
		},
		{
			name: "duplicate index",
			records: func() []report.Record {
				r := records(4)
				r[3].Thread = 1

				return r
			},
			n:            4,
			expectedErrs: []error{report.ErrThreadIndex},
		},
		{
			name: "negative index",
			records: func() []report.Record {
				r := records(2)
				r[0].Thread = -1

				return r
			},
			n:            2,
			expectedErrs: []error{report.ErrThreadIndex},
		},
		{
			name: "pid mismatch",
			records: func() []report.Record {
				r := records(3)
				r[2].PID = 101

				return r
			},
			n:            3,
			expectedErrs: []error{report.ErrIdentityMismatch},
		},
		{
			name: "hostname mismatch",
			records: func() []report.Record {
				r := records(3)
				r[1].Hostname = "other"

				return r
			},
			n:            3,
			expectedErrs: []error{report.ErrIdentityMismatch},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := report.Check(tt.records(), tt.n)

			if len(tt.expectedErrs) == 0 {
				require.NoError(t, err)
				return
			}

			for _, expectedErr := range tt.expectedErrs {
				assert.ErrorIs(t, err, expectedErr)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	summary := report.Summarize(records(7))

	expected := report.Summary{
		Threads: 7,
		CPUs:    []int{0, 1, 2},
		Nodes:   []int{0, 1},
	}
	assert.Equal(t, expected, summary)
	assert.Equal(t, "threads=7 cpus=3 [0,1,2] nodes=2", summary.String())
}

func TestSummarize_Empty(t *testing.T) {
	summary := report.Summarize(nil)

	assert.Zero(t, summary.Threads)
	assert.Equal(t, "threads=0 cpus=0 [] nodes=0", summary.String())
}
