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

func TestRecord_String(t *testing.T) {
	tests := []struct {
		name     string
		record   report.Record
		expected string
	}{
		{
			name:     "zero",
			expected: "process=000000000 hostname= thread=00 cpu=00",
		},
		{
			name: "padded",
			record: report.Record{
				PID:      4242,
				Hostname: "node17",
				Thread:   3,
				CPU:      7,
				Node:     1,
				TID:      4250,
			},
			expected: "process=000004242 hostname=node17 thread=03 cpu=07",
		},
		{
			name: "wider than padding",
			record: report.Record{
				PID:      1234567890,
				Hostname: "big.example.com",
				Thread:   128,
				CPU:      191,
			},
			expected: "process=1234567890 hostname=big.example.com " +
				"thread=128 cpu=191",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.record.String())
		})
	}
}

func TestRecord_Extended(t *testing.T) {
	record := report.Record{
		PID:      4242,
		Hostname: "node17",
		Thread:   35,
		CPU:      12,
		Node:     1,
		TID:      4250,
	}

	expected := "process=000004242 hostname=node17 thread=35 cpu=12 " +
		"node=1 tid=4250"
	assert.Equal(t, expected, record.Extended())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected report.Record
	}{
		{
			name: "standard",
			line: "process=000004242 hostname=node17 thread=03 cpu=07",
			expected: report.Record{
				PID:      4242,
				Hostname: "node17",
				Thread:   3,
				CPU:      7,
			},
		},
		{
			name: "with newline",
			line: "process=000000001 hostname=h thread=00 cpu=00\n",
			expected: report.Record{
				PID:      1,
				Hostname: "h",
			},
		},
		{
			name: "wide numbers",
			line: "process=1234567890 hostname=big thread=128 cpu=191",
			expected: report.Record{
				PID:      1234567890,
				Hostname: "big",
				Thread:   128,
				CPU:      191,
			},
		},
		{
			name: "empty hostname",
			line: "process=000000001 hostname= thread=02 cpu=03",
			expected: report.Record{
				PID:    1,
				Thread: 2,
				CPU:    3,
			},
		},
		{
			name: "extended",
			line: "process=000004242 hostname=node17 thread=35 cpu=12 " +
				"node=1 tid=4250",
			expected: report.Record{
				PID:      4242,
				Hostname: "node17",
				Thread:   35,
				CPU:      12,
				Node:     1,
				TID:      4250,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := report.Parse(tt.line)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestParse_Error(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{
			name: "empty",
		},
		{
			name: "garbage",
			line: "hello world",
		},
		{
			name: "missing cpu",
			line: "process=000004242 hostname=node17 thread=03",
		},
		{
			name: "non numeric thread",
			line: "process=000004242 hostname=node17 thread=xx cpu=07",
		},
		{
			name: "negative sign only",
			line: "process=- hostname=h thread=00 cpu=00",
		},
		{
			name: "fields swapped",
			line: "hostname=h process=000000001 thread=00 cpu=00",
		},
		{
			name: "truncated extended",
			line: "process=000004242 hostname=node17 thread=03 cpu=07 node=1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := report.Parse(tt.line)
			require.ErrorIs(t, err, &report.ParseError{})
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		record report.Record
	}{
		{
			name: "zero",
		},
		{
			name: "no hostname",
			record: report.Record{
				PID:    1,
				Thread: 2,
				CPU:    3,
			},
		},
		{
			name: "wide",
			record: report.Record{
				PID:      1234567890,
				Hostname: "big.example.com",
				Thread:   128,
				CPU:      191,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := report.Parse(tt.record.String())
			require.NoError(t, err)
			assert.Equal(t, tt.record, actual, "standard")

			actual, err = report.Parse(tt.record.Extended())
			require.NoError(t, err)
			assert.Equal(t, tt.record, actual, "extended")
		})
	}
}
