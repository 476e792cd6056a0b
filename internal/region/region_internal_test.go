// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package region

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_PinError(t *testing.T) {
	var called atomic.Int32

	pin := func(cpu int) error {
		if cpu == 1 {
			return assert.AnError
		}

		return nil
	}

	err := Run(context.Background(), 4,
		func(context.Context, Worker) error {
			called.Add(1)
			return nil
		},
		WithPinning([]int{0, 1}),
		withPinFunc(pin),
	)
	require.ErrorIs(t, err, assert.AnError)

	var workerErr *WorkerError
	require.ErrorAs(t, err, &workerErr)
	assert.Equal(t, 1, workerErr.Index%2, "failing worker pinned to cpu 1")
	assert.LessOrEqual(t, called.Load(), int32(2))
}
