// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package region

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned if a region is requested with less than one
	// worker.
	ErrInvalidSize = errors.New("region size must be at least 1")

	// ErrNoCPUs is returned if pinning is requested with an empty CPU list.
	ErrNoCPUs = errors.New("no CPUs to pin to")

	// ErrPanic is returned if a [Func] panicked.
	ErrPanic = errors.New("worker panicked")
)

// WorkerError wraps any error returned by a single worker.
type WorkerError struct {
	Index int
	Err   error
}

// Error implements the [error] interface.
func (e *WorkerError) Error() string {
	return fmt.Sprintf("worker %d: %v", e.Index, e.Err)
}

// Is implements the [errors.Is] interface.
func (*WorkerError) Is(other error) bool {
	_, ok := other.(*WorkerError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *WorkerError) Unwrap() error {
	return e.Err
}
