// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package report

import (
	"errors"
	"fmt"
)

var (
	// ErrLineCount is returned if a run did not produce exactly one line per
	// thread.
	ErrLineCount = errors.New("unexpected number of lines")

	// ErrThreadIndex is returned if a thread index is out of range or was
	// reported more than once.
	ErrThreadIndex = errors.New("invalid thread index")

	// ErrIdentityMismatch is returned if threads of the same run report
	// different process IDs or hostnames.
	ErrIdentityMismatch = errors.New("process identity differs between threads")

	// ErrMalformed is returned if a line does not have the expected fields.
	ErrMalformed = errors.New("malformed line")
)

// ParseError is returned if a line can not be parsed.
type ParseError struct {
	Line string
	Err  error
}

// Error implements the [error] interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse line %q: %v", e.Line, e.Err)
}

// Is implements the [errors.Is] interface.
func (*ParseError) Is(other error) bool {
	_, ok := other.(*ParseError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ParseError) Unwrap() error {
	return e.Err
}
