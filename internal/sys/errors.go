// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import "errors"

var (
	// ErrInvalidCPU is returned if a CPU number is negative or beyond the
	// size of the affinity mask.
	ErrInvalidCPU = errors.New("invalid CPU number")

	// ErrNoCPUsAllowed is returned if the affinity mask of the process is
	// empty.
	ErrNoCPUsAllowed = errors.New("no CPUs in affinity mask")
)
