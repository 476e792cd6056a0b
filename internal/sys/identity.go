// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"fmt"
	"os"
)

// Identity is the process wide identity that is the same for all threads.
type Identity struct {
	PID      int
	Hostname string
}

// ReadIdentity reads the process ID and the hostname of the system.
func ReadIdentity() (Identity, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return Identity{}, fmt.Errorf("hostname: %w", err)
	}

	return Identity{
		PID:      os.Getpid(),
		Hostname: hostname,
	}, nil
}
