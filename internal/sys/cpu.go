// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// CPUInfo is the location the calling thread was scheduled on at the time of
// the query.
type CPUInfo struct {
	CPU  int
	Node int
}

// CurrentCPU returns the CPU and NUMA node the calling thread is running on.
//
// The result may be outdated as soon as it is returned, unless the thread is
// pinned to a single CPU.
func CurrentCPU() (CPUInfo, error) {
	var cpu, node uint32

	_, _, errno := unix.RawSyscall(
		unix.SYS_GETCPU,
		uintptr(unsafe.Pointer(&cpu)),
		uintptr(unsafe.Pointer(&node)),
		0,
	)
	if errno != 0 {
		return CPUInfo{}, fmt.Errorf("getcpu: %w", errno)
	}

	return CPUInfo{
		CPU:  int(cpu),
		Node: int(node),
	}, nil
}

// Gettid returns the kernel thread ID of the calling thread.
func Gettid() int {
	return unix.Gettid()
}

// AllowedCPUs returns the sorted CPU numbers the process may be scheduled on.
func AllowedCPUs() ([]int, error) {
	var set unix.CPUSet

	// PID 0 is the calling thread. Threads inherit the mask of the process
	// unless it has been changed for the single thread.
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return nil, fmt.Errorf("sched_getaffinity: %w", err)
	}

	cpus := make([]int, 0, set.Count())

	for cpu := range maxCPUs {
		if set.IsSet(cpu) {
			cpus = append(cpus, cpu)
		}
	}

	if len(cpus) == 0 {
		return nil, ErrNoCPUsAllowed
	}

	return cpus, nil
}

// PinToCPU restricts the calling thread to the given CPU.
//
// The caller must hold the OS thread with [runtime.LockOSThread] and should
// not unlock it anymore, as the Go runtime would reuse the thread with the
// changed affinity for other goroutines.
func PinToCPU(cpu int) error {
	if cpu < 0 || cpu >= maxCPUs {
		return fmt.Errorf("%d: %w", cpu, ErrInvalidCPU)
	}

	var set unix.CPUSet

	set.Zero()
	set.Set(cpu)

	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("sched_setaffinity cpu %d: %w", cpu, err)
	}

	return nil
}

// maxCPUs is the number of CPUs a [unix.CPUSet] can hold.
const maxCPUs = int(unsafe.Sizeof(unix.CPUSet{})) * 8
