// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package sys provides the operating system queries a worker thread uses to
// describe itself: process identity, the CPU and NUMA node it is currently
// scheduled on and its CPU affinity.
//
// All functions in this package operate on the calling OS thread where a
// thread is involved. Callers must lock their goroutine to the OS thread with
// [runtime.LockOSThread] for the results to be meaningful.
package sys
