// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package report provides the diagnostic line each worker thread prints and
// the checks run over all lines of a run.
//
// A line has the format:
//
//	process=<9-digit pid> hostname=<name> thread=<2-digit index> cpu=<2-digit id>
//
// The extended format appends " node=<numa node> tid=<thread id>".
package report
