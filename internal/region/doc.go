// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package region provides a parallel region: a fixed number of workers that
// each run on their own OS thread and are joined at the end.
//
// All workers are started on region entry and meet at a start barrier before
// any of them runs the region body. This guarantees that all workers occupy
// distinct OS threads at the same time.
package region
