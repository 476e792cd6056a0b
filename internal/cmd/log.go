// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"io"
	"log/slog"
	"os"
)

// setupLogging sets the default logger. Every record carries the process ID,
// so messages of multiple corecheck processes launched together on one host
// can be told apart on a shared stderr.
func setupLogging(writer io.Writer, debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(
		writer,
		&slog.HandlerOptions{
			Level: level,
		},
	)

	slog.SetDefault(slog.New(handler).With(slog.Int("pid", os.Getpid())))
}
