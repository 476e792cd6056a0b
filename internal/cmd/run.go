// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/aibor/corecheck/internal/region"
	"github.com/aibor/corecheck/internal/report"
	"github.com/aibor/corecheck/internal/sys"
	"github.com/pkg/profile"
)

const (
	localConfigFile = ".corecheck-args"

	// traceFileName is the file name [profile.TraceProfile] writes to.
	traceFileName = "trace.out"
)

// IO provides output details for the command.
type IO struct {
	Stdout io.Writer
	Stderr io.Writer
}

func newFlags(args []string, cfg IO) (*flags, error) {
	args, err := MergedArgs(args, os.DirFS("."), localConfigFile)
	if err != nil {
		return nil, err
	}

	flags, err := parseArgs(args, cfg.Stderr)
	if err != nil {
		return nil, fmt.Errorf("parse args: %w", err)
	}

	return flags, nil
}

// probe returns the region body that reports a single thread.
func probe(
	identity sys.Identity,
	writer *report.LineWriter,
	collector *report.Collector,
) region.Func {
	return func(_ context.Context, worker region.Worker) error {
		info, err := sys.CurrentCPU()
		if err != nil {
			return err //nolint:wrapcheck
		}

		record := report.Record{
			PID:      identity.PID,
			Hostname: identity.Hostname,
			Thread:   worker.Index,
			CPU:      info.CPU,
			Node:     info.Node,
			TID:      sys.Gettid(),
		}

		collector.Add(record)

		return writer.WriteRecord(record) //nolint:wrapcheck
	}
}

func regionOptions(flags *flags) ([]region.Option, error) {
	if !flags.Pin {
		return nil, nil
	}

	cpus, err := sys.AllowedCPUs()
	if err != nil {
		return nil, fmt.Errorf("allowed cpus: %w", err)
	}

	slog.Debug("Pinning threads", slog.Any("cpus", cpus))

	return []region.Option{region.WithPinning(cpus)}, nil
}

// prepareTraceDir creates the trace directory and makes sure the trace file can
// be written. [profile.Start] exits the process on such failures instead of
// returning an error.
func prepareTraceDir(dir string) error {
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return err //nolint:wrapcheck
	}

	file, err := os.Create(filepath.Join(dir, traceFileName))
	if err != nil {
		return err //nolint:wrapcheck
	}

	_ = file.Close()

	return os.Remove(file.Name()) //nolint:wrapcheck
}

func run(ctx context.Context, flags *flags, cfg IO) error {
	if flags.TraceDir != "" {
		err := prepareTraceDir(flags.TraceDir)
		if err != nil {
			return fmt.Errorf("trace dir: %w", err)
		}

		defer profile.Start(
			profile.TraceProfile,
			profile.ProfilePath(flags.TraceDir),
			profile.NoShutdownHook,
			profile.Quiet,
		).Stop()

		slog.Debug("Tracing enabled", slog.String("dir", flags.TraceDir))
	}

	identity, err := sys.ReadIdentity()
	if err != nil {
		return fmt.Errorf("identity: %w", err)
	}

	slog.Debug("Process identity",
		slog.Int("pid", identity.PID),
		slog.String("hostname", identity.Hostname))

	opts, err := regionOptions(flags)
	if err != nil {
		return err
	}

	var (
		threads   = int(flags.Threads)
		writer    = report.NewLineWriter(cfg.Stdout, flags.Extended)
		collector = new(report.Collector)
	)

	err = region.Run(ctx, threads, probe(identity, writer, collector), opts...)
	if err != nil {
		return fmt.Errorf("parallel region: %w", err)
	}

	records := collector.Records()

	if flags.Summary {
		fmt.Fprintln(cfg.Stderr, report.Summarize(records).String())
	}

	if flags.Check {
		err := report.Check(records, threads)
		if err != nil {
			return fmt.Errorf("check: %w", err)
		}
	}

	return nil
}

func handleParseArgsError(err error) int {
	// [ErrHelp] is returned when help is requested. So exit without error
	// in this case.
	if errors.Is(err, ErrHelp) {
		return 0
	}

	// ParseArgs already prints errors, so we just exit without an error.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return -1
}

func handleRunError(err error) int {
	var workerErr *region.WorkerError
	if errors.As(err, &workerErr) {
		slog.Error("Thread failed",
			slog.Int("thread", workerErr.Index),
			slog.Any("error", workerErr.Err))

		return -1
	}

	slog.Error(err.Error())

	return -1
}

// Run is the main entry point for the CLI command.
func Run(ctx context.Context, args []string, cfg IO) int {
	setupLogging(cfg.Stderr, false)

	flags, err := newFlags(args, cfg)
	if err != nil {
		return handleParseArgsError(err)
	}

	setupLogging(cfg.Stderr, flags.Debug)

	if flags.Version {
		buildInfo, err := getBuildInfo()
		if err != nil {
			slog.Error(err.Error())
			return -1
		}

		fmt.Fprintf(cfg.Stdout, "Version: %s\n", buildInfo.Main.Version)

		return 0
	}

	err = run(ctx, flags, cfg)
	if err != nil {
		return handleRunError(err)
	}

	return 0
}

func getBuildInfo() (*debug.BuildInfo, error) {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, ErrReadBuildInfo
	}

	return buildInfo, nil
}
