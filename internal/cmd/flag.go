// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

const (
	name = "corecheck"

	threadsDefault = 36
	threadsMin     = 1
	threadsMax     = 4096

	usageMessage = `Usage of 'corecheck':
    corecheck [flags...]

Starts a number of parallel threads. Each prints one line with the process ID,
the hostname, its thread index and the CPU it is scheduled on:
	process=000012345 hostname=node01 thread=00 cpu=03

All corecheck flags can also be provided via environment variable
CORECHECK_ARGS:
	CORECHECK_ARGS="-threads=8 -summary" corecheck

All corecheck flags can also be provided via file ./.corecheck-args, with one
argument per line.
`
)

type flags struct {
	Threads  uint64
	Pin      bool
	Extended bool
	Summary  bool
	Check    bool
	TraceDir string
	Debug    bool
	Version  bool
}

func parseArgs(args []string, output io.Writer) (*flags, error) {
	flags := &flags{
		Threads: threadsDefault,
	}

	flagSet := newFlagSet(flags, output)

	err := flagSet.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, ErrHelp
		}

		// Parse already printed the error and usage.
		return nil, &ParseArgsError{msg: "flag parse", err: err}
	}

	// With version flag, just return. Positional arguments do not matter
	// anymore.
	if flags.Version {
		return flags, nil
	}

	if flagSet.NArg() > 0 {
		return nil, fail(flagSet, "unexpected positional arguments",
			fmt.Errorf("%q", flagSet.Args()))
	}

	return flags, nil
}

func newFlagSet(f *flags, output io.Writer) *flag.FlagSet {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(flagSet.Output(), usageMessage)
		fmt.Fprintln(flagSet.Output(), "\nFlags:")
		flagSet.PrintDefaults()
	}

	flagSet.Var(
		&LimitedUintValue{
			Value: &f.Threads,
			Lower: threadsMin,
			Upper: threadsMax,
		},
		"threads",
		"number of parallel threads",
	)

	flagSet.BoolVar(
		&f.Pin,
		"pin",
		f.Pin,
		"pin each thread to one CPU of the process's affinity mask, "+
			"round-robin by thread index",
	)

	flagSet.BoolVar(
		&f.Extended,
		"extended",
		f.Extended,
		"append NUMA node and thread ID to each line",
	)

	flagSet.BoolVar(
		&f.Summary,
		"summary",
		f.Summary,
		"print the number of distinct CPUs and NUMA nodes used on stderr",
	)

	flagSet.BoolVar(
		&f.Check,
		"check",
		f.Check,
		"fail if thread indices, process ID or hostname are inconsistent",
	)

	flagSet.StringVar(
		&f.TraceDir,
		"trace",
		f.TraceDir,
		"write a Go execution trace of the run into this directory",
	)

	flagSet.BoolVar(
		&f.Debug,
		"debug",
		f.Debug,
		"enable debug output",
	)

	flagSet.BoolVar(
		&f.Version,
		"version",
		f.Version,
		"show version and exit",
	)

	return flagSet
}

// fail fails like flag does. It prints the error first and then usage.
func fail(flagSet *flag.FlagSet, msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(flagSet.Output(), err.Error())

	flagSet.Usage()

	return err
}
