// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package region

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/aibor/corecheck/internal/sys"
	"golang.org/x/sync/errgroup"
)

// NotPinned is the [Worker.PinnedCPU] value of workers that may be scheduled
// on any allowed CPU.
const NotPinned = -1

// Worker describes the worker a [Func] is called for.
type Worker struct {
	// Index of the worker in the range [0, Size).
	Index int
	// Size is the number of workers in the region.
	Size int
	// PinnedCPU is the CPU the worker's thread is restricted to, or
	// [NotPinned].
	PinnedCPU int
}

// Func is the region body run once by every worker.
type Func func(ctx context.Context, worker Worker) error

// Option configures a region.
type Option func(*config)

type config struct {
	cpus []int
	pin  func(cpu int) error
}

// WithPinning pins worker i to cpus[i % len(cpus)].
func WithPinning(cpus []int) Option {
	return func(c *config) {
		c.cpus = cpus
	}
}

func withPinFunc(fn func(int) error) Option {
	return func(c *config) {
		c.pin = fn
	}
}

// Run starts n workers, each locked to its own OS thread, and calls fn once
// for each of them. It returns once all workers are done.
//
// The first error returned by any worker cancels the context passed to the
// other workers and is returned. Panics in fn are recovered and returned as
// error wrapping [ErrPanic].
func Run(ctx context.Context, n int, fn Func, opts ...Option) error {
	if n < 1 {
		return fmt.Errorf("%d: %w", n, ErrInvalidSize)
	}

	cfg := config{
		pin: sys.PinToCPU,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.cpus != nil && len(cfg.cpus) == 0 {
		return ErrNoCPUs
	}

	slog.Debug("Entering parallel region",
		slog.Int("workers", n),
		slog.Bool("pinned", cfg.cpus != nil))

	var ready sync.WaitGroup

	ready.Add(n)

	group, groupCtx := errgroup.WithContext(ctx)

	for idx := range n {
		worker := Worker{
			Index:     idx,
			Size:      n,
			PinnedCPU: NotPinned,
		}

		if cfg.cpus != nil {
			worker.PinnedCPU = cfg.cpus[idx%len(cfg.cpus)]
		}

		group.Go(func() error {
			err := runWorker(groupCtx, worker, fn, cfg.pin, &ready)
			if err != nil {
				return &WorkerError{Index: worker.Index, Err: err}
			}

			return nil
		})
	}

	err := group.Wait()

	slog.Debug("Left parallel region", slog.Any("error", err))

	return err //nolint:wrapcheck
}

func runWorker(
	ctx context.Context,
	worker Worker,
	fn Func,
	pin func(int) error,
	ready *sync.WaitGroup,
) error {
	runtime.LockOSThread()

	// A thread with changed affinity must not go back to the runtime's
	// thread pool. Leaving it locked terminates it with the goroutine.
	if worker.PinnedCPU == NotPinned {
		defer runtime.UnlockOSThread()
	}

	var pinErr error
	if worker.PinnedCPU != NotPinned {
		pinErr = pin(worker.PinnedCPU)
	}

	ready.Done()
	ready.Wait()

	if pinErr != nil {
		return pinErr
	}

	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}

	return call(ctx, worker, fn)
}

func call(ctx context.Context, worker Worker, fn Func) (err error) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}

		if recoveredErr, ok := rec.(error); ok {
			err = fmt.Errorf("%w: %w", ErrPanic, recoveredErr)
		} else {
			err = fmt.Errorf("%w: %v", ErrPanic, rec)
		}
	}()

	return fn(ctx, worker)
}
