package arachne

import (
	"time"

	"github.com/kolkov/arachne/internal/core"
)

// Option configures ThreadInit beyond what it derives from argv.
type Option = core.Option

// WithCycleCalibration replaces the default busy-wait cycle-counter
// calibration window with d, for tests and for callers that want
// ThreadInit to return without paying the default calibration delay.
func WithCycleCalibration(d time.Duration) Option {
	return core.WithCycleCalibration(d)
}

// WithStrictAffinity makes a worker's failure to pin to its CPU a
// fatal initialization error instead of a logged, continue-unpinned
// one.
func WithStrictAffinity() Option {
	return core.WithStrictAffinity()
}

// ThreadInit parses `-c`/`--numCores <N>` and `-s`/`--stackSize
// <bytes>` out of args (defaults 2 cores, 1MiB stacks), spawns one
// pinned kernel worker per core, and returns whatever of args was not
// consumed as library options, i.e. the application's own arguments.
//
// A literal "--" in args ends option parsing; an unrecognized flag
// also ends it, leaving it and everything after untouched.
func ThreadInit(args []string, opts ...Option) ([]string, error) {
	parsed, remaining, err := core.ParseOptions(args)
	if err != nil {
		return nil, err
	}
	if err := core.Init(parsed, opts...); err != nil {
		return nil, err
	}
	return remaining, nil
}

// ThreadDestroy signals every kernel worker to stop after its current
// scan and waits for them all to return. Calling it without a
// matching ThreadInit is a caller bug.
func ThreadDestroy() {
	_ = core.Destroy()
}

// NumCores returns the number of cores the running library was
// initialized with, or 0 if ThreadInit has not been called.
func NumCores() int {
	return core.NumCores()
}
