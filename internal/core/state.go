package core

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/kolkov/arachne/internal/affinity"
	"github.com/kolkov/arachne/internal/cycles"
)

const (
	defaultNumCores  = 2
	defaultStackSize = 1048576
)

// ErrAlreadyInitialized is returned by Init when the library is
// already running.
var ErrAlreadyInitialized = errors.New("arachne: already initialized")

// ErrNotInitialized is returned by Destroy, and by creation/placement
// calls, when the library has not been (or is no longer) initialized.
var ErrNotInitialized = errors.New("arachne: not initialized")

// ErrCapacityExhausted is the cause createOn returns when a core's
// slot array is full. CreateThread and its generic variants discard
// the error and return NullThread instead, per the library's
// contract, but createOn's own return value lets tests assert the
// cause with errors.Is.
var ErrCapacityExhausted = errors.New("arachne: core has no free slot")

// Options is the parsed result of ThreadInit's flag parsing: the
// fixed set of process-wide knobs that survive an Init.
type Options struct {
	NumCores  int
	StackSize int

	// StrictAffinity makes a worker's failure to pin to its CPU fatal.
	// By default pinning failure is only logged: a developer machine
	// with cgroup-restricted CPUs should still run an unpinned worker
	// rather than refuse to start.
	StrictAffinity bool

	cycleCalibration func()
}

// Library is the process-wide scheduler state: once initialized, its
// core slice is fixed until Destroy. There is exactly one instance,
// held in the package-level global below; Init and Destroy are its
// only legal transitions.
type Library struct {
	opts      Options
	cores     []*Core
	shutdown  chan struct{}
	workersWG chan struct{}
}

var lib struct {
	l       *Library
	running bool
}

// ParseOptions consumes `-c`/`--numCores <N>` and `-s`/`--stackSize
// <bytes>` from args, removing recognized flags and their arguments.
// A literal "--" ends option parsing; everything after it, and any
// unrecognized flag, is left in the returned remaining slice exactly
// where option parsing stopped. Defaults: NumCores=2, StackSize=1MiB.
func ParseOptions(args []string) (Options, []string, error) {
	opts := Options{NumCores: defaultNumCores, StackSize: defaultStackSize}

	i := 0
	for i < len(args) {
		arg := args[i]

		if arg == "--" {
			i++
			break
		}

		switch arg {
		case "-c", "--numCores":
			if i+1 >= len(args) {
				return opts, nil, fmt.Errorf("%s requires an argument", arg)
			}
			n, err := strconv.Atoi(args[i+1])
			if err != nil {
				return opts, nil, fmt.Errorf("%s: %w", arg, err)
			}
			opts.NumCores = n
			i += 2
			continue
		case "-s", "--stackSize":
			if i+1 >= len(args) {
				return opts, nil, fmt.Errorf("%s requires an argument", arg)
			}
			n, err := strconv.Atoi(args[i+1])
			if err != nil {
				return opts, nil, fmt.Errorf("%s: %w", arg, err)
			}
			opts.StackSize = n
			i += 2
			continue
		}

		// Unknown flag: stop parsing, leave it and the rest untouched.
		break
	}

	return opts, args[i:], nil
}

// Option configures Init beyond what ParseOptions derives from argv.
type Option func(*Options)

// WithStrictAffinity makes a worker's CPU-pinning failure fatal
// instead of merely logged. Used by the test suite, where an unpinned
// worker silently weakens the guarantees a test is checking.
func WithStrictAffinity() Option {
	return func(o *Options) { o.StrictAffinity = true }
}

// WithCycleCalibration shortens (or otherwise overrides) the
// busy-wait duration Init uses to calibrate the cycle counter against
// time.Now, so tests don't pay the default calibration window.
func WithCycleCalibration(d time.Duration) Option {
	return func(o *Options) {
		o.cycleCalibration = func() { cycles.Calibrate(d) }
	}
}

// calibrationWindow is how long Init's default calibration busy-waits
// to measure the cycle-counter rate.
const calibrationWindow = 10 * time.Millisecond

// fatal reports an operator-facing initialization failure and
// terminates the process. Unlike a programmer-contract violation,
// this is not a panic: there is no caller code on the stack for a
// recovered panic to usefully resume.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "arachne: "+format+"\n", args...)
	os.Exit(2)
}

// Init spawns opts.NumCores kernel workers, each pinned to its own
// CPU and running the scheduler main loop, and allocates their slot
// arrays. It is a caller error to call Init twice without an
// intervening Destroy.
func Init(opts Options, extra ...Option) error {
	if lib.running {
		return ErrAlreadyInitialized
	}
	for _, o := range extra {
		o(&opts)
	}
	if opts.NumCores <= 0 {
		opts.NumCores = defaultNumCores
	}
	if opts.StackSize <= 0 {
		opts.StackSize = defaultStackSize
	}

	if opts.cycleCalibration != nil {
		opts.cycleCalibration()
	} else {
		cycles.Calibrate(calibrationWindow)
	}

	if available := affinity.Available(); opts.NumCores > available {
		if opts.StrictAffinity {
			fatal("requested %d cores, only %d logical CPUs available for this process", opts.NumCores, available)
		}
		fmt.Fprintf(os.Stderr, "arachne: requested %d cores, only %d logical CPUs available for this process (continuing oversubscribed)\n", opts.NumCores, available)
	}

	l := &Library{
		opts:     opts,
		cores:    make([]*Core, opts.NumCores),
		shutdown: make(chan struct{}),
	}
	for id := 0; id < opts.NumCores; id++ {
		l.cores[id] = newCore(id, opts.StackSize)
	}

	l.workersWG = make(chan struct{}, opts.NumCores)
	for id := 0; id < opts.NumCores; id++ {
		c := l.cores[id]
		go func() {
			if err := affinity.Pin(c.id); err != nil {
				if opts.StrictAffinity {
					fatal("core %d: %v", c.id, err)
				}
				fmt.Fprintf(os.Stderr, "arachne: core %d: %v (continuing unpinned)\n", c.id, err)
			}
			c.threadMain(l.shutdown)
			l.workersWG <- struct{}{}
		}()
	}

	lib.l = l
	lib.running = true
	return nil
}

// Destroy signals every worker to stop after its current scan, waits
// for all of them to return, and clears the global state so a
// subsequent Init can run clean. Destroying a library that never
// called Init successfully is a caller bug.
func Destroy() error {
	if !lib.running {
		return ErrNotInitialized
	}
	l := lib.l
	close(l.shutdown)
	for range l.cores {
		<-l.workersWG
	}
	lib.l = nil
	lib.running = false
	return nil
}

// CoreByID returns the initialized library's nth core, or nil if the
// library is not running or id is out of range.
func CoreByID(id int) *Core {
	if !lib.running || id < 0 || id >= len(lib.l.cores) {
		return nil
	}
	return lib.l.cores[id]
}

// NumCores returns the number of cores the running library was
// initialized with, or 0 if it is not running.
func NumCores() int {
	if !lib.running {
		return 0
	}
	return len(lib.l.cores)
}
