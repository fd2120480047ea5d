//go:build linux

package affinity

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// Pin locks the calling goroutine to its current OS thread and
// restricts that thread's scheduling to the given logical CPU.
//
// Callers are kernel workers, each spawned with its own dedicated OS
// thread; Pin must be called from that worker's goroutine before it
// enters the scheduler main loop, since sched_setaffinity applies to
// the calling thread.
func Pin(cpu int) error {
	runtime.LockOSThread()

	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)

	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("affinity: pin to cpu %d: %w", cpu, err)
	}
	return nil
}

// Available reports the number of logical CPUs the calling process
// may be scheduled on.
func Available() int {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return runtime.NumCPU()
	}
	return set.Count()
}
