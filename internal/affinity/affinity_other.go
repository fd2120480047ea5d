//go:build !linux

package affinity

import "runtime"

// Pin locks the calling goroutine to its current OS thread. Outside
// Linux there is no portable equivalent of sched_setaffinity wired
// in, so the CPU restriction itself is a documented no-op: the worker
// still gets a dedicated OS thread, just not a pinned one.
func Pin(cpu int) error {
	runtime.LockOSThread()
	return nil
}

// Available reports the number of logical CPUs visible to the process.
func Available() int {
	return runtime.NumCPU()
}
