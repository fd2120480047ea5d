package core

import (
	"runtime"

	"github.com/kolkov/arachne/internal/cycles"
	"github.com/kolkov/arachne/internal/lowlevel"
)

// Yield switches the calling user thread back to its core's
// scheduler, marking it immediately runnable again. The scheduler
// scans in bit order and considers every runnable slot each pass, so
// a thread that yields regularly is never starved.
//
//go:nosplit
func Yield() {
	c := currentCore()
	ctx := c.running
	ctx.wakeupTimeInCycles.Store(WakeupRunnable)
	lowlevel.Swapcontext(&ctx.sp, &c.kernelSP)
}

// Sleep parks the calling thread until at least ns has elapsed,
// measured by the calibrated cycle counter. The scheduler will skip
// this thread's slot until the deadline passes.
//
//go:nosplit
func Sleep(ns uint64) {
	c := currentCore()
	ctx := c.running
	deadline := cycles.Now() + cycles.NsToCycles(ns)
	ctx.wakeupTimeInCycles.Store(deadline)
	lowlevel.Swapcontext(&ctx.sp, &c.kernelSP)
}

// Block parks the calling thread indefinitely; it will not run again
// until some other thread calls Signal on its id.
//
//go:nosplit
func Block() {
	c := currentCore()
	ctx := c.running
	ctx.wakeupTimeInCycles.Store(WakeupBlocked)
	lowlevel.Swapcontext(&ctx.sp, &c.kernelSP)
}

// Signal marks id's slot immediately runnable. It does not check
// id's generation: signalling a slot that has since been reused by a
// different thread is the caller's bug, not a library-detected error,
// matching the wakeup protocol's only concurrent channel.
func Signal(id ThreadId) {
	if id.IsNull() {
		return
	}
	id.ctx.wakeupTimeInCycles.Store(WakeupRunnable)
}

// Join spins until id's generation no longer matches the context's
// current generation, proof that the occupant that created id has
// exited. Returns immediately if the target has already exited.
//
// Join may be called either from a scheduled user thread, in which
// case it backs off with Yield so its own core keeps making progress,
// or from an arbitrary goroutine outside the scheduler (typically the
// application's own main goroutine waiting for startup work to
// finish), in which case it backs off with runtime.Gosched instead,
// since there is no slot to suspend.
func Join(id ThreadId) {
	if id.IsNull() {
		return
	}
	for id.ctx.generation.Load() == id.generation {
		if currentCore() != nil {
			Yield()
		} else {
			runtime.Gosched()
		}
	}
}
