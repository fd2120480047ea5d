package core

import (
	"math/bits"
	"reflect"
	"runtime"

	"github.com/kolkov/arachne/internal/cycles"
	"github.com/kolkov/arachne/internal/lowlevel"
)

// Core is one kernel worker's state: the slots it owns, the atomic
// occupancy word guarding them, and the saved stack pointer the
// scheduler loop resumes into whenever a user thread switches back.
type Core struct {
	id int

	occupancy occupiedAndCount
	slots     [MaxThreadsPerCore]*ThreadContext

	// running is the slot currently switched onto. Only this core's
	// own goroutine ever reads or writes it.
	running *ThreadContext

	// kernelSP is where swapcontext leaves this worker's own stack
	// pointer while a user thread runs; threadMain resumes from here
	// every time a user thread switches back.
	kernelSP uintptr

	stackSize int
}

var trampolineAddr = reflect.ValueOf(trampoline).Pointer()

// newCore allocates a core's slot array, with one pre-built
// ThreadContext per slot (each owning its own stack buffer).
func newCore(id, stackSize int) *Core {
	c := &Core{id: id, stackSize: stackSize}
	for i := range c.slots {
		c.slots[i] = newThreadContext(id, i, stackSize)
	}
	return c
}

// threadMain is the function each kernel worker runs forever: it is
// the Go goroutine body pinned to this core's CPU.
//
// Per iteration: find a runnable slot (occupancy bit set and
// wakeupTimeInCycles <= now), switch onto it, and resume here when it
// switches back. If nothing is runnable, spin: the scheduler polls,
// it never sleeps.
func (c *Core) threadMain(shutdown <-chan struct{}) {
	for {
		select {
		case <-shutdown:
			return
		default:
		}

		slot := c.pickRunnable()
		if slot == nil {
			runtime.Gosched()
			continue
		}

		c.running = slot
		slot.wakeupTimeInCycles.Store(WakeupBlocked)
		lowlevel.Swapcontext(&c.kernelSP, &slot.sp)
		c.running = nil
	}
}

// pickRunnable scans the occupancy bitmap low-bit-first and returns
// the first occupied slot whose wakeup time has arrived, or nil.
func (c *Core) pickRunnable() *ThreadContext {
	bitmap, _ := c.occupancy.Load()
	if bitmap == 0 {
		return nil
	}
	now := cycles.Now()
	for bitmap != 0 {
		slot := leastSignificantSetBit(bitmap)
		bitmap &^= uint64(1) << uint(slot)

		ctx := c.slots[slot]
		if ctx.wakeupTimeInCycles.Load() <= now {
			return ctx
		}
	}
	return nil
}

func leastSignificantSetBit(bitmap uint64) int {
	return bits.TrailingZeros64(bitmap)
}

// trampoline is the fixed routine every user thread's stack returns
// into once its callable finishes. It is reached by a raw stack
// switch, not a Go call, so it must never assume a caller frame below
// it; it runs the stored invocation, releases its slot, and switches
// back to the scheduler without ever returning.
//
//go:nosplit
func trampoline() {
	c := currentCore()
	ctx := c.running

	ctx.invocation.run()

	c.occupancy.release(ctx.slotIndex)
	ctx.generation.Add(1)

	lowlevel.Swapcontext(&ctx.sp, &c.kernelSP)
}
