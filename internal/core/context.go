// Package core implements the scheduler engine: per-slot thread
// contexts, the atomic occupancy word, the scheduler main loop, the
// trampoline, thread placement, and the primitive synchronization
// objects that share this package's data structures.
//
// This package is internal because its exported names are part of the
// library's implementation, not its contract; the root arachne
// package is the contract.
package core

import (
	"sync/atomic"

	"github.com/kolkov/arachne/internal/cacheline"
	"github.com/kolkov/arachne/internal/lowlevel"
)

// WakeupBlocked is the wakeupTimeInCycles sentinel meaning "not
// runnable". WakeupRunnable (zero) means "runnable immediately"; any
// other value is an absolute cycle deadline.
const WakeupBlocked = ^uint64(0)

// WakeupRunnable is the wakeupTimeInCycles value for a thread that
// should be scheduled as soon as a worker scans its slot.
const WakeupRunnable = 0

// ThreadContext is the per-slot record the scheduler switches onto
// and off of. Contexts are allocated once at init, one per (core,
// slot) pair, and never freed before teardown: "creating a thread"
// claims a free slot and overwrites its invocation; "thread exit"
// releases the slot and bumps generation.
type ThreadContext struct {
	// sp is the saved stack pointer for this thread when it is not
	// the one running on its core. It is only ever read or written by
	// the scheduler main loop and the trampoline for this slot, plus
	// the one-time write at creation time before the slot becomes
	// visible to the scheduler.
	sp uintptr

	// stack is the owned stack memory block for this slot. It is
	// sized once at init (StackSize) and reused across every occupant
	// of the slot.
	stack []byte

	// wakeupTimeInCycles is the single concurrent channel between a
	// blocked thread and whatever wakes it: WakeupBlocked means
	// parked, WakeupRunnable means runnable now, anything else is an
	// absolute cycle deadline. It is a plain atomic word; every
	// writer of a smaller value races only with other such writers
	// and with the scheduler's read, and every such race is benign.
	wakeupTimeInCycles atomic.Uint64

	// generation counts how many times this slot has been occupied.
	// It only ever increases, incremented by the trampoline right
	// before it releases the slot. join and ThreadId validity both
	// rely on this monotonicity.
	generation atomic.Uint64

	// invocation holds the type-erased callable this slot will run
	// once the scheduler switches onto it.
	invocation invocation

	// cvNext threads this context into a condition variable's
	// intrusive waiter list. It is only valid while the context is
	// queued on some ConditionVariable, and is owned by whichever
	// ConditionVariable currently holds it (see condvar.go).
	cvNext ThreadId

	coreID    int
	slotIndex int
}

// newThreadContext allocates one slot's permanent state: a
// cache-line-aligned stack buffer of the given size. Everything else
// is zero until the slot's first occupant.
func newThreadContext(coreID, slotIndex, stackSize int) *ThreadContext {
	ctx := &ThreadContext{
		stack:     cacheline.AlignedBytes(stackSize),
		coreID:    coreID,
		slotIndex: slotIndex,
	}
	ctx.wakeupTimeInCycles.Store(WakeupBlocked)
	return ctx
}

// activate writes a fresh trampoline frame onto the slot's stack and
// marks it immediately runnable. Called once per occupancy, after the
// invocation has been written and before the slot's occupancy bit is
// published.
func (ctx *ThreadContext) activate(trampoline uintptr) {
	ctx.sp = lowlevel.BuildInitialStack(ctx.stack, trampoline)
	ctx.wakeupTimeInCycles.Store(WakeupRunnable)
}

// Generation returns the slot's current occupant generation.
func (ctx *ThreadContext) Generation() uint64 { return ctx.generation.Load() }

// ThreadId is an opaque (context, generation) pair. It is valid only
// while ctx's current generation still equals the stored generation.
type ThreadId struct {
	ctx        *ThreadContext
	generation uint64
}

// NullThread indicates "no thread / creation failed".
var NullThread = ThreadId{}

// IsNull reports whether id is the distinguished null thread.
func (id ThreadId) IsNull() bool { return id.ctx == nil }

// HasExited reports whether the referenced slot has moved on to a
// different occupant (or was never one): the generation changed.
func (id ThreadId) HasExited() bool {
	if id.ctx == nil {
		return true
	}
	return id.ctx.generation.Load() != id.generation
}
