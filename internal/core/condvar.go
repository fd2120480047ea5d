package core

import "github.com/kolkov/arachne/internal/lowlevel"

// ConditionVariable is an intrusive FIFO of waiting ThreadIds,
// threaded through each waiter's own ThreadContext.cvNext field so
// that waiting never allocates. All operations must be called with
// the caller-supplied SpinLock held, matching the discipline every
// condition variable needs to avoid lost wakeups.
type ConditionVariable struct {
	head ThreadId
	tail ThreadId
}

// Wait releases lock, parks the calling thread, and re-acquires lock
// before returning. The caller must hold lock on entry. Spurious
// wakeups are permitted by this contract: callers must re-check their
// predicate in a loop.
//
//go:nosplit
func (cv *ConditionVariable) Wait(lock *SpinLock) {
	c := currentCore()
	ctx := c.running
	self := ThreadId{ctx: ctx, generation: ctx.Generation()}

	self.ctx.cvNext = NullThread
	if cv.head.IsNull() {
		cv.head = self
		cv.tail = self
	} else {
		cv.tail.ctx.cvNext = self
		cv.tail = self
	}

	ctx.wakeupTimeInCycles.Store(WakeupBlocked)
	lock.Unlock()
	lowlevel.Swapcontext(&ctx.sp, &c.kernelSP)
	lock.Lock()
}

// NotifyOne wakes the longest-waiting thread, if any. Must be called
// with the associated lock held; the caller releases the lock
// afterward, letting the woken thread (and any racing lockers)
// contend for it normally.
func (cv *ConditionVariable) NotifyOne() {
	if cv.head.IsNull() {
		return
	}
	id := cv.head
	cv.head = id.ctx.cvNext
	if cv.head.IsNull() {
		cv.tail = NullThread
	}
	id.ctx.cvNext = NullThread
	Signal(id)
}

// NotifyAll wakes every currently waiting thread; the list is empty
// when it returns.
func (cv *ConditionVariable) NotifyAll() {
	id := cv.head
	cv.head = NullThread
	cv.tail = NullThread
	for !id.IsNull() {
		next := id.ctx.cvNext
		id.ctx.cvNext = NullThread
		Signal(id)
		id = next
	}
}
