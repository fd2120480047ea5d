package core

import "testing"

// fakeWaiter builds a ThreadId backed by a standalone ThreadContext,
// bypassing CreateThread, so the intrusive waiter-list mechanics can
// be tested without a running scheduler.
func fakeWaiter() ThreadId {
	ctx := &ThreadContext{}
	ctx.wakeupTimeInCycles.Store(WakeupBlocked)
	return ThreadId{ctx: ctx, generation: ctx.Generation()}
}

func TestConditionVariable_NotifyOneWakesOldestWaiter(t *testing.T) {
	var cv ConditionVariable
	a, b := fakeWaiter(), fakeWaiter()

	enqueue(&cv, a)
	enqueue(&cv, b)

	cv.NotifyOne()

	if a.ctx.wakeupTimeInCycles.Load() != WakeupRunnable {
		t.Error("NotifyOne did not wake the first waiter")
	}
	if b.ctx.wakeupTimeInCycles.Load() != WakeupBlocked {
		t.Error("NotifyOne woke the second waiter too")
	}

	cv.NotifyOne()
	if b.ctx.wakeupTimeInCycles.Load() != WakeupRunnable {
		t.Error("second NotifyOne did not wake the remaining waiter")
	}
	if !cv.head.IsNull() {
		t.Error("waiter list should be empty after draining both waiters")
	}
}

func TestConditionVariable_NotifyOneOnEmptyListIsNoop(t *testing.T) {
	var cv ConditionVariable
	cv.NotifyOne() // must not panic
}

func TestConditionVariable_NotifyAllWakesEveryWaiter(t *testing.T) {
	var cv ConditionVariable
	waiters := []ThreadId{fakeWaiter(), fakeWaiter(), fakeWaiter()}
	for _, w := range waiters {
		enqueue(&cv, w)
	}

	cv.NotifyAll()

	for i, w := range waiters {
		if w.ctx.wakeupTimeInCycles.Load() != WakeupRunnable {
			t.Errorf("waiter %d not woken by NotifyAll", i)
		}
	}
	if !cv.head.IsNull() || !cv.tail.IsNull() {
		t.Error("waiter list should be empty after NotifyAll")
	}
}

// enqueue appends id to cv's waiter list the same way Wait does,
// without needing a live scheduler to reach that code path.
func enqueue(cv *ConditionVariable, id ThreadId) {
	id.ctx.cvNext = NullThread
	if cv.head.IsNull() {
		cv.head = id
		cv.tail = id
		return
	}
	cv.tail.ctx.cvNext = id
	cv.tail = id
}
