package core

import "sync/atomic"

// SpinLock is a test-and-set mutual-exclusion lock with Yield
// back-off on contention. It provides mutual exclusion only, with no
// ordering guarantees between distinct locks and no relation to
// fairness between waiters.
type SpinLock struct {
	locked atomic.Bool
}

// Lock blocks the calling thread until it holds the lock, yielding to
// the scheduler between attempts rather than busy-spinning across a
// suspension point.
//
//go:nosplit
func (l *SpinLock) Lock() {
	for !l.TryLock() {
		Yield()
	}
}

// TryLock attempts a single test-and-set and reports whether it
// succeeded.
//
//go:nosplit
func (l *SpinLock) TryLock() bool {
	return l.locked.CompareAndSwap(false, true)
}

// Unlock releases the lock. Unlocking a lock the caller does not hold
// is a caller bug, not a detected error.
//
//go:nosplit
func (l *SpinLock) Unlock() {
	l.locked.Store(false)
}
