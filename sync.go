package arachne

import "github.com/kolkov/arachne/internal/core"

// SpinLock is a test-and-set mutual-exclusion lock for user threads.
// Contention backs off with Yield rather than busy-spinning the CPU,
// so a thread waiting on a SpinLock still lets other threads on the
// same core run.
type SpinLock = core.SpinLock

// ConditionVariable is an intrusive FIFO of waiting threads, used
// together with a SpinLock the caller already holds. Spurious
// wakeups are permitted: wait in a predicate loop.
type ConditionVariable = core.ConditionVariable
