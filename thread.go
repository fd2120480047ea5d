package arachne

import (
	"fmt"
	"time"

	"github.com/kolkov/arachne/internal/core"
)

// ThreadId identifies a user thread created by CreateThread. The zero
// value is NullThread.
type ThreadId = core.ThreadId

// NullThread is the distinguished "no thread" value returned when
// creation fails.
var NullThread = core.NullThread

// MaxThreadsPerCore is the largest number of live user threads a
// single core can hold at once.
const MaxThreadsPerCore = core.MaxThreadsPerCore

// CreateThread creates a zero-argument user thread on the given core
// and returns its id, or NullThread if that core already holds
// MaxThreadsPerCore threads.
func CreateThread(coreID int, fn func()) ThreadId {
	c := core.CoreByID(coreID)
	if c == nil {
		return NullThread
	}
	return core.CreateThread(c, fn)
}

// CreateThreadArg creates a user thread bound to a single argument,
// stored inline with the callable rather than heap-allocated.
func CreateThreadArg[T any](coreID int, fn func(T), arg T) ThreadId {
	c := core.CoreByID(coreID)
	if c == nil {
		return NullThread
	}
	return core.CreateThreadArg(c, fn, arg)
}

// CreateThreadArg2 creates a user thread bound to two arguments,
// stored inline with the callable.
func CreateThreadArg2[A, B any](coreID int, fn func(A, B), a A, b B) ThreadId {
	c := core.CoreByID(coreID)
	if c == nil {
		return NullThread
	}
	return core.CreateThreadArg2(c, fn, a, b)
}

// Yield switches the calling user thread back to the scheduler,
// marking it immediately runnable again.
//
// Yield must be called from within a user thread created by
// CreateThread; calling it from outside the library's worker
// goroutines panics.
func Yield() {
	requireWorker("Yield")
	core.Yield()
}

// Sleep parks the calling user thread for at least d before it
// becomes runnable again.
func Sleep(d time.Duration) {
	requireWorker("Sleep")
	core.Sleep(uint64(d.Nanoseconds()))
}

// Block parks the calling user thread until some other thread calls
// Signal on its id.
func Block() {
	requireWorker("Block")
	core.Block()
}

// Signal marks id's thread immediately runnable. It does not validate
// id's generation: signalling a ThreadId whose slot has since been
// reused by a different thread wakes the wrong thread. Callers that
// may race with the target's exit must ensure liveness by some other
// means.
func Signal(id ThreadId) {
	core.Signal(id)
}

// Join blocks the calling goroutine until id's thread has exited. It
// may be called either from a scheduled user thread or from outside
// the scheduler entirely (for example, the application's own main
// goroutine waiting for startup work to finish). If the target has
// already exited, Join returns immediately.
func Join(id ThreadId) {
	core.Join(id)
}

func requireWorker(op string) {
	if core.CurrentCoreForCaller() == nil {
		panic(fmt.Sprintf("arachne: %s called outside a scheduled thread", op))
	}
}
