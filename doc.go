// Package arachne provides the public API for a user-space M:N thread
// scheduler: a fixed, pinned-core pool of kernel workers that
// multiplexes a large population of lightweight, cooperatively
// scheduled user threads.
//
// # Quick Start
//
//	func main() {
//		remaining, err := arachne.ThreadInit(os.Args[1:])
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer arachne.ThreadDestroy()
//
//		done := arachne.CreateThread(0, func() {
//			fmt.Println("hello from a user thread")
//		})
//		arachne.Join(done)
//	}
//
// # Model
//
// ThreadInit spawns one kernel worker goroutine per core, each pinned
// to a distinct CPU via sched_setaffinity where the platform supports
// it. A user thread created with CreateThread runs to completion on
// its assigned core without preemption: it must voluntarily Yield,
// Sleep, Block, or return for another thread on that core to run.
// Across cores, threads run in genuine parallel.
//
// # Synchronization
//
// SpinLock and ConditionVariable give user threads mutual exclusion
// and condition waiting that integrate with the scheduler's
// suspension points rather than blocking an OS thread: a thread
// contending for a SpinLock yields between attempts instead of
// spinning the CPU, and ConditionVariable.Wait parks the calling
// thread the same way Block does.
package arachne
