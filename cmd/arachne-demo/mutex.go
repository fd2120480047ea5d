package main

import (
	"fmt"
	"time"

	"github.com/kolkov/arachne"
)

// mutexCommand runs the core library's canonical mutual-exclusion
// scenario: a lock held by main is contended by a worker thread.
func mutexCommand(args []string) {
	initOrExit(args)
	defer arachne.ThreadDestroy()

	var lock arachne.SpinLock
	flag := 0

	lock.Lock()
	done := arachne.CreateThread(0, func() {
		flag = 1
		lock.Lock()
		lock.Unlock()
		flag = 0
		fmt.Println("worker: released lock, flag cleared")
	})

	time.Sleep(time.Microsecond)
	if flag != 1 {
		fmt.Println("mutex: expected worker to be blocked on the lock")
	}
	lock.Unlock()

	arachne.Join(done)
	fmt.Println("mutex: done")
}
