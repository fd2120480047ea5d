package main

import (
	"fmt"

	"github.com/kolkov/arachne"
)

// producerCommand runs a small producer/consumer pipeline: a consumer
// thread blocks on a ConditionVariable until a producer thread has
// filled a one-item mailbox, mirroring the library's notifyOne
// scenario.
func producerCommand(args []string) {
	initOrExit(args)
	defer arachne.ThreadDestroy()

	var lock arachne.SpinLock
	var cv arachne.ConditionVariable
	var mailbox int
	full := false

	consumer := arachne.CreateThread(0, func() {
		lock.Lock()
		for !full {
			cv.Wait(&lock)
		}
		item := mailbox
		full = false
		lock.Unlock()
		fmt.Printf("consumer: received %d\n", item)
	})

	producer := arachne.CreateThread(1%arachne.NumCores(), func() {
		lock.Lock()
		mailbox = 42
		full = true
		cv.NotifyOne()
		lock.Unlock()
	})

	arachne.Join(producer)
	arachne.Join(consumer)
	fmt.Println("producer: done")
}
