// Package main implements a small demo CLI exercising the arachne
// scheduler: mutual exclusion and producer/consumer workloads running
// across a pinned-core thread pool.
//
// Usage:
//
//	arachne-demo mutex       # SpinLock-protected counter
//	arachne-demo producer    # ConditionVariable producer/consumer
//	arachne-demo version
package main

import (
	"fmt"
	"os"

	"github.com/kolkov/arachne"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "mutex":
		mutexCommand(os.Args[2:])
	case "producer":
		producerCommand(os.Args[2:])
	case "version", "--version", "-v":
		fmt.Printf("arachne-demo version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`arachne-demo - pinned-core user-thread scheduler demo

USAGE:
    arachne-demo <command> [arguments]

COMMANDS:
    mutex      Run the SpinLock mutual-exclusion demo
    producer   Run the ConditionVariable producer/consumer demo
    version    Show version information
    help       Show this help message

OPTIONS (consumed by the scheduler before the command runs):
    -c, --numCores <N>     number of pinned kernel workers (default 2)
    -s, --stackSize <N>    per-thread stack size in bytes (default 1048576)
`)
}

func initOrExit(args []string) []string {
	remaining, err := arachne.ThreadInit(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "arachne-demo: %v\n", err)
		os.Exit(1)
	}
	return remaining
}
