// Package cycles implements the cycle-counter the scheduler needs for
// its wakeup-time protocol: one architecture-specific read, one
// calibration routine, and the two conversions the scheduler and
// Sleep use.
package cycles

import (
	"sync/atomic"
	"time"
)

// perSecond holds the calibrated cycle rate, set once by Calibrate.
// Readers use atomic loads because a worker may call ToNanoseconds
// concurrently with ThreadInit's calibration on another core during
// startup.
var perSecond atomic.Uint64

// Now returns the current cycle count.
//
//go:nosplit
func Now() uint64 {
	return rdtsc()
}

// Calibrate measures the cycle rate by timing a short busy interval
// against time.Now, and stores the result for ToNanoseconds and
// NsToCycles to use. It is called once by ThreadInit; tests that need
// a fast startup pass a shorter duration via WithCycleCalibration.
func Calibrate(d time.Duration) {
	start := Now()
	startWall := time.Now()
	for time.Since(startWall) < d {
	}
	elapsedCycles := Now() - start
	elapsedNanos := time.Since(startWall).Nanoseconds()
	if elapsedNanos <= 0 {
		perSecond.Store(1_000_000_000)
		return
	}
	rate := elapsedCycles * uint64(time.Second) / uint64(elapsedNanos)
	if rate == 0 {
		rate = 1_000_000_000
	}
	perSecond.Store(rate)
}

// PerSecond returns the calibrated number of cycles per second. It
// returns a nominal 1GHz until Calibrate has run.
func PerSecond() uint64 {
	if rate := perSecond.Load(); rate != 0 {
		return rate
	}
	return 1_000_000_000
}

// ToNanoseconds converts a cycle count to nanoseconds using the
// calibrated rate.
//
//go:nosplit
func ToNanoseconds(c uint64) uint64 {
	return c * 1_000_000_000 / PerSecond()
}

// NsToCycles converts a nanosecond duration to a cycle count using
// the calibrated rate.
//
//go:nosplit
func NsToCycles(ns uint64) uint64 {
	return ns * PerSecond() / 1_000_000_000
}
