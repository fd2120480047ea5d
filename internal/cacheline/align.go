// Package cacheline provides cache-line-aligned byte allocation.
//
// The scheduler uses it for two things: the per-core occupancy-word
// array, so that two cores scanning their own words never false-share
// a cache line, and each thread's stack buffer.
package cacheline

import "unsafe"

// Size is the assumed cache line size in bytes. 64 covers every
// mainstream amd64 and arm64 part this scheduler targets.
const Size = 64

// AlignedBytes returns a slice of length n whose first byte starts at
// a Size-aligned address, by over-allocating and slicing into the
// backing array.
func AlignedBytes(n int) []byte {
	buf := make([]byte, n+Size)
	base := uintptr(unsafe.Pointer(&buf[0]))
	offset := (Size - int(base%uintptr(Size))) % Size
	return buf[offset : offset+n : offset+n]
}
