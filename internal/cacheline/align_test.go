package cacheline

import (
	"testing"
	"unsafe"
)

func TestAlignedBytesIsAligned(t *testing.T) {
	for _, n := range []int{1, 63, 64, 65, 4096} {
		buf := AlignedBytes(n)
		if len(buf) != n {
			t.Fatalf("len(AlignedBytes(%d)) = %d", n, len(buf))
		}
		addr := uintptr(unsafe.Pointer(&buf[0]))
		if addr%Size != 0 {
			t.Fatalf("AlignedBytes(%d) not aligned: %#x", n, addr)
		}
	}
}
