package core

import (
	"testing"
	"time"
	"unsafe"
)

// TestOwnsAddr_WithinAndOutsideBuffer checks the boundary logic
// directly against a constructed slot, independent of the scheduler.
func TestOwnsAddr_WithinAndOutsideBuffer(t *testing.T) {
	c := newCore(0, 4096)
	ctx := c.slots[0]

	base := uintptr(unsafe.Pointer(&ctx.stack[0]))

	if !c.ownsAddr(base) {
		t.Fatal("ownsAddr(base) = false, want true")
	}
	if !c.ownsAddr(base + uintptr(len(ctx.stack)) - 1) {
		t.Fatal("ownsAddr(last byte) = false, want true")
	}
	if c.ownsAddr(base + uintptr(len(ctx.stack))) {
		t.Fatal("ownsAddr(one past end) = true, want false")
	}
	if c.ownsAddr(base - 1) {
		t.Fatal("ownsAddr(one before start) = true, want false")
	}
}

// TestCurrentCore_NilOutsideScheduler checks that a goroutine never
// switched onto any slot's stack resolves to nil, whether or not a
// library is running.
func TestCurrentCore_NilOutsideScheduler(t *testing.T) {
	if c := currentCore(); c != nil {
		t.Fatal("currentCore() outside Init returned non-nil")
	}

	initForTest(t)
	if c := currentCore(); c != nil {
		t.Fatal("currentCore() from a plain test goroutine returned non-nil")
	}
}

// TestCurrentCore_ResolvesInsideScheduledThread exercises the real
// path: a thread created on core 0 must see itself as running on
// core 0, proving the stack-address scan finds the right owner.
func TestCurrentCore_ResolvesInsideScheduledThread(t *testing.T) {
	initForTest(t)

	resolved := make(chan *Core, 1)
	CreateThread(CoreByID(0), func() {
		resolved <- currentCore()
	})

	select {
	case c := <-resolved:
		if c != CoreByID(0) {
			t.Fatalf("currentCore() = %v, want core 0", c)
		}
	case <-time.After(time.Second):
		t.Fatal("created thread never ran")
	}
}
