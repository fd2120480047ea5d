package core

import "unsafe"

// currentCore identifies which Core, if any, owns the stack the
// calling code is currently running on.
//
// There is no portable way to ask the Go runtime "which goroutine is
// this" without calling into it, and every real call site that needs
// an answer (trampoline, Yield, Sleep, Block, the blocking half of
// Wait) runs on the raw, hand-built stack a slot owns for as long as
// it is occupied, not on the worker goroutine's own Go stack. So the
// question currentCore actually needs to answer is simpler than
// "which goroutine": it's "whose stack buffer am I standing on right
// now", and that's a pointer-range membership check against memory
// this package already owns, not a runtime lookup. A local variable's
// address falls inside exactly one slot's buffer, or inside none of
// them (called from outside any scheduled thread).
//
//go:nosplit
func currentCore() *Core {
	if !lib.running {
		return nil
	}
	var probe byte
	addr := uintptr(unsafe.Pointer(&probe))
	for _, c := range lib.l.cores {
		if c.ownsAddr(addr) {
			return c
		}
	}
	return nil
}

// ownsAddr reports whether addr falls within one of c's slots' stack
// buffers. Buffers are allocated once, at init, for every slot
// regardless of occupancy, and live for the library's entire run, so
// this never races with a buffer being freed or reallocated.
//
//go:nosplit
func (c *Core) ownsAddr(addr uintptr) bool {
	for _, ctx := range c.slots {
		base := uintptr(unsafe.Pointer(&ctx.stack[0]))
		if addr >= base && addr < base+uintptr(len(ctx.stack)) {
			return true
		}
	}
	return false
}

// CurrentCoreForCaller exposes currentCore to the root package, which
// uses it only to produce a clear panic message when a suspension
// primitive is called from outside a scheduled thread.
func CurrentCoreForCaller() *Core {
	return currentCore()
}
