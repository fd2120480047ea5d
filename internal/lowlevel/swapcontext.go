// Package lowlevel implements the architecture-specific context-switch
// primitive that the scheduler uses to move control between a kernel
// worker's own stack and a user thread's stack.
//
// Everything in this package is deliberately minimal and unsafe: it
// manipulates raw stack pointers and must never be called except by
// internal/core's scheduler, which guarantees the invariants the
// assembly stubs assume (the save/load slots always point at a live
// ThreadContext.sp field or a kernel worker's saved stack pointer).
package lowlevel

import "unsafe"

// Swapcontext saves the current flow's stack pointer into *save, loads
// a new stack pointer from *load, and transfers control onto the new
// stack. Control returns to the caller only when some other flow
// swaps back into *save.
//
// This is the sole primitive exposed for white-box testing; it is not
// part of the library's public surface.
//
//go:nosplit
func Swapcontext(save, load *uintptr) {
	swapcontextAsm(save, load)
}

// swapcontextAsm is implemented in swapcontext_GOARCH.s.
func swapcontextAsm(save, load *uintptr)

// BuildInitialStack writes the initial frame for a freshly created
// thread into stack, so that the first Swapcontext into it restores a
// zeroed register set and control ends up in trampoline: the same
// state the stub would restore for a thread that had genuinely
// suspended itself, so the scheduler's switch-in code has no
// first-time special case.
//
// The entry address goes at trampolineSlotOffset within the
// initialFrameSize region below the returned stack pointer: on amd64
// that is the word the CALL/RET convention pops right after the
// saved registers, and on arm64 it is the saved-X30 slot the stub's
// LDP restores before branching through it. Both offsets are
// arch-specific (consts_amd64.go, consts_arm64.go) because the two
// stubs disagree on where a "return address" lives.
//
// The returned stack pointer is what the scheduler stores into the
// slot's ThreadContext.sp before marking it runnable.
func BuildInitialStack(stack []byte, trampoline uintptr) uintptr {
	base := uintptr(unsafe.Pointer(&stack[0]))
	top := base + uintptr(len(stack))

	sp := top - initialFrameSize
	for p := sp; p < top; p++ {
		*(*byte)(unsafe.Pointer(p)) = 0
	}
	*(*uintptr)(unsafe.Pointer(sp + trampolineSlotOffset)) = trampoline
	return sp
}
