package core

import "unsafe"

// inlineInvocationSize bounds how large a callable plus its bound
// argument may be before CreateThread refuses to instantiate it.
// An oversized callable is rejected rather than silently growing the
// box without limit. Go's generics cannot evaluate unsafe.Sizeof of a
// type-parameterized type as a constant expression (the rule that
// keeps generic code from depending on per-instantiation layout), so
// unlike a fixed-size C array this bound cannot be enforced at
// compile time; the closest idiomatic equivalent is a checked panic
// at the single call site that constructs the box.
const inlineInvocationSize = 32

// invocation is the type-erased callable storage a slot runs once the
// scheduler switches onto it. box holds whatever struct newInvocationN
// built (the callable plus its bound arguments), stored behind an
// interface rather than copied into a raw byte array: Go's GC is
// precise and scans an object's pointers using its static type, so a
// [N]byte field would hide any pointer inside a closure or bound
// argument (a channel, slice, map, or interface value) from the
// collector once the caller's own locals go out of scope. Storing the
// box as `any` keeps it genuinely reachable for as long as the
// invocation is.
type invocation struct {
	box    any
	invoke func(any)
}

func (inv *invocation) run() {
	inv.invoke(inv.box)
}

// newInvocation0 builds an invocation for a zero-argument callable.
func newInvocation0(fn func()) invocation {
	type box struct{ fn func() }
	checkInlineFit(unsafe.Sizeof(box{}))

	return invocation{
		box: box{fn: fn},
		invoke: func(v any) {
			v.(box).fn()
		},
	}
}

// newInvocation1 builds an invocation for a callable bound to one
// argument of type T.
func newInvocation1[T any](fn func(T), arg T) invocation {
	type box struct {
		fn  func(T)
		arg T
	}
	checkInlineFit(unsafe.Sizeof(box{}))

	return invocation{
		box: box{fn: fn, arg: arg},
		invoke: func(v any) {
			b := v.(box)
			b.fn(b.arg)
		},
	}
}

// newInvocation2 builds an invocation for a callable bound to two
// arguments.
func newInvocation2[A, B any](fn func(A, B), a A, b B) invocation {
	type box struct {
		fn func(A, B)
		a  A
		b  B
	}
	checkInlineFit(unsafe.Sizeof(box{}))

	return invocation{
		box: box{fn: fn, a: a, b: b},
		invoke: func(v any) {
			bx := v.(box)
			bx.fn(bx.a, bx.b)
		},
	}
}

func checkInlineFit(size uintptr) {
	if size > uintptr(inlineInvocationSize) {
		panic("arachne: callable and its bound arguments exceed inline invocation storage")
	}
}
