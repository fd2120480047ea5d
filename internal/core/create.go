package core

// createOn claims a free slot on core c, writes inv into it, and
// activates it so the scheduler's next scan picks it up. Returns
// ErrCapacityExhausted if the core is already at MaxThreadsPerCore.
func createOn(c *Core, inv invocation) (ThreadId, error) {
	slot := c.occupancy.claim()
	if slot < 0 {
		return NullThread, ErrCapacityExhausted
	}

	ctx := c.slots[slot]
	ctx.invocation = inv
	ctx.activate(trampolineAddr)

	return ThreadId{ctx: ctx, generation: ctx.Generation()}, nil
}

// CreateThread creates a zero-argument user thread on the given core.
// It returns NullThread if the core already holds MaxThreadsPerCore
// threads; the library's public contract never surfaces an error
// here, so the cause is discarded (it is still inspectable via
// createOn for internal callers and tests).
func CreateThread(c *Core, fn func()) ThreadId {
	id, _ := createOn(c, newInvocation0(fn))
	return id
}

// CreateThreadArg creates a user thread bound to a single argument.
func CreateThreadArg[T any](c *Core, fn func(T), arg T) ThreadId {
	id, _ := createOn(c, newInvocation1(fn, arg))
	return id
}

// CreateThreadArg2 creates a user thread bound to two arguments.
func CreateThreadArg2[A, B any](c *Core, fn func(A, B), a A, b B) ThreadId {
	id, _ := createOn(c, newInvocation2(fn, a, b))
	return id
}
