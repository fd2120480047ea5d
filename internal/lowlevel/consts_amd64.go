package lowlevel

// SpaceForSavedRegisters is the size, in bytes, of the register-save
// area the context-switch primitive pushes onto a thread's stack: six
// 8-byte callee-preserved general registers (BP, BX, R12-R15).
const SpaceForSavedRegisters = 48

// initialFrameSize is the total space BuildInitialStack reserves
// below the returned stack pointer. amd64's CALL/RET convention
// leaves the return address on the stack right above whatever the
// callee pushes, so the entry address gets its own word above the
// register-save area.
const initialFrameSize = SpaceForSavedRegisters + 8

// trampolineSlotOffset is where BuildInitialStack writes the entry
// address relative to the returned stack pointer: the word RET pops
// immediately after the six saved registers.
const trampolineSlotOffset = SpaceForSavedRegisters
