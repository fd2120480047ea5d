package lowlevel

// SpaceForSavedRegisters is the size, in bytes, of the register-save
// area the arm64 context-switch stub pushes: twelve 8-byte registers
// (X19-X28, the frame pointer X29, and the link register X30).
const SpaceForSavedRegisters = 96

// initialFrameSize is the total space BuildInitialStack reserves
// below the returned stack pointer. Unlike amd64, arm64's BL does not
// push a return address onto the stack, so a suspended thread's real
// stack is exactly the SpaceForSavedRegisters block with no word
// above it, so the entry address has to live inside that block, in
// the slot the stub restores X30 from.
const initialFrameSize = SpaceForSavedRegisters

// trampolineSlotOffset is the byte offset, within the register-save
// block, of the saved X30 (link register) slot: the stub's
// `LDP 80(RSP), (R29, R30)` loads R29 from offset 80 and R30 from
// offset 88, so that is where the entry address must sit for RET to
// branch to it on a thread's first switch-in.
const trampolineSlotOffset = 88
