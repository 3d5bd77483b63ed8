package nes

import "fmt"

// status is the 8-bit processor status register, P.
type status byte

const (
	// carry holds the carry/borrow result of ADC/SBC/CMP and the bit
	// shifted out by ASL/LSR/ROL/ROR. Set or cleared directly by SEC/CLC.
	carry status = 1 << iota

	// zero is set when the result of an instruction is zero.
	zero

	// interruptDisable inhibits IRQ (not NMI) while set. Set automatically
	// on interrupt entry; restored by RTI. Set/cleared by SEI/CLI.
	interruptDisable

	// decimal has no effect on this implementation; ADC/SBC never consult
	// it, matching NES-variant 6502 behavior. Settable only for fidelity
	// with SED/CLD.
	decimal

	// brk distinguishes, in the byte pushed to the stack, whether the push
	// came from an instruction (PHP, BRK -> 1) or an interrupt line being
	// pulled low (NMI, IRQ -> 0). It is not a real stored register bit.
	brk

	// unused is always 1 whenever P is pushed to the stack or loaded from
	// it via PLP/RTI.
	unused

	// overflow is set by ADC/SBC when the signed result is invalid, and
	// loaded from bit 6 of the operand by BIT.
	overflow

	// negative mirrors bit 7 of the instruction's result register or, for
	// BIT, bit 7 of the operand.
	negative
)

type addressingMode byte

const (
	modeAccumulator addressingMode = iota
	modeImplied
	modeImmediate
	modeRelative
	modeZeropage
	modeZeropageX
	modeZeropageY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeIndirectX
	modeIndirectY
)

// Sentinel values for resolution.effective. Any non-negative value is a
// real 16-bit bus address.
const (
	accSentinel int32 = -1 // ASL/LSR/ROL/ROR targeting the accumulator
	noAddress   int32 = -2 // addressing modes with no memory operand
)

// resolution is the per-instruction result of addressing-mode resolution:
// the literal operand bytes (for trace rendering), the effective address
// (or one of the sentinels above), and whether resolving it crossed a page
// boundary. It is never persisted across instructions.
type resolution struct {
	operand     uint16
	effective   int32
	pageCrossed bool
}

// FaultError reports one of the two fatal CPU conditions named in
// SPEC_FULL.md §7: dispatch of an undocumented opcode, or a store that
// targets the accumulator sentinel without accumulator addressing. Both
// indicate a defective ROM or an emulator bug, never a recoverable runtime
// condition.
type FaultError struct {
	PC     uint16
	Opcode byte
	Reason string
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("cpu: fatal fault at $%04X (opcode $%02X): %s", e.PC, e.Opcode, e.Reason)
}

const (
	nmiVector   = uint16(0xFFFA)
	resetVector = uint16(0xFFFC)
	irqVector   = uint16(0xFFFE)

	stackBase = 0x0100
)
