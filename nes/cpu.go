package nes

import "log"

// CPU is a cycle-counting interpreter of the 6502 instruction set used by
// the NES's 2A03. It is strictly single-threaded and synchronous: a single
// instruction runs atomically from opcode fetch through cycle accounting,
// with no suspension points inside Step or TraceStep.
type CPU struct {
	a, x, y byte
	sp      byte
	pc      uint16
	p       status

	cycles uint64

	// extraCycles accumulates cycles a handler cannot express through the
	// static instruction table alone (branch-taken, branch page-cross).
	// Reset before every dispatch.
	extraCycles uint64

	nmiPending bool
	irqPending bool

	logger *log.Logger
}

// NewCPU constructs a CPU with all registers zeroed. Call Reset before
// stepping it. logger may be nil, in which case diagnostic output is
// discarded.
func NewCPU(logger *log.Logger) *CPU {
	return &CPU{logger: logger}
}

// Reset puts the CPU into its post-reset state: A/X/Y cleared, SP=$FD,
// P=Interrupt|Unused, the cycle counter at 7, and PC loaded either from
// pcOverride or from the reset vector at $FFFC/$FFFD.
func (c *CPU) Reset(b *bus, pcOverride *uint16) {
	c.a, c.x, c.y = 0, 0, 0
	c.sp = 0xFD
	c.p = interruptDisable | unused
	c.cycles = 7
	c.nmiPending = false
	c.irqPending = false

	if pcOverride != nil {
		c.pc = *pcOverride
		return
	}
	c.pc = b.read16(resetVector)
}

// TriggerNMI latches a non-maskable interrupt, serviced at the start of the
// next Step/TraceStep call regardless of the interrupt-disable flag.
func (c *CPU) TriggerNMI() {
	c.nmiPending = true
}

// TriggerIRQ latches a maskable interrupt, serviced at the start of the
// first Step/TraceStep call at which the interrupt-disable flag is clear;
// while the flag is set the latch stays pending.
func (c *CPU) TriggerIRQ() {
	c.irqPending = true
}

// PC reports the current program counter, mainly for tests and tracing.
func (c *CPU) PC() uint16 { return c.pc }

// Cycles reports the total elapsed cycle count since Reset.
func (c *CPU) Cycles() uint64 { return c.cycles }

func (c *CPU) flag(f status) bool {
	return c.p&f != 0
}

func (c *CPU) setFlag(f status, v bool) {
	if v {
		c.p |= f
	} else {
		c.p &^= f
	}
}

func (c *CPU) setZN(v byte) {
	c.setFlag(zero, v == 0)
	c.setFlag(negative, v&0x80 != 0)
}

func (c *CPU) push(b *bus, v byte) {
	b.write(stackBase|uint16(c.sp), v)
	c.sp--
}

func (c *CPU) pop(b *bus) byte {
	c.sp++
	return b.read(stackBase | uint16(c.sp))
}

func (c *CPU) push16(b *bus, v uint16) {
	c.push(b, byte(v>>8))
	c.push(b, byte(v))
}

func (c *CPU) pop16(b *bus) uint16 {
	lo := c.pop(b)
	hi := c.pop(b)
	return uint16(hi)<<8 | uint16(lo)
}

// serviceInterrupts services a single pending NMI or IRQ, if any, and
// reports whether it did. NMI always wins over IRQ; IRQ is ignored while
// the interrupt-disable flag is set.
func (c *CPU) serviceInterrupts(b *bus) bool {
	switch {
	case c.nmiPending:
		c.nmiPending = false
		c.enterInterrupt(b, nmiVector)
		return true
	case c.irqPending && !c.flag(interruptDisable):
		c.irqPending = false
		c.enterInterrupt(b, irqVector)
		return true
	default:
		return false
	}
}

func (c *CPU) enterInterrupt(b *bus, vector uint16) {
	c.push16(b, c.pc)
	c.push(b, byte(c.p&^brk)|byte(unused))
	c.p |= interruptDisable
	c.pc = b.read16(vector)
}

// resolve executes the operand resolver for mode, advancing pc past any
// operand bytes and recording whether the resolved address crosses a page
// boundary from its unindexed base. See SPEC_FULL.md §4.3.2.
func (c *CPU) resolve(b *bus, mode addressingMode) resolution {
	switch mode {
	case modeAccumulator:
		return resolution{effective: accSentinel}

	case modeImplied:
		return resolution{effective: noAddress}

	case modeImmediate:
		v := b.read(c.pc)
		c.pc++
		return resolution{effective: noAddress, operand: uint16(v)}

	case modeRelative:
		v := b.read(c.pc)
		c.pc++
		return resolution{effective: noAddress, operand: uint16(v)}

	case modeZeropage:
		zb := b.read(c.pc)
		c.pc++
		return resolution{effective: int32(zb), operand: uint16(zb)}

	case modeZeropageX:
		zb := b.read(c.pc)
		c.pc++
		addr := zb + c.x
		return resolution{effective: int32(addr), operand: uint16(zb)}

	case modeZeropageY:
		zb := b.read(c.pc)
		c.pc++
		addr := zb + c.y
		return resolution{effective: int32(addr), operand: uint16(zb)}

	case modeAbsolute:
		base := b.read16(c.pc)
		c.pc += 2
		return resolution{effective: int32(base), operand: base}

	case modeAbsoluteX:
		base := b.read16(c.pc)
		c.pc += 2
		eff := base + uint16(c.x)
		return resolution{effective: int32(eff), operand: base, pageCrossed: pageCrossed(base, eff)}

	case modeAbsoluteY:
		base := b.read16(c.pc)
		c.pc += 2
		eff := base + uint16(c.y)
		return resolution{effective: int32(eff), operand: base, pageCrossed: pageCrossed(base, eff)}

	case modeIndirect:
		ptr := b.read16(c.pc)
		c.pc += 2
		eff := b.read16Bug(ptr)
		return resolution{effective: int32(eff), operand: ptr}

	case modeIndirectX:
		zb := b.read(c.pc)
		c.pc++
		z := zb + c.x
		lo := b.read(uint16(z))
		hi := b.read(uint16(z + 1))
		eff := uint16(hi)<<8 | uint16(lo)
		return resolution{effective: int32(eff), operand: uint16(zb)}

	case modeIndirectY:
		zb := b.read(c.pc)
		c.pc++
		lo := b.read(uint16(zb))
		hi := b.read(uint16(zb + 1))
		base := uint16(hi)<<8 | uint16(lo)
		eff := base + uint16(c.y)
		return resolution{effective: int32(eff), operand: uint16(zb), pageCrossed: pageCrossed(base, eff)}

	default:
		return resolution{effective: noAddress}
	}
}

func pageCrossed(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

// load fetches an instruction's operand value per SPEC_FULL.md §4.3.3.
func (c *CPU) load(b *bus, res resolution) byte {
	switch res.effective {
	case accSentinel:
		return c.a
	case noAddress:
		return byte(res.operand)
	default:
		return b.read(uint16(res.effective))
	}
}

// store writes value to the location named by res, per SPEC_FULL.md §4.3.3.
// Returns a FaultError if res names the accumulator sentinel while instr's
// addressing mode is not Accumulator - a defective table/dispatch state.
func (c *CPU) store(b *bus, instr *Instruction, res resolution, value byte) *FaultError {
	switch res.effective {
	case accSentinel:
		if instr.Mode != modeAccumulator {
			return &FaultError{Reason: "store targeted the accumulator sentinel without accumulator addressing"}
		}
		c.a = value
		return nil
	case noAddress:
		return &FaultError{Reason: "store has no effective address"}
	default:
		b.write(uint16(res.effective), value)
		return nil
	}
}

// executeOne services any pending interrupt, or else fetches, resolves and
// dispatches exactly one instruction. It reports the cycles charged and,
// for TraceStep's benefit, the dispatched instruction and its resolution.
func (c *CPU) executeOne(b *bus) (cycles uint64, startPC uint16, opcode byte, instr *Instruction, res resolution, fault *FaultError) {
	if c.serviceInterrupts(b) {
		c.cycles += 7
		return 7, 0, 0, nil, resolution{}, nil
	}

	startPC = c.pc
	opcode = b.read(c.pc)
	c.pc++

	instr = &instructionTable[opcode]
	res = c.resolve(b, instr.Mode)

	c.extraCycles = 0
	if f := instr.Handler(c, b, instr, res); f != nil {
		f.PC = startPC
		f.Opcode = opcode
		if c.logger != nil {
			c.logger.Printf("%s", f.Error())
		}
		return 0, startPC, opcode, instr, res, f
	}

	cycles = uint64(instr.Cycles) + c.extraCycles
	if instr.PageCycles > 0 && res.pageCrossed {
		cycles++
	}
	c.cycles += cycles
	return cycles, startPC, opcode, instr, res, nil
}

// Step advances the CPU by exactly one instruction (or one serviced
// interrupt) and returns the number of cycles charged.
func (c *CPU) Step(b *bus) (uint64, error) {
	cycles, _, _, _, _, fault := c.executeOne(b)
	if fault != nil {
		return cycles, fault
	}
	return cycles, nil
}
