package nes

import (
	"testing"
)

func newTestCPU(prg []byte) (*CPU, *bus) {
	cart := &cartridge{
		mapper: &mapper0{
			prg:     prg,
			chr:     make([]byte, chrBankLen),
			prgMask: 0x7FFF,
		},
	}
	b := newBus(newRAM(), cart)
	c := NewCPU(nil)
	return c, b
}

// newTestCPUAt copies program into a 32 KiB PRG image at the offset
// corresponding to address (mapper 0, two-bank mirroring, so $8000 maps to
// offset 0), then resets the CPU with PC pinned at address.
func newTestCPUAt(address uint16, program []byte) (*CPU, *bus) {
	prg := make([]byte, 0x8000)
	copy(prg[address&0x7FFF:], program)
	c, b := newTestCPU(prg)
	pc := address
	c.Reset(b, &pc)
	return c, b
}

// newTestCPUWithRegions builds a 32 KiB PRG image from several
// (address, bytes) placements, for tests whose code spans more than one
// contiguous region (e.g. a call target far from the entry point).
func newTestCPUWithRegions(entry uint16, regions map[uint16][]byte) (*CPU, *bus) {
	prg := make([]byte, 0x8000)
	for addr, bytes := range regions {
		copy(prg[addr&0x7FFF:], bytes)
	}
	c, b := newTestCPU(prg)
	pc := entry
	c.Reset(b, &pc)
	return c, b
}

func TestCPU_Reset(t *testing.T) {
	prg := make([]byte, 0x8000)
	prg[0x7FFC&0x7FFF] = 0x00
	prg[0x7FFD&0x7FFF] = 0x80
	c, b := newTestCPU(prg)

	c.Reset(b, nil)

	if c.a != 0 || c.x != 0 || c.y != 0 {
		t.Fatalf("reset: want A=X=Y=0, got A=%d X=%d Y=%d", c.a, c.x, c.y)
	}
	if c.sp != 0xFD {
		t.Fatalf("reset: want SP=$FD, got $%02X", c.sp)
	}
	if !c.flag(interruptDisable) || !c.flag(unused) {
		t.Fatalf("reset: want Interrupt|Unused set, got P=$%02X", byte(c.p))
	}
	if c.cycles != 7 {
		t.Fatalf("reset: want cycles=7, got %d", c.cycles)
	}
	if c.pc != 0x8000 {
		t.Fatalf("reset: want PC=$8000 from reset vector, got $%04X", c.pc)
	}
}

func TestCPU_ResetPCOverride(t *testing.T) {
	c, b := newTestCPU(make([]byte, 0x8000))
	pc := uint16(0xC000)
	c.Reset(b, &pc)
	if c.pc != 0xC000 {
		t.Fatalf("want PC override $C000, got $%04X", c.pc)
	}
}

func TestCPU_LDA_Immediate(t *testing.T) {
	c, b := newTestCPUAt(0x8000, []byte{0xA9, 0x00})
	if _, err := c.Step(b); err != nil {
		t.Fatalf("unexpected fault: %v", err)
	}
	if c.a != 0 {
		t.Fatalf("want A=0, got %d", c.a)
	}
	if !c.flag(zero) {
		t.Fatalf("want zero flag set")
	}
	if c.flag(negative) {
		t.Fatalf("want negative flag clear")
	}
}

func TestCPU_LDA_Negative(t *testing.T) {
	c, b := newTestCPUAt(0x8000, []byte{0xA9, 0x80})
	c.Step(b)
	if c.a != 0x80 {
		t.Fatalf("want A=$80, got $%02X", c.a)
	}
	if !c.flag(negative) {
		t.Fatalf("want negative flag set")
	}
}

func TestCPU_STA_Absolute(t *testing.T) {
	c, b := newTestCPUAt(0x8000, []byte{0xA9, 0x2A, 0x8D, 0x00, 0x00})
	c.Step(b) // LDA #$2A
	c.Step(b) // STA $0000
	if v := b.read(0x0000); v != 0x2A {
		t.Fatalf("want $0000=$2A, got $%02X", v)
	}
}

func TestCPU_ADC_Overflow(t *testing.T) {
	tests := []struct {
		name             string
		a, operand       byte
		wantA            byte
		wantCarry, wantV bool
	}{
		{"no carry no overflow", 0x50, 0x10, 0x60, false, false},
		{"no carry signed overflow", 0x50, 0x50, 0xA0, false, true},
		{"carry and signed overflow", 0xD0, 0x90, 0x60, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, b := newTestCPUAt(0x8000, []byte{0x69, tt.operand})
			c.a = tt.a
			c.Step(b)
			if c.a != tt.wantA {
				t.Fatalf("ADC(%#x,%#x): want A=%#x, got %#x", tt.a, tt.operand, tt.wantA, c.a)
			}
			if c.flag(carry) != tt.wantCarry {
				t.Fatalf("ADC(%#x,%#x): want carry=%v, got %v", tt.a, tt.operand, tt.wantCarry, c.flag(carry))
			}
			if c.flag(overflow) != tt.wantV {
				t.Fatalf("ADC(%#x,%#x): want overflow=%v, got %v", tt.a, tt.operand, tt.wantV, c.flag(overflow))
			}
		})
	}
}

func TestCPU_SBC_BorrowsViaComplement(t *testing.T) {
	c, b := newTestCPUAt(0x8000, []byte{0xE9, 0x01})
	c.a = 0x05
	c.setFlag(carry, true) // no borrow pending
	c.Step(b)
	if c.a != 0x04 {
		t.Fatalf("SBC: want A=4, got %d", c.a)
	}
	if !c.flag(carry) {
		t.Fatalf("SBC: want carry set (no borrow)")
	}
}

func TestCPU_BranchPageCross(t *testing.T) {
	// BEQ +16 from $80FD: PC is $80FF after the operand, so the branch lands
	// at $810F, crossing the $80xx/$81xx boundary.
	c, b := newTestCPUAt(0x80FD, []byte{0xF0, 0x10})
	c.setFlag(zero, true)

	cycles, err := c.Step(b)
	if err != nil {
		t.Fatalf("unexpected fault: %v", err)
	}
	if c.pc != 0x810F {
		t.Fatalf("want PC=$810F after page-crossing branch, got $%04X", c.pc)
	}
	if cycles != 4 {
		t.Fatalf("want 4 cycles (2 base + taken + page-cross), got %d", cycles)
	}
}

func TestCPU_JSR_RTS(t *testing.T) {
	c, b := newTestCPUWithRegions(0x8000, map[uint16][]byte{
		0x8000: {0x20, 0x00, 0x90}, // JSR $9000
		0x9000: {0x60},             // RTS
	})

	c.Step(b) // JSR
	if c.pc != 0x9000 {
		t.Fatalf("want PC=$9000 after JSR, got $%04X", c.pc)
	}
	c.Step(b) // RTS
	if c.pc != 0x8003 {
		t.Fatalf("want PC=$8003 after RTS, got $%04X", c.pc)
	}
}

func TestCPU_PHP_PLP_BreakUnused(t *testing.T) {
	c, b := newTestCPUAt(0x8000, []byte{0x08, 0x28}) // PHP, PLP
	c.Step(b)
	pushed := c.pop(b)
	c.push(b, pushed) // restore stack for PLP semantics test below

	if pushed&byte(brk) == 0 || pushed&byte(unused) == 0 {
		t.Fatalf("PHP: want Break and Unused set in pushed byte, got $%02X", pushed)
	}

	c.Step(b)
	if c.flag(brk) || !c.flag(unused) {
		t.Fatalf("PLP: want Break clear and Unused set, got P=$%02X", byte(c.p))
	}
}

func TestCPU_IndirectJMPPageWrapBug(t *testing.T) {
	// JMP ($81FF): the low target byte comes from $81FF, but the hardware
	// bug fetches the high target byte from $8100 (start of the same page)
	// instead of the "correct" $8200.
	c, b := newTestCPUWithRegions(0x9000, map[uint16][]byte{
		0x9000: {0x6C, 0xFF, 0x81}, // JMP ($81FF)
		0x81FF: {0x00},
		0x8100: {0x34},
		0x8200: {0x12},
	})

	c.Step(b)
	if c.pc != 0x3400 {
		t.Fatalf("want indirect JMP page-wrap bug to land at $3400, got $%04X", c.pc)
	}
}

func TestCPU_IllegalOpcodeFaults(t *testing.T) {
	c, b := newTestCPUAt(0x8000, []byte{0x02}) // KIL
	_, err := c.Step(b)
	if err == nil {
		t.Fatalf("want fault dispatching an illegal opcode, got nil")
	}
	var fault *FaultError
	if !asFaultError(err, &fault) {
		t.Fatalf("want *FaultError, got %T", err)
	}
	if fault.Opcode != 0x02 {
		t.Fatalf("want fault.Opcode=$02, got $%02X", fault.Opcode)
	}
}

func asFaultError(err error, target **FaultError) bool {
	fe, ok := err.(*FaultError)
	if ok {
		*target = fe
	}
	return ok
}

func TestCPU_NMITakesPriorityOverIRQ(t *testing.T) {
	prg := make([]byte, 0x8000)
	prg[0xFFFA&0x7FFF] = 0x00
	prg[0xFFFB&0x7FFF] = 0x91
	prg[0xFFFE&0x7FFF] = 0x00
	prg[0xFFFF&0x7FFF] = 0x92
	c, b := newTestCPU(prg)
	c.Reset(b, nil)
	c.pc = 0x8000

	c.TriggerNMI()
	c.TriggerIRQ()
	cycles, err := c.Step(b)
	if err != nil {
		t.Fatalf("unexpected fault: %v", err)
	}
	if cycles != 7 {
		t.Fatalf("want interrupt entry to charge 7 cycles, got %d", cycles)
	}
	if c.pc != 0x9100 {
		t.Fatalf("want NMI vector to win over pending IRQ, got PC=$%04X", c.pc)
	}
}
