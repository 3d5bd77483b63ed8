package nes

// handlerFunc executes one dispatched instruction. It receives the already
// resolved operand/address (res) and returns non-nil only for the fatal
// conditions named in SPEC_FULL.md §7.
type handlerFunc func(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError

// Instruction is one slot of the 256-entry opcode table: the static
// metadata needed for cycle accounting and trace rendering, plus the
// handler that carries out its effect.
type Instruction struct {
	Opcode     byte
	Mnemonic   string
	Mode       addressingMode
	Size       byte
	Cycles     byte
	PageCycles byte
	Illegal    bool
	Handler    handlerFunc
}

// instructionTable is indexed directly by opcode byte. Every entry's
// Mnemonic/Mode/Size/Cycles/PageCycles/Illegal fields are transcribed from
// the documented behavior of the MOS 6502; Handler is filled in by init.
//
// Illegal opcodes keep their conventional mnemonic for trace/disassembly
// purposes, but all of them dispatch to illegalOpcode - this interpreter
// treats undocumented opcodes as a fatal fault rather than emulating their
// side effects, per SPEC_FULL.md §7.
var instructionTable = [256]Instruction{
	{Opcode: 0x00, Mnemonic: "BRK", Mode: modeImplied, Size: 2, Cycles: 7},
	{Opcode: 0x01, Mnemonic: "ORA", Mode: modeIndirectX, Size: 2, Cycles: 6},
	{Opcode: 0x02, Mnemonic: "KIL", Mode: modeImplied, Size: 0, Cycles: 2, Illegal: true},
	{Opcode: 0x03, Mnemonic: "SLO", Mode: modeIndirectX, Size: 2, Cycles: 8, Illegal: true},
	{Opcode: 0x04, Mnemonic: "NOP", Mode: modeZeropage, Size: 2, Cycles: 3, Illegal: true},
	{Opcode: 0x05, Mnemonic: "ORA", Mode: modeZeropage, Size: 2, Cycles: 3},
	{Opcode: 0x06, Mnemonic: "ASL", Mode: modeZeropage, Size: 2, Cycles: 5},
	{Opcode: 0x07, Mnemonic: "SLO", Mode: modeZeropage, Size: 2, Cycles: 5, Illegal: true},
	{Opcode: 0x08, Mnemonic: "PHP", Mode: modeImplied, Size: 1, Cycles: 3},
	{Opcode: 0x09, Mnemonic: "ORA", Mode: modeImmediate, Size: 2, Cycles: 2},
	{Opcode: 0x0A, Mnemonic: "ASL", Mode: modeAccumulator, Size: 1, Cycles: 2},
	{Opcode: 0x0B, Mnemonic: "ANC", Mode: modeImmediate, Size: 0, Cycles: 2, Illegal: true},
	{Opcode: 0x0C, Mnemonic: "NOP", Mode: modeAbsolute, Size: 3, Cycles: 4, Illegal: true},
	{Opcode: 0x0D, Mnemonic: "ORA", Mode: modeAbsolute, Size: 3, Cycles: 4},
	{Opcode: 0x0E, Mnemonic: "ASL", Mode: modeAbsolute, Size: 3, Cycles: 6},
	{Opcode: 0x0F, Mnemonic: "SLO", Mode: modeAbsolute, Size: 3, Cycles: 6, Illegal: true},
	{Opcode: 0x10, Mnemonic: "BPL", Mode: modeRelative, Size: 2, Cycles: 2, PageCycles: 1},
	{Opcode: 0x11, Mnemonic: "ORA", Mode: modeIndirectY, Size: 2, Cycles: 5, PageCycles: 1},
	{Opcode: 0x12, Mnemonic: "KIL", Mode: modeImplied, Size: 0, Cycles: 2, Illegal: true},
	{Opcode: 0x13, Mnemonic: "SLO", Mode: modeIndirectY, Size: 2, Cycles: 8, Illegal: true},
	{Opcode: 0x14, Mnemonic: "NOP", Mode: modeZeropageX, Size: 2, Cycles: 4, Illegal: true},
	{Opcode: 0x15, Mnemonic: "ORA", Mode: modeZeropageX, Size: 2, Cycles: 4},
	{Opcode: 0x16, Mnemonic: "ASL", Mode: modeZeropageX, Size: 2, Cycles: 6},
	{Opcode: 0x17, Mnemonic: "SLO", Mode: modeZeropageX, Size: 2, Cycles: 6, Illegal: true},
	{Opcode: 0x18, Mnemonic: "CLC", Mode: modeImplied, Size: 1, Cycles: 2},
	{Opcode: 0x19, Mnemonic: "ORA", Mode: modeAbsoluteY, Size: 3, Cycles: 4, PageCycles: 1},
	{Opcode: 0x1A, Mnemonic: "NOP", Mode: modeImplied, Size: 1, Cycles: 2, Illegal: true},
	{Opcode: 0x1B, Mnemonic: "SLO", Mode: modeAbsoluteY, Size: 3, Cycles: 7, Illegal: true},
	{Opcode: 0x1C, Mnemonic: "NOP", Mode: modeAbsoluteX, Size: 3, Cycles: 4, PageCycles: 1, Illegal: true},
	{Opcode: 0x1D, Mnemonic: "ORA", Mode: modeAbsoluteX, Size: 3, Cycles: 4, PageCycles: 1},
	{Opcode: 0x1E, Mnemonic: "ASL", Mode: modeAbsoluteX, Size: 3, Cycles: 7},
	{Opcode: 0x1F, Mnemonic: "SLO", Mode: modeAbsoluteX, Size: 3, Cycles: 7, Illegal: true},
	{Opcode: 0x20, Mnemonic: "JSR", Mode: modeAbsolute, Size: 3, Cycles: 6},
	{Opcode: 0x21, Mnemonic: "AND", Mode: modeIndirectX, Size: 2, Cycles: 6},
	{Opcode: 0x22, Mnemonic: "KIL", Mode: modeImplied, Size: 0, Cycles: 2, Illegal: true},
	{Opcode: 0x23, Mnemonic: "RLA", Mode: modeIndirectX, Size: 2, Cycles: 8, Illegal: true},
	{Opcode: 0x24, Mnemonic: "BIT", Mode: modeZeropage, Size: 2, Cycles: 3},
	{Opcode: 0x25, Mnemonic: "AND", Mode: modeZeropage, Size: 2, Cycles: 3},
	{Opcode: 0x26, Mnemonic: "ROL", Mode: modeZeropage, Size: 2, Cycles: 5},
	{Opcode: 0x27, Mnemonic: "RLA", Mode: modeZeropage, Size: 2, Cycles: 5, Illegal: true},
	{Opcode: 0x28, Mnemonic: "PLP", Mode: modeImplied, Size: 1, Cycles: 4},
	{Opcode: 0x29, Mnemonic: "AND", Mode: modeImmediate, Size: 2, Cycles: 2},
	{Opcode: 0x2A, Mnemonic: "ROL", Mode: modeAccumulator, Size: 1, Cycles: 2},
	{Opcode: 0x2B, Mnemonic: "ANC", Mode: modeImmediate, Size: 0, Cycles: 2, Illegal: true},
	{Opcode: 0x2C, Mnemonic: "BIT", Mode: modeAbsolute, Size: 3, Cycles: 4},
	{Opcode: 0x2D, Mnemonic: "AND", Mode: modeAbsolute, Size: 3, Cycles: 4},
	{Opcode: 0x2E, Mnemonic: "ROL", Mode: modeAbsolute, Size: 3, Cycles: 6},
	{Opcode: 0x2F, Mnemonic: "RLA", Mode: modeAbsolute, Size: 3, Cycles: 6, Illegal: true},
	{Opcode: 0x30, Mnemonic: "BMI", Mode: modeRelative, Size: 2, Cycles: 2, PageCycles: 1},
	{Opcode: 0x31, Mnemonic: "AND", Mode: modeIndirectY, Size: 2, Cycles: 5, PageCycles: 1},
	{Opcode: 0x32, Mnemonic: "KIL", Mode: modeImplied, Size: 0, Cycles: 2, Illegal: true},
	{Opcode: 0x33, Mnemonic: "RLA", Mode: modeIndirectY, Size: 2, Cycles: 8, Illegal: true},
	{Opcode: 0x34, Mnemonic: "NOP", Mode: modeZeropageX, Size: 2, Cycles: 4, Illegal: true},
	{Opcode: 0x35, Mnemonic: "AND", Mode: modeZeropageX, Size: 2, Cycles: 4},
	{Opcode: 0x36, Mnemonic: "ROL", Mode: modeZeropageX, Size: 2, Cycles: 6},
	{Opcode: 0x37, Mnemonic: "RLA", Mode: modeZeropageX, Size: 2, Cycles: 6, Illegal: true},
	{Opcode: 0x38, Mnemonic: "SEC", Mode: modeImplied, Size: 1, Cycles: 2},
	{Opcode: 0x39, Mnemonic: "AND", Mode: modeAbsoluteY, Size: 3, Cycles: 4, PageCycles: 1},
	{Opcode: 0x3A, Mnemonic: "NOP", Mode: modeImplied, Size: 1, Cycles: 2, Illegal: true},
	{Opcode: 0x3B, Mnemonic: "RLA", Mode: modeAbsoluteY, Size: 3, Cycles: 7, Illegal: true},
	{Opcode: 0x3C, Mnemonic: "NOP", Mode: modeAbsoluteX, Size: 3, Cycles: 4, PageCycles: 1, Illegal: true},
	{Opcode: 0x3D, Mnemonic: "AND", Mode: modeAbsoluteX, Size: 3, Cycles: 4, PageCycles: 1},
	{Opcode: 0x3E, Mnemonic: "ROL", Mode: modeAbsoluteX, Size: 3, Cycles: 7},
	{Opcode: 0x3F, Mnemonic: "RLA", Mode: modeAbsoluteX, Size: 3, Cycles: 7, Illegal: true},
	{Opcode: 0x40, Mnemonic: "RTI", Mode: modeImplied, Size: 1, Cycles: 6},
	{Opcode: 0x41, Mnemonic: "EOR", Mode: modeIndirectX, Size: 2, Cycles: 6},
	{Opcode: 0x42, Mnemonic: "KIL", Mode: modeImplied, Size: 0, Cycles: 2, Illegal: true},
	{Opcode: 0x43, Mnemonic: "SRE", Mode: modeIndirectX, Size: 2, Cycles: 8, Illegal: true},
	{Opcode: 0x44, Mnemonic: "NOP", Mode: modeZeropage, Size: 2, Cycles: 3, Illegal: true},
	{Opcode: 0x45, Mnemonic: "EOR", Mode: modeZeropage, Size: 2, Cycles: 3},
	{Opcode: 0x46, Mnemonic: "LSR", Mode: modeZeropage, Size: 2, Cycles: 5},
	{Opcode: 0x47, Mnemonic: "SRE", Mode: modeZeropage, Size: 2, Cycles: 5, Illegal: true},
	{Opcode: 0x48, Mnemonic: "PHA", Mode: modeImplied, Size: 1, Cycles: 3},
	{Opcode: 0x49, Mnemonic: "EOR", Mode: modeImmediate, Size: 2, Cycles: 2},
	{Opcode: 0x4A, Mnemonic: "LSR", Mode: modeAccumulator, Size: 1, Cycles: 2},
	{Opcode: 0x4B, Mnemonic: "ALR", Mode: modeImmediate, Size: 0, Cycles: 2, Illegal: true},
	{Opcode: 0x4C, Mnemonic: "JMP", Mode: modeAbsolute, Size: 3, Cycles: 3},
	{Opcode: 0x4D, Mnemonic: "EOR", Mode: modeAbsolute, Size: 3, Cycles: 4},
	{Opcode: 0x4E, Mnemonic: "LSR", Mode: modeAbsolute, Size: 3, Cycles: 6},
	{Opcode: 0x4F, Mnemonic: "SRE", Mode: modeAbsolute, Size: 3, Cycles: 6, Illegal: true},
	{Opcode: 0x50, Mnemonic: "BVC", Mode: modeRelative, Size: 2, Cycles: 2, PageCycles: 1},
	{Opcode: 0x51, Mnemonic: "EOR", Mode: modeIndirectY, Size: 2, Cycles: 5, PageCycles: 1},
	{Opcode: 0x52, Mnemonic: "KIL", Mode: modeImplied, Size: 0, Cycles: 2, Illegal: true},
	{Opcode: 0x53, Mnemonic: "SRE", Mode: modeIndirectY, Size: 2, Cycles: 8, Illegal: true},
	{Opcode: 0x54, Mnemonic: "NOP", Mode: modeZeropageX, Size: 2, Cycles: 4, Illegal: true},
	{Opcode: 0x55, Mnemonic: "EOR", Mode: modeZeropageX, Size: 2, Cycles: 4},
	{Opcode: 0x56, Mnemonic: "LSR", Mode: modeZeropageX, Size: 2, Cycles: 6},
	{Opcode: 0x57, Mnemonic: "SRE", Mode: modeZeropageX, Size: 2, Cycles: 6, Illegal: true},
	{Opcode: 0x58, Mnemonic: "CLI", Mode: modeImplied, Size: 1, Cycles: 2},
	{Opcode: 0x59, Mnemonic: "EOR", Mode: modeAbsoluteY, Size: 3, Cycles: 4, PageCycles: 1},
	{Opcode: 0x5A, Mnemonic: "NOP", Mode: modeImplied, Size: 1, Cycles: 2, Illegal: true},
	{Opcode: 0x5B, Mnemonic: "SRE", Mode: modeAbsoluteY, Size: 3, Cycles: 7, Illegal: true},
	{Opcode: 0x5C, Mnemonic: "NOP", Mode: modeAbsoluteX, Size: 3, Cycles: 4, PageCycles: 1, Illegal: true},
	{Opcode: 0x5D, Mnemonic: "EOR", Mode: modeAbsoluteX, Size: 3, Cycles: 4, PageCycles: 1},
	{Opcode: 0x5E, Mnemonic: "LSR", Mode: modeAbsoluteX, Size: 3, Cycles: 7},
	{Opcode: 0x5F, Mnemonic: "SRE", Mode: modeAbsoluteX, Size: 3, Cycles: 7, Illegal: true},
	{Opcode: 0x60, Mnemonic: "RTS", Mode: modeImplied, Size: 1, Cycles: 6},
	{Opcode: 0x61, Mnemonic: "ADC", Mode: modeIndirectX, Size: 2, Cycles: 6},
	{Opcode: 0x62, Mnemonic: "KIL", Mode: modeImplied, Size: 0, Cycles: 2, Illegal: true},
	{Opcode: 0x63, Mnemonic: "RRA", Mode: modeIndirectX, Size: 2, Cycles: 8, Illegal: true},
	{Opcode: 0x64, Mnemonic: "NOP", Mode: modeZeropage, Size: 2, Cycles: 3, Illegal: true},
	{Opcode: 0x65, Mnemonic: "ADC", Mode: modeZeropage, Size: 2, Cycles: 3},
	{Opcode: 0x66, Mnemonic: "ROR", Mode: modeZeropage, Size: 2, Cycles: 5},
	{Opcode: 0x67, Mnemonic: "RRA", Mode: modeZeropage, Size: 2, Cycles: 5, Illegal: true},
	{Opcode: 0x68, Mnemonic: "PLA", Mode: modeImplied, Size: 1, Cycles: 4},
	{Opcode: 0x69, Mnemonic: "ADC", Mode: modeImmediate, Size: 2, Cycles: 2},
	{Opcode: 0x6A, Mnemonic: "ROR", Mode: modeAccumulator, Size: 1, Cycles: 2},
	{Opcode: 0x6B, Mnemonic: "ARR", Mode: modeImmediate, Size: 0, Cycles: 2, Illegal: true},
	{Opcode: 0x6C, Mnemonic: "JMP", Mode: modeIndirect, Size: 3, Cycles: 5},
	{Opcode: 0x6D, Mnemonic: "ADC", Mode: modeAbsolute, Size: 3, Cycles: 4},
	{Opcode: 0x6E, Mnemonic: "ROR", Mode: modeAbsolute, Size: 3, Cycles: 6},
	{Opcode: 0x6F, Mnemonic: "RRA", Mode: modeAbsolute, Size: 3, Cycles: 6, Illegal: true},
	{Opcode: 0x70, Mnemonic: "BVS", Mode: modeRelative, Size: 2, Cycles: 2, PageCycles: 1},
	{Opcode: 0x71, Mnemonic: "ADC", Mode: modeIndirectY, Size: 2, Cycles: 5, PageCycles: 1},
	{Opcode: 0x72, Mnemonic: "KIL", Mode: modeImplied, Size: 0, Cycles: 2, Illegal: true},
	{Opcode: 0x73, Mnemonic: "RRA", Mode: modeIndirectY, Size: 2, Cycles: 8, Illegal: true},
	{Opcode: 0x74, Mnemonic: "NOP", Mode: modeZeropageX, Size: 2, Cycles: 4, Illegal: true},
	{Opcode: 0x75, Mnemonic: "ADC", Mode: modeZeropageX, Size: 2, Cycles: 4},
	{Opcode: 0x76, Mnemonic: "ROR", Mode: modeZeropageX, Size: 2, Cycles: 6},
	{Opcode: 0x77, Mnemonic: "RRA", Mode: modeZeropageX, Size: 2, Cycles: 6, Illegal: true},
	{Opcode: 0x78, Mnemonic: "SEI", Mode: modeImplied, Size: 1, Cycles: 2},
	{Opcode: 0x79, Mnemonic: "ADC", Mode: modeAbsoluteY, Size: 3, Cycles: 4, PageCycles: 1},
	{Opcode: 0x7A, Mnemonic: "NOP", Mode: modeImplied, Size: 1, Cycles: 2, Illegal: true},
	{Opcode: 0x7B, Mnemonic: "RRA", Mode: modeAbsoluteY, Size: 3, Cycles: 7, Illegal: true},
	{Opcode: 0x7C, Mnemonic: "NOP", Mode: modeAbsoluteX, Size: 3, Cycles: 4, PageCycles: 1, Illegal: true},
	{Opcode: 0x7D, Mnemonic: "ADC", Mode: modeAbsoluteX, Size: 3, Cycles: 4, PageCycles: 1},
	{Opcode: 0x7E, Mnemonic: "ROR", Mode: modeAbsoluteX, Size: 3, Cycles: 7},
	{Opcode: 0x7F, Mnemonic: "RRA", Mode: modeAbsoluteX, Size: 3, Cycles: 7, Illegal: true},
	{Opcode: 0x80, Mnemonic: "NOP", Mode: modeImmediate, Size: 2, Cycles: 2, Illegal: true},
	{Opcode: 0x81, Mnemonic: "STA", Mode: modeIndirectX, Size: 2, Cycles: 6},
	{Opcode: 0x82, Mnemonic: "NOP", Mode: modeImmediate, Size: 0, Cycles: 2, Illegal: true},
	{Opcode: 0x83, Mnemonic: "SAX", Mode: modeIndirectX, Size: 2, Cycles: 6, Illegal: true},
	{Opcode: 0x84, Mnemonic: "STY", Mode: modeZeropage, Size: 2, Cycles: 3},
	{Opcode: 0x85, Mnemonic: "STA", Mode: modeZeropage, Size: 2, Cycles: 3},
	{Opcode: 0x86, Mnemonic: "STX", Mode: modeZeropage, Size: 2, Cycles: 3},
	{Opcode: 0x87, Mnemonic: "SAX", Mode: modeZeropage, Size: 2, Cycles: 3, Illegal: true},
	{Opcode: 0x88, Mnemonic: "DEY", Mode: modeImplied, Size: 1, Cycles: 2},
	{Opcode: 0x89, Mnemonic: "NOP", Mode: modeImmediate, Size: 0, Cycles: 2, Illegal: true},
	{Opcode: 0x8A, Mnemonic: "TXA", Mode: modeImplied, Size: 1, Cycles: 2},
	{Opcode: 0x8B, Mnemonic: "XAA", Mode: modeImmediate, Size: 0, Cycles: 2, Illegal: true},
	{Opcode: 0x8C, Mnemonic: "STY", Mode: modeAbsolute, Size: 3, Cycles: 4},
	{Opcode: 0x8D, Mnemonic: "STA", Mode: modeAbsolute, Size: 3, Cycles: 4},
	{Opcode: 0x8E, Mnemonic: "STX", Mode: modeAbsolute, Size: 3, Cycles: 4},
	{Opcode: 0x8F, Mnemonic: "SAX", Mode: modeAbsolute, Size: 3, Cycles: 4, Illegal: true},
	{Opcode: 0x90, Mnemonic: "BCC", Mode: modeRelative, Size: 2, Cycles: 2, PageCycles: 1},
	{Opcode: 0x91, Mnemonic: "STA", Mode: modeIndirectY, Size: 2, Cycles: 6},
	{Opcode: 0x92, Mnemonic: "KIL", Mode: modeImplied, Size: 0, Cycles: 2, Illegal: true},
	{Opcode: 0x93, Mnemonic: "AHX", Mode: modeIndirectY, Size: 0, Cycles: 6, Illegal: true},
	{Opcode: 0x94, Mnemonic: "STY", Mode: modeZeropageX, Size: 2, Cycles: 4},
	{Opcode: 0x95, Mnemonic: "STA", Mode: modeZeropageX, Size: 2, Cycles: 4},
	{Opcode: 0x96, Mnemonic: "STX", Mode: modeZeropageY, Size: 2, Cycles: 4},
	{Opcode: 0x97, Mnemonic: "SAX", Mode: modeZeropageY, Size: 2, Cycles: 4, Illegal: true},
	{Opcode: 0x98, Mnemonic: "TYA", Mode: modeImplied, Size: 1, Cycles: 2},
	{Opcode: 0x99, Mnemonic: "STA", Mode: modeAbsoluteY, Size: 3, Cycles: 5},
	{Opcode: 0x9A, Mnemonic: "TXS", Mode: modeImplied, Size: 1, Cycles: 2},
	{Opcode: 0x9B, Mnemonic: "TAS", Mode: modeAbsoluteY, Size: 0, Cycles: 5, Illegal: true},
	{Opcode: 0x9C, Mnemonic: "SHY", Mode: modeAbsoluteX, Size: 0, Cycles: 5, Illegal: true},
	{Opcode: 0x9D, Mnemonic: "STA", Mode: modeAbsoluteX, Size: 3, Cycles: 5},
	{Opcode: 0x9E, Mnemonic: "SHX", Mode: modeAbsoluteY, Size: 0, Cycles: 5, Illegal: true},
	{Opcode: 0x9F, Mnemonic: "AHX", Mode: modeAbsoluteY, Size: 0, Cycles: 5, Illegal: true},
	{Opcode: 0xA0, Mnemonic: "LDY", Mode: modeImmediate, Size: 2, Cycles: 2},
	{Opcode: 0xA1, Mnemonic: "LDA", Mode: modeIndirectX, Size: 2, Cycles: 6},
	{Opcode: 0xA2, Mnemonic: "LDX", Mode: modeImmediate, Size: 2, Cycles: 2},
	{Opcode: 0xA3, Mnemonic: "LAX", Mode: modeIndirectX, Size: 2, Cycles: 6, Illegal: true},
	{Opcode: 0xA4, Mnemonic: "LDY", Mode: modeZeropage, Size: 2, Cycles: 3},
	{Opcode: 0xA5, Mnemonic: "LDA", Mode: modeZeropage, Size: 2, Cycles: 3},
	{Opcode: 0xA6, Mnemonic: "LDX", Mode: modeZeropage, Size: 2, Cycles: 3},
	{Opcode: 0xA7, Mnemonic: "LAX", Mode: modeZeropage, Size: 2, Cycles: 3, Illegal: true},
	{Opcode: 0xA8, Mnemonic: "TAY", Mode: modeImplied, Size: 1, Cycles: 2},
	{Opcode: 0xA9, Mnemonic: "LDA", Mode: modeImmediate, Size: 2, Cycles: 2},
	{Opcode: 0xAA, Mnemonic: "TAX", Mode: modeImplied, Size: 1, Cycles: 2},
	{Opcode: 0xAB, Mnemonic: "LAX", Mode: modeImmediate, Size: 0, Cycles: 2, Illegal: true},
	{Opcode: 0xAC, Mnemonic: "LDY", Mode: modeAbsolute, Size: 3, Cycles: 4},
	{Opcode: 0xAD, Mnemonic: "LDA", Mode: modeAbsolute, Size: 3, Cycles: 4},
	{Opcode: 0xAE, Mnemonic: "LDX", Mode: modeAbsolute, Size: 3, Cycles: 4},
	{Opcode: 0xAF, Mnemonic: "LAX", Mode: modeAbsolute, Size: 3, Cycles: 4, Illegal: true},
	{Opcode: 0xB0, Mnemonic: "BCS", Mode: modeRelative, Size: 2, Cycles: 2, PageCycles: 1},
	{Opcode: 0xB1, Mnemonic: "LDA", Mode: modeIndirectY, Size: 2, Cycles: 5, PageCycles: 1},
	{Opcode: 0xB2, Mnemonic: "KIL", Mode: modeImplied, Size: 0, Cycles: 2, Illegal: true},
	{Opcode: 0xB3, Mnemonic: "LAX", Mode: modeIndirectY, Size: 2, Cycles: 5, PageCycles: 1, Illegal: true},
	{Opcode: 0xB4, Mnemonic: "LDY", Mode: modeZeropageX, Size: 2, Cycles: 4},
	{Opcode: 0xB5, Mnemonic: "LDA", Mode: modeZeropageX, Size: 2, Cycles: 4},
	{Opcode: 0xB6, Mnemonic: "LDX", Mode: modeZeropageY, Size: 2, Cycles: 4},
	{Opcode: 0xB7, Mnemonic: "LAX", Mode: modeZeropageY, Size: 2, Cycles: 4, Illegal: true},
	{Opcode: 0xB8, Mnemonic: "CLV", Mode: modeImplied, Size: 1, Cycles: 2},
	{Opcode: 0xB9, Mnemonic: "LDA", Mode: modeAbsoluteY, Size: 3, Cycles: 4, PageCycles: 1},
	{Opcode: 0xBA, Mnemonic: "TSX", Mode: modeImplied, Size: 1, Cycles: 2},
	{Opcode: 0xBB, Mnemonic: "LAS", Mode: modeAbsoluteY, Size: 0, Cycles: 4, PageCycles: 1, Illegal: true},
	{Opcode: 0xBC, Mnemonic: "LDY", Mode: modeAbsoluteX, Size: 3, Cycles: 4, PageCycles: 1},
	{Opcode: 0xBD, Mnemonic: "LDA", Mode: modeAbsoluteX, Size: 3, Cycles: 4, PageCycles: 1},
	{Opcode: 0xBE, Mnemonic: "LDX", Mode: modeAbsoluteY, Size: 3, Cycles: 4, PageCycles: 1},
	{Opcode: 0xBF, Mnemonic: "LAX", Mode: modeAbsoluteY, Size: 3, Cycles: 4, PageCycles: 1, Illegal: true},
	{Opcode: 0xC0, Mnemonic: "CPY", Mode: modeImmediate, Size: 2, Cycles: 2},
	{Opcode: 0xC1, Mnemonic: "CMP", Mode: modeIndirectX, Size: 2, Cycles: 6},
	{Opcode: 0xC2, Mnemonic: "NOP", Mode: modeImmediate, Size: 0, Cycles: 2, Illegal: true},
	{Opcode: 0xC3, Mnemonic: "DCP", Mode: modeIndirectX, Size: 2, Cycles: 8, Illegal: true},
	{Opcode: 0xC4, Mnemonic: "CPY", Mode: modeZeropage, Size: 2, Cycles: 3},
	{Opcode: 0xC5, Mnemonic: "CMP", Mode: modeZeropage, Size: 2, Cycles: 3},
	{Opcode: 0xC6, Mnemonic: "DEC", Mode: modeZeropage, Size: 2, Cycles: 5},
	{Opcode: 0xC7, Mnemonic: "DCP", Mode: modeZeropage, Size: 2, Cycles: 5, Illegal: true},
	{Opcode: 0xC8, Mnemonic: "INY", Mode: modeImplied, Size: 1, Cycles: 2},
	{Opcode: 0xC9, Mnemonic: "CMP", Mode: modeImmediate, Size: 2, Cycles: 2},
	{Opcode: 0xCA, Mnemonic: "DEX", Mode: modeImplied, Size: 1, Cycles: 2},
	{Opcode: 0xCB, Mnemonic: "AXS", Mode: modeImmediate, Size: 0, Cycles: 2, Illegal: true},
	{Opcode: 0xCC, Mnemonic: "CPY", Mode: modeAbsolute, Size: 3, Cycles: 4},
	{Opcode: 0xCD, Mnemonic: "CMP", Mode: modeAbsolute, Size: 3, Cycles: 4},
	{Opcode: 0xCE, Mnemonic: "DEC", Mode: modeAbsolute, Size: 3, Cycles: 6},
	{Opcode: 0xCF, Mnemonic: "DCP", Mode: modeAbsolute, Size: 3, Cycles: 6, Illegal: true},
	{Opcode: 0xD0, Mnemonic: "BNE", Mode: modeRelative, Size: 2, Cycles: 2, PageCycles: 1},
	{Opcode: 0xD1, Mnemonic: "CMP", Mode: modeIndirectY, Size: 2, Cycles: 5, PageCycles: 1},
	{Opcode: 0xD2, Mnemonic: "KIL", Mode: modeImplied, Size: 0, Cycles: 2, Illegal: true},
	{Opcode: 0xD3, Mnemonic: "DCP", Mode: modeIndirectY, Size: 2, Cycles: 8, Illegal: true},
	{Opcode: 0xD4, Mnemonic: "NOP", Mode: modeZeropageX, Size: 2, Cycles: 4, Illegal: true},
	{Opcode: 0xD5, Mnemonic: "CMP", Mode: modeZeropageX, Size: 2, Cycles: 4},
	{Opcode: 0xD6, Mnemonic: "DEC", Mode: modeZeropageX, Size: 2, Cycles: 6},
	{Opcode: 0xD7, Mnemonic: "DCP", Mode: modeZeropageX, Size: 2, Cycles: 6, Illegal: true},
	{Opcode: 0xD8, Mnemonic: "CLD", Mode: modeImplied, Size: 1, Cycles: 2},
	{Opcode: 0xD9, Mnemonic: "CMP", Mode: modeAbsoluteY, Size: 3, Cycles: 4, PageCycles: 1},
	{Opcode: 0xDA, Mnemonic: "NOP", Mode: modeImplied, Size: 1, Cycles: 2, Illegal: true},
	{Opcode: 0xDB, Mnemonic: "DCP", Mode: modeAbsoluteY, Size: 3, Cycles: 7, Illegal: true},
	{Opcode: 0xDC, Mnemonic: "NOP", Mode: modeAbsoluteX, Size: 3, Cycles: 4, PageCycles: 1, Illegal: true},
	{Opcode: 0xDD, Mnemonic: "CMP", Mode: modeAbsoluteX, Size: 3, Cycles: 4, PageCycles: 1},
	{Opcode: 0xDE, Mnemonic: "DEC", Mode: modeAbsoluteX, Size: 3, Cycles: 7},
	{Opcode: 0xDF, Mnemonic: "DCP", Mode: modeAbsoluteX, Size: 3, Cycles: 7, Illegal: true},
	{Opcode: 0xE0, Mnemonic: "CPX", Mode: modeImmediate, Size: 2, Cycles: 2},
	{Opcode: 0xE1, Mnemonic: "SBC", Mode: modeIndirectX, Size: 2, Cycles: 6},
	{Opcode: 0xE2, Mnemonic: "NOP", Mode: modeImmediate, Size: 0, Cycles: 2, Illegal: true},
	{Opcode: 0xE3, Mnemonic: "ISB", Mode: modeIndirectX, Size: 2, Cycles: 8, Illegal: true},
	{Opcode: 0xE4, Mnemonic: "CPX", Mode: modeZeropage, Size: 2, Cycles: 3},
	{Opcode: 0xE5, Mnemonic: "SBC", Mode: modeZeropage, Size: 2, Cycles: 3},
	{Opcode: 0xE6, Mnemonic: "INC", Mode: modeZeropage, Size: 2, Cycles: 5},
	{Opcode: 0xE7, Mnemonic: "ISB", Mode: modeZeropage, Size: 2, Cycles: 5, Illegal: true},
	{Opcode: 0xE8, Mnemonic: "INX", Mode: modeImplied, Size: 1, Cycles: 2},
	{Opcode: 0xE9, Mnemonic: "SBC", Mode: modeImmediate, Size: 2, Cycles: 2},
	{Opcode: 0xEA, Mnemonic: "NOP", Mode: modeImplied, Size: 1, Cycles: 2},
	{Opcode: 0xEB, Mnemonic: "SBC", Mode: modeImmediate, Size: 2, Cycles: 2, Illegal: true},
	{Opcode: 0xEC, Mnemonic: "CPX", Mode: modeAbsolute, Size: 3, Cycles: 4},
	{Opcode: 0xED, Mnemonic: "SBC", Mode: modeAbsolute, Size: 3, Cycles: 4},
	{Opcode: 0xEE, Mnemonic: "INC", Mode: modeAbsolute, Size: 3, Cycles: 6},
	{Opcode: 0xEF, Mnemonic: "ISB", Mode: modeAbsolute, Size: 3, Cycles: 6, Illegal: true},
	{Opcode: 0xF0, Mnemonic: "BEQ", Mode: modeRelative, Size: 2, Cycles: 2, PageCycles: 1},
	{Opcode: 0xF1, Mnemonic: "SBC", Mode: modeIndirectY, Size: 2, Cycles: 5, PageCycles: 1},
	{Opcode: 0xF2, Mnemonic: "KIL", Mode: modeImplied, Size: 0, Cycles: 2, Illegal: true},
	{Opcode: 0xF3, Mnemonic: "ISB", Mode: modeIndirectY, Size: 2, Cycles: 8, Illegal: true},
	{Opcode: 0xF4, Mnemonic: "NOP", Mode: modeZeropageX, Size: 2, Cycles: 4, Illegal: true},
	{Opcode: 0xF5, Mnemonic: "SBC", Mode: modeZeropageX, Size: 2, Cycles: 4},
	{Opcode: 0xF6, Mnemonic: "INC", Mode: modeZeropageX, Size: 2, Cycles: 6},
	{Opcode: 0xF7, Mnemonic: "ISB", Mode: modeZeropageX, Size: 2, Cycles: 6, Illegal: true},
	{Opcode: 0xF8, Mnemonic: "SED", Mode: modeImplied, Size: 1, Cycles: 2},
	{Opcode: 0xF9, Mnemonic: "SBC", Mode: modeAbsoluteY, Size: 3, Cycles: 4, PageCycles: 1},
	{Opcode: 0xFA, Mnemonic: "NOP", Mode: modeImplied, Size: 1, Cycles: 2, Illegal: true},
	{Opcode: 0xFB, Mnemonic: "ISB", Mode: modeAbsoluteY, Size: 3, Cycles: 7, Illegal: true},
	{Opcode: 0xFC, Mnemonic: "NOP", Mode: modeAbsoluteX, Size: 3, Cycles: 4, PageCycles: 1, Illegal: true},
	{Opcode: 0xFD, Mnemonic: "SBC", Mode: modeAbsoluteX, Size: 3, Cycles: 4, PageCycles: 1},
	{Opcode: 0xFE, Mnemonic: "INC", Mode: modeAbsoluteX, Size: 3, Cycles: 7},
	{Opcode: 0xFF, Mnemonic: "ISB", Mode: modeAbsoluteX, Size: 3, Cycles: 7, Illegal: true},
}

// init wires each table slot's Handler: illegal slots all share
// illegalOpcode, legal slots look up their mnemonic in handlersByMnemonic.
func init() {
	for i := range instructionTable {
		instr := &instructionTable[i]
		if instr.Illegal {
			instr.Handler = illegalOpcode
			continue
		}
		h, ok := handlersByMnemonic[instr.Mnemonic]
		if !ok {
			panic("nes: no handler registered for mnemonic " + instr.Mnemonic)
		}
		instr.Handler = h
	}
}

var handlersByMnemonic = map[string]handlerFunc{
	"ADC": adc, "AND": and, "ASL": asl, "BCC": bcc, "BCS": bcs, "BEQ": beq,
	"BIT": bit, "BMI": bmi, "BNE": bne, "BPL": bpl, "BRK": brkInstr, "BVC": bvc,
	"BVS": bvs, "CLC": clc, "CLD": cld, "CLI": cli, "CLV": clv, "CMP": cmp,
	"CPX": cpx, "CPY": cpy, "DEC": dec, "DEX": dex, "DEY": dey, "EOR": eor,
	"INC": inc, "INX": inx, "INY": iny, "JMP": jmp, "JSR": jsr, "LDA": lda,
	"LDX": ldx, "LDY": ldy, "LSR": lsr, "NOP": nop, "ORA": ora, "PHA": pha,
	"PHP": php, "PLA": pla, "PLP": plp, "ROL": rol, "ROR": ror, "RTI": rti,
	"RTS": rts, "SBC": sbc, "SEC": sec, "SED": sed, "SEI": sei, "STA": sta,
	"STX": stx, "STY": sty, "TAX": tax, "TAY": tay, "TSX": tsx, "TXA": txa,
	"TXS": txs, "TYA": tya,
}

func illegalOpcode(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	return &FaultError{Reason: "dispatch of undocumented opcode " + instr.Mnemonic}
}

// branch adds the relative offset to pc when cond holds, charging the
// taken/page-cross cycles the static table cannot express on its own.
func (c *CPU) branch(res resolution, cond bool) {
	if !cond {
		return
	}
	c.extraCycles++
	from := c.pc
	to := uint16(int32(from) + int32(int8(res.operand)))
	if pageCrossed(from, to) {
		c.extraCycles++
	}
	c.pc = to
}

// BPL - Branch if Positive
//
// If the negative flag is clear, add the relative displacement to the
// program counter to cause a branch to a new location.
//
// Processor Status after use: no flag is affected.
func bpl(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.branch(res, !c.flag(negative))
	return nil
}

// BMI - Branch if Minus
//
// If the negative flag is set, add the relative displacement to the
// program counter to cause a branch to a new location.
//
// Processor Status after use: no flag is affected.
func bmi(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.branch(res, c.flag(negative))
	return nil
}

// BVC - Branch if Overflow Clear
//
// If the overflow flag is clear, add the relative displacement to the
// program counter to cause a branch to a new location.
//
// Processor Status after use: no flag is affected.
func bvc(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.branch(res, !c.flag(overflow))
	return nil
}

// BVS - Branch if Overflow Set
//
// If the overflow flag is set, add the relative displacement to the
// program counter to cause a branch to a new location.
//
// Processor Status after use: no flag is affected.
func bvs(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.branch(res, c.flag(overflow))
	return nil
}

// BCC - Branch if Carry Clear
//
// If the carry flag is clear, add the relative displacement to the
// program counter to cause a branch to a new location.
//
// Processor Status after use: no flag is affected.
func bcc(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.branch(res, !c.flag(carry))
	return nil
}

// BCS - Branch if Carry Set
//
// If the carry flag is set, add the relative displacement to the program
// counter to cause a branch to a new location.
//
// Processor Status after use: no flag is affected.
func bcs(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.branch(res, c.flag(carry))
	return nil
}

// BNE - Branch if Not Equal
//
// If the zero flag is clear, add the relative displacement to the program
// counter to cause a branch to a new location.
//
// Processor Status after use: no flag is affected.
func bne(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.branch(res, !c.flag(zero))
	return nil
}

// BEQ - Branch if Equal
//
// If the zero flag is set, add the relative displacement to the program
// counter to cause a branch to a new location.
//
// Processor Status after use: no flag is affected.
func beq(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.branch(res, c.flag(zero))
	return nil
}

// CLC - Clear Carry Flag
// C = 0
//
// Clears the carry flag to zero.
func clc(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.setFlag(carry, false)
	return nil
}

// SEC - Set Carry Flag
// C = 1
//
// Sets the carry flag to one.
func sec(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.setFlag(carry, true)
	return nil
}

// CLI - Clear Interrupt Disable
// I = 0
//
// Clears the interrupt disable flag, allowing normal IRQ servicing to
// resume.
func cli(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.setFlag(interruptDisable, false)
	return nil
}

// SEI - Set Interrupt Disable
// I = 1
//
// Sets the interrupt disable flag, masking IRQ servicing until cleared.
func sei(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.setFlag(interruptDisable, true)
	return nil
}

// CLV - Clear Overflow Flag
// V = 0
//
// Clears the overflow flag to zero.
func clv(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.setFlag(overflow, false)
	return nil
}

// CLD - Clear Decimal Mode
// D = 0
//
// Clears the decimal mode flag; it has no effect on ADC/SBC in this
// interpreter, which never enters decimal mode.
func cld(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.setFlag(decimal, false)
	return nil
}

// SED - Set Decimal Flag
// D = 1
//
// Sets the decimal mode flag, for fidelity only; see cld.
func sed(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.setFlag(decimal, true)
	return nil
}

// NOP - No Operation
//
// Causes no change to the processor state beyond the normal fetch/resolve
// cost already charged by the dispatch loop.
func nop(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	return nil
}

// BIT - Bit Test
// Z = A&M, V = M.6, N = M.7
//
// ANDs the accumulator with a memory value without storing the result,
// setting the zero flag from the masked result and copying bits 6 and 7
// of the operand straight into the overflow and negative flags.
//
// Processor Status after use:
// C	Carry Flag			Not affected
// Z	Zero Flag			Set if A&M = 0
// I	Interrupt Disable	Not affected
// D	Decimal Mode Flag	Not affected
// B	Break Command		Not affected
// V	Overflow Flag		Set to bit 6 of the memory value
// N	Negative Flag		Set to bit 7 of the memory value
func bit(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	v := c.load(b, res)
	c.setFlag(zero, c.a&v == 0)
	c.setFlag(overflow, v&0x40 != 0)
	c.setFlag(negative, v&0x80 != 0)
	return nil
}

// AND - Logical AND
// A,Z,N = A&M
//
// ANDs the accumulator with a byte of memory and stores the result back
// in the accumulator.
//
// Processor Status after use:
// C	Carry Flag			Not affected
// Z	Zero Flag			Set if A = 0
// I	Interrupt Disable	Not affected
// D	Decimal Mode Flag	Not affected
// B	Break Command		Not affected
// V	Overflow Flag		Not affected
// N	Negative Flag		Set if bit 7 of A is set
func and(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.a &= c.load(b, res)
	c.setZN(c.a)
	return nil
}

// ORA - Logical Inclusive OR
// A,Z,N = A|M
//
// ORs the accumulator with a byte of memory and stores the result back in
// the accumulator. See and for the affected-flags table.
func ora(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.a |= c.load(b, res)
	c.setZN(c.a)
	return nil
}

// EOR - Exclusive OR
// A,Z,N = A^M
//
// XORs the accumulator with a byte of memory and stores the result back
// in the accumulator. See and for the affected-flags table.
func eor(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.a ^= c.load(b, res)
	c.setZN(c.a)
	return nil
}

// ASL - Arithmetic Shift Left
// A,Z,C,N = M*2 or M,Z,C,N = M*2
//
// Shifts the accumulator or a memory location one bit left, moving bit 7
// into the carry flag and filling bit 0 with zero.
//
// Processor Status after use:
// C	Carry Flag			Set to bit 7 of the input
// Z	Zero Flag			Set if the shifted result is 0
// I	Interrupt Disable	Not affected
// D	Decimal Mode Flag	Not affected
// B	Break Command		Not affected
// V	Overflow Flag		Not affected
// N	Negative Flag		Set if bit 7 of the result is set
func asl(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	v := c.load(b, res)
	c.setFlag(carry, v&0x80 != 0)
	v <<= 1
	c.setZN(v)
	return c.store(b, instr, res, v)
}

// LSR - Logical Shift Right
// A,Z,C,N = M/2 or M,Z,C,N = M/2
//
// Shifts the accumulator or a memory location one bit right, moving bit 0
// into the carry flag and filling bit 7 with zero. See asl for the
// affected-flags table, with carry taken from bit 0 instead of bit 7.
func lsr(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	v := c.load(b, res)
	c.setFlag(carry, v&0x01 != 0)
	v >>= 1
	c.setZN(v)
	return c.store(b, instr, res, v)
}

// ROL - Rotate Left
//
// Shifts the accumulator or a memory location one bit left, moving bit 7
// into the carry flag and the old carry flag into bit 0. See asl for the
// affected-flags table.
func rol(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	v := c.load(b, res)
	carryIn := byte(0)
	if c.flag(carry) {
		carryIn = 1
	}
	c.setFlag(carry, v&0x80 != 0)
	v = v<<1 | carryIn
	c.setZN(v)
	return c.store(b, instr, res, v)
}

// ROR - Rotate Right
//
// Shifts the accumulator or a memory location one bit right, moving bit 0
// into the carry flag and the old carry flag into bit 7. See asl for the
// affected-flags table, with carry taken from bit 0 instead of bit 7.
func ror(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	v := c.load(b, res)
	carryIn := byte(0)
	if c.flag(carry) {
		carryIn = 0x80
	}
	c.setFlag(carry, v&0x01 != 0)
	v = v>>1 | carryIn
	c.setZN(v)
	return c.store(b, instr, res, v)
}

// INC - Increment Memory
// M,Z,N = M+1
//
// Adds one to a memory location, setting the zero and negative flags from
// the result.
func inc(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	v := c.load(b, res) + 1
	c.setZN(v)
	return c.store(b, instr, res, v)
}

// DEC - Decrement Memory
// M,Z,N = M-1
//
// Subtracts one from a memory location, setting the zero and negative
// flags from the result.
func dec(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	v := c.load(b, res) - 1
	c.setZN(v)
	return c.store(b, instr, res, v)
}

// INX - Increment X Register
// X,Z,N = X+1
//
// Adds one to the X register, setting the zero and negative flags as
// appropriate.
func inx(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.x++
	c.setZN(c.x)
	return nil
}

// DEX - Decrement X Register
// X,Z,N = X-1
//
// Subtracts one from the X register, setting the zero and negative flags
// as appropriate.
func dex(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.x--
	c.setZN(c.x)
	return nil
}

// INY - Increment Y Register
// Y,Z,N = Y+1
//
// Adds one to the Y register, setting the zero and negative flags as
// appropriate.
func iny(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.y++
	c.setZN(c.y)
	return nil
}

// DEY - Decrement Y Register
// Y,Z,N = Y-1
//
// Subtracts one from the Y register, setting the zero and negative flags
// as appropriate.
func dey(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.y--
	c.setZN(c.y)
	return nil
}

// TAX - Transfer Accumulator to X
// X = A
//
// Copies the accumulator into X, setting the zero and negative flags from
// the copied value.
func tax(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.x = c.a
	c.setZN(c.x)
	return nil
}

// TAY - Transfer Accumulator to Y
// Y = A
//
// Copies the accumulator into Y. See tax for the affected-flags behavior.
func tay(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.y = c.a
	c.setZN(c.y)
	return nil
}

// TXA - Transfer X to Accumulator
// A = X
//
// Copies X into the accumulator. See tax for the affected-flags behavior.
func txa(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.a = c.x
	c.setZN(c.a)
	return nil
}

// TYA - Transfer Y to Accumulator
// A = Y
//
// Copies Y into the accumulator. See tax for the affected-flags behavior.
func tya(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.a = c.y
	c.setZN(c.a)
	return nil
}

// TSX - Transfer Stack Pointer to X
// X = SP
//
// Copies the stack pointer into X. See tax for the affected-flags
// behavior.
func tsx(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.x = c.sp
	c.setZN(c.x)
	return nil
}

// TXS - Transfer X to Stack Pointer
// SP = X
//
// Copies X into the stack pointer. No flags are affected.
func txs(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.sp = c.x
	return nil
}

// LDA - Load Accumulator
// A,Z,N = M
//
// Loads a byte of memory into the accumulator, setting the zero and
// negative flags as appropriate.
//
// Processor Status after use:
// C	Carry Flag			Not affected
// Z	Zero Flag			Set if A = 0
// I	Interrupt Disable	Not affected
// D	Decimal Mode Flag	Not affected
// B	Break Command		Not affected
// V	Overflow Flag		Not affected
// N	Negative Flag		Set if bit 7 of A is set
func lda(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.a = c.load(b, res)
	c.setZN(c.a)
	return nil
}

// LDX - Load X Register
// X,Z,N = M
//
// Loads a byte of memory into X. See lda for the affected-flags table.
func ldx(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.x = c.load(b, res)
	c.setZN(c.x)
	return nil
}

// LDY - Load Y Register
// Y,Z,N = M
//
// Loads a byte of memory into Y. See lda for the affected-flags table.
func ldy(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.y = c.load(b, res)
	c.setZN(c.y)
	return nil
}

// STA - Store Accumulator
// M = A
//
// Stores the contents of the accumulator into memory. No flags are
// affected.
func sta(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	return c.store(b, instr, res, c.a)
}

// STX - Store X Register
// M = X
//
// Stores the contents of X into memory. No flags are affected.
func stx(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	return c.store(b, instr, res, c.x)
}

// STY - Store Y Register
// M = Y
//
// Stores the contents of Y into memory. No flags are affected.
func sty(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	return c.store(b, instr, res, c.y)
}

// PHA - Push Accumulator
//
// Pushes a copy of the accumulator onto the stack. No flags are affected.
func pha(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.push(b, c.a)
	return nil
}

// PLA - Pull Accumulator
// A,Z,N = pop()
//
// Pulls a byte from the stack into the accumulator, setting the zero and
// negative flags from the pulled value.
func pla(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.a = c.pop(b)
	c.setZN(c.a)
	return nil
}

// PHP - Push Processor Status
//
// Pushes a copy of the status flags onto the stack, with the break and
// unused bits forced set - this distinguishes a software-pushed status
// byte from one pushed by a hardware interrupt line.
func php(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.push(b, byte(c.p|brk|unused))
	return nil
}

// PLP - Pull Processor Status
//
// Pulls the status flags from the stack, clearing the break bit and
// forcing the unused bit set regardless of what was pushed.
func plp(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.p = status(c.pop(b))&^brk | unused
	return nil
}

// JMP - Jump
//
// Sets the program counter to the resolved effective address. No flags
// are affected.
func jmp(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.pc = uint16(res.effective)
	return nil
}

// JSR - Jump to Subroutine
//
// Pushes the address of the last byte of the JSR instruction onto the
// stack, then sets the program counter to the target address. No flags
// are affected.
func jsr(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.push16(b, c.pc-1)
	c.pc = uint16(res.effective)
	return nil
}

// RTS - Return from Subroutine
//
// Pulls the program counter (minus one) from the stack, used at the end
// of a subroutine entered by JSR. No flags are affected.
func rts(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.pc = c.pop16(b) + 1
	return nil
}

// RTI - Return from Interrupt
//
// Pulls the processor status from the stack, followed by the program
// counter, used at the end of an interrupt service routine entered via
// BRK or a hardware interrupt. The break bit is cleared and the unused
// bit forced set on the pulled status, matching plp.
func rti(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.p = status(c.pop(b))&^brk | unused
	c.pc = c.pop16(b)
	return nil
}

// BRK - Force Interrupt
//
// Pushes the return address (the BRK opcode's address plus two, skipping
// its padding byte) and the processor status onto the stack (with the
// break and unused bits set, identifying it as a software-triggered
// push), sets the interrupt disable flag, and loads the program counter
// from the IRQ vector at $FFFE/$FFFF.
//
// Processor Status after use:
// C	Carry Flag			Not affected
// Z	Zero Flag			Not affected
// I	Interrupt Disable	Set to 1
// D	Decimal Mode Flag	Not affected
// B	Break Command		Set to 1 in the pushed copy
// V	Overflow Flag		Not affected
// N	Negative Flag		Not affected
func brkInstr(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.push16(b, c.pc+1)
	c.push(b, byte(c.p|brk|unused))
	c.p |= interruptDisable
	c.pc = b.read16(irqVector)
	return nil
}

// addWithCarry implements ADC's signed-overflow arithmetic; SBC reuses it
// against the bitwise complement of its operand, the standard 6502 trick.
func (c *CPU) addWithCarry(operand byte) {
	carryIn := uint16(0)
	if c.flag(carry) {
		carryIn = 1
	}
	sum := uint16(c.a) + uint16(operand) + carryIn
	result := byte(sum)
	c.setFlag(carry, sum > 0xFF)
	c.setFlag(overflow, (c.a^result)&(operand^result)&0x80 != 0)
	c.a = result
	c.setZN(c.a)
}

// ADC - Add with Carry
// A,Z,C,N = A+M+C
//
// Adds a byte of memory and the carry flag to the accumulator, setting
// the carry flag if the unsigned result overflowed and the overflow flag
// if the signed result is invalid.
//
// Processor Status after use:
// C	Carry Flag			Set if overflow in bit 7
// Z	Zero Flag			Set if A = 0
// I	Interrupt Disable	Not affected
// D	Decimal Mode Flag	Not affected
// B	Break Command		Not affected
// V	Overflow Flag		Set if sign bit is incorrect
// N	Negative Flag		Set if bit 7 of A is set
func adc(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.addWithCarry(c.load(b, res))
	return nil
}

// SBC - Subtract with Carry
// A,Z,C,N = A-M-(1-C)
//
// Subtracts a byte of memory and the inverse of the carry flag from the
// accumulator, by feeding addWithCarry the bitwise complement of the
// operand - the standard 6502 trick that makes SBC and ADC share one
// implementation. See adc for the affected-flags table.
func sbc(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	c.addWithCarry(^c.load(b, res))
	return nil
}

// compare is the shared body of CMP/CPX/CPY: it computes register-operand
// without storing the result, setting carry from the unsigned comparison
// and zero/negative from the difference.
func compare(c *CPU, register byte, operand byte) {
	diff := register - operand
	c.setFlag(carry, register >= operand)
	c.setZN(diff)
}

// CMP - Compare
// Z,C,N = A-M
//
// Compares the accumulator against a memory value, setting the zero and
// carry flags as appropriate.
//
// Processor Status after use:
// C	Carry Flag			Set if A >= M
// Z	Zero Flag			Set if A = M
// I	Interrupt Disable	Not affected
// D	Decimal Mode Flag	Not affected
// B	Break Command		Not affected
// V	Overflow Flag		Not affected
// N	Negative Flag		Set if bit 7 of the result is set
func cmp(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	compare(c, c.a, c.load(b, res))
	return nil
}

// CPX - Compare X Register
// Z,C,N = X-M
//
// Compares X against a memory value. See cmp for the affected-flags
// table, substituting X for A.
func cpx(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	compare(c, c.x, c.load(b, res))
	return nil
}

// CPY - Compare Y Register
// Z,C,N = Y-M
//
// Compares Y against a memory value. See cmp for the affected-flags
// table, substituting Y for A.
func cpy(c *CPU, b *bus, instr *Instruction, res resolution) *FaultError {
	compare(c, c.y, c.load(b, res))
	return nil
}
