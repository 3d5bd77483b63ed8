package nes

import (
	"strings"
	"testing"
)

const sampleNestestLine = `C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD CYC:7`

func TestParseNestestLine(t *testing.T) {
	entry, err := ParseNestestLine(sampleNestestLine)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.PC != 0xC000 {
		t.Fatalf("want PC=$C000, got $%04X", entry.PC)
	}
	if entry.Opcode != 0x4C {
		t.Fatalf("want opcode=$4C, got $%02X", entry.Opcode)
	}
	if entry.Mnemonic != "JMP" {
		t.Fatalf("want mnemonic=JMP, got %s", entry.Mnemonic)
	}
	if entry.A != 0 || entry.X != 0 || entry.Y != 0 || entry.P != 0x24 || entry.SP != 0xFD {
		t.Fatalf("want A=X=Y=0 P=$24 SP=$FD, got A=%02X X=%02X Y=%02X P=%02X SP=%02X",
			entry.A, entry.X, entry.Y, entry.P, entry.SP)
	}
	if entry.Cycles != 7 {
		t.Fatalf("want cycles=7, got %d", entry.Cycles)
	}
}

func TestParseNestestLine_IllegalMarker(t *testing.T) {
	line := `C5F5  04 00    *NOP $00                        A:00 X:00 Y:00 P:24 SP:FD CYC:21`
	entry, err := ParseNestestLine(line)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Mnemonic != "NOP" {
		t.Fatalf("want mnemonic=NOP with the illegal marker stripped, got %q", entry.Mnemonic)
	}
	if !entry.Illegal {
		t.Fatalf("want Illegal=true for a *-marked mnemonic")
	}
}

func TestParseNestestTrace(t *testing.T) {
	input := sampleNestestLine + "\n" +
		`C5F5  04 00    *NOP $00                        A:00 X:00 Y:00 P:24 SP:FD CYC:21` + "\n"
	entries, err := ParseNestestTrace(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("want 2 entries, got %d", len(entries))
	}
}

func TestTraceEntry_Equal(t *testing.T) {
	a := &TraceEntry{Opcode: 0xA9, Mnemonic: "LDA", A: 1, PC: 0x8000, SP: 0xFD, Cycles: 2}
	b := &TraceEntry{Opcode: 0xA9, Mnemonic: "LDA", A: 1, PC: 0x8000, SP: 0xFD, Cycles: 2, Operand: 0x99, HasOperand: true}
	if !a.Equal(b) {
		t.Fatalf("want Equal to ignore operand fields")
	}
	b.A = 2
	if a.Equal(b) {
		t.Fatalf("want Equal to compare the register snapshot")
	}
}
