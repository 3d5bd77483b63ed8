package nes

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildTestROM(resetVectorTarget uint16, program []byte) []byte {
	h := baseHeader()
	buf := append([]byte(nil), h...)
	prg := make([]byte, prgBankLen)
	copy(prg, program)
	prg[0x3FFC] = byte(resetVectorTarget)
	prg[0x3FFD] = byte(resetVectorTarget >> 8)
	buf = append(buf, prg...)
	buf = append(buf, make([]byte, chrBankLen)...)
	return buf
}

func TestConsole_LoadResetStep(t *testing.T) {
	rom := buildTestROM(0x8000, []byte{0xA9, 0x2A, 0x8D, 0x00, 0x00})
	console, err := LoadROM(bytes.NewReader(rom), nil)
	require.NoError(t, err)
	console.Reset(nil)

	_, err = console.Step() // LDA #$2A
	require.NoError(t, err)
	_, err = console.Step() // STA $0000
	require.NoError(t, err)
	require.Equal(t, byte(0x2A), console.Read(0x0000))
}

func TestConsole_ResetPCOverride(t *testing.T) {
	rom := buildTestROM(0x8000, nil)
	console, err := LoadROM(bytes.NewReader(rom), nil)
	require.NoError(t, err)

	pc := uint16(0xC000)
	console.Reset(&pc)
	require.Equal(t, uint16(0xC000), console.cpu.PC())
}

func TestConsole_TraceStepMatchesStep(t *testing.T) {
	rom := buildTestROM(0x8000, []byte{0xA9, 0x01, 0xA9, 0x02})
	console, err := LoadROM(bytes.NewReader(rom), nil)
	require.NoError(t, err)
	console.Reset(nil)

	entry, err := console.TraceStep()
	require.NoError(t, err)
	require.Equal(t, "LDA", entry.Mnemonic)
	require.Equal(t, uint16(0x8000), entry.PC)
	require.Equal(t, byte(0), entry.A)
	require.Equal(t, uint16(0x8002), console.cpu.PC())
}

func TestConsole_RunStopsOnFault(t *testing.T) {
	rom := buildTestROM(0x8000, []byte{0x02}) // KIL, illegal
	console, err := LoadROM(bytes.NewReader(rom), nil)
	require.NoError(t, err)
	console.Reset(nil)

	err = console.Run(context.Background(), 0, nil)
	require.Error(t, err)
	require.IsType(t, &FaultError{}, err)
}

func TestConsole_RunRespectsMaxInstructions(t *testing.T) {
	rom := buildTestROM(0x8000, []byte{0xEA, 0xEA, 0xEA, 0xEA}) // NOP x4
	console, err := LoadROM(bytes.NewReader(rom), nil)
	require.NoError(t, err)
	console.Reset(nil)

	require.NoError(t, console.Run(context.Background(), 2, nil))
	require.Equal(t, uint16(0x8002), console.cpu.PC())
}
