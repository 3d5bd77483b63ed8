package nes

import (
	"bytes"
	"errors"
	"testing"
)

func baseHeader() []byte {
	return []byte{'N', 'E', 'S', 0x1A, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
}

func withPRGCHR(h []byte) []byte {
	buf := append([]byte(nil), h...)
	buf = append(buf, make([]byte, prgBankLen)...)
	buf = append(buf, make([]byte, chrBankLen)...)
	return buf
}

func TestLoadROM_RejectsShortHeader(t *testing.T) {
	_, err := loadROM(bytes.NewReader([]byte{'N', 'E', 'S', 0x1A}))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("want ErrUnknownFormat, got %v", err)
	}
}

func TestLoadROM_RejectsBadMagic(t *testing.T) {
	h := baseHeader()
	h[0] = 'X'
	_, err := loadROM(bytes.NewReader(withPRGCHR(h)))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("want ErrUnknownFormat, got %v", err)
	}
}

func TestLoadROM_RejectsNES20(t *testing.T) {
	h := baseHeader()
	h[7] |= flags7FormatNES20
	_, err := loadROM(bytes.NewReader(withPRGCHR(h)))
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("want ErrUnsupported for NES 2.0, got %v", err)
	}
}

func TestLoadROM_RejectsReservedFlags9Bits(t *testing.T) {
	h := baseHeader()
	h[9] = 0x02
	_, err := loadROM(bytes.NewReader(withPRGCHR(h)))
	if !errors.Is(err, ErrReservedBitsSet) {
		t.Fatalf("want ErrReservedBitsSet, got %v", err)
	}
}

func TestLoadROM_RejectsNonzeroPadding(t *testing.T) {
	h := baseHeader()
	h[10] = 0xFF
	_, err := loadROM(bytes.NewReader(withPRGCHR(h)))
	if !errors.Is(err, ErrBadPadding) {
		t.Fatalf("want ErrBadPadding, got %v", err)
	}
}

func TestLoadROM_RejectsSizeMismatch(t *testing.T) {
	h := baseHeader()
	buf := withPRGCHR(h)
	buf = buf[:len(buf)-1]
	_, err := loadROM(bytes.NewReader(buf))
	if !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("want ErrSizeMismatch, got %v", err)
	}
}

func TestLoadROM_TrainerOffsetsPRG(t *testing.T) {
	h := baseHeader()
	h[6] |= flags6Trainer
	buf := append([]byte(nil), h...)
	trainer := bytes.Repeat([]byte{0xAA}, trainerLen)
	buf = append(buf, trainer...)
	prg := bytes.Repeat([]byte{0x11}, prgBankLen)
	buf = append(buf, prg...)
	buf = append(buf, make([]byte, chrBankLen)...)

	cart, err := loadROM(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cart.hasTrainer || len(cart.trainer) != trainerLen {
		t.Fatalf("want trainer captured, got hasTrainer=%v len=%d", cart.hasTrainer, len(cart.trainer))
	}
	if cart.mapper.readPRG(0x8000) != 0x11 {
		t.Fatalf("want PRG bytes to start after the trainer block")
	}
}

func TestLoadROM_CHRRAMFallback(t *testing.T) {
	h := baseHeader()
	h[5] = 0 // zero CHR banks
	buf := append([]byte(nil), h...)
	buf = append(buf, make([]byte, prgBankLen)...)

	cart, err := loadROM(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cart.mapper.writeCHR(0, 0x42)
	if got := cart.mapper.readCHR(0); got != 0x42 {
		t.Fatalf("want CHR-RAM fallback to accept writes, got %#x", got)
	}
}

func TestLoadROM_MirrorMode(t *testing.T) {
	tests := []struct {
		name   string
		flags6 byte
		want   mirrorMode
	}{
		{"horizontal", 0, horizontal},
		{"vertical", flags6Vertical, vertical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := baseHeader()
			h[6] |= tt.flags6
			cart, err := loadROM(bytes.NewReader(withPRGCHR(h)))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cart.mirror != tt.want {
				t.Fatalf("want mirror=%v, got %v", tt.want, cart.mirror)
			}
		})
	}
}

func TestLoadROM_MapperID(t *testing.T) {
	h := baseHeader()
	h[6] = (0x0A << 4) | (h[6] & 0x0F) // low nibble = 0xA
	h[7] = (0x05 << 4) | (h[7] & 0x0F) // high nibble = 0x5
	_, err := loadROM(bytes.NewReader(withPRGCHR(h)))
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("want ErrUnsupported for mapper 0x5A (only mapper 0 is implemented), got %v", err)
	}
}

func TestLoadROM_PRGMirrorSingleBank(t *testing.T) {
	h := baseHeader()
	buf := append([]byte(nil), h...)
	prg := make([]byte, prgBankLen)
	prg[0] = 0x99
	buf = append(buf, prg...)
	buf = append(buf, make([]byte, chrBankLen)...)

	cart, err := loadROM(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cart.mapper.readPRG(0xC000); got != 0x99 {
		t.Fatalf("want single-bank PRG mirrored at $C000, got %#x", got)
	}
}
