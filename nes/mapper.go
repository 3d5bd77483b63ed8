package nes

// mapper0 implements NROM (iNES mapper 0): no bank switching, one or two
// 16 KiB PRG banks and up to one 8 KiB CHR bank (or CHR-RAM when the ROM
// declares none).
//
// The PRG mirror mask depends on the declared bank count: a single 16 KiB
// bank mirrors across $8000-$FFFF ("addr & 0x3FFF"); two banks fill the
// full 32 KiB window and use "addr & 0x7FFF" instead. See SPEC_FULL.md §9.
type mapper0 struct {
	prg     []byte
	chr     []byte
	chrRAM  bool
	prgMask uint16
}

func newMapper0(id byte, prgBanks byte, prg, chr []byte, chrIsRAM bool) (*mapper0, error) {
	if id != 0 {
		return nil, ErrUnsupported
	}

	var mask uint16
	switch prgBanks {
	case 1:
		mask = 0x3FFF
	case 2:
		mask = 0x7FFF
	default:
		return nil, ErrUnsupported
	}

	return &mapper0{
		prg:     prg,
		chr:     chr,
		chrRAM:  chrIsRAM,
		prgMask: mask,
	}, nil
}

func (m *mapper0) readPRG(address uint16) byte {
	return m.prg[address&m.prgMask]
}

func (m *mapper0) writePRG(address uint16, value byte) {
	// NROM has no bank-select registers; PRG-ROM writes have no effect.
}

func (m *mapper0) readCHR(address uint16) byte {
	return m.chr[address]
}

func (m *mapper0) writeCHR(address uint16, value byte) {
	if m.chrRAM {
		m.chr[address] = value
	}
}
