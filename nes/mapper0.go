package nes

// mapper0 implements NROM: https://www.nesdev.org/wiki/NROM
//
// PRG ROM is 16KiB (NROM-128, mirrored across $8000-$FFFF) or 32KiB
// (NROM-256, mapped directly). CHR is either 8KiB of ROM, or, when the
// cartridge declared zero CHR banks, 8KiB of RAM the PPU can write through
// $0000-$1FFF (see spec.md §9 Open Question (c)).
type mapper0 struct {
	prgROM   []byte
	chrROM   []byte
	chrIsRAM bool
}

func newMapper0(c *Cartridge) *mapper0 {
	return &mapper0{prgROM: c.prgROM, chrROM: c.chrROM, chrIsRAM: c.chrIsRAM}
}

func (m *mapper0) CPURead(addr uint16) (byte, bool) {
	if addr < 0x8000 {
		return 0, false
	}
	return m.prgROM[int(addr-0x8000)%len(m.prgROM)], true
}

// CPUWrite reports whether the address is mapped here; NROM has no
// bank-select registers, so a CPU write to PRG space is simply ignored by
// hardware (ROM can't be written), matching spec.md §7's "every address
// maps somewhere, nothing fails" contract.
func (m *mapper0) CPUWrite(addr uint16, data byte) bool {
	return addr >= 0x8000
}

func (m *mapper0) PPURead(addr uint16) (byte, bool) {
	if addr >= uint16(len(m.chrROM)) {
		return 0, false
	}
	return m.chrROM[addr], true
}

func (m *mapper0) PPUWrite(addr uint16, data byte) bool {
	if !m.chrIsRAM || addr >= uint16(len(m.chrROM)) {
		return false
	}
	m.chrROM[addr] = data
	return true
}
