package nes

// PPUBus resolves the PPU's 14-bit address space: cartridge CHR through
// the mapper, two 1KiB physical nametable banks mirrored per the
// cartridge's Mirroring, and palette RAM (read separately by PPU itself,
// see palette.go). Addresses at $3F00 and above read as 0 here; PPUDATA
// reads in that range take their value from palette RAM instead.
type PPUBus struct {
	vram      *RAM
	cartridge *Cartridge
}

func NewPPUBus(vram *RAM, cartridge *Cartridge) *PPUBus {
	return &PPUBus{vram, cartridge}
}

// nametableOffsets maps scroll-address nametable select bits (0-3) to a
// physical 1KiB bank offset, one entry per Mirroring mode.
var nametableOffsets = [5][4]uint16{
	MirrorHorizontal:     {0x000, 0x000, 0x400, 0x400},
	MirrorVertical:       {0x000, 0x400, 0x000, 0x400},
	MirrorSingleScreenLo: {0x000, 0x000, 0x000, 0x000},
	MirrorSingleScreenHi: {0x400, 0x400, 0x400, 0x400},
	MirrorFourScreen:     {0x000, 0x400, 0x800, 0xC00},
}

// mirrorAddress maps a $2000-$3EFF nametable address onto a bank offset.
// Four-screen yields offsets up to $FFF, but read and write fold every
// offset into the 2KiB VRAM (% 2048), so four-screen nametables 2 and 3
// share memory with nametables 0 and 1.
// https://www.nesdev.org/wiki/Mirroring#Nametable_Mirroring
func (b *PPUBus) mirrorAddress(address uint16) uint16 {
	a := (address - 0x2000) % 0x1000
	table := a / 0x400
	within := a % 0x400
	return nametableOffsets[b.cartridge.MirroringMode()][table] + within
}

// read resolves $0000-$3EFF. Addresses at $3F00 and above are palette RAM,
// handled directly by PPU rather than routed through the bus.
// https://www.nesdev.org/wiki/PPU_memory_map
func (b *PPUBus) read(address uint16) byte {
	switch {
	case address < 0x2000:
		v, _ := b.cartridge.mapper.PPURead(address)
		return v
	case address < 0x3F00:
		return b.vram.read(b.mirrorAddress(address) % 2048)
	default:
		return 0
	}
}

func (b *PPUBus) write(address uint16, data byte) {
	switch {
	case address < 0x2000:
		b.cartridge.mapper.PPUWrite(address, data)
	case address < 0x3F00:
		b.vram.write(b.mirrorAddress(address)%2048, data)
	}
}
