package nes

// colors is the NES's fixed 64-entry master palette. Borrowed from the
// commonly-circulated "RGB" palette rather than an NTSC composite
// decode — good enough for gameplay, not meant to match any particular
// PPU revision's analog output.
// https://emulation.gametechwiki.com/index.php/Famicom_color_palette
var colors = [64][3]byte{
	{0x6D, 0x6D, 0x6D}, {0x00, 0x24, 0x92}, {0x00, 0x00, 0xDB}, {0x6D, 0x49, 0xDB},
	{0x92, 0x00, 0x6D}, {0xB6, 0x00, 0x6D}, {0xB6, 0x24, 0x00}, {0x92, 0x49, 0x00},
	{0x6D, 0x49, 0x00}, {0x24, 0x49, 0x00}, {0x00, 0x6D, 0x24}, {0x00, 0x92, 0x00},
	{0x00, 0x49, 0x49}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00},
	{0xB6, 0xB6, 0xB6}, {0x00, 0x6D, 0xDB}, {0x00, 0x49, 0xFF}, {0x92, 0x00, 0xFF},
	{0xB6, 0x00, 0xFF}, {0xFF, 0x00, 0x92}, {0xFF, 0x00, 0x00}, {0xDB, 0x6D, 0x00},
	{0x92, 0x6D, 0x00}, {0x24, 0x92, 0x00}, {0x00, 0x92, 0x00}, {0x00, 0xB6, 0x6D},
	{0x00, 0x92, 0x92}, {0x24, 0x24, 0x24}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00},
	{0xFF, 0xFF, 0xFF}, {0x6D, 0xB6, 0xFF}, {0x92, 0x92, 0xFF}, {0xDB, 0x6D, 0xFF},
	{0xFF, 0x00, 0xFF}, {0xFF, 0x6D, 0xFF}, {0xFF, 0x92, 0x00}, {0xFF, 0xB6, 0x00},
	{0xDB, 0xDB, 0x00}, {0x6D, 0xDB, 0x00}, {0x00, 0xFF, 0x00}, {0x49, 0xFF, 0xDB},
	{0x00, 0xFF, 0xFF}, {0x49, 0x49, 0x49}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00},
	{0xFF, 0xFF, 0xFF}, {0xB6, 0xDB, 0xFF}, {0xDB, 0xB6, 0xFF}, {0xFF, 0xB6, 0xFF},
	{0xFF, 0x92, 0xFF}, {0xFF, 0xB6, 0xB6}, {0xFF, 0xDB, 0x92}, {0xFF, 0xFF, 0x49},
	{0xFF, 0xFF, 0x6D}, {0xB6, 0xFF, 0x49}, {0x92, 0xFF, 0x6D}, {0x49, 0xFF, 0xDB},
	{0x92, 0xDB, 0xFF}, {0x92, 0x92, 0x92}, {0x00, 0x00, 0x00}, {0x00, 0x00, 0x00},
}

// paletteRAM is the PPU's internal 32-byte palette memory, addressed
// directly by the PPU (not through PPUBus) and exposed to the CPU only
// via PPUDATA reads/writes at $3F00-$3FFF.
// https://www.nesdev.org/wiki/PPU_palettes
type paletteRAM struct {
	ram [32]byte
}

func (r *paletteRAM) mirror(address uint16) uint16 {
	mirrored := (address-0x3F00)%0x20 + 0x3F00
	switch address & 0x1F {
	case 0x10, 0x14, 0x18, 0x1C:
		mirrored = (address & 0x1F) - 0x10 + 0x3F00
	}
	return mirrored - 0x3F00
}

func (r *paletteRAM) read(address uint16) byte {
	return r.ram[r.mirror(address)]
}

func (r *paletteRAM) write(address uint16, data byte) {
	r.ram[r.mirror(address)] = data
}
