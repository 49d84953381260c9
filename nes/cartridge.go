package nes

import "fmt"

const (
	chrROMSizeUnit      int  = 0x2000 // 8KiB
	prgROMSizeUnit      int  = 0x4000 // 16KiB
	inesHeaderSizeBytes int  = 16
	trainerSizeBytes    int  = 512
	msdosEOF            byte = 0x1A
)

// Mirroring identifies how the PPU's two physical 1KiB nametable banks are
// mapped onto the four logical nametable slots.
// https://www.nesdev.org/wiki/Mirroring#Nametable_Mirroring
type Mirroring int

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
	MirrorSingleScreenLo
	MirrorSingleScreenHi
	MirrorFourScreen
)

// Cartridge holds a parsed iNES image: PRG/CHR ROM, the header flags, and
// the mapper that translates CPU/PPU addresses into offsets within them.
// https://www.nesdev.org/wiki/INES
type Cartridge struct {
	prgROM    []byte
	chrROM    []byte
	chrIsRAM  bool
	flags6    byte // https://www.nesdev.org/wiki/INES#Flags_6
	flags7    byte // https://www.nesdev.org/wiki/INES#Flags_7
	mirroring Mirroring
	mapperID  byte
	mapper    Mapper
}

func isValidHeader(data []byte) bool {
	return len(data) >= inesHeaderSizeBytes &&
		data[0] == 'N' && data[1] == 'E' && data[2] == 'S' && data[3] == msdosEOF
}

func mirroringFromFlags(flags6 byte) Mirroring {
	switch {
	case flags6&0x08 != 0:
		return MirrorFourScreen
	case flags6&0x01 != 0:
		return MirrorVertical
	default:
		return MirrorHorizontal
	}
}

// NewCartridge parses a raw iNES image and constructs its mapper. The only
// errors the core ever returns come from here: a bad magic number, a
// truncated image, or an unregistered mapper id — all other failures
// during steady-state execution read as 0 instead.
func NewCartridge(data []byte) (*Cartridge, error) {
	if !isValidHeader(data) {
		return nil, cartridgeErrorf("missing 'NES' + 0x1A magic header")
	}

	prgBanks := int(data[4])
	chrBanks := int(data[5])
	flags6 := data[6]
	flags7 := data[7]

	offset := inesHeaderSizeBytes
	if flags6&0x04 != 0 { // trainer present
		offset += trainerSizeBytes
	}

	prgSize := prgBanks * prgROMSizeUnit
	if prgSize == 0 || len(data) < offset+prgSize {
		return nil, cartridgeErrorf("truncated PRG ROM: header declares %d bytes, image has %d remaining", prgSize, len(data)-offset)
	}
	prgROM := data[offset : offset+prgSize]
	offset += prgSize

	chrIsRAM := chrBanks == 0
	var chrROM []byte
	if chrIsRAM {
		chrROM = make([]byte, chrROMSizeUnit)
	} else {
		chrSize := chrBanks * chrROMSizeUnit
		if len(data) < offset+chrSize {
			return nil, cartridgeErrorf("truncated CHR ROM: header declares %d bytes, image has %d remaining", chrSize, len(data)-offset)
		}
		chrROM = data[offset : offset+chrSize]
	}

	mapperID := (flags7 & 0xF0) | (flags6 >> 4)

	c := &Cartridge{
		prgROM:    prgROM,
		chrROM:    chrROM,
		chrIsRAM:  chrIsRAM,
		flags6:    flags6,
		flags7:    flags7,
		mirroring: mirroringFromFlags(flags6),
		mapperID:  mapperID,
	}

	m, err := newMapper(mapperID, c)
	if err != nil {
		return nil, err
	}
	c.mapper = m

	return c, nil
}

// MirroringMode reports how the cartridge wants nametables mirrored.
func (c *Cartridge) MirroringMode() Mirroring {
	return c.mirroring
}

// MapperID returns the iNES mapper number this cartridge declared.
func (c *Cartridge) MapperID() byte {
	return c.mapperID
}

func (c *Cartridge) String() string {
	return fmt.Sprintf("Cartridge{mapper=%d, prg=%dKiB, chr=%dKiB, chrRAM=%v, mirroring=%d}",
		c.mapperID, len(c.prgROM)/1024, len(c.chrROM)/1024, c.chrIsRAM, c.mirroring)
}
