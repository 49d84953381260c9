package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCartridgeRejectsBadMagic(t *testing.T) {
	_, err := NewCartridge([]byte("not an ines file at all"))
	assert.Error(t, err)
	var cartErr *CartridgeError
	assert.ErrorAs(t, err, &cartErr)
}

func TestNewCartridgeRejectsTruncatedPRG(t *testing.T) {
	data := make([]byte, inesHeaderSizeBytes+10)
	copy(data[0:4], []byte{'N', 'E', 'S', msdosEOF})
	data[4] = 2 // declares 2 PRG banks, image doesn't have them
	_, err := NewCartridge(data)
	assert.Error(t, err)
}

func TestNewCartridgeRejectsUnsupportedMapper(t *testing.T) {
	data := make([]byte, inesHeaderSizeBytes+prgROMSizeUnit+chrROMSizeUnit)
	copy(data[0:4], []byte{'N', 'E', 'S', msdosEOF})
	data[4] = 1
	data[5] = 1
	data[6] = 0x10 // mapper id 1 (MMC1), not implemented
	_, err := NewCartridge(data)
	assert.Error(t, err)
}

func TestNewCartridgeAllocatesCHRRAMWhenNoCHRBanks(t *testing.T) {
	data := make([]byte, inesHeaderSizeBytes+prgROMSizeUnit)
	copy(data[0:4], []byte{'N', 'E', 'S', msdosEOF})
	data[4] = 1
	data[5] = 0 // no CHR banks -> CHR RAM
	c, err := NewCartridge(data)
	assert.NoError(t, err)
	assert.True(t, c.chrIsRAM)
	assert.Equal(t, chrROMSizeUnit, len(c.chrROM))
}

func TestMirroringFromFlags(t *testing.T) {
	assert.Equal(t, MirrorHorizontal, mirroringFromFlags(0x00))
	assert.Equal(t, MirrorVertical, mirroringFromFlags(0x01))
	assert.Equal(t, MirrorFourScreen, mirroringFromFlags(0x08))
}

func TestCartridgeMapperID(t *testing.T) {
	c := newTestCartridge(t)
	assert.Equal(t, byte(0), c.MapperID())
}
