package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapper0PRGMirroringForNROM128(t *testing.T) {
	c := newTestCartridge(t) // 16KiB PRG, mirrored across $8000-$FFFF
	low, ok := c.mapper.CPURead(0x8000)
	assert.True(t, ok)
	high, ok := c.mapper.CPURead(0xC000)
	assert.True(t, ok)
	assert.Equal(t, low, high)
}

func TestMapper0CPUReadBelow8000IsUnmapped(t *testing.T) {
	c := newTestCartridge(t)
	_, ok := c.mapper.CPURead(0x6000)
	assert.False(t, ok)
}

func TestMapper0CHRRAMIsWritable(t *testing.T) {
	data := make([]byte, inesHeaderSizeBytes+prgROMSizeUnit)
	data[0], data[1], data[2], data[3] = 'N', 'E', 'S', msdosEOF
	data[4] = 1
	data[5] = 0
	c, err := NewCartridge(data)
	assert.NoError(t, err)

	ok := c.mapper.PPUWrite(0x0010, 0x42)
	assert.True(t, ok)
	v, ok := c.mapper.PPURead(0x0010)
	assert.True(t, ok)
	assert.Equal(t, byte(0x42), v)
}

func TestMapper0CHRROMIsNotWritable(t *testing.T) {
	c := newTestCartridge(t) // has a real CHR bank, not CHR RAM
	ok := c.mapper.PPUWrite(0x0010, 0x42)
	assert.False(t, ok)
}

func TestNewMapperRejectsUnknownID(t *testing.T) {
	c := newTestCartridge(t)
	_, err := newMapper(4, c)
	assert.Error(t, err)
}
