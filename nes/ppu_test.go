package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestPPU(t *testing.T) *PPU {
	t.Helper()
	cartridge := newTestCartridge(t)
	return NewPPU(NewPPUBus(NewRAM(), cartridge))
}

func TestPPUCTRLSetsNametableBitsOfT(t *testing.T) {
	p := newTestPPU(t)
	p.writePPUCTRL(0x03)
	assert.Equal(t, uint16(0x0C00), p.t&0x0C00)
}

func TestPPUSCROLLSetsXThenYInTwoWrites(t *testing.T) {
	p := newTestPPU(t)
	p.writePPUSCROLL(0x7D) // 0111 1101: coarse X=15, fine X=5
	assert.Equal(t, byte(5), p.x)
	assert.True(t, p.w)
	p.writePPUSCROLL(0x5E)
	assert.False(t, p.w)
}

func TestPPUADDRLatchesVOnSecondWrite(t *testing.T) {
	p := newTestPPU(t)
	p.writePPUADDR(0x23)
	p.writePPUADDR(0xC0)
	assert.Equal(t, uint16(0x23C0), p.v)
}

func TestPPUDATAIncrementsByOneOrThirtyTwo(t *testing.T) {
	p := newTestPPU(t)
	p.writePPUADDR(0x20)
	p.writePPUADDR(0x00)
	p.writePPUDATA(0x11)
	assert.Equal(t, uint16(0x2001), p.v)

	p.writePPUCTRL(0x04) // vramIncrementFlag = 1
	before := p.v
	p.writePPUDATA(0x22)
	assert.Equal(t, before+32, p.v)
}

func TestPPUSTATUSClearsWriteToggleAndVBlank(t *testing.T) {
	p := newTestPPU(t)
	p.w = true
	p.oldNMI = true
	status := p.readPPUSTATUS()
	assert.NotZero(t, status&0x80)
	assert.False(t, p.w)
	assert.False(t, p.nmiOccurred)
}

func TestOAMDATAWriteAdvancesAddress(t *testing.T) {
	p := newTestPPU(t)
	p.writeOAMADDR(0x10)
	p.writeOAMDATA(0x55)
	assert.Equal(t, byte(0x11), p.oamAddress)
	assert.Equal(t, byte(0x55), p.primaryOAM[0x10])
}

func TestPaletteMirroring(t *testing.T) {
	var pal paletteRAM
	pal.write(0x3F00, 0x01)
	assert.Equal(t, byte(0x01), pal.read(0x3F20)) // $3F20 mirrors $3F00
	pal.write(0x3F10, 0x02)
	assert.Equal(t, byte(0x02), pal.read(0x3F00)) // sprite backdrop mirrors universal backdrop
}

func TestPPUDATAPaletteReadsAreImmediate(t *testing.T) {
	p := newTestPPU(t)
	p.writePPUADDR(0x3F)
	p.writePPUADDR(0x05)
	p.writePPUDATA(0x16)

	p.writePPUADDR(0x3F)
	p.writePPUADDR(0x05)
	got := p.readPPUDATA()
	assert.Equal(t, byte(0x16), got)
}

func TestPPUTickCompletesAFullFrame(t *testing.T) {
	p := newTestPPU(t)
	p.Reset()
	for i := 0; i < 341*262; i++ {
		p.tick()
	}
	assert.True(t, p.FrameComplete())
}

func TestSpriteZeroHitDetection(t *testing.T) {
	p := newTestPPU(t)
	p.showBackground = true
	p.showSprite = true
	p.primaryOAM[0] = 0  // y
	p.primaryOAM[1] = 0  // tile
	p.primaryOAM[2] = 0  // attribute: priority 0 (front)
	p.primaryOAM[3] = 0  // x
	p.secondaryOAM[0] = sprite{index: 0, y: 0, tile: 0, attribute: 0, x: 0}
	p.secondaryNum = 1
	p.showLeftBackground = true // x=0 is inside the left 8-pixel clip column
	p.showLeftSprite = true
	p.tileDataBuffer[4] = 0xFF // opaque background
	p.tileDataBuffer[5] = 0x00
	// renderSpritePixel reads the sprite's row from CHR through the bus, so
	// make row 0 of tile 0 opaque there.
	p.bus.cartridge.chrROM[0] = 0xFF
	p.cycle = 1
	p.scanline = 0
	bg := p.renderBackgroundPixel()
	assert.NotZero(t, bg)
	p.renderPixel()
	assert.True(t, p.spriteZeroHit)
}
