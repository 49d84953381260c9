package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestDMA(t *testing.T) (*DMA, *CPUBus, *PPU) {
	t.Helper()
	cartridge := newTestCartridge(t)
	controllers := [2]*Controller{NewController(), NewController()}
	ppu := NewPPU(NewPPUBus(NewRAM(), cartridge))
	bus := NewCPUBus(NewRAM(), ppu, NewAPU(), cartridge, controllers)
	dma := NewDMA(bus, ppu)
	bus.attachDMA(dma)
	return dma, bus, ppu
}

func runDMAToCompletion(d *DMA) int {
	ticks := 0
	for d.Active() {
		d.tick()
		ticks++
	}
	return ticks
}

func TestDMATakes513CyclesOnEvenStart(t *testing.T) {
	d, _, _ := newTestDMA(t)
	d.Start(0x02, false)
	assert.Equal(t, 513, runDMAToCompletion(d))
}

func TestDMATakes514CyclesOnOddStart(t *testing.T) {
	d, _, _ := newTestDMA(t)
	d.Start(0x02, true)
	assert.Equal(t, 514, runDMAToCompletion(d))
}

func TestDMACopiesPageByteForByteIntoOAM(t *testing.T) {
	d, bus, ppu := newTestDMA(t)
	for i := 0; i < 256; i++ {
		bus.write(0x0200+uint16(i), byte(i))
	}
	d.Start(0x02, false)
	runDMAToCompletion(d)
	for i := 0; i < 256; i++ {
		assert.Equal(t, byte(i), ppu.primaryOAM[i])
	}
}

func TestDMAStartsWritingAtCurrentOAMAddress(t *testing.T) {
	d, bus, ppu := newTestDMA(t)
	ppu.writeOAMADDR(0x10)
	bus.write(0x0300, 0x99)
	d.Start(0x03, false)
	runDMAToCompletion(d)
	assert.Equal(t, byte(0x99), ppu.primaryOAM[0x10])
}

func TestCPUWriteTo4014TriggersDMA(t *testing.T) {
	_, bus, _ := newTestDMA(t)
	bus.write(0x4014, 0x02)
	assert.True(t, bus.dma.Active())
}
