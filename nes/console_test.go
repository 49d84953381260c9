package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSystemWiresUpAllComponents(t *testing.T) {
	sys := newTestSystem(t)
	assert.NotNil(t, sys.cpu)
	assert.NotNil(t, sys.ppu)
	assert.NotNil(t, sys.apu)
	assert.NotNil(t, sys.dma)
	assert.NotNil(t, sys.cpu.bus.dma)
}

func TestSystemResetSetsCPUStartupState(t *testing.T) {
	sys := newTestSystem(t)
	sys.Reset()
	assert.Equal(t, uint16(0x8000), sys.cpu.PC)
	assert.Equal(t, byte(0xFD), sys.cpu.S)
}

func TestRunFrameProducesAFullFramebuffer(t *testing.T) {
	sys := newTestSystem(t)
	sys.Reset()
	frame := sys.RunFrame()
	assert.Len(t, frame, Width*Height*3)
}

func TestSetControllerLatchesStateThroughToPort(t *testing.T) {
	sys := newTestSystem(t)
	sys.SetController(0, ButtonA|ButtonRight)
	sys.controllers[0].write(0x01)
	sys.controllers[0].write(0x00)
	assert.Equal(t, byte(1), sys.controllers[0].read())
}

func TestOAMDMATriggeredThroughSystemClockSuspendsCPU(t *testing.T) {
	sys := newTestSystem(t)
	sys.Reset()
	sys.cpu.bus.write(0x4014, 0x02)
	assert.True(t, sys.dma.Active())
	cyclesBefore := sys.cpu.Cycles
	for sys.dma.Active() {
		sys.tick()
	}
	assert.False(t, sys.dma.Active())
	assert.Equal(t, cyclesBefore, sys.cpu.Cycles)
}
