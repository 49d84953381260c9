package nes

// System wires together the CPU, PPU, APU, DMA engine and cartridge and
// drives them with a single master clock: tick advances the PPU by one
// dot every call, and the CPU (or, when a transfer is in flight, the DMA
// engine) by one cycle every third call, matching the real NES's 3:1
// PPU:CPU clock ratio. This replaces a CPU-instruction-driven loop with a
// dot-level one so OAMDMA stalls interleave correctly with PPU rendering
// instead of being applied as an opaque CPU-side cycle count.
type System struct {
	cpu         *CPU
	ppu         *PPU
	apu         *APU
	dma         *DMA
	cartridge   *Cartridge
	controllers [2]*Controller

	masterTick uint64 // counts PPU dots; CPU/DMA/APU step every 3rd
}

// NewSystem constructs a System around a parsed cartridge.
func NewSystem(cartridge *Cartridge) *System {
	controllers := [2]*Controller{NewController(), NewController()}
	ppuBus := NewPPUBus(NewRAM(), cartridge)
	ppu := NewPPU(ppuBus)
	apu := NewAPU()
	cpuBus := NewCPUBus(NewRAM(), ppu, apu, cartridge, controllers)
	cpu := NewCPU(cpuBus)
	dma := NewDMA(cpuBus, ppu)
	cpuBus.attachDMA(dma)
	cpuBus.attachCPUCycles(&cpu.Cycles)

	return &System{
		cpu:         cpu,
		ppu:         ppu,
		apu:         apu,
		dma:         dma,
		cartridge:   cartridge,
		controllers: controllers,
	}
}

// Reset returns the CPU and PPU to their power-on/reset state.
func (s *System) Reset() {
	s.cpu.Reset()
	s.ppu.Reset()
}

// tick advances the master clock by one PPU dot, stepping the CPU (or DMA,
// if a transfer owns the bus) and APU once every three dots.
func (s *System) tick() {
	if s.ppu.tick() {
		s.cpu.SignalNMI()
	}
	if s.masterTick%3 == 0 {
		if s.dma.Active() {
			s.dma.tick()
		} else {
			s.cpu.tick()
		}
		s.apu.Step()
	}
	s.masterTick++
}

// RunFrame ticks the master clock until a full frame has been rendered,
// and returns the raw RGB framebuffer for it.
func (s *System) RunFrame() []byte {
	s.ppu.ClearFrameComplete()
	for !s.ppu.FrameComplete() {
		s.tick()
	}
	return s.ppu.Picture()
}

// Frame returns the most recently completed frame without advancing time.
func (s *System) Frame() []byte {
	return s.ppu.Picture()
}

func (s *System) SetAudioOut(c chan float32) {
	s.apu.SetAudioOut(c)
}

// SetController latches button state for controller port 0 or 1. state's
// bits are the Button* constants from controller.go: A, B, Select, Start,
// Up, Down, Left, Right.
func (s *System) SetController(port int, state byte) {
	s.controllers[port].SetState(state)
}
