package nes

import "github.com/golang/glog"

// CPUBus resolves the CPU's 16-bit address space.
// 0x0000 - 0x07FF	WRAM
// 0x0800 - 0x1FFF	WRAM mirrors
// 0x2000 - 0x2007	PPU registers
// 0x2008 - 0x3FFF	PPU register mirrors (every 8 bytes)
// 0x4000 - 0x4013	APU registers
// 0x4014		OAMDMA
// 0x4015		APU status
// 0x4016		Controller port 1
// 0x4017		Controller port 2 / APU frame counter
// 0x4018 - 0x401F	APU/IO test registers, unimplemented
// 0x4020 - 0xFFFF	Cartridge space, resolved through the mapper
type CPUBus struct {
	wram        *RAM
	ppu         *PPU
	apu         *APU
	cartridge   *Cartridge
	controllers [2]*Controller
	dma         *DMA
	cpuCycles   *uint64
}

func NewCPUBus(wram *RAM, ppu *PPU, apu *APU, cartridge *Cartridge, controllers [2]*Controller) *CPUBus {
	return &CPUBus{wram: wram, ppu: ppu, apu: apu, cartridge: cartridge, controllers: controllers}
}

// attachDMA and attachCPUCycles complete CPUBus's construction once the
// DMA engine and CPU exist; both need a *CPUBus themselves, so this
// breaks the construction cycle instead of making CPUBus build its own
// CPU and DMA.
func (b *CPUBus) attachDMA(d *DMA)          { b.dma = d }
func (b *CPUBus) attachCPUCycles(c *uint64) { b.cpuCycles = c }

func (b *CPUBus) readPPURegister(address uint16) byte {
	switch address % 8 {
	case 2:
		return b.ppu.readPPUSTATUS()
	case 4:
		return b.ppu.readOAMDATA()
	case 7:
		return b.ppu.readPPUDATA()
	default:
		return 0 // write-only registers read back as 0; no open-bus value is kept
	}
}

func (b *CPUBus) writePPURegister(address uint16, data byte) {
	switch address % 8 {
	case 0:
		b.ppu.writePPUCTRL(data)
	case 1:
		b.ppu.writePPUMASK(data)
	case 3:
		b.ppu.writeOAMADDR(data)
	case 4:
		b.ppu.writeOAMDATA(data)
	case 5:
		b.ppu.writePPUSCROLL(data)
	case 6:
		b.ppu.writePPUADDR(data)
	case 7:
		b.ppu.writePPUDATA(data)
	}
}

func (b *CPUBus) read(address uint16) byte {
	switch {
	case address < 0x2000:
		return b.wram.read(address % 0x0800)
	case address < 0x4000:
		return b.readPPURegister(address)
	case address == 0x4015:
		return b.apu.readStatus()
	case address == 0x4016:
		return b.controllers[0].read()
	case address == 0x4017:
		return b.controllers[1].read()
	case address < 0x4020:
		return 0 // APU write-only registers / unimplemented test registers
	default:
		if v, ok := b.cartridge.mapper.CPURead(address); ok {
			return v
		}
		glog.V(1).Infof("CPU read from unmapped cartridge address 0x%04x", address)
		return 0
	}
}

func (b *CPUBus) read16(address uint16) uint16 {
	lo := uint16(b.read(address))
	hi := uint16(b.read(address + 1))
	return hi<<8 | lo
}

func (b *CPUBus) write(address uint16, data byte) {
	switch {
	case address < 0x2000:
		b.wram.write(address%0x0800, data)
	case address < 0x4000:
		b.writePPURegister(address, data)
	case address == 0x4014:
		var cycles uint64
		if b.cpuCycles != nil {
			cycles = *b.cpuCycles
		}
		b.dma.Start(data, cycles%2 == 1)
	case address == 0x4016:
		// The strobe line at $4016 is wired to both controller ports;
		// $4017 is APU frame-counter only, controller 2 has no write side.
		b.controllers[0].write(data)
		b.controllers[1].write(data)
	case address < 0x4020:
		b.apu.writeRegister(address, data)
	default:
		if ok := b.cartridge.mapper.CPUWrite(address, data); !ok {
			glog.V(1).Infof("CPU write to unmapped cartridge address 0x%04x, data=0x%02x", address, data)
		}
	}
}
