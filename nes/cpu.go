package nes

import "fmt"

// CPU emulates the NES CPU, a customized MOS 6502 made by Ricoh.
// References:
//   https://en.wikipedia.org/wiki/MOS_Technology_6502
//   http://www.6502.org/tutorials/6502opcodes.html
//   https://www.nesdev.org/wiki/CPU_unofficial_opcodes
//   https://www.nesdev.org/wiki/Status_flags

const CPUFrequency = 1789773

type addressingMode int

const (
	implied addressingMode = iota
	accumulator
	immdiate
	zeropage
	zeropageX
	zeropageY
	relative
	absolute
	absoluteX
	absoluteY
	indirect
	indirectX
	indirectY
)

type status struct {
	C bool // carry
	Z bool // zero
	I bool // IRQ disable
	D bool // decimal - unused on NES, still stored/restored
	B bool // break, only meaningful in the byte pushed to the stack
	R bool // reserved, always reads back as 1
	V bool // overflow
	N bool // negative
}

func (s *status) encode() byte {
	var res byte
	if s.C {
		res |= 1 << 0
	}
	if s.Z {
		res |= 1 << 1
	}
	if s.I {
		res |= 1 << 2
	}
	if s.D {
		res |= 1 << 3
	}
	if s.B {
		res |= 1 << 4
	}
	if s.R {
		res |= 1 << 5
	}
	if s.V {
		res |= 1 << 6
	}
	if s.N {
		res |= 1 << 7
	}
	return res
}

func (s *status) decodeFrom(data byte) {
	s.C = (data>>0)&1 == 1
	s.Z = (data>>1)&1 == 1
	s.I = (data>>2)&1 == 1
	s.D = (data>>3)&1 == 1
	s.B = (data>>4)&1 == 1
	s.R = true
	s.V = (data>>6)&1 == 1
	s.N = (data>>7)&1 == 1
}

// CPU holds the 6502 register file and drives instruction execution one
// cycle at a time via tick, so the rest of the system can interleave PPU
// and DMA work at cycle granularity instead of running whole instructions
// atomically.
type CPU struct {
	P  status
	A  byte
	X  byte
	Y  byte
	PC uint16
	S  byte

	bus          *CPUBus
	instructions [256]instruction

	cyclesLeft int // cycles remaining in the instruction currently executing
	Cycles     uint64

	nmiPending bool
	irqLine    bool // level-triggered; true while something asserts /IRQ

	lastExecution string // most recent disassembly, for trace.go
}

type instruction struct {
	mnemonic  string
	mode      addressingMode
	execute   func(addressingMode, uint16) int
	size      uint16
	cycles    int
	pageCross bool // instruction costs +1 cycle if its operand address crosses a page
}

func NewCPU(bus *CPUBus) *CPU {
	c := &CPU{bus: bus}
	c.instructions = c.createInstructions()
	c.Reset()
	return c
}

// Reset puts the CPU in its power-on/reset state: PC loaded from the reset
// vector, stack pointer set to $FD (the value real hardware ends up with
// after its three non-writing stack decrements from power-on), interrupts
// disabled.
func (c *CPU) Reset() {
	c.PC = c.bus.read16(0xFFFC)
	c.S = 0xFD
	c.P.decodeFrom(0x24)
	c.cyclesLeft = 7
}

// SignalNMI latches a non-maskable interrupt request, serviced at the next
// instruction boundary regardless of the I flag.
func (c *CPU) SignalNMI() {
	c.nmiPending = true
}

// SetIRQLine sets the level of the shared /IRQ line. Held high by the APU
// frame counter and any mapper IRQ source; low by default, as none of
// those are implemented yet (see apu.go).
func (c *CPU) SetIRQLine(asserted bool) {
	c.irqLine = asserted
}

// tick advances the CPU by one CPU cycle. System.tick calls this once
// every three PPU dots, never while DMA has the bus.
func (c *CPU) tick() {
	if c.cyclesLeft > 0 {
		c.cyclesLeft--
		c.Cycles++
		return
	}
	c.cyclesLeft = c.step() - 1
	c.Cycles++
}

// step services a pending interrupt or fetches and executes the next
// instruction, returning its total cycle cost including any page-cross or
// branch-taken penalty.
func (c *CPU) step() int {
	if c.nmiPending {
		c.nmiPending = false
		c.interrupt(0xFFFA, false)
		c.lastExecution = fmt.Sprintf("NMI PC=%04X", c.PC)
		return 7
	}
	if c.irqLine && !c.P.I {
		c.interrupt(0xFFFE, false)
		c.lastExecution = fmt.Sprintf("IRQ PC=%04X", c.PC)
		return 7
	}

	pc := c.PC
	opcode := c.bus.read(pc)
	ins := c.instructions[opcode]

	operand, pageCrossed := c.resolveOperand(ins.mode, pc)
	c.PC += ins.size
	c.lastExecution = fmt.Sprintf("%04X  %02X  %-4s A:%02X X:%02X Y:%02X P:%02X SP:%02X",
		pc, opcode, ins.mnemonic, c.A, c.X, c.Y, c.P.encode(), c.S)

	extra := ins.execute(ins.mode, operand)
	cycles := ins.cycles + extra
	if ins.pageCross && pageCrossed {
		cycles++
	}
	return cycles
}

// resolveOperand decodes the addressing mode into an operand value: for
// most modes this is a memory address the instruction will read or write;
// for immediate it is the address of the operand byte itself; for
// relative it is the already-computed branch target. Returns whether
// indexing crossed a page boundary, which several modes penalize with an
// extra cycle on read.
func (c *CPU) resolveOperand(mode addressingMode, pc uint16) (uint16, bool) {
	switch mode {
	case implied, accumulator:
		return 0, false
	case immdiate:
		return pc + 1, false
	case zeropage:
		return uint16(c.bus.read(pc + 1)), false
	case zeropageX:
		return uint16(c.bus.read(pc+1) + c.X), false
	case zeropageY:
		return uint16(c.bus.read(pc+1) + c.Y), false
	case relative:
		offset := c.bus.read(pc + 1)
		base := pc + 2
		var target uint16
		if offset < 0x80 {
			target = base + uint16(offset)
		} else {
			target = base + uint16(offset) - 0x100
		}
		return target, (target & 0xFF00) != (base & 0xFF00)
	case absolute:
		return c.bus.read16(pc + 1), false
	case absoluteX:
		base := c.bus.read16(pc + 1)
		addr := base + uint16(c.X)
		return addr, (addr & 0xFF00) != (base & 0xFF00)
	case absoluteY:
		base := c.bus.read16(pc + 1)
		addr := base + uint16(c.Y)
		return addr, (addr & 0xFF00) != (base & 0xFF00)
	case indirect:
		ptr := c.bus.read16(pc + 1)
		// Faithfully reproduces the 6502's JMP ($xxFF) bug: the high byte
		// is fetched from $xx00, not from the following page.
		lo := c.bus.read(ptr)
		hi := c.bus.read((ptr & 0xFF00) | ((ptr + 1) & 0x00FF))
		return uint16(hi)<<8 | uint16(lo), false
	case indirectX:
		zp := c.bus.read(pc+1) + c.X
		lo := c.bus.read(uint16(zp))
		hi := c.bus.read(uint16(zp + 1))
		return uint16(hi)<<8 | uint16(lo), false
	case indirectY:
		zp := c.bus.read(pc + 1)
		lo := c.bus.read(uint16(zp))
		hi := c.bus.read(uint16(zp + 1))
		base := uint16(hi)<<8 | uint16(lo)
		addr := base + uint16(c.Y)
		return addr, (addr & 0xFF00) != (base & 0xFF00)
	}
	return 0, false
}

// write routes every CPU-initiated store through the bus so OAMDMA,
// mirroring and mapper writes stay in one place.
func (c *CPU) write(address uint16, data byte) {
	c.bus.write(address, data)
}

func (c *CPU) setN(x byte) { c.P.N = x&0x80 != 0 }
func (c *CPU) setZ(x byte) { c.P.Z = x == 0 }

// push writes to the hardwired stack page, $0100-$01FF.
func (c *CPU) push(x byte) {
	c.bus.write(0x0100|uint16(c.S), x)
	c.S--
}

func (c *CPU) pop() byte {
	c.S++
	return c.bus.read(0x0100 | uint16(c.S))
}

// interrupt pushes PC and status and loads PC from vector. pushB controls
// the B flag value in the byte pushed: set for BRK, clear for NMI/IRQ.
func (c *CPU) interrupt(vector uint16, pushB bool) {
	c.push(byte(c.PC >> 8))
	c.push(byte(c.PC & 0xFF))
	saved := c.P
	saved.B = pushB
	saved.R = true
	c.push(saved.encode())
	c.P.I = true
	c.PC = c.bus.read16(vector)
}

func (c *CPU) createInstructions() [256]instruction {
	var t [256]instruction
	for i := range t {
		t[i] = instruction{"NOP", implied, c.nop, 1, 2, false}
	}
	set := func(op byte, mnemonic string, mode addressingMode, exec func(addressingMode, uint16) int, size uint16, cycles int, pageCross bool) {
		t[op] = instruction{mnemonic, mode, exec, size, cycles, pageCross}
	}

	set(0x00, "BRK", implied, c.brk, 1, 7, false)
	set(0x01, "ORA", indirectX, c.ora, 2, 6, false)
	set(0x05, "ORA", zeropage, c.ora, 2, 3, false)
	set(0x06, "ASL", zeropage, c.asl, 2, 5, false)
	set(0x08, "PHP", implied, c.php, 1, 3, false)
	set(0x09, "ORA", immdiate, c.ora, 2, 2, false)
	set(0x0A, "ASL", accumulator, c.asl, 1, 2, false)
	set(0x0D, "ORA", absolute, c.ora, 3, 4, false)
	set(0x0E, "ASL", absolute, c.asl, 3, 6, false)
	set(0x10, "BPL", relative, c.bpl, 2, 2, false)
	set(0x11, "ORA", indirectY, c.ora, 2, 5, true)
	set(0x15, "ORA", zeropageX, c.ora, 2, 4, false)
	set(0x16, "ASL", zeropageX, c.asl, 2, 6, false)
	set(0x18, "CLC", implied, c.clc, 1, 2, false)
	set(0x19, "ORA", absoluteY, c.ora, 3, 4, true)
	set(0x1D, "ORA", absoluteX, c.ora, 3, 4, true)
	set(0x1E, "ASL", absoluteX, c.asl, 3, 7, false)
	set(0x20, "JSR", absolute, c.jsr, 3, 6, false)
	set(0x21, "AND", indirectX, c.and, 2, 6, false)
	set(0x24, "BIT", zeropage, c.bit, 2, 3, false)
	set(0x25, "AND", zeropage, c.and, 2, 3, false)
	set(0x26, "ROL", zeropage, c.rol, 2, 5, false)
	set(0x28, "PLP", implied, c.plp, 1, 4, false)
	set(0x29, "AND", immdiate, c.and, 2, 2, false)
	set(0x2A, "ROL", accumulator, c.rol, 1, 2, false)
	set(0x2C, "BIT", absolute, c.bit, 3, 4, false)
	set(0x2D, "AND", absolute, c.and, 3, 4, false)
	set(0x2E, "ROL", absolute, c.rol, 3, 6, false)
	set(0x30, "BMI", relative, c.bmi, 2, 2, false)
	set(0x31, "AND", indirectY, c.and, 2, 5, true)
	set(0x35, "AND", zeropageX, c.and, 2, 4, false)
	set(0x36, "ROL", zeropageX, c.rol, 2, 6, false)
	set(0x38, "SEC", implied, c.sec, 1, 2, false)
	set(0x39, "AND", absoluteY, c.and, 3, 4, true)
	set(0x3D, "AND", absoluteX, c.and, 3, 4, true)
	set(0x3E, "ROL", absoluteX, c.rol, 3, 7, false)
	set(0x40, "RTI", implied, c.rti, 1, 6, false)
	set(0x41, "EOR", indirectX, c.eor, 2, 6, false)
	set(0x45, "EOR", zeropage, c.eor, 2, 3, false)
	set(0x46, "LSR", zeropage, c.lsr, 2, 5, false)
	set(0x48, "PHA", implied, c.pha, 1, 3, false)
	set(0x49, "EOR", immdiate, c.eor, 2, 2, false)
	set(0x4A, "LSR", accumulator, c.lsr, 1, 2, false)
	set(0x4C, "JMP", absolute, c.jmp, 3, 3, false)
	set(0x4D, "EOR", absolute, c.eor, 3, 4, false)
	set(0x4E, "LSR", absolute, c.lsr, 3, 6, false)
	set(0x50, "BVC", relative, c.bvc, 2, 2, false)
	set(0x51, "EOR", indirectY, c.eor, 2, 5, true)
	set(0x55, "EOR", zeropageX, c.eor, 2, 4, false)
	set(0x56, "LSR", zeropageX, c.lsr, 2, 6, false)
	set(0x58, "CLI", implied, c.cli, 1, 2, false)
	set(0x59, "EOR", absoluteY, c.eor, 3, 4, true)
	set(0x5D, "EOR", absoluteX, c.eor, 3, 4, true)
	set(0x5E, "LSR", absoluteX, c.lsr, 3, 7, false)
	set(0x60, "RTS", implied, c.rts, 1, 6, false)
	set(0x61, "ADC", indirectX, c.adc, 2, 6, false)
	set(0x65, "ADC", zeropage, c.adc, 2, 3, false)
	set(0x66, "ROR", zeropage, c.ror, 2, 5, false)
	set(0x68, "PLA", implied, c.pla, 1, 4, false)
	set(0x69, "ADC", immdiate, c.adc, 2, 2, false)
	set(0x6A, "ROR", accumulator, c.ror, 1, 2, false)
	set(0x6C, "JMP", indirect, c.jmp, 3, 5, false)
	set(0x6D, "ADC", absolute, c.adc, 3, 4, false)
	set(0x6E, "ROR", absolute, c.ror, 3, 6, false)
	set(0x70, "BVS", relative, c.bvs, 2, 2, false)
	set(0x71, "ADC", indirectY, c.adc, 2, 5, true)
	set(0x75, "ADC", zeropageX, c.adc, 2, 4, false)
	set(0x76, "ROR", zeropageX, c.ror, 2, 6, false)
	set(0x78, "SEI", implied, c.sei, 1, 2, false)
	set(0x79, "ADC", absoluteY, c.adc, 3, 4, true)
	set(0x7D, "ADC", absoluteX, c.adc, 3, 4, true)
	set(0x7E, "ROR", absoluteX, c.ror, 3, 7, false)
	set(0x81, "STA", indirectX, c.sta, 2, 6, false)
	set(0x83, "SAX", indirectX, c.sax, 2, 6, false)
	set(0x84, "STY", zeropage, c.sty, 2, 3, false)
	set(0x85, "STA", zeropage, c.sta, 2, 3, false)
	set(0x86, "STX", zeropage, c.stx, 2, 3, false)
	set(0x87, "SAX", zeropage, c.sax, 2, 3, false)
	set(0x88, "DEY", implied, c.dey, 1, 2, false)
	set(0x8A, "TXA", implied, c.txa, 1, 2, false)
	set(0x8C, "STY", absolute, c.sty, 3, 4, false)
	set(0x8D, "STA", absolute, c.sta, 3, 4, false)
	set(0x8E, "STX", absolute, c.stx, 3, 4, false)
	set(0x8F, "SAX", absolute, c.sax, 3, 4, false)
	set(0x90, "BCC", relative, c.bcc, 2, 2, false)
	set(0x91, "STA", indirectY, c.sta, 2, 6, false)
	set(0x94, "STY", zeropageX, c.sty, 2, 4, false)
	set(0x95, "STA", zeropageX, c.sta, 2, 4, false)
	set(0x96, "STX", zeropageY, c.stx, 2, 4, false)
	set(0x97, "SAX", zeropageY, c.sax, 2, 4, false)
	set(0x98, "TYA", implied, c.tya, 1, 2, false)
	set(0x99, "STA", absoluteY, c.sta, 3, 5, false)
	set(0x9A, "TXS", implied, c.txs, 1, 2, false)
	set(0x9D, "STA", absoluteX, c.sta, 3, 5, false)
	set(0xA0, "LDY", immdiate, c.ldy, 2, 2, false)
	set(0xA1, "LDA", indirectX, c.lda, 2, 6, false)
	set(0xA2, "LDX", immdiate, c.ldx, 2, 2, false)
	set(0xA3, "LAX", indirectX, c.lax, 2, 6, false)
	set(0xA4, "LDY", zeropage, c.ldy, 2, 3, false)
	set(0xA5, "LDA", zeropage, c.lda, 2, 3, false)
	set(0xA6, "LDX", zeropage, c.ldx, 2, 3, false)
	set(0xA7, "LAX", zeropage, c.lax, 2, 3, false)
	set(0xA8, "TAY", implied, c.tay, 1, 2, false)
	set(0xA9, "LDA", immdiate, c.lda, 2, 2, false)
	set(0xAA, "TAX", implied, c.tax, 1, 2, false)
	set(0xAC, "LDY", absolute, c.ldy, 3, 4, false)
	set(0xAD, "LDA", absolute, c.lda, 3, 4, false)
	set(0xAE, "LDX", absolute, c.ldx, 3, 4, false)
	set(0xAF, "LAX", absolute, c.lax, 3, 4, false)
	set(0xB0, "BCS", relative, c.bcs, 2, 2, false)
	set(0xB1, "LDA", indirectY, c.lda, 2, 5, true)
	set(0xB3, "LAX", indirectY, c.lax, 2, 5, true)
	set(0xB4, "LDX", zeropageX, c.ldx, 2, 4, false)
	set(0xB5, "LDA", zeropageX, c.lda, 2, 4, false)
	set(0xB6, "LDX", zeropageY, c.ldx, 2, 4, false)
	set(0xB7, "LAX", zeropageY, c.lax, 2, 4, false)
	set(0xB8, "CLV", implied, c.clv, 1, 2, false)
	set(0xB9, "LDA", absoluteY, c.lda, 3, 4, true)
	set(0xBA, "TSX", implied, c.tsx, 1, 2, false)
	set(0xBC, "LDY", absoluteX, c.ldy, 3, 4, true)
	set(0xBD, "LDA", absoluteX, c.lda, 3, 4, true)
	set(0xBE, "LDX", absoluteY, c.ldx, 3, 4, true)
	set(0xBF, "LAX", absoluteY, c.lax, 3, 4, true)
	set(0xC0, "CPY", immdiate, c.cpy, 2, 2, false)
	set(0xC1, "CMP", indirectX, c.cmp, 2, 6, false)
	set(0xC3, "DCP", indirectX, c.dcp, 2, 8, false)
	set(0xC4, "CPY", zeropage, c.cpy, 2, 3, false)
	set(0xC5, "CMP", zeropage, c.cmp, 2, 3, false)
	set(0xC6, "DEC", zeropage, c.dec, 2, 5, false)
	set(0xC7, "DCP", zeropage, c.dcp, 2, 5, false)
	set(0xC8, "INY", implied, c.iny, 1, 2, false)
	set(0xC9, "CMP", immdiate, c.cmp, 2, 2, false)
	set(0xCA, "DEX", implied, c.dex, 1, 2, false)
	set(0xCC, "CPY", absolute, c.cpy, 3, 4, false)
	set(0xCD, "CMP", absolute, c.cmp, 3, 4, false)
	set(0xCE, "DEC", absolute, c.dec, 3, 6, false)
	set(0xCF, "DCP", absolute, c.dcp, 3, 6, false)
	set(0xD0, "BNE", relative, c.bne, 2, 2, false)
	set(0xD1, "CMP", indirectY, c.cmp, 2, 5, true)
	set(0xD3, "DCP", indirectY, c.dcp, 2, 8, false)
	set(0xD5, "CMP", zeropageX, c.cmp, 2, 4, false)
	set(0xD6, "DEC", zeropageX, c.dec, 2, 6, false)
	set(0xD7, "DCP", zeropageX, c.dcp, 2, 6, false)
	set(0xD8, "CLD", implied, c.cld, 1, 2, false)
	set(0xD9, "CMP", absoluteY, c.cmp, 3, 4, true)
	set(0xDB, "DCP", absoluteY, c.dcp, 3, 7, false)
	set(0xDD, "CMP", absoluteX, c.cmp, 3, 4, true)
	set(0xDE, "DEC", absoluteX, c.dec, 3, 7, false)
	set(0xDF, "DCP", absoluteX, c.dcp, 3, 7, false)
	set(0xE0, "CPX", immdiate, c.cpx, 2, 2, false)
	set(0xE1, "SBC", indirectX, c.sbc, 2, 6, false)
	set(0xE3, "ISC", indirectX, c.isc, 2, 8, false)
	set(0xE4, "CPX", zeropage, c.cpx, 2, 3, false)
	set(0xE5, "SBC", zeropage, c.sbc, 2, 3, false)
	set(0xE6, "INC", zeropage, c.inc, 2, 5, false)
	set(0xE7, "ISC", zeropage, c.isc, 2, 5, false)
	set(0xE8, "INX", implied, c.inx, 1, 2, false)
	set(0xE9, "SBC", immdiate, c.sbc, 2, 2, false)
	set(0xEA, "NOP", implied, c.nop, 1, 2, false)
	set(0xEB, "SBC", immdiate, c.sbc, 2, 2, false) // unofficial alias of 0xE9
	set(0xEC, "CPX", absolute, c.cpx, 3, 4, false)
	set(0xED, "SBC", absolute, c.sbc, 3, 4, false)
	set(0xEE, "INC", absolute, c.inc, 3, 6, false)
	set(0xEF, "ISC", absolute, c.isc, 3, 6, false)
	set(0xF0, "BEQ", relative, c.beq, 2, 2, false)
	set(0xF1, "SBC", indirectY, c.sbc, 2, 5, true)
	set(0xF3, "ISC", indirectY, c.isc, 2, 8, false)
	set(0xF5, "SBC", zeropageX, c.sbc, 2, 4, false)
	set(0xF6, "INC", zeropageX, c.inc, 2, 6, false)
	set(0xF7, "ISC", zeropageX, c.isc, 2, 6, false)
	set(0xF8, "SED", implied, c.sed, 1, 2, false)
	set(0xF9, "SBC", absoluteY, c.sbc, 3, 4, true)
	set(0xFB, "ISC", absoluteY, c.isc, 3, 7, false)
	set(0xFD, "SBC", absoluteX, c.sbc, 3, 4, true)
	set(0xFE, "INC", absoluteX, c.inc, 3, 7, false)
	set(0xFF, "ISC", absoluteX, c.isc, 3, 7, false)

	// Unofficial SLO/RLA/SRE/RRA (shift-or-rotate fused with the logical
	// or arithmetic op that follows it), and the multi-byte unofficial
	// NOPs. Listed separately from the table above because they share
	// cycle counts with their ASL/ROL/LSR/ROR/NOP cousins by addressing
	// mode rather than by a contiguous opcode run.
	set(0x03, "SLO", indirectX, c.slo, 2, 8, false)
	set(0x04, "NOP", zeropage, c.dop, 2, 3, false)
	set(0x07, "SLO", zeropage, c.slo, 2, 5, false)
	set(0x0C, "NOP", absolute, c.top, 3, 4, false)
	set(0x0F, "SLO", absolute, c.slo, 3, 6, false)
	set(0x13, "SLO", indirectY, c.slo, 2, 8, false)
	set(0x14, "NOP", zeropageX, c.dop, 2, 4, false)
	set(0x17, "SLO", zeropageX, c.slo, 2, 6, false)
	set(0x1A, "NOP", implied, c.nop, 1, 2, false)
	set(0x1C, "NOP", absoluteX, c.top, 3, 4, true)
	set(0x1F, "SLO", absoluteX, c.slo, 3, 7, false)
	set(0x23, "RLA", indirectX, c.rla, 2, 8, false)
	set(0x27, "RLA", zeropage, c.rla, 2, 5, false)
	set(0x2F, "RLA", absolute, c.rla, 3, 6, false)
	set(0x33, "RLA", indirectY, c.rla, 2, 8, false)
	set(0x34, "NOP", zeropageX, c.dop, 2, 4, false)
	set(0x37, "RLA", zeropageX, c.rla, 2, 6, false)
	set(0x3A, "NOP", implied, c.nop, 1, 2, false)
	set(0x3C, "NOP", absoluteX, c.top, 3, 4, true)
	set(0x3F, "RLA", absoluteX, c.rla, 3, 7, false)
	set(0x43, "SRE", indirectX, c.sre, 2, 8, false)
	set(0x44, "NOP", zeropage, c.dop, 2, 3, false)
	set(0x47, "SRE", zeropage, c.sre, 2, 5, false)
	set(0x4F, "SRE", absolute, c.sre, 3, 6, false)
	set(0x53, "SRE", indirectY, c.sre, 2, 8, false)
	set(0x54, "NOP", zeropageX, c.dop, 2, 4, false)
	set(0x57, "SRE", zeropageX, c.sre, 2, 6, false)
	set(0x5A, "NOP", implied, c.nop, 1, 2, false)
	set(0x5C, "NOP", absoluteX, c.top, 3, 4, true)
	set(0x5F, "SRE", absoluteX, c.sre, 3, 7, false)
	set(0x63, "RRA", indirectX, c.rra, 2, 8, false)
	set(0x64, "NOP", zeropage, c.dop, 2, 3, false)
	set(0x67, "RRA", zeropage, c.rra, 2, 5, false)
	set(0x6F, "RRA", absolute, c.rra, 3, 6, false)
	set(0x73, "RRA", indirectY, c.rra, 2, 8, false)
	set(0x74, "NOP", zeropageX, c.dop, 2, 4, false)
	set(0x77, "RRA", zeropageX, c.rra, 2, 6, false)
	set(0x7A, "NOP", implied, c.nop, 1, 2, false)
	set(0x7C, "NOP", absoluteX, c.top, 3, 4, true)
	set(0x7F, "RRA", absoluteX, c.rra, 3, 7, false)
	set(0x80, "NOP", immdiate, c.dop, 2, 2, false)
	set(0x82, "NOP", immdiate, c.dop, 2, 2, false)
	set(0x89, "NOP", immdiate, c.dop, 2, 2, false)
	set(0xC2, "NOP", immdiate, c.dop, 2, 2, false)
	set(0xD4, "NOP", zeropageX, c.dop, 2, 4, false)
	set(0xDA, "NOP", implied, c.nop, 1, 2, false)
	set(0xDC, "NOP", absoluteX, c.top, 3, 4, true)
	set(0xE2, "NOP", immdiate, c.dop, 2, 2, false)
	set(0xF4, "NOP", zeropageX, c.dop, 2, 4, false)
	set(0xFA, "NOP", implied, c.nop, 1, 2, false)
	set(0xFC, "NOP", absoluteX, c.top, 3, 4, true)

	return t
}

// --- official opcodes ---

func (c *CPU) adc(mode addressingMode, operand uint16) int {
	a := c.A
	m := c.bus.read(operand)
	var carry byte
	if c.P.C {
		carry = 1
	}
	res := uint16(a) + uint16(m) + uint16(carry)
	c.A = byte(res)
	c.P.C = res > 0xFF
	c.P.V = (a^m)&0x80 == 0 && (a^c.A)&0x80 != 0
	c.setN(c.A)
	c.setZ(c.A)
	return 0
}

func (c *CPU) and(mode addressingMode, operand uint16) int {
	c.A &= c.bus.read(operand)
	c.setN(c.A)
	c.setZ(c.A)
	return 0
}

func (c *CPU) asl(mode addressingMode, operand uint16) int {
	if mode == accumulator {
		c.P.C = c.A&0x80 != 0
		c.A <<= 1
		c.setN(c.A)
		c.setZ(c.A)
		return 0
	}
	x := c.bus.read(operand)
	c.P.C = x&0x80 != 0
	x <<= 1
	c.write(operand, x)
	c.setN(x)
	c.setZ(x)
	return 0
}

func (c *CPU) branch(taken bool, target uint16) int {
	if !taken {
		return 0
	}
	old := c.PC
	c.PC = target
	if (old & 0xFF00) != (target & 0xFF00) {
		return 2
	}
	return 1
}

func (c *CPU) bcc(mode addressingMode, operand uint16) int { return c.branch(!c.P.C, operand) }
func (c *CPU) bcs(mode addressingMode, operand uint16) int { return c.branch(c.P.C, operand) }
func (c *CPU) beq(mode addressingMode, operand uint16) int { return c.branch(c.P.Z, operand) }
func (c *CPU) bmi(mode addressingMode, operand uint16) int { return c.branch(c.P.N, operand) }
func (c *CPU) bne(mode addressingMode, operand uint16) int { return c.branch(!c.P.Z, operand) }
func (c *CPU) bpl(mode addressingMode, operand uint16) int { return c.branch(!c.P.N, operand) }
func (c *CPU) bvc(mode addressingMode, operand uint16) int { return c.branch(!c.P.V, operand) }
func (c *CPU) bvs(mode addressingMode, operand uint16) int { return c.branch(c.P.V, operand) }

func (c *CPU) bit(mode addressingMode, operand uint16) int {
	x := c.bus.read(operand)
	c.P.Z = (c.A & x) == 0
	c.P.V = x&0x40 != 0
	c.P.N = x&0x80 != 0
	return 0
}

func (c *CPU) brk(mode addressingMode, operand uint16) int {
	c.PC++ // BRK is a 1-byte instruction that behaves like a 2-byte one; the extra byte is skipped on return
	c.interrupt(0xFFFE, true)
	return 0
}

func (c *CPU) clc(mode addressingMode, operand uint16) int { c.P.C = false; return 0 }
func (c *CPU) cld(mode addressingMode, operand uint16) int { c.P.D = false; return 0 }
func (c *CPU) cli(mode addressingMode, operand uint16) int { c.P.I = false; return 0 }
func (c *CPU) clv(mode addressingMode, operand uint16) int { c.P.V = false; return 0 }

func (c *CPU) compare(reg byte, m byte) {
	res := reg - m
	c.P.C = reg >= m
	c.setN(res)
	c.setZ(res)
}

func (c *CPU) cmp(mode addressingMode, operand uint16) int {
	c.compare(c.A, c.bus.read(operand))
	return 0
}
func (c *CPU) cpx(mode addressingMode, operand uint16) int {
	c.compare(c.X, c.bus.read(operand))
	return 0
}
func (c *CPU) cpy(mode addressingMode, operand uint16) int {
	c.compare(c.Y, c.bus.read(operand))
	return 0
}

func (c *CPU) dec(mode addressingMode, operand uint16) int {
	x := c.bus.read(operand) - 1
	c.write(operand, x)
	c.setN(x)
	c.setZ(x)
	return 0
}

func (c *CPU) dex(mode addressingMode, operand uint16) int {
	c.X--
	c.setN(c.X)
	c.setZ(c.X)
	return 0
}

func (c *CPU) dey(mode addressingMode, operand uint16) int {
	c.Y--
	c.setN(c.Y)
	c.setZ(c.Y)
	return 0
}

func (c *CPU) eor(mode addressingMode, operand uint16) int {
	c.A ^= c.bus.read(operand)
	c.setN(c.A)
	c.setZ(c.A)
	return 0
}

func (c *CPU) inc(mode addressingMode, operand uint16) int {
	x := c.bus.read(operand) + 1
	c.write(operand, x)
	c.setN(x)
	c.setZ(x)
	return 0
}

func (c *CPU) inx(mode addressingMode, operand uint16) int {
	c.X++
	c.setN(c.X)
	c.setZ(c.X)
	return 0
}

func (c *CPU) iny(mode addressingMode, operand uint16) int {
	c.Y++
	c.setN(c.Y)
	c.setZ(c.Y)
	return 0
}

func (c *CPU) jmp(mode addressingMode, operand uint16) int {
	c.PC = operand
	return 0
}

func (c *CPU) jsr(mode addressingMode, operand uint16) int {
	ret := c.PC - 1
	c.push(byte(ret >> 8))
	c.push(byte(ret & 0xFF))
	c.PC = operand
	return 0
}

func (c *CPU) lda(mode addressingMode, operand uint16) int {
	c.A = c.bus.read(operand)
	c.setN(c.A)
	c.setZ(c.A)
	return 0
}

func (c *CPU) ldx(mode addressingMode, operand uint16) int {
	c.X = c.bus.read(operand)
	c.setN(c.X)
	c.setZ(c.X)
	return 0
}

func (c *CPU) ldy(mode addressingMode, operand uint16) int {
	c.Y = c.bus.read(operand)
	c.setN(c.Y)
	c.setZ(c.Y)
	return 0
}

func (c *CPU) lsr(mode addressingMode, operand uint16) int {
	if mode == accumulator {
		c.P.C = c.A&1 != 0
		c.A >>= 1
		c.setN(c.A)
		c.setZ(c.A)
		return 0
	}
	x := c.bus.read(operand)
	c.P.C = x&1 != 0
	x >>= 1
	c.write(operand, x)
	c.setN(x)
	c.setZ(x)
	return 0
}

func (c *CPU) nop(mode addressingMode, operand uint16) int { return 0 }

// dop and top are the unofficial double/triple-byte NOPs: they decode an
// operand (and, for top's absoluteX form, can incur the page-cross
// penalty) but never use the value.
func (c *CPU) dop(mode addressingMode, operand uint16) int { return 0 }
func (c *CPU) top(mode addressingMode, operand uint16) int { return 0 }

func (c *CPU) ora(mode addressingMode, operand uint16) int {
	c.A |= c.bus.read(operand)
	c.setN(c.A)
	c.setZ(c.A)
	return 0
}

func (c *CPU) pha(mode addressingMode, operand uint16) int { c.push(c.A); return 0 }

func (c *CPU) php(mode addressingMode, operand uint16) int {
	s := c.P
	s.B = true
	s.R = true
	c.push(s.encode())
	return 0
}

func (c *CPU) pla(mode addressingMode, operand uint16) int {
	c.A = c.pop()
	c.setN(c.A)
	c.setZ(c.A)
	return 0
}

func (c *CPU) plp(mode addressingMode, operand uint16) int {
	c.P.decodeFrom(c.pop())
	c.P.B = false
	return 0
}

func (c *CPU) rol(mode addressingMode, operand uint16) int {
	var carry byte
	if c.P.C {
		carry = 1
	}
	if mode == accumulator {
		c.P.C = c.A&0x80 != 0
		c.A = (c.A << 1) | carry
		c.setN(c.A)
		c.setZ(c.A)
		return 0
	}
	x := c.bus.read(operand)
	c.P.C = x&0x80 != 0
	x = (x << 1) | carry
	c.write(operand, x)
	c.setN(x)
	c.setZ(x)
	return 0
}

func (c *CPU) ror(mode addressingMode, operand uint16) int {
	var carry byte
	if c.P.C {
		carry = 0x80
	}
	if mode == accumulator {
		c.P.C = c.A&1 != 0
		c.A = (c.A >> 1) | carry
		c.setN(c.A)
		c.setZ(c.A)
		return 0
	}
	x := c.bus.read(operand)
	c.P.C = x&1 != 0
	x = (x >> 1) | carry
	c.write(operand, x)
	c.setN(x)
	c.setZ(x)
	return 0
}

func (c *CPU) rti(mode addressingMode, operand uint16) int {
	c.P.decodeFrom(c.pop())
	c.P.B = false
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	c.PC = hi<<8 | lo
	return 0
}

func (c *CPU) rts(mode addressingMode, operand uint16) int {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	c.PC = (hi<<8 | lo) + 1
	return 0
}

func (c *CPU) sbc(mode addressingMode, operand uint16) int {
	a := c.A
	m := c.bus.read(operand)
	var carry byte
	if c.P.C {
		carry = 1
	}
	res := int16(a) - int16(m) - int16(1-carry)
	c.A = byte(res)
	c.P.C = res >= 0
	c.P.V = (a^m)&0x80 != 0 && (a^c.A)&0x80 != 0
	c.setN(c.A)
	c.setZ(c.A)
	return 0
}

func (c *CPU) sec(mode addressingMode, operand uint16) int { c.P.C = true; return 0 }
func (c *CPU) sed(mode addressingMode, operand uint16) int { c.P.D = true; return 0 }
func (c *CPU) sei(mode addressingMode, operand uint16) int { c.P.I = true; return 0 }

func (c *CPU) sta(mode addressingMode, operand uint16) int { c.write(operand, c.A); return 0 }
func (c *CPU) stx(mode addressingMode, operand uint16) int { c.write(operand, c.X); return 0 }
func (c *CPU) sty(mode addressingMode, operand uint16) int { c.write(operand, c.Y); return 0 }

func (c *CPU) tax(mode addressingMode, operand uint16) int {
	c.X = c.A
	c.setN(c.X)
	c.setZ(c.X)
	return 0
}
func (c *CPU) tay(mode addressingMode, operand uint16) int {
	c.Y = c.A
	c.setN(c.Y)
	c.setZ(c.Y)
	return 0
}
func (c *CPU) tsx(mode addressingMode, operand uint16) int {
	c.X = c.S
	c.setN(c.X)
	c.setZ(c.X)
	return 0
}
func (c *CPU) txa(mode addressingMode, operand uint16) int {
	c.A = c.X
	c.setN(c.A)
	c.setZ(c.A)
	return 0
}
func (c *CPU) txs(mode addressingMode, operand uint16) int { c.S = c.X; return 0 }
func (c *CPU) tya(mode addressingMode, operand uint16) int {
	c.A = c.Y
	c.setN(c.A)
	c.setZ(c.A)
	return 0
}

// --- unofficial opcodes ---
// https://www.nesdev.org/wiki/CPU_unofficial_opcodes

func (c *CPU) lax(mode addressingMode, operand uint16) int {
	c.A = c.bus.read(operand)
	c.X = c.A
	c.setN(c.A)
	c.setZ(c.A)
	return 0
}

func (c *CPU) sax(mode addressingMode, operand uint16) int {
	c.write(operand, c.A&c.X)
	return 0
}

func (c *CPU) dcp(mode addressingMode, operand uint16) int {
	x := c.bus.read(operand) - 1
	c.write(operand, x)
	c.compare(c.A, x)
	return 0
}

func (c *CPU) isc(mode addressingMode, operand uint16) int {
	x := c.bus.read(operand) + 1
	c.write(operand, x)
	a := c.A
	var carry byte
	if c.P.C {
		carry = 1
	}
	res := int16(a) - int16(x) - int16(1-carry)
	c.A = byte(res)
	c.P.C = res >= 0
	c.P.V = (a^x)&0x80 != 0 && (a^c.A)&0x80 != 0
	c.setN(c.A)
	c.setZ(c.A)
	return 0
}

func (c *CPU) slo(mode addressingMode, operand uint16) int {
	x := c.bus.read(operand)
	c.P.C = x&0x80 != 0
	x <<= 1
	c.write(operand, x)
	c.A |= x
	c.setN(c.A)
	c.setZ(c.A)
	return 0
}

func (c *CPU) rla(mode addressingMode, operand uint16) int {
	var carry byte
	if c.P.C {
		carry = 1
	}
	x := c.bus.read(operand)
	c.P.C = x&0x80 != 0
	x = (x << 1) | carry
	c.write(operand, x)
	c.A &= x
	c.setN(c.A)
	c.setZ(c.A)
	return 0
}

func (c *CPU) sre(mode addressingMode, operand uint16) int {
	x := c.bus.read(operand)
	c.P.C = x&1 != 0
	x >>= 1
	c.write(operand, x)
	c.A ^= x
	c.setN(c.A)
	c.setZ(c.A)
	return 0
}

func (c *CPU) rra(mode addressingMode, operand uint16) int {
	var carry byte
	if c.P.C {
		carry = 0x80
	}
	x := c.bus.read(operand)
	oldCarry := x&1 != 0
	x = (x >> 1) | carry
	c.write(operand, x)

	a := c.A
	var addCarry byte
	if oldCarry {
		addCarry = 1
	}
	res := uint16(a) + uint16(x) + uint16(addCarry)
	c.A = byte(res)
	c.P.C = res > 0xFF
	c.P.V = (a^x)&0x80 == 0 && (a^c.A)&0x80 != 0
	c.setN(c.A)
	c.setZ(c.A)
	return 0
}
