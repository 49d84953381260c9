package nes

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Debugger wraps a System with an interactive stdin command loop.
// commands:
//
//	s [n]        step n instructions (default 1)
//	p [cpu|ppu]  with either argument, dump full CPU and PPU state;
//	             with none, print a short summary
//	br 0xADDR    set a breakpoint on PC
//	r            reset
//	q            quit
type Debugger struct {
	*System
	breakpoints []uint16
}

func NewDebugger(sys *System) *Debugger {
	return &Debugger{System: sys}
}

// stepInstruction ticks the master clock until the CPU has consumed a
// full instruction's worth of cycles (i.e. is about to fetch a new one),
// so "s" advances one instruction rather than one dot.
func (d *Debugger) stepInstruction() {
	start := d.cpu.Cycles
	for d.cpu.Cycles == start || d.cpu.cyclesLeft > 0 {
		d.tick()
	}
}

func (d *Debugger) checkBreak() bool {
	for _, bp := range d.breakpoints {
		if bp == d.cpu.PC {
			fmt.Printf("break at 0x%04x\n", bp)
			return true
		}
	}
	return false
}

func (d *Debugger) summary() {
	fmt.Printf("cycles=%d last=%s\n", d.cpu.Cycles, d.cpu.lastExecution)
	fmt.Printf("CPU: PC=0x%04x A=0x%02x X=0x%02x Y=0x%02x S=0x%02x P=0x%02x\n",
		d.cpu.PC, d.cpu.A, d.cpu.X, d.cpu.Y, d.cpu.S, d.cpu.P.encode())
	fmt.Printf("PPU: cycle=%d scanline=%d v=0x%04x\n", d.ppu.cycle, d.ppu.scanline, d.ppu.v)
}

// RunCommand reads and executes a single debugger command from in.
func (d *Debugger) RunCommand(in *bufio.Reader) error {
	fmt.Print("(nesgo) ")
	line, err := in.ReadString('\n')
	if err != nil {
		return err
	}
	args := strings.Fields(line)
	if len(args) == 0 {
		return nil
	}
	switch args[0] {
	case "s", "step":
		n := 1
		if len(args) > 1 {
			if v, err := strconv.Atoi(args[1]); err == nil {
				n = v
			}
		}
		for i := 0; i < n; i++ {
			d.stepInstruction()
			if d.checkBreak() {
				break
			}
		}
		d.summary()
	case "p", "print":
		if len(args) > 1 && (args[1] == "cpu" || args[1] == "ppu") {
			fmt.Println(Dump(d.System))
		} else {
			d.summary()
		}
	case "br", "breakpoint":
		if len(args) > 1 {
			var addr uint16
			fmt.Sscanf(args[1], "0x%x", &addr)
			d.breakpoints = append(d.breakpoints, addr)
		}
	case "r", "reset":
		d.Reset()
	case "q", "quit":
		os.Exit(0)
	default:
		fmt.Printf("unknown command %q\n", args[0])
	}
	return nil
}
