package nes

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	pcRe  = regexp.MustCompile("^[A-Z0-9]{4}")
	aRe   = regexp.MustCompile("A:([A-Z0-9]*)")
	xRe   = regexp.MustCompile("X:([A-Z0-9]*)")
	yRe   = regexp.MustCompile("Y:([A-Z0-9]*)")
	pRe   = regexp.MustCompile("P:([A-Z0-9]*)")
	spRe  = regexp.MustCompile("SP:([A-Z0-9]*)")
	cycRe = regexp.MustCompile(`CYC:(\d*)`)
)

// TestCPUAgainstNestestLog replays nestest.nes against its accompanying
// golden log (https://www.qmtpro.com/~nes/misc/nestest.txt), comparing
// registers and cycle count after every instruction. Skips itself if the
// fixture isn't present rather than failing the suite.
func TestCPUAgainstNestestLog(t *testing.T) {
	romFile, err := os.Open("testdata/nestest.nes")
	if err != nil {
		t.Skipf("nestest fixture not available: %v", err)
	}
	defer romFile.Close()
	data, err := os.ReadFile("testdata/nestest.nes")
	if err != nil {
		t.Skipf("nestest fixture not available: %v", err)
	}
	logFile, err := os.Open("testdata/nestest.log")
	if err != nil {
		t.Skipf("nestest golden log not available: %v", err)
	}
	defer logFile.Close()

	cartridge, err := NewCartridge(data)
	assert.NoError(t, err)
	controllers := [2]*Controller{NewController(), NewController()}
	ppuBus := NewPPUBus(NewRAM(), cartridge)
	ppu := NewPPU(ppuBus)
	apu := NewAPU()
	cpuBus := NewCPUBus(NewRAM(), ppu, apu, cartridge, controllers)
	cpu := NewCPU(cpuBus)
	// nestest's automated mode starts execution at $C000 rather than the
	// reset vector.
	cpu.PC = 0xC000
	cpu.S = 0xFD
	cpu.P.decodeFrom(0x24)
	cpu.cyclesLeft = 0

	var wantCycle int
	var wantPC uint16
	var wantA, wantX, wantY, wantP, wantSP byte
	totalCycles := 7
	scanner := bufio.NewScanner(logFile)
	for scanner.Scan() {
		line := scanner.Text()
		fmt.Sscanf(pcRe.FindString(line), "%x", &wantPC)
		fmt.Sscanf(aRe.FindStringSubmatch(line)[1], "%x", &wantA)
		fmt.Sscanf(xRe.FindStringSubmatch(line)[1], "%x", &wantX)
		fmt.Sscanf(yRe.FindStringSubmatch(line)[1], "%x", &wantY)
		fmt.Sscanf(pRe.FindStringSubmatch(line)[1], "%x", &wantP)
		fmt.Sscanf(spRe.FindStringSubmatch(line)[1], "%x", &wantSP)
		fmt.Sscanf(cycRe.FindStringSubmatch(line)[1], "%d", &wantCycle)

		assert.Equalf(t, wantPC, cpu.PC, "PC mismatch before %q", line)
		assert.Equalf(t, wantA, cpu.A, "A mismatch before %q", line)
		assert.Equalf(t, wantX, cpu.X, "X mismatch before %q", line)
		assert.Equalf(t, wantY, cpu.Y, "Y mismatch before %q", line)
		assert.Equalf(t, wantP, cpu.P.encode(), "P mismatch before %q", line)
		assert.Equalf(t, wantSP, cpu.S, "SP mismatch before %q", line)
		assert.Equalf(t, totalCycles, wantCycle, "cycle count mismatch before %q", line)

		cycles := cpu.step()
		totalCycles += cycles
	}
}

func TestStatusEncodeDecodeRoundTrip(t *testing.T) {
	for _, b := range []byte{0x00, 0xFF, 0x24, 0xA5, 0x6C} {
		var s status
		s.decodeFrom(b)
		// Bit 5 (R) always reads back set, so it is forced on for the
		// comparison; every other bit, B included, round-trips.
		assert.Equal(t, b|0x20, s.encode()|0x20)
	}
}

func TestCPUResetVector(t *testing.T) {
	cartridge := newTestCartridge(t)
	controllers := [2]*Controller{NewController(), NewController()}
	ppuBus := NewPPUBus(NewRAM(), cartridge)
	ppu := NewPPU(ppuBus)
	cpuBus := NewCPUBus(NewRAM(), ppu, NewAPU(), cartridge, controllers)
	cpu := NewCPU(cpuBus)
	assert.Equal(t, uint16(0x8000), cpu.PC)
	assert.Equal(t, byte(0xFD), cpu.S)
	assert.True(t, cpu.P.I)
}
