package nes

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// Trace formats the CPU's last decoded instruction plus register state in
// the nestest/blargg golden-log style.
// https://www.qmtpro.com/~nes/misc/nestest.txt
func (c *CPU) Trace() string {
	return fmt.Sprintf("%s PPU:---,--- CYC:%d", c.lastExecution, c.Cycles)
}

// Dump renders full CPU and PPU register state with go-spew for the
// interactive debugger's print command (see debug_console.go).
func Dump(s *System) string {
	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
	return cfg.Sdump(s.cpu) + cfg.Sdump(s.ppu)
}
