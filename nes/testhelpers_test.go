package nes

import "testing"

// newTestCartridge builds a minimal valid NROM-128 image in memory: one
// 16KiB PRG bank (reset vector pointed at $8000) and one 8KiB CHR bank,
// so tests don't need a real ROM file on disk.
func newTestCartridge(t *testing.T) *Cartridge {
	t.Helper()
	data := make([]byte, inesHeaderSizeBytes+prgROMSizeUnit+chrROMSizeUnit)
	copy(data[0:4], []byte{'N', 'E', 'S', msdosEOF})
	data[4] = 1 // 1x16KiB PRG bank
	data[5] = 1 // 1x8KiB CHR bank
	data[6] = 0 // horizontal mirroring, mapper low nibble 0
	data[7] = 0

	prgOffset := inesHeaderSizeBytes
	// Reset vector at $FFFC-$FFFD -> $8000, within the last 16KiB of PRG.
	data[prgOffset+prgROMSizeUnit-4] = 0x00
	data[prgOffset+prgROMSizeUnit-3] = 0x80

	cartridge, err := NewCartridge(data)
	if err != nil {
		t.Fatalf("building test cartridge: %v", err)
	}
	return cartridge
}

func newTestSystem(t *testing.T) *System {
	t.Helper()
	return NewSystem(newTestCartridge(t))
}
