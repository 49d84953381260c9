package nes

// Mapper dispatches CPU/PPU reads and writes to cartridge PRG/CHR memory.
// Each method resolves its own address range; callers don't need to know
// which variant is installed. Mapper state (bank registers, CHR RAM) is
// interior-mutable so CPU-side writes are observable by subsequent PPU
// fetches, per spec.md §5 (Shared resources).
type Mapper interface {
	CPURead(addr uint16) (byte, bool)
	CPUWrite(addr uint16, data byte) bool
	PPURead(addr uint16) (byte, bool)
	PPUWrite(addr uint16, data byte) bool
}

// newMapper constructs the mapper named by an iNES mapper id. Only mapper 0
// (NROM) is implemented — spec.md's Non-goals explicitly exclude mappers
// beyond NROM — so any other id is a construction error.
func newMapper(id byte, c *Cartridge) (Mapper, error) {
	switch id {
	case 0:
		return newMapper0(c), nil
	default:
		return nil, cartridgeErrorf("unsupported mapper id %d (only mapper 0/NROM is implemented)", id)
	}
}
