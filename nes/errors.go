package nes

import "fmt"

// CartridgeError reports a broken construction-time invariant in an iNES
// image: a bad magic number, an unsupported mapper id, or a truncated ROM.
// These are the only errors the core ever returns; everything else during
// steady-state execution either succeeds or reads as 0.
type CartridgeError struct {
	Reason string
}

func (e *CartridgeError) Error() string {
	return fmt.Sprintf("invalid cartridge: %s", e.Reason)
}

func cartridgeErrorf(format string, args ...interface{}) error {
	return &CartridgeError{Reason: fmt.Sprintf(format, args...)}
}
