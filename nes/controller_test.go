package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestControllerShiftsOutButtonsInOrder(t *testing.T) {
	c := NewController()
	c.write(0x01) // strobe high
	c.SetState(ButtonA | ButtonStart)
	c.write(0x00) // strobe low, latch for reading

	want := []byte{1, 0, 0, 1, 0, 0, 0, 0} // A, B, Select, Start, Up, Down, Left, Right
	for i, w := range want {
		got := c.read()
		assert.Equalf(t, w, got, "bit %d", i)
	}
}

func TestControllerReadsOnesAfterEighthBit(t *testing.T) {
	c := NewController()
	c.SetState(0xFF)
	c.write(0x01)
	c.write(0x00)
	for i := 0; i < 8; i++ {
		c.read()
	}
	assert.Equal(t, byte(1), c.read())
}

func TestControllerStrobeHighKeepsReturningButtonA(t *testing.T) {
	c := NewController()
	c.SetState(ButtonA)
	c.write(0x01)
	assert.Equal(t, byte(1), c.read())
	assert.Equal(t, byte(1), c.read())
	assert.Equal(t, byte(1), c.read())
}
