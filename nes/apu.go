package nes

import "math"

// APU accepts and stores every register write the 2A03's sound unit exposes
// at $4000-$4013, $4015 and $4017, so games that probe or initialize audio
// registers before deciding what to play don't see open bus. spec.md's
// Non-goals explicitly exclude channel-accurate synthesis; the audio this
// produces is a single placeholder tone, not a mix of the four real
// channels. See https://www.nesdev.org/wiki/APU for the register map this
// stub accepts without acting on.
type APU struct {
	pulse1, pulse2 pulse
	triangle       triangleChannel
	noise          noiseChannel
	dmc            dmcChannel
	status         byte // $4015: channel enable bits, write side only tracked here
	frameCounter   byte // $4017

	out    chan float32
	sample int
}

func NewAPU() *APU {
	return &APU{}
}

// Step produces one audio sample pair. The real 2A03 mixes four channels
// through a nonlinear lookup table; this instead emits a fixed 440Hz tone
// whenever any channel is enabled via $4015, silence otherwise, so a
// placeholder beep is audible without claiming cycle-accurate synthesis.
func (a *APU) Step() {
	const sampleRate = 44100
	var x float32
	if a.status != 0 {
		x = float32(math.Sin(2.0 * math.Pi * 440 * float64(a.sample) / float64(sampleRate)))
	}
	select {
	case a.out <- x: // left
	default:
	}
	select {
	case a.out <- x: // right
	default:
	}
	a.sample++
	if a.sample >= sampleRate*10 {
		a.sample = 0
	}
}

func (a *APU) SetAudioOut(c chan float32) {
	a.out = c
}

// writeRegister accepts a CPU write to $4000-$4017 (controller ports
// excluded; the bus routes those to Controller). Addresses with no channel
// behavior implemented still latch their value so a later read of $4015
// reflects what was last written.
func (a *APU) writeRegister(addr uint16, data byte) {
	switch {
	case addr >= 0x4000 && addr <= 0x4003:
		a.pulse1.write(addr-0x4000, data)
	case addr >= 0x4004 && addr <= 0x4007:
		a.pulse2.write(addr-0x4004, data)
	case addr >= 0x4008 && addr <= 0x400B:
		a.triangle.write(addr-0x4008, data)
	case addr >= 0x400C && addr <= 0x400F:
		a.noise.write(addr-0x400C, data)
	case addr >= 0x4010 && addr <= 0x4013:
		a.dmc.write(addr-0x4010, data)
	case addr == 0x4015:
		a.status = data
	case addr == 0x4017:
		a.frameCounter = data
	}
}

// readStatus services $4015 reads. Real hardware reports length-counter and
// DMC state per channel; this reports back only the enable bits last
// written, since no channel tracks its own length counter.
func (a *APU) readStatus() byte {
	return a.status
}

// pulse stores the four $4000-range registers for one pulse channel.
type pulse struct {
	control byte
	sweep   byte
	timerLo byte
	timerHi byte
}

func (p *pulse) write(reg uint16, data byte) {
	switch reg {
	case 0:
		p.control = data
	case 1:
		p.sweep = data
	case 2:
		p.timerLo = data
	case 3:
		p.timerHi = data
	}
}

type triangleChannel struct {
	linear  byte
	timerLo byte
	timerHi byte
}

func (t *triangleChannel) write(reg uint16, data byte) {
	switch reg {
	case 0:
		t.linear = data
	case 2:
		t.timerLo = data
	case 3:
		t.timerHi = data
	}
}

type noiseChannel struct {
	envelope byte
	period   byte
	length   byte
}

func (n *noiseChannel) write(reg uint16, data byte) {
	switch reg {
	case 0:
		n.envelope = data
	case 2:
		n.period = data
	case 3:
		n.length = data
	}
}

type dmcChannel struct {
	control byte
	counter byte
	address byte
	length  byte
}

func (d *dmcChannel) write(reg uint16, data byte) {
	switch reg {
	case 0:
		d.control = data
	case 1:
		d.counter = data
	case 2:
		d.address = data
	case 3:
		d.length = data
	}
}
