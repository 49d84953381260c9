// Package ui hosts the presentation layer: a GLFW window, an OpenGL blit
// of the PPU's framebuffer, and a portaudio output stream. None of this
// is part of the emulation core in nes/ — System runs identically
// headless (see cmd/nesgo's -headless flag).
package ui

import (
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/golang/glog"

	"github.com/wfreeman/nesgo/nes"
)

// Start opens a window and runs sys until it's closed. width/height are
// the window's pixel dimensions; the framebuffer itself is always
// nes.Width x nes.Height and stretched to fill it.
func Start(sys *nes.System, width, height int) {
	if err := glfw.Init(); err != nil {
		glog.Fatalln(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	window, err := glfw.CreateWindow(width, height, "nesgo", nil, nil)
	if err != nil {
		glog.Fatalln(err)
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		glog.Fatalln(err)
	}
	program, err := newProgram()
	if err != nil {
		glog.Fatalln(err)
	}
	gl.UseProgram(program)

	audio := newAudio()
	if err := audio.start(); err != nil {
		glog.Errorf("audio disabled: %v", err)
	} else {
		sys.SetAudioOut(audio.channel)
		defer audio.terminate()
	}

	for !window.ShouldClose() {
		frame := sys.RunFrame()
		updateTexture(program, frame, nes.Width, nes.Height)
		sys.SetController(0, readKeys(window))
		window.SwapBuffers()
		glfw.PollEvents()
		// RunFrame already paced itself against real PPU dot counts, but
		// without an audio-rate sync point a host this much faster than
		// an NES can spin far ahead of 60Hz; this caps it close enough.
		time.Sleep(time.Millisecond)
	}
}
