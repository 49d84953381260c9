// Command nesgo loads an iNES ROM and runs it, either in a GLFW window
// or headless for scripted/automated use.
package main

import (
	"bufio"
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/wfreeman/nesgo/nes"
	"github.com/wfreeman/nesgo/ui"
)

var (
	romPath   = flag.String("rom", "", "path to an iNES (.nes) ROM file")
	headless  = flag.Bool("headless", false, "run without opening a window; useful for test ROMs and CI")
	debug     = flag.Bool("debug", false, "drop into the interactive instruction-stepping debugger instead of running")
	width     = flag.Int("width", 512, "window width in pixels")
	height    = flag.Int("height", 480, "window height in pixels")
	maxFrames = flag.Int("max_frames", 0, "in -headless mode, stop after this many frames (0 means run forever)")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	if *romPath == "" {
		glog.Fatal("-rom is required")
	}
	data, err := os.ReadFile(*romPath)
	if err != nil {
		glog.Fatalf("reading %s: %v", *romPath, err)
	}
	cartridge, err := nes.NewCartridge(data)
	if err != nil {
		glog.Fatalf("parsing %s: %v", *romPath, err)
	}
	glog.Infof("loaded %s: %s", *romPath, cartridge)

	sys := nes.NewSystem(cartridge)
	sys.Reset()

	switch {
	case *debug:
		runDebugger(sys)
	case *headless:
		runHeadless(sys)
	default:
		ui.Start(sys, *width, *height)
	}
}

func runDebugger(sys *nes.System) {
	dbg := nes.NewDebugger(sys)
	in := bufio.NewReader(os.Stdin)
	for {
		if err := dbg.RunCommand(in); err != nil {
			glog.Infof("debugger exiting: %v", err)
			return
		}
	}
}

func runHeadless(sys *nes.System) {
	for n := 0; *maxFrames == 0 || n < *maxFrames; n++ {
		sys.RunFrame()
	}
}
