// cmd/boardtest/main.go
package main

import (
	"errors"
	"time"

	"boardcode-go/errcode"
	"boardcode-go/services/board"
	"boardcode-go/x/fmtx"
)

// ---------- Configuration ----------

const (
	bootDelay = 2 * time.Second

	// Sequencing timing
	backlightDwell = 1 * time.Second
	displayDwell   = 1 * time.Second

	// Touch polling
	touchPollPeriod = 50 * time.Millisecond
	touchPollFor    = 10 * time.Second
)

// step prints an operation's outcome without aborting the run: half the
// point of this harness is seeing which capabilities a board refuses.
func step(name string, err error) {
	switch {
	case err == nil:
		fmtx.Printf("  %s: ok\n", name)
	case errors.Is(err, errcode.Unsupported):
		fmtx.Printf("  %s: unsupported\n", name)
	default:
		fmtx.Printf("  %s: FAILED: %v\n", name, err)
	}
}

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(bootDelay)

	d := board.New()
	fmtx.Printf("board: %s\n", d.BoardName())

	cfg, panel, _, err := d.Init()
	if err != nil {
		fmtx.Printf("init FAILED: %v\n", err)
		return
	}
	fmtx.Printf("display: %dx%d %s, max transfer %d, touch=%t\n",
		cfg.Width, cfg.Height, cfg.Format.String(), cfg.MaxTransferSz, cfg.HasTouch)
	if panel == nil {
		fmtx.Printf("virtual display (no panel handle)\n")
	}

	// Backlight cycle.
	step("backlight off", d.BacklightOff())
	time.Sleep(backlightDwell)
	step("backlight on", d.BacklightOn())

	// Display cycle.
	step("display off", d.DisplayOnOff(false))
	time.Sleep(displayDwell)
	step("display on", d.DisplayOnOff(true))

	// Touch poll.
	if err := d.TouchInit(); err != nil {
		step("touch init", err)
	} else {
		fmtx.Printf("polling touch for %s...\n", touchPollFor.String())
		deadline := time.Now().Add(touchPollFor)
		wasPressed := false
		for time.Now().Before(deadline) {
			s, err := d.TouchRead()
			if err != nil {
				fmtx.Printf("  touch read FAILED: %v\n", err)
				break
			}
			if s.Pressed && !wasPressed {
				fmtx.Printf("  touch down at (%d,%d)\n", s.X, s.Y)
			}
			wasPressed = s.Pressed
			time.Sleep(touchPollPeriod)
		}
	}

	step("deinit", d.Deinit())
	fmtx.Printf("done\n")
}
