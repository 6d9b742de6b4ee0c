// cmd/boardcli/main.go
//
// Interactive console over the board dispatcher. Useful on the bench for
// poking one capability at a time instead of running the fixed boardtest
// sequence.
package main

import (
	"bufio"
	"os"
	"strconv"
	"time"

	"github.com/google/shlex"

	"boardcode-go/services/board"
	"boardcode-go/types"
	"boardcode-go/x/fmtx"
)

const touchPollPeriod = 50 * time.Millisecond

func main() {
	d := board.New()
	fmtx.Printf("boardcli: %s (type 'help')\n", d.BoardName())

	in := bufio.NewScanner(os.Stdin)
	for {
		fmtx.Printf("> ")
		if !in.Scan() {
			return
		}
		args, err := shlex.Split(in.Text())
		if err != nil {
			fmtx.Printf("parse: %v\n", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		if args[0] == "quit" || args[0] == "exit" {
			return
		}
		run(d, args)
	}
}

func run(d *board.Dispatcher, args []string) {
	switch args[0] {
	case "help":
		fmtx.Printf("%s", helpText)

	case "name":
		fmtx.Printf("%s\n", d.BoardName())

	case "init":
		cfg, panel, _, err := d.Init()
		if err != nil {
			fmtx.Printf("init: %v\n", err)
			return
		}
		printConfig(cfg, panel == nil)

	case "deinit":
		report(d.Deinit())

	case "bl":
		if len(args) != 2 {
			fmtx.Printf("usage: bl on|off\n")
			return
		}
		if args[1] == "on" {
			report(d.BacklightOn())
		} else {
			report(d.BacklightOff())
		}

	case "disp":
		if len(args) != 2 {
			fmtx.Printf("usage: disp on|off\n")
			return
		}
		report(d.DisplayOnOff(args[1] == "on"))

	case "touch":
		touchCmd(d, args[1:])

	default:
		fmtx.Printf("unknown command %q (try 'help')\n", args[0])
	}
}

func touchCmd(d *board.Dispatcher, args []string) {
	if len(args) == 0 {
		fmtx.Printf("usage: touch init|read|poll <seconds>\n")
		return
	}
	switch args[0] {
	case "init":
		report(d.TouchInit())

	case "read":
		s, err := d.TouchRead()
		if err != nil {
			fmtx.Printf("err: %v\n", err)
			return
		}
		printSample(s)

	case "poll":
		secs := 5
		if len(args) > 1 {
			if n, err := strconv.Atoi(args[1]); err == nil && n > 0 {
				secs = n
			}
		}
		deadline := time.Now().Add(time.Duration(secs) * time.Second)
		wasPressed := false
		for time.Now().Before(deadline) {
			s, err := d.TouchRead()
			if err != nil {
				fmtx.Printf("err: %v\n", err)
				return
			}
			if s.Pressed != wasPressed {
				printSample(s)
				wasPressed = s.Pressed
			}
			time.Sleep(touchPollPeriod)
		}

	default:
		fmtx.Printf("usage: touch init|read|poll <seconds>\n")
	}
}

func report(err error) {
	if err != nil {
		fmtx.Printf("err: %v\n", err)
		return
	}
	fmtx.Printf("ok\n")
}

func printConfig(cfg types.DisplayConfig, virtual bool) {
	fmtx.Printf("%dx%d %s, max transfer %d, touch=%t\n",
		cfg.Width, cfg.Height, cfg.Format.String(), cfg.MaxTransferSz, cfg.HasTouch)
	if virtual {
		fmtx.Printf("virtual display (no panel handle)\n")
	}
}

func printSample(s types.TouchSample) {
	if s.Pressed {
		fmtx.Printf("down (%d,%d)\n", s.X, s.Y)
		return
	}
	fmtx.Printf("up\n")
}

const helpText = `commands:
  name                  compiled-in board name
  init                  bring the board up, print the display config
  deinit                tear the board down
  bl on|off             backlight control
  disp on|off           display output control
  touch init            bring up the touch controller
  touch read            one touch sample
  touch poll <seconds>  report press/release transitions
  quit
`
