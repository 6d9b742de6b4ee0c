// services/board/dispatcher.go
package board

import (
	"boardcode-go/errcode"
	"boardcode-go/services/board/internal/provider"
	"boardcode-go/types"
	"boardcode-go/x/fmtx"
)

// UnknownBoard is what BoardName reports when no board is compiled in.
const UnknownBoard = "unknown"

// Dispatcher routes the uniform board API to the single implementation
// compiled into this binary. It is a thin pass-through plus lifecycle
// guard rails; all board-specific behaviour lives below it.
//
// Not safe for concurrent use. Callers serialise access, the way the
// graphics stack above already does.
type Dispatcher struct {
	sel    types.Board // compiled-in board, nil when no board tag was given
	active types.Board // non-nil between a successful Init and Deinit
}

// New returns a dispatcher bound to the board selected at build time.
func New() *Dispatcher {
	return &Dispatcher{sel: provider.Selected}
}

// Init brings up the selected board and hands out its display config and
// panel handles. errcode.Unsupported when no board is compiled in,
// errcode.InvalidState when already initialised.
func (d *Dispatcher) Init() (types.DisplayConfig, types.Panel, types.PanelIO, error) {
	if d.sel == nil {
		return types.DisplayConfig{}, nil, nil, errcode.Unsupported
	}
	if d.active != nil {
		return types.DisplayConfig{}, nil, nil, errcode.InvalidState
	}
	cfg, panel, panelIO, err := d.sel.Init()
	if err != nil {
		return types.DisplayConfig{}, nil, nil, err
	}
	d.active = d.sel
	return cfg, panel, panelIO, nil
}

func (d *Dispatcher) BacklightOn() error {
	if d.active == nil {
		return errcode.InvalidState
	}
	return d.active.BacklightOn()
}

func (d *Dispatcher) BacklightOff() error {
	if d.active == nil {
		return errcode.InvalidState
	}
	return d.active.BacklightOff()
}

func (d *Dispatcher) DisplayOnOff(enable bool) error {
	if d.active == nil {
		return errcode.InvalidState
	}
	return d.active.DisplayOnOff(enable)
}

func (d *Dispatcher) TouchInit() error {
	if d.active == nil {
		return errcode.InvalidState
	}
	return d.active.TouchInit()
}

func (d *Dispatcher) TouchRead() (types.TouchSample, error) {
	if d.active == nil {
		return types.TouchSample{}, errcode.InvalidState
	}
	return d.active.TouchRead()
}

// BoardName reports the compiled-in board's name whether or not it has
// been initialised, and UnknownBoard when the binary carries none.
func (d *Dispatcher) BoardName() string {
	if d.sel == nil {
		return UnknownBoard
	}
	return d.sel.Name()
}

// Deinit tears the board down and always leaves the dispatcher ready for
// a fresh Init. Board teardown faults are logged, not propagated: the
// caller can do nothing useful with them and retrying Init is the only
// recovery path anyway.
func (d *Dispatcher) Deinit() error {
	if d.active == nil {
		return errcode.InvalidState
	}
	if err := d.active.Deinit(); err != nil {
		fmtx.Printf("[board] %s deinit: %v\n", d.active.Name(), err)
	}
	d.active = nil
	return nil
}
