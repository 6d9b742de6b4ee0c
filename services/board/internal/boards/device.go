// services/board/internal/boards/device.go
package boards

import (
	"boardcode-go/errcode"
	"boardcode-go/types"
	"boardcode-go/x/fmtx"

	"tinygo.org/x/drivers/touch"
)

// BacklightMode says how a board family's backlight is wired.
type BacklightMode uint8

const (
	// BacklightVendor: controllable through the vendor BSP.
	BacklightVendor BacklightMode = iota
	// BacklightFixed: hardware-fixed on; control reports unsupported.
	BacklightFixed
	// BacklightNone: no backlight exists; control is a no-op success,
	// the correct steady state for a virtual display.
	BacklightNone
)

// Profile describes one board family: fixed geometry, pixel encoding and
// capability quirks. A Profile plus a Vendor fully determine a Board;
// capability is data here, not a subtype.
type Profile struct {
	Name   string
	Width  int
	Height int
	Format types.PixelFormat

	HasTouch  bool
	Backlight BacklightMode

	// PreArmBacklight initialises the backlight before panel bring-up and
	// turns it on right after, for panels that power up dark.
	PreArmBacklight bool
	// EnableOnInit issues DispOnOff(true) right after panel bring-up.
	EnableOnInit bool
	// PanelAlwaysOn: DispOnOff succeeds without touching the panel.
	// DPI/MIPI-DSI panels cannot be blanked; failing would suggest a
	// real fault where there is none.
	PanelAlwaysOn bool
	// Virtual: no physical panel; Init hands out nil handles.
	Virtual bool

	// MapTouch converts raw controller coordinates to the logical
	// orientation above. nil means identity.
	MapTouch func(x, y int) (int, int)
}

// Options adjusts behaviour fixed at build time.
type Options struct {
	// DisableTouch makes touch report unsupported even on capable boards,
	// for builds where another driver owns the touch bus.
	DisableTouch bool
}

// device runs one board family's lifecycle against its Vendor.
type device struct {
	profile Profile
	vendor  Vendor
	opts    Options

	up      bool
	panel   types.Panel
	panelIO types.PanelIO
	tp      touch.Pointer
}

// New builds a Board from a family profile and its vendor surface.
func New(p Profile, v Vendor, opts Options) types.Board {
	return &device{profile: p, vendor: v, opts: opts}
}

func (d *device) Name() string { return d.profile.Name }

func (d *device) touchEnabled() bool { return d.profile.HasTouch && !d.opts.DisableTouch }

func (d *device) Init() (types.DisplayConfig, types.Panel, types.PanelIO, error) {
	cfg := types.DisplayConfig{
		Width:    d.profile.Width,
		Height:   d.profile.Height,
		Format:   d.profile.Format,
		HasTouch: d.touchEnabled(),
	}
	cfg.MaxTransferSz = cfg.Width * cfg.Height * cfg.Format.BytesPerPixel()

	if d.profile.Virtual {
		fmtx.Printf("[%s] virtual display %dx%d (no physical panel)\n",
			d.profile.Name, cfg.Width, cfg.Height)
		d.up = true
		return cfg, nil, nil, nil
	}

	if d.profile.PreArmBacklight {
		if bl := d.vendor.Backlight(); bl != nil {
			if err := bl.Init(); err != nil {
				return types.DisplayConfig{}, nil, nil,
					errcode.Wrap(d.profile.Name+".backlight_init", err)
			}
		}
	}

	panel, panelIO, err := d.vendor.NewPanel(cfg.MaxTransferSz)
	if err != nil {
		return types.DisplayConfig{}, nil, nil,
			errcode.Wrap(d.profile.Name+".panel_init", err)
	}

	if d.profile.EnableOnInit && panel != nil {
		if err := panel.DispOnOff(true); err != nil {
			// No partially constructed handle may leak out.
			_ = d.vendor.Close()
			return types.DisplayConfig{}, nil, nil,
				errcode.Wrap(d.profile.Name+".display_on", err)
		}
	}

	if d.profile.PreArmBacklight {
		if bl := d.vendor.Backlight(); bl != nil {
			if err := bl.On(); err != nil {
				// Panel is usable even with the backlight stuck.
				fmtx.Printf("[%s] backlight pre-arm failed: %v\n", d.profile.Name, err)
			}
		}
	}

	d.panel, d.panelIO = panel, panelIO
	d.up = true
	fmtx.Printf("[%s] display initialised %dx%d %s\n",
		d.profile.Name, cfg.Width, cfg.Height, cfg.Format.String())
	return cfg, panel, panelIO, nil
}

func (d *device) BacklightOn() error  { return d.backlight(true) }
func (d *device) BacklightOff() error { return d.backlight(false) }

func (d *device) backlight(on bool) error {
	if !d.up {
		return errcode.InvalidState
	}
	switch d.profile.Backlight {
	case BacklightFixed:
		return errcode.Unsupported
	case BacklightNone:
		return nil
	}
	bl := d.vendor.Backlight()
	if bl == nil {
		return errcode.Unsupported
	}
	if on {
		return errcode.Wrap(d.profile.Name+".backlight_on", bl.On())
	}
	return errcode.Wrap(d.profile.Name+".backlight_off", bl.Off())
}

func (d *device) DisplayOnOff(enable bool) error {
	if !d.up {
		return errcode.InvalidState
	}
	if d.profile.PanelAlwaysOn || d.profile.Virtual {
		return nil
	}
	if d.panel == nil {
		return errcode.InvalidState
	}
	return errcode.Wrap(d.profile.Name+".display_on_off", d.panel.DispOnOff(enable))
}

func (d *device) TouchInit() error {
	if !d.up {
		return errcode.InvalidState
	}
	if !d.touchEnabled() {
		return errcode.Unsupported
	}
	tp, err := d.vendor.NewTouch()
	if err != nil {
		return errcode.Wrap(d.profile.Name+".touch_init", err)
	}
	d.tp = tp
	return nil
}

func (d *device) TouchRead() (types.TouchSample, error) {
	if !d.up {
		return types.TouchSample{}, errcode.InvalidState
	}
	if !d.touchEnabled() {
		return types.TouchSample{}, errcode.Unsupported
	}
	if d.tp == nil {
		return types.TouchSample{}, errcode.InvalidState
	}
	p := d.tp.ReadTouchPoint()
	if p.Z <= 0 {
		// Released samples carry zeroed coordinates by definition.
		return types.TouchSample{}, nil
	}
	x, y := p.X, p.Y
	if m := d.profile.MapTouch; m != nil {
		x, y = m(x, y)
	}
	return types.TouchSample{Pressed: true, X: x, Y: y}, nil
}

func (d *device) Deinit() error {
	if !d.up {
		return errcode.InvalidState
	}
	d.panel, d.panelIO, d.tp = nil, nil, nil
	d.up = false
	// Vendor teardown is best-effort; the loans above are already gone.
	return errcode.Wrap(d.profile.Name+".deinit", d.vendor.Close())
}
