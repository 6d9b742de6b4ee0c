package boards

import "boardcode-go/types"

// GenericParams mirrors the configurable devkit-plus-display setup: any
// ESP devkit wired to a custom display/touch combination. The selection
// file in the provider package fills this at build time.
type GenericParams struct {
	Width     int
	Height    int
	Format    types.PixelFormat // zero value means RGB565
	Touch     bool
	Backlight BacklightMode
}

// NewGeneric builds the configurable board. With no geometry configured it
// falls back to a virtual 240x320 display with nil handles, like a bare
// devkit. Configured panels are switched on during Init and the backlight
// is armed best-effort.
func NewGeneric(p GenericParams, v Vendor, opts Options) types.Board {
	prof := Profile{
		Name:            "ESP BSP Generic",
		Width:           p.Width,
		Height:          p.Height,
		Format:          p.Format,
		HasTouch:        p.Touch,
		Backlight:       p.Backlight,
		EnableOnInit:    true,
		PreArmBacklight: true,
	}
	if prof.Format == 0 {
		prof.Format = types.PixelFormatRGB565
	}
	if prof.Width <= 0 || prof.Height <= 0 {
		prof.Width, prof.Height = 240, 320
		prof.Virtual = true
		prof.HasTouch = false
		prof.Backlight = BacklightNone
		prof.EnableOnInit = false
		prof.PreArmBacklight = false
	}
	return New(prof, v, opts)
}
