package boards

import "boardcode-go/types"

// ESP32P4Params picks the LCD sub-option fitted to the ESP32-P4 Function
// EV board.
type ESP32P4Params struct {
	// EK79007 selects the 1024x600 sub-panel; default is the 1280x800
	// ILI9881C.
	EK79007 bool
	// RGB888 switches the DSI link to 24bpp (ILI9881C builds only).
	RGB888 bool
}

// NewESP32P4FunctionEV builds the ESP32-P4 Function EV board. Its DPI
// panels are always on, so display on/off succeeds without touching the
// panel, and the backlight is armed best-effort during Init.
func NewESP32P4FunctionEV(p ESP32P4Params, v Vendor, opts Options) types.Board {
	prof := Profile{
		Name:            "ESP32-P4 Function EV Board",
		Width:           1280,
		Height:          800,
		Format:          types.PixelFormatRGB565,
		HasTouch:        true,
		PreArmBacklight: true,
		PanelAlwaysOn:   true,
	}
	if p.EK79007 {
		prof.Width, prof.Height = 1024, 600
	} else if p.RGB888 {
		prof.Format = types.PixelFormatRGB888
	}
	return New(prof, v, opts)
}
