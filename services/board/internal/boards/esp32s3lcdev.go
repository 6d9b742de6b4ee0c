package boards

import "boardcode-go/types"

// ESP32S3LCDEvParams selects the LCD sub-board fitted to the
// ESP32-S3-LCD-EV board: 480x480 (sub-board 2) or 800x480 (sub-board 3).
type ESP32S3LCDEvParams struct {
	Width  int
	Height int
}

// NewESP32S3LCDEv builds the ESP32-S3-LCD-EV board. Its RGB panel
// backlight is hardware-fixed on, so backlight control reports
// unsupported rather than a driver fault.
func NewESP32S3LCDEv(p ESP32S3LCDEvParams, v Vendor, opts Options) types.Board {
	w, h := p.Width, p.Height
	if w <= 0 || h <= 0 {
		w, h = 480, 480
	}
	return New(Profile{
		Name:      "ESP32-S3-LCD-EV-Board",
		Width:     w,
		Height:    h,
		Format:    types.PixelFormatRGB565,
		HasTouch:  true,
		Backlight: BacklightFixed,
	}, v, opts)
}
