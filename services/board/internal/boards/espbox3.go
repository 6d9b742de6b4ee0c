package boards

import "boardcode-go/types"

// NewESPBox3 builds the ESP-Box-3 board: 320x240 ILI9342C over SPI with a
// GT911 capacitive touch controller and a controllable backlight.
func NewESPBox3(v Vendor, opts Options) types.Board {
	return New(Profile{
		Name:     "ESP-Box-3",
		Width:    320,
		Height:   240,
		Format:   types.PixelFormatRGB565,
		HasTouch: true,
	}, v, opts)
}
