package boards

import (
	"boardcode-go/types"
	"boardcode-go/x/mathx"
)

// NewM5StackTab5 builds the M5Stack Tab5 board: a 720x1280 MIPI-DSI panel
// presented in landscape (1280x720) with a GT911 touch controller.
func NewM5StackTab5(v Vendor, opts Options) types.Board {
	return New(Profile{
		Name:     "M5Stack Tab5",
		Width:    1280,
		Height:   720,
		Format:   types.PixelFormatRGB565,
		HasTouch: true,
		MapTouch: tab5MapTouch,
	}, v, opts)
}

// tab5MapTouch rotates the controller's native portrait coordinates
// (720x1280) 90 degrees clockwise into the landscape frame the display
// config declares.
func tab5MapTouch(x, y int) (int, int) {
	return mathx.Clamp(y, 0, 1279), mathx.Clamp(719-x, 0, 719)
}
