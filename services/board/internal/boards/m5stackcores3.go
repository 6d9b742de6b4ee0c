package boards

import "boardcode-go/types"

// NewM5StackCoreS3 builds the M5Stack CoreS3 board: 320x240 ILI9342C over
// SPI, FT6336 capacitive touch, backlight behind the AXP2101 PMU. The PMU
// rail must be armed before panel bring-up or the screen stays dark.
func NewM5StackCoreS3(v Vendor, opts Options) types.Board {
	return New(Profile{
		Name:            "M5Stack Core S3",
		Width:           320,
		Height:          240,
		Format:          types.PixelFormatRGB565,
		HasTouch:        true,
		PreArmBacklight: true,
		EnableOnInit:    true,
	}, v, opts)
}
