package boards

import "boardcode-go/types"

// NewM5AtomS3 builds the M5 Atom S3 board: a 128x128 GC9107 panel that
// powers up dark, so the backlight PWM is armed during Init. No touch.
func NewM5AtomS3(v Vendor, opts Options) types.Board {
	return New(Profile{
		Name:            "M5 Atom S3",
		Width:           128,
		Height:          128,
		Format:          types.PixelFormatRGB565,
		PreArmBacklight: true,
		EnableOnInit:    true,
	}, v, opts)
}
