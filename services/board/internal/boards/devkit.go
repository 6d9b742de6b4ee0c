package boards

import "boardcode-go/types"

// NewDevKit builds the plain DevKit board: no display, no touch. It
// presents a virtual 240x320 framebuffer so the graphics stack can run,
// hands out nil handles, and treats backlight and display control as
// no-op successes since "nothing to do" is the correct steady state here.
func NewDevKit(opts Options) types.Board {
	return New(Profile{
		Name:      "ESP BSP DevKit",
		Width:     240,
		Height:    320,
		Format:    types.PixelFormatRGB565,
		Backlight: BacklightNone,
		Virtual:   true,
	}, NopVendor{}, opts)
}
