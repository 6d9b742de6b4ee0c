package types

// ------------------------
// Display capability data
// ------------------------

// PixelFormat is the pixel encoding a panel expects in transfer buffers.
type PixelFormat uint8

const (
	PixelFormatRGB565 PixelFormat = iota + 1 // 16bpp, rrrrrggggggbbbbb
	PixelFormatRGB888                        // 24bpp, packed
)

// BytesPerPixel returns the transfer-buffer cost of one pixel.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case PixelFormatRGB888:
		return 3
	default:
		return 2
	}
}

func (f PixelFormat) String() string {
	switch f {
	case PixelFormatRGB565:
		return "rgb565"
	case PixelFormatRGB888:
		return "rgb888"
	default:
		return "unknown"
	}
}

// DisplayConfig describes what the selected board's display can do. It is
// filled fresh on every successful Init and is immutable for the lifetime
// of that session.
type DisplayConfig struct {
	Width  int // pixels, > 0
	Height int // pixels, > 0
	Format PixelFormat

	// MaxTransferSz is the largest single transfer the panel accepts,
	// Width*Height*BytesPerPixel. Callers size their buffers from it.
	MaxTransferSz int

	// HasTouch reports whether a touch controller is present and enabled.
	HasTouch bool
}
