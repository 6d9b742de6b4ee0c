//go:build tinygo && board_m5_atom_s3

package provider

import (
	"machine"

	"boardcode-go/errcode"
	"boardcode-go/services/board/internal/boards"
	"boardcode-go/types"

	"tinygo.org/x/drivers/st7789"
	"tinygo.org/x/drivers/touch"
)

// M5 Atom S3 wiring. The 128x128 GC9107 speaks the ST7789 command set.
const (
	atomS3LCDSCK  = machine.Pin(17)
	atomS3LCDMOSI = machine.Pin(21)
	atomS3LCDCS   = machine.Pin(15)
	atomS3LCDDC   = machine.Pin(33)
	atomS3LCDRST  = machine.Pin(34)
	atomS3LCDBL   = machine.Pin(16)
)

func init() {
	Selected = boards.NewM5AtomS3(&atomS3Vendor{}, options())
}

type atomS3Vendor struct {
	drv st7789.Device
	bl  pinBacklight
}

func (v *atomS3Vendor) NewPanel(maxTransferSz int) (types.Panel, types.PanelIO, error) {
	spi := machine.SPI2
	if err := spi.Configure(machine.SPIConfig{
		Frequency: 40_000_000,
		SCK:       atomS3LCDSCK,
		SDO:       atomS3LCDMOSI,
	}); err != nil {
		return nil, nil, err
	}
	v.drv = st7789.New(spi, atomS3LCDRST, atomS3LCDDC, atomS3LCDCS, machine.NoPin)
	v.drv.Configure(st7789.Config{Width: 128, Height: 128})
	return &spiPanel{drv: &v.drv}, &spiPanelIO{bus: spi, dc: atomS3LCDDC, cs: atomS3LCDCS}, nil
}

func (v *atomS3Vendor) Backlight() boards.Backlight {
	v.bl = pinBacklight{pin: atomS3LCDBL}
	return &v.bl
}

func (v *atomS3Vendor) NewTouch() (touch.Pointer, error) {
	return nil, errcode.Unsupported
}

func (v *atomS3Vendor) Close() error { return nil }
