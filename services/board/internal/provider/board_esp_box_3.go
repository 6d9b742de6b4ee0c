//go:build tinygo && board_esp_box_3

package provider

import (
	"machine"

	"boardcode-go/errcode"
	"boardcode-go/services/board/internal/boards"
	"boardcode-go/types"

	"tinygo.org/x/drivers/ili9341"
	"tinygo.org/x/drivers/touch"
)

// ESP-Box-3 wiring.
const (
	boxLCDSCK  = machine.Pin(7)
	boxLCDMOSI = machine.Pin(6)
	boxLCDCS   = machine.Pin(5)
	boxLCDDC   = machine.Pin(4)
	boxLCDRST  = machine.Pin(48)
	boxLCDBL   = machine.Pin(47)
)

func init() {
	Selected = boards.NewESPBox3(&espBox3Vendor{}, options())
}

type espBox3Vendor struct {
	bl pinBacklight
}

func (v *espBox3Vendor) NewPanel(maxTransferSz int) (types.Panel, types.PanelIO, error) {
	spi := machine.SPI2
	if err := spi.Configure(machine.SPIConfig{
		Frequency: 40_000_000,
		SCK:       boxLCDSCK,
		SDO:       boxLCDMOSI,
	}); err != nil {
		return nil, nil, err
	}
	drv := ili9341.NewSPI(spi, boxLCDDC, boxLCDCS, boxLCDRST)
	drv.Configure(ili9341.Config{Width: 320, Height: 240})
	return &spiPanel{drv: drv}, &spiPanelIO{bus: spi, dc: boxLCDDC, cs: boxLCDCS}, nil
}

func (v *espBox3Vendor) Backlight() boards.Backlight {
	v.bl = pinBacklight{pin: boxLCDBL}
	return &v.bl
}

// TODO: wire the GT911 controller once a driver lands in
// tinygo.org/x/drivers; none exists as of v0.33.
func (v *espBox3Vendor) NewTouch() (touch.Pointer, error) {
	return nil, &errcode.E{C: errcode.Unsupported, Op: "provider.touch", Msg: "no gt911 driver"}
}

func (v *espBox3Vendor) Close() error { return nil }
