//go:build tinygo

package provider

import (
	"machine"

	"boardcode-go/errcode"

	"tinygo.org/x/drivers"
)

// panelDriver is the slice of a TinyGo display driver the panel handle
// needs. ili9341 and st7789 both satisfy it.
type panelDriver interface {
	DrawRGBBitmap8(x, y int16, data []byte, w, h int16) error
}

// spiPanel adapts a TinyGo display driver to the panel loan handle.
type spiPanel struct {
	drv panelDriver
}

func (p *spiPanel) DrawBitmap(x, y, width, height int, pix []byte) error {
	return p.drv.DrawRGBBitmap8(int16(x), int16(y), pix, int16(width), int16(height))
}

func (p *spiPanel) DispOnOff(on bool) error {
	// Drivers that can blank the panel expose sleep mode; on drivers
	// without it the operation is honestly unsupported.
	if s, ok := p.drv.(interface{ Sleep(sleepEnabled bool) error }); ok {
		return s.Sleep(!on)
	}
	return errcode.Unsupported
}

// spiPanelIO issues raw command/parameter transactions on the panel bus,
// bypassing the driver. The DC pin selects command (low) or data (high).
type spiPanelIO struct {
	bus    drivers.SPI
	dc, cs machine.Pin
}

func (io *spiPanelIO) Tx(cmd byte, params []byte) error {
	io.cs.Low()
	defer io.cs.High()
	io.dc.Low()
	if err := io.bus.Tx([]byte{cmd}, nil); err != nil {
		return err
	}
	if len(params) == 0 {
		return nil
	}
	io.dc.High()
	return io.bus.Tx(params, nil)
}

func (io *spiPanelIO) TxColor(cmd byte, pix []byte) error {
	return io.Tx(cmd, pix)
}

// pinBacklight drives a backlight wired straight to a GPIO.
type pinBacklight struct {
	pin       machine.Pin
	activeLow bool
}

func (b *pinBacklight) Init() error {
	b.pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return b.Off()
}

func (b *pinBacklight) On() error {
	b.pin.Set(!b.activeLow)
	return nil
}

func (b *pinBacklight) Off() error {
	b.pin.Set(b.activeLow)
	return nil
}
