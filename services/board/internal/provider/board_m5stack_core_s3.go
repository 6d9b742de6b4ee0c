//go:build tinygo && board_m5stack_core_s3

package provider

import (
	"machine"

	"boardcode-go/services/board/internal/boards"
	"boardcode-go/types"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ft6336"
	"tinygo.org/x/drivers/ili9341"
	"tinygo.org/x/drivers/touch"
)

// M5Stack CoreS3 wiring. The backlight rail (DLDO1) sits behind the
// AXP2101 PMU on the internal I2C bus, shared with the touch controller.
const (
	coreS3LCDSCK  = machine.Pin(36)
	coreS3LCDMOSI = machine.Pin(37)
	coreS3LCDCS   = machine.Pin(3)
	coreS3LCDDC   = machine.Pin(35)

	coreS3SDA = machine.Pin(12)
	coreS3SCL = machine.Pin(11)

	axp2101Addr = 0x34
)

func init() {
	Selected = boards.NewM5StackCoreS3(&coreS3Vendor{}, options())
}

type coreS3Vendor struct {
	i2c drivers.I2C
	bl  axpBacklight
}

func (v *coreS3Vendor) bus() (drivers.I2C, error) {
	if v.i2c != nil {
		return v.i2c, nil
	}
	i2c := machine.I2C0
	if err := i2c.Configure(machine.I2CConfig{
		Frequency: 400_000,
		SDA:       coreS3SDA,
		SCL:       coreS3SCL,
	}); err != nil {
		return nil, err
	}
	v.i2c = i2c
	return v.i2c, nil
}

func (v *coreS3Vendor) NewPanel(maxTransferSz int) (types.Panel, types.PanelIO, error) {
	spi := machine.SPI2
	if err := spi.Configure(machine.SPIConfig{
		Frequency: 40_000_000,
		SCK:       coreS3LCDSCK,
		SDO:       coreS3LCDMOSI,
	}); err != nil {
		return nil, nil, err
	}
	// The panel reset line is behind the PMU; the driver gets no RST pin.
	drv := ili9341.NewSPI(spi, coreS3LCDDC, coreS3LCDCS, machine.NoPin)
	drv.Configure(ili9341.Config{Width: 320, Height: 240})
	return &spiPanel{drv: drv}, &spiPanelIO{bus: spi, dc: coreS3LCDDC, cs: coreS3LCDCS}, nil
}

func (v *coreS3Vendor) Backlight() boards.Backlight {
	bus, err := v.bus()
	if err != nil {
		return nil
	}
	v.bl = axpBacklight{bus: bus}
	return &v.bl
}

func (v *coreS3Vendor) NewTouch() (touch.Pointer, error) {
	bus, err := v.bus()
	if err != nil {
		return nil, err
	}
	tp := ft6336.New(bus, machine.NoPin)
	tp.Configure(ft6336.Config{})
	tp.SetPeriodActive(0x00)
	return tp, nil
}

func (v *coreS3Vendor) Close() error { return nil }

// axpBacklight gates the display rail through AXP2101 DLDO1: reg 0x99
// sets the voltage, reg 0x90 bit 7 switches the LDO.
type axpBacklight struct {
	bus drivers.I2C
}

func (b *axpBacklight) write(reg, val byte) error {
	return b.bus.Tx(axp2101Addr, []byte{reg, val}, nil)
}

func (b *axpBacklight) setEnable(on bool) error {
	var ctl [1]byte
	if err := b.bus.Tx(axp2101Addr, []byte{0x90}, ctl[:]); err != nil {
		return err
	}
	if on {
		ctl[0] |= 0x80
	} else {
		ctl[0] &^= 0x80
	}
	return b.write(0x90, ctl[0])
}

func (b *axpBacklight) Init() error { return b.write(0x99, 0x18) } // DLDO1 = 3.0V
func (b *axpBacklight) On() error   { return b.setEnable(true) }
func (b *axpBacklight) Off() error  { return b.setEnable(false) }
