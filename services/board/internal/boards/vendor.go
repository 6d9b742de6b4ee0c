// services/board/internal/boards/vendor.go
package boards

import (
	"boardcode-go/errcode"
	"boardcode-go/types"

	"tinygo.org/x/drivers/touch"
)

// Backlight controls a panel backlight.
type Backlight interface {
	Init() error
	On() error
	Off() error
}

// Vendor is the board-support surface a board implementation drives. It
// mirrors the vendor BSP: panel bring-up, backlight control and the touch
// controller. Real implementations live behind build tags in the provider
// package; tests use fakes.
type Vendor interface {
	// NewPanel brings up the display panel. maxTransferSz is the largest
	// single transfer the caller will issue.
	NewPanel(maxTransferSz int) (types.Panel, types.PanelIO, error)

	// Backlight returns the backlight control, or nil when the board has
	// none the CPU can reach.
	Backlight() Backlight

	// NewTouch brings up the touch controller.
	NewTouch() (touch.Pointer, error)

	// Close releases whatever NewPanel/NewTouch acquired, best-effort.
	Close() error
}

// NopVendor serves boards with no reachable display hardware at all
// (virtual displays). Panel and touch bring-up report unsupported.
type NopVendor struct{}

func (NopVendor) NewPanel(int) (types.Panel, types.PanelIO, error) {
	return nil, nil, errcode.Unsupported
}
func (NopVendor) Backlight() Backlight             { return nil }
func (NopVendor) NewTouch() (touch.Pointer, error) { return nil, errcode.Unsupported }
func (NopVendor) Close() error                     { return nil }
