package provider

import (
	"boardcode-go/errcode"
	"boardcode-go/services/board/internal/boards"
	"boardcode-go/types"

	"tinygo.org/x/drivers/touch"
)

// stubVendor stands in for board families whose panel link has no TinyGo
// driver yet (MIPI-DSI hosts, the parallel RGB peripheral). Bring-up
// reports unsupported so Init fails cleanly instead of pretending.
type stubVendor struct {
	missing string
}

func (v stubVendor) NewPanel(int) (types.Panel, types.PanelIO, error) {
	return nil, nil, &errcode.E{C: errcode.Unsupported, Op: "provider.panel", Msg: v.missing}
}

func (v stubVendor) Backlight() boards.Backlight { return nil }

func (v stubVendor) NewTouch() (touch.Pointer, error) {
	return nil, &errcode.E{C: errcode.Unsupported, Op: "provider.touch", Msg: v.missing}
}

func (v stubVendor) Close() error { return nil }
