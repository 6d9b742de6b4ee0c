//go:build board_esp32_p4_function_ev

package provider

import "boardcode-go/services/board/internal/boards"

// Sub-panel selection for the ESP32-P4 Function EV board, fixed at build
// time; edit here to match the fitted LCD. RGB888 applies to the default
// ILI9881C panel only.
var esp32P4Params = boards.ESP32P4Params{
	EK79007: false,
	RGB888:  false,
}

// TODO: real bring-up needs a MIPI-DSI host driver; tinygo.org/x/drivers
// has none as of v0.33.
func init() {
	Selected = boards.NewESP32P4FunctionEV(esp32P4Params,
		stubVendor{missing: "no mipi-dsi host driver"}, options())
}
