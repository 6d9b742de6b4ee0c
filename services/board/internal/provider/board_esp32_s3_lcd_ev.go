//go:build board_esp32_s3_lcd_ev

package provider

import "boardcode-go/services/board/internal/boards"

// Sub-board selection for the ESP32-S3-LCD-EV board: 480x480 (sub-board 2)
// or 800x480 (sub-board 3). Edit here.
var esp32S3LCDEvParams = boards.ESP32S3LCDEvParams{
	Width:  480,
	Height: 480,
}

// TODO: real bring-up needs a parallel RGB peripheral driver;
// tinygo.org/x/drivers has none as of v0.33.
func init() {
	Selected = boards.NewESP32S3LCDEv(esp32S3LCDEvParams,
		stubVendor{missing: "no rgb peripheral driver"}, options())
}
