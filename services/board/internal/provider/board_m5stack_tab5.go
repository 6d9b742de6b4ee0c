//go:build board_m5stack_tab5

package provider

import "boardcode-go/services/board/internal/boards"

// TODO: real bring-up needs a MIPI-DSI host driver; tinygo.org/x/drivers
// has none as of v0.33.
func init() {
	Selected = boards.NewM5StackTab5(stubVendor{missing: "no mipi-dsi host driver"}, options())
}
