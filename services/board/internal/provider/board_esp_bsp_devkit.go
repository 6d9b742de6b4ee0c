//go:build board_esp_bsp_devkit

package provider

import "boardcode-go/services/board/internal/boards"

func init() {
	Selected = boards.NewDevKit(options())
}
