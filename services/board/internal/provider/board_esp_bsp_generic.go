//go:build board_esp_bsp_generic

package provider

import "boardcode-go/services/board/internal/boards"

// Panel description for the generic devkit-plus-display setup, fixed at
// build time. Only the zero value (virtual 240x320 fallback, no panel) is
// wired up: NopVendor refuses panel bring-up, so configuring a geometry
// here also needs a vendor for the attached panel, built from the SPI
// glue in hw.go the way board_esp_box_3.go does.
var genericParams = boards.GenericParams{}

func init() {
	Selected = boards.NewGeneric(genericParams, boards.NopVendor{}, options())
}
