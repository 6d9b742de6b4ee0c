//go:build board_no_touch

package provider

func init() {
	disableTouch = true
}
