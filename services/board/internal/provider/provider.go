// services/board/internal/provider/provider.go
package provider

import "boardcode-go/types"

// Selected is the board implementation compiled into this binary. Exactly
// one board_* build tag sets it from an init in its selection file (see
// board_*.go in this package); with no board tag it stays nil and the
// dispatcher reports unsupported at Init.
var Selected types.Board

// disableTouch is flipped by the board_no_touch build tag. It rides into
// every board through options() so touch reports unsupported even on
// touch-capable hardware, for builds where another driver owns the bus.
var disableTouch bool
