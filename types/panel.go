package types

// ------------------------
// Opaque hardware handles
// ------------------------
//
// Panel and PanelIO are the handles a board hands out from Init. They are
// loans: owned by the active board implementation, valid from a successful
// Init until the next Deinit, never to be retained across sessions. A nil
// handle means the board has no physical resource of that kind (e.g. a
// virtual display) and must not be used.

// Panel mirrors the vendor panel operation set.
type Panel interface {
	// DrawBitmap pushes pix (encoded per DisplayConfig.Format) to the
	// window with top-left corner (x, y) and the given width and height.
	DrawBitmap(x, y, width, height int, pix []byte) error
	// DispOnOff turns panel output on or off.
	DispOnOff(on bool) error
}

// PanelIO mirrors the panel's control channel.
type PanelIO interface {
	// Tx issues a command with optional parameter bytes.
	Tx(cmd byte, params []byte) error
	// TxColor issues a command followed by pixel data.
	TxColor(cmd byte, pix []byte) error
}
