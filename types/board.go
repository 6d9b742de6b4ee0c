package types

// ------------------------
// Board contract
// ------------------------

// Board is the uniform operation set every board implementation satisfies.
// Exactly one implementation is compiled into any build; the dispatcher in
// services/board selects it and forwards every call.
//
// Operations other than Init and Name report errcode.InvalidState until a
// successful Init, and again after Deinit. Calling Init twice without a
// Deinit in between is a caller error.
type Board interface {
	// Init performs board bring-up and reports the display capabilities.
	// On failure both handles are nil and the config is meaningless.
	Init() (DisplayConfig, Panel, PanelIO, error)

	// BacklightOn and BacklightOff control the panel backlight. Boards
	// whose backlight is hardware-fixed report errcode.Unsupported;
	// boards with no backlight at all (virtual displays) succeed as a
	// no-op since that is their correct steady state.
	BacklightOn() error
	BacklightOff() error

	// DisplayOnOff toggles panel output. Panels that are always on by
	// hardware design (DPI/MIPI-DSI) succeed without changing state.
	DisplayOnOff(enable bool) error

	// TouchInit brings up the touch controller. Boards without touch
	// hardware, or with touch disabled at build time, report
	// errcode.Unsupported.
	TouchInit() error

	// TouchRead samples the controller. errcode.InvalidState before
	// TouchInit. Coordinates are remapped to the DisplayConfig
	// orientation; a released sample is always {false, 0, 0}.
	TouchRead() (TouchSample, error)

	// Name is stable and non-empty, and never fails.
	Name() string

	// Deinit releases everything acquired by Init/TouchInit, best-effort.
	Deinit() error
}
