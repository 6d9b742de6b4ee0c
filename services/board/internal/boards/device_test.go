package boards

import (
	"errors"
	"testing"

	"boardcode-go/errcode"
	"boardcode-go/types"

	"tinygo.org/x/drivers/touch"
)

// ---- fakes -----------------------------------------------------------------

type fakePanel struct {
	log      *[]string
	onOffErr error
	states   []bool
}

func (p *fakePanel) DrawBitmap(x, y, width, height int, pix []byte) error { return nil }

func (p *fakePanel) DispOnOff(on bool) error {
	*p.log = append(*p.log, "panel.onoff")
	if p.onOffErr != nil {
		return p.onOffErr
	}
	p.states = append(p.states, on)
	return nil
}

type fakePanelIO struct{}

func (fakePanelIO) Tx(cmd byte, params []byte) error   { return nil }
func (fakePanelIO) TxColor(cmd byte, pix []byte) error { return nil }

type fakeBacklight struct {
	log            *[]string
	initErr, onErr error
}

func (b *fakeBacklight) Init() error { *b.log = append(*b.log, "bl.init"); return b.initErr }
func (b *fakeBacklight) On() error   { *b.log = append(*b.log, "bl.on"); return b.onErr }
func (b *fakeBacklight) Off() error  { *b.log = append(*b.log, "bl.off"); return nil }

type fakePointer struct{ p touch.Point }

func (f *fakePointer) ReadTouchPoint() touch.Point { return f.p }

type fakeVendor struct {
	log []string

	panelErr error
	touchErr error
	noBl     bool

	panel   fakePanel
	bl      fakeBacklight
	pointer fakePointer

	gotMaxSz int
	closes   int
}

func (v *fakeVendor) NewPanel(maxTransferSz int) (types.Panel, types.PanelIO, error) {
	v.log = append(v.log, "panel.new")
	v.gotMaxSz = maxTransferSz
	if v.panelErr != nil {
		return nil, nil, v.panelErr
	}
	v.panel.log = &v.log
	return &v.panel, fakePanelIO{}, nil
}

func (v *fakeVendor) Backlight() Backlight {
	if v.noBl {
		return nil
	}
	v.bl.log = &v.log
	return &v.bl
}

func (v *fakeVendor) NewTouch() (touch.Pointer, error) {
	if v.touchErr != nil {
		return nil, v.touchErr
	}
	return &v.pointer, nil
}

func (v *fakeVendor) Close() error { v.closes++; return nil }

// ---- constructor inventory ---------------------------------------------------

func TestBoardDescriptors(t *testing.T) {
	cases := []struct {
		make   func(v Vendor) types.Board
		name   string
		w, h   int
		format types.PixelFormat
		touch  bool
		maxSz  int
	}{
		{func(v Vendor) types.Board { return NewESPBox3(v, Options{}) },
			"ESP-Box-3", 320, 240, types.PixelFormatRGB565, true, 153600},
		{func(v Vendor) types.Board { return NewM5StackCoreS3(v, Options{}) },
			"M5Stack Core S3", 320, 240, types.PixelFormatRGB565, true, 153600},
		{func(v Vendor) types.Board { return NewM5StackTab5(v, Options{}) },
			"M5Stack Tab5", 1280, 720, types.PixelFormatRGB565, true, 1843200},
		{func(v Vendor) types.Board { return NewM5AtomS3(v, Options{}) },
			"M5 Atom S3", 128, 128, types.PixelFormatRGB565, false, 32768},
		{func(v Vendor) types.Board { return NewESP32P4FunctionEV(ESP32P4Params{}, v, Options{}) },
			"ESP32-P4 Function EV Board", 1280, 800, types.PixelFormatRGB565, true, 2048000},
		{func(v Vendor) types.Board { return NewESP32P4FunctionEV(ESP32P4Params{EK79007: true}, v, Options{}) },
			"ESP32-P4 Function EV Board", 1024, 600, types.PixelFormatRGB565, true, 1228800},
		{func(v Vendor) types.Board { return NewESP32P4FunctionEV(ESP32P4Params{RGB888: true}, v, Options{}) },
			"ESP32-P4 Function EV Board", 1280, 800, types.PixelFormatRGB888, true, 3072000},
		{func(v Vendor) types.Board { return NewESP32S3LCDEv(ESP32S3LCDEvParams{}, v, Options{}) },
			"ESP32-S3-LCD-EV-Board", 480, 480, types.PixelFormatRGB565, true, 460800},
		{func(v Vendor) types.Board {
			return NewESP32S3LCDEv(ESP32S3LCDEvParams{Width: 800, Height: 480}, v, Options{})
		},
			"ESP32-S3-LCD-EV-Board", 800, 480, types.PixelFormatRGB565, true, 768000},
	}

	for _, c := range cases {
		b := c.make(&fakeVendor{})
		if b.Name() != c.name {
			t.Fatalf("Name = %q, want %q", b.Name(), c.name)
		}
		cfg, _, _, err := b.Init()
		if err != nil {
			t.Fatalf("%s Init: %v", c.name, err)
		}
		if cfg.Width != c.w || cfg.Height != c.h || cfg.Format != c.format {
			t.Fatalf("%s config = %+v", c.name, cfg)
		}
		if cfg.HasTouch != c.touch {
			t.Fatalf("%s HasTouch = %v", c.name, cfg.HasTouch)
		}
		if cfg.MaxTransferSz != c.maxSz {
			t.Fatalf("%s MaxTransferSz = %d, want %d", c.name, cfg.MaxTransferSz, c.maxSz)
		}
	}
}

// The config is pure profile data: a deinit/reinit cycle reproduces it
// exactly.
func TestDescriptorStableAcrossReinit(t *testing.T) {
	b := NewESPBox3(&fakeVendor{}, Options{})
	first, _, _, err := b.Init()
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := b.Deinit(); err != nil {
		t.Fatalf("Deinit: %v", err)
	}
	second, _, _, err := b.Init()
	if err != nil {
		t.Fatalf("reinit: %v", err)
	}
	if first != second {
		t.Fatalf("config drifted across reinit: %+v vs %+v", first, second)
	}
}

// ---- lifecycle ----------------------------------------------------------------

func TestOpsBeforeInit(t *testing.T) {
	b := NewESPBox3(&fakeVendor{}, Options{})

	if err := b.BacklightOn(); !errors.Is(err, errcode.InvalidState) {
		t.Fatalf("BacklightOn = %v", err)
	}
	if err := b.DisplayOnOff(true); !errors.Is(err, errcode.InvalidState) {
		t.Fatalf("DisplayOnOff = %v", err)
	}
	if err := b.TouchInit(); !errors.Is(err, errcode.InvalidState) {
		t.Fatalf("TouchInit = %v", err)
	}
	if _, err := b.TouchRead(); !errors.Is(err, errcode.InvalidState) {
		t.Fatalf("TouchRead = %v", err)
	}
	if err := b.Deinit(); !errors.Is(err, errcode.InvalidState) {
		t.Fatalf("Deinit = %v", err)
	}
}

func TestInitPassesTransferSizeToVendor(t *testing.T) {
	v := &fakeVendor{}
	b := NewESPBox3(v, Options{})
	if _, _, _, err := b.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if v.gotMaxSz != 153600 {
		t.Fatalf("vendor saw maxTransferSz %d", v.gotMaxSz)
	}
}

func TestInitFailureHandsOutNothing(t *testing.T) {
	v := &fakeVendor{panelErr: errors.New("spi timeout")}
	b := NewESPBox3(v, Options{})

	_, panel, panelIO, err := b.Init()
	if errcode.Of(err) != errcode.Unavailable {
		t.Fatalf("Init error code = %v", errcode.Of(err))
	}
	if panel != nil || panelIO != nil {
		t.Fatal("failed Init leaked handles")
	}
	// Still uninitialised.
	if err := b.BacklightOn(); !errors.Is(err, errcode.InvalidState) {
		t.Fatalf("BacklightOn after failed Init = %v", err)
	}
}

func TestDeinitReleasesVendor(t *testing.T) {
	v := &fakeVendor{}
	b := NewESPBox3(v, Options{})
	if _, _, _, err := b.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := b.Deinit(); err != nil {
		t.Fatalf("Deinit: %v", err)
	}
	if v.closes != 1 {
		t.Fatalf("vendor Close called %d times", v.closes)
	}
	if err := b.Deinit(); !errors.Is(err, errcode.InvalidState) {
		t.Fatalf("double Deinit = %v", err)
	}
}

// ---- bring-up ordering -----------------------------------------------------------

func TestPreArmBacklightOrdering(t *testing.T) {
	v := &fakeVendor{}
	b := NewM5AtomS3(v, Options{})
	if _, _, _, err := b.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	want := []string{"bl.init", "panel.new", "panel.onoff", "bl.on"}
	if len(v.log) != len(want) {
		t.Fatalf("bring-up log %v", v.log)
	}
	for i := range want {
		if v.log[i] != want[i] {
			t.Fatalf("bring-up log %v, want %v", v.log, want)
		}
	}
}

func TestPreArmBacklightInitFailureIsFatal(t *testing.T) {
	v := &fakeVendor{}
	v.bl.initErr = errors.New("pwm busy")
	b := NewM5AtomS3(v, Options{})
	if _, _, _, err := b.Init(); errcode.Of(err) != errcode.Unavailable {
		t.Fatalf("Init = %v", err)
	}
}

func TestBacklightOnFailureAfterPanelIsTolerated(t *testing.T) {
	v := &fakeVendor{}
	v.bl.onErr = errors.New("rail sag")
	b := NewM5AtomS3(v, Options{})
	if _, _, _, err := b.Init(); err != nil {
		t.Fatalf("panel is usable without backlight, Init = %v", err)
	}
}

func TestEnableOnInitFailureReleasesVendor(t *testing.T) {
	v := &fakeVendor{}
	v.panel.onOffErr = errors.New("panel nak")
	b := NewM5AtomS3(v, Options{})

	_, panel, _, err := b.Init()
	if errcode.Of(err) != errcode.Unavailable {
		t.Fatalf("Init = %v", err)
	}
	if panel != nil {
		t.Fatal("failed Init leaked a panel handle")
	}
	if v.closes != 1 {
		t.Fatalf("vendor Close called %d times", v.closes)
	}
}

// ---- backlight modes --------------------------------------------------------

func TestFixedBacklightIsUnsupported(t *testing.T) {
	b := NewESP32S3LCDEv(ESP32S3LCDEvParams{}, &fakeVendor{}, Options{})
	if _, _, _, err := b.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := b.BacklightOn(); !errors.Is(err, errcode.Unsupported) {
		t.Fatalf("BacklightOn = %v", err)
	}
	if err := b.BacklightOff(); !errors.Is(err, errcode.Unsupported) {
		t.Fatalf("BacklightOff = %v", err)
	}
}

func TestMissingVendorBacklightIsUnsupported(t *testing.T) {
	b := NewESPBox3(&fakeVendor{noBl: true}, Options{})
	if _, _, _, err := b.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := b.BacklightOn(); !errors.Is(err, errcode.Unsupported) {
		t.Fatalf("BacklightOn = %v", err)
	}
}

// ---- always-on and virtual panels ---------------------------------------------

func TestAlwaysOnPanelAcceptsDisplayOnOff(t *testing.T) {
	v := &fakeVendor{}
	b := NewESP32P4FunctionEV(ESP32P4Params{}, v, Options{})
	if _, _, _, err := b.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	before := len(v.panel.states)
	if err := b.DisplayOnOff(false); err != nil {
		t.Fatalf("DisplayOnOff(false) = %v", err)
	}
	if err := b.DisplayOnOff(true); err != nil {
		t.Fatalf("DisplayOnOff(true) = %v", err)
	}
	if len(v.panel.states) != before {
		t.Fatal("always-on panel must not be toggled")
	}
}

func TestDevKitIsVirtual(t *testing.T) {
	b := NewDevKit(Options{})

	cfg, panel, panelIO, err := b.Init()
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if panel != nil || panelIO != nil {
		t.Fatal("virtual board handed out handles")
	}
	if cfg.Width != 240 || cfg.Height != 320 || cfg.HasTouch {
		t.Fatalf("config = %+v", cfg)
	}
	// Nothing to do is success here.
	if err := b.BacklightOn(); err != nil {
		t.Fatalf("BacklightOn = %v", err)
	}
	if err := b.BacklightOff(); err != nil {
		t.Fatalf("BacklightOff = %v", err)
	}
	if err := b.DisplayOnOff(false); err != nil {
		t.Fatalf("DisplayOnOff = %v", err)
	}
	if err := b.TouchInit(); !errors.Is(err, errcode.Unsupported) {
		t.Fatalf("TouchInit = %v", err)
	}
	if err := b.Deinit(); err != nil {
		t.Fatalf("Deinit: %v", err)
	}
}

func TestGenericFallsBackToVirtual(t *testing.T) {
	b := NewGeneric(GenericParams{}, NopVendor{}, Options{})
	cfg, panel, _, err := b.Init()
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if panel != nil {
		t.Fatal("unconfigured generic board handed out a panel")
	}
	if cfg.Width != 240 || cfg.Height != 320 || cfg.HasTouch {
		t.Fatalf("config = %+v", cfg)
	}
	if err := b.BacklightOn(); err != nil {
		t.Fatalf("BacklightOn = %v", err)
	}
}

// A configured geometry needs a vendor that can actually bring a panel
// up; with NopVendor the board fails Init cleanly instead of handing out
// a dead panel.
func TestGenericConfiguredNeedsRealVendor(t *testing.T) {
	b := NewGeneric(GenericParams{Width: 480, Height: 320}, NopVendor{}, Options{})
	_, panel, panelIO, err := b.Init()
	if errcode.Of(err) != errcode.Unavailable {
		t.Fatalf("Init error code = %v", errcode.Of(err))
	}
	if panel != nil || panelIO != nil {
		t.Fatal("failed Init leaked handles")
	}
}

func TestGenericConfigured(t *testing.T) {
	v := &fakeVendor{}
	b := NewGeneric(GenericParams{Width: 480, Height: 320, Touch: true}, v, Options{})
	cfg, panel, _, err := b.Init()
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if panel == nil {
		t.Fatal("configured generic board must hand out a panel")
	}
	if cfg.Width != 480 || cfg.Height != 320 || cfg.Format != types.PixelFormatRGB565 || !cfg.HasTouch {
		t.Fatalf("config = %+v", cfg)
	}
	// Panel switched on during bring-up.
	if len(v.panel.states) != 1 || !v.panel.states[0] {
		t.Fatalf("panel states = %v", v.panel.states)
	}
}

// ---- touch --------------------------------------------------------------------

func TestTouchLifecycle(t *testing.T) {
	v := &fakeVendor{}
	b := NewESPBox3(v, Options{})
	if _, _, _, err := b.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	// Read before TouchInit.
	if _, err := b.TouchRead(); !errors.Is(err, errcode.InvalidState) {
		t.Fatalf("TouchRead before TouchInit = %v", err)
	}
	if err := b.TouchInit(); err != nil {
		t.Fatalf("TouchInit: %v", err)
	}

	// No contact yet: Ok with a released sample, never invalid_state.
	s, err := b.TouchRead()
	if err != nil {
		t.Fatalf("TouchRead after TouchInit: %v", err)
	}
	if s.Pressed {
		t.Fatalf("idle sample = %+v", s)
	}

	v.pointer.p = touch.Point{X: 15, Y: 73, Z: 1}
	s, err = b.TouchRead()
	if err != nil {
		t.Fatalf("TouchRead: %v", err)
	}
	if !s.Pressed || s.X != 15 || s.Y != 73 {
		t.Fatalf("sample = %+v", s)
	}

	// Released samples come back zeroed, whatever the controller latched.
	v.pointer.p = touch.Point{X: 99, Y: 99, Z: 0}
	s, err = b.TouchRead()
	if err != nil {
		t.Fatalf("TouchRead: %v", err)
	}
	if s.Pressed || s.X != 0 || s.Y != 0 {
		t.Fatalf("released sample = %+v", s)
	}
}

func TestTouchUnsupportedOnTouchlessBoard(t *testing.T) {
	b := NewM5AtomS3(&fakeVendor{}, Options{})
	if _, _, _, err := b.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := b.TouchInit(); !errors.Is(err, errcode.Unsupported) {
		t.Fatalf("TouchInit = %v", err)
	}
	if _, err := b.TouchRead(); !errors.Is(err, errcode.Unsupported) {
		t.Fatalf("TouchRead = %v", err)
	}
}

func TestDisableTouchOption(t *testing.T) {
	b := NewESPBox3(&fakeVendor{}, Options{DisableTouch: true})
	cfg, _, _, err := b.Init()
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if cfg.HasTouch {
		t.Fatal("disabled touch still advertised")
	}
	if err := b.TouchInit(); !errors.Is(err, errcode.Unsupported) {
		t.Fatalf("TouchInit = %v", err)
	}
}

func TestTouchInitFailure(t *testing.T) {
	v := &fakeVendor{touchErr: errors.New("i2c nak")}
	b := NewESPBox3(v, Options{})
	if _, _, _, err := b.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := b.TouchInit(); errcode.Of(err) != errcode.Unavailable {
		t.Fatalf("TouchInit = %v", err)
	}
	// Controller never came up, so reads stay gated.
	if _, err := b.TouchRead(); !errors.Is(err, errcode.InvalidState) {
		t.Fatalf("TouchRead = %v", err)
	}
}

func TestTab5RotatesTouchIntoLandscape(t *testing.T) {
	v := &fakeVendor{}
	b := NewM5StackTab5(v, Options{})
	if _, _, _, err := b.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := b.TouchInit(); err != nil {
		t.Fatalf("TouchInit: %v", err)
	}

	cases := []struct {
		rawX, rawY int
		x, y       int
	}{
		{0, 0, 0, 719},        // portrait origin lands bottom-left
		{719, 1279, 1279, 0},  // opposite corner
		{100, 640, 640, 619},  // interior point
		{5000, 5000, 1279, 0}, // controller glitch clamps to the frame
		{-20, -20, 0, 719},
	}
	for _, c := range cases {
		v.pointer.p = touch.Point{X: c.rawX, Y: c.rawY, Z: 1}
		s, err := b.TouchRead()
		if err != nil {
			t.Fatalf("TouchRead(%d,%d): %v", c.rawX, c.rawY, err)
		}
		if s.X != c.x || s.Y != c.y {
			t.Fatalf("map(%d,%d) = (%d,%d), want (%d,%d)", c.rawX, c.rawY, s.X, s.Y, c.x, c.y)
		}
	}
}
