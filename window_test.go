package imapp

import (
	"errors"
	"testing"
)

// TestDriversPriorityOrder verifies Drivers sorts by priority, highest
// first, with name as the tiebreak.
func TestDriversPriorityOrder(t *testing.T) {
	for _, name := range []string{"low", "high", "beta", "alpha"} {
		t.Cleanup(func() { UnregisterDriver(name) })
	}
	RegisterDriver("low", 1, &fakeDriver{win: &fakeWindow{}}, nil)
	RegisterDriver("high", 100, &fakeDriver{win: &fakeWindow{}}, nil)
	RegisterDriver("beta", 50, &fakeDriver{win: &fakeWindow{}}, nil)
	RegisterDriver("alpha", 50, &fakeDriver{win: &fakeWindow{}}, nil)

	got := Drivers()
	want := []string{"high", "alpha", "beta", "low"}
	if len(got) != len(want) {
		t.Fatalf("Drivers() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Drivers() = %v, want %v", got, want)
		}
	}
}

// TestDriversSkipsUnavailable verifies unavailable drivers are hidden
// from listing and from automatic selection.
func TestDriversSkipsUnavailable(t *testing.T) {
	win := &fakeWindow{}
	RegisterDriver("present", 1, &fakeDriver{win: win}, nil)
	RegisterDriver("absent", 100, &fakeDriver{win: &fakeWindow{}}, func() bool { return false })
	t.Cleanup(func() {
		UnregisterDriver("present")
		UnregisterDriver("absent")
	})

	got := Drivers()
	if len(got) != 1 || got[0] != "present" {
		t.Fatalf("Drivers() = %v, want [present]", got)
	}

	w, err := openWindow("", WindowConfig{Width: 8, Height: 8})
	if err != nil {
		t.Fatalf("openWindow: %v", err)
	}
	if w != Window(win) {
		t.Error("openWindow did not select the available driver")
	}

	if _, err := openWindow("absent", WindowConfig{}); !errors.Is(err, ErrNoDriverAvailable) {
		t.Errorf("openWindow(absent): err = %v, want ErrNoDriverAvailable", err)
	}
}

// TestOpenWindowFallsThroughFailures verifies automatic selection tries
// the next driver when the preferred one fails to open.
func TestOpenWindowFallsThroughFailures(t *testing.T) {
	win := &fakeWindow{}
	RegisterDriver("broken", 100, &fakeDriver{openErr: errors.New("no adapter")}, nil)
	RegisterDriver("working", 1, &fakeDriver{win: win}, nil)
	t.Cleanup(func() {
		UnregisterDriver("broken")
		UnregisterDriver("working")
	})

	w, err := openWindow("", WindowConfig{Width: 8, Height: 8})
	if err != nil {
		t.Fatalf("openWindow: %v", err)
	}
	if w != Window(win) {
		t.Error("openWindow did not fall through to the working driver")
	}
}

// TestOpenWindowAllFail verifies the last open error is reported under
// ErrNoDriverAvailable when every driver fails.
func TestOpenWindowAllFail(t *testing.T) {
	RegisterDriver("broken", 100, &fakeDriver{openErr: errors.New("no adapter")}, nil)
	t.Cleanup(func() { UnregisterDriver("broken") })

	_, err := openWindow("", WindowConfig{})
	if !errors.Is(err, ErrNoDriverAvailable) {
		t.Fatalf("openWindow: err = %v, want ErrNoDriverAvailable", err)
	}
}

// TestOpenWindowEmptyRegistry verifies the bare-registry error.
func TestOpenWindowEmptyRegistry(t *testing.T) {
	if names := Drivers(); len(names) != 0 {
		t.Skipf("registry not empty: %v", names)
	}
	if _, err := openWindow("", WindowConfig{}); !errors.Is(err, ErrNoDriverAvailable) {
		t.Errorf("openWindow: err = %v, want ErrNoDriverAvailable", err)
	}
}

// TestRegisterReplaces verifies re-registering a name swaps the entry.
func TestRegisterReplaces(t *testing.T) {
	first := &fakeWindow{}
	second := &fakeWindow{}
	RegisterDriver("dup", 10, &fakeDriver{win: first}, nil)
	RegisterDriver("dup", 10, &fakeDriver{win: second}, nil)
	t.Cleanup(func() { UnregisterDriver("dup") })

	w, err := openWindow("dup", WindowConfig{})
	if err != nil {
		t.Fatalf("openWindow: %v", err)
	}
	if w != Window(second) {
		t.Error("openWindow returned the replaced driver's window")
	}
}

// TestWindowConfigPlumbing verifies New passes size, title, vsync and
// flags through to the driver.
func TestWindowConfigPlumbing(t *testing.T) {
	win := &fakeWindow{}
	RegisterDriver("fake", 10, &fakeDriver{win: win}, nil)
	t.Cleanup(func() { UnregisterDriver("fake") })

	cfg := DefaultConfig().
		WithDriver("fake").
		WithSize(640, 480).
		WithTitle("probe").
		WithVSync(false)
	app, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer app.Close()

	if win.cfg.Width != 640 || win.cfg.Height != 480 {
		t.Errorf("size = %dx%d, want 640x480", win.cfg.Width, win.cfg.Height)
	}
	if win.cfg.Title != "probe" {
		t.Errorf("title = %q, want %q", win.cfg.Title, "probe")
	}
	if win.cfg.VSync {
		t.Error("vsync not disabled")
	}
	if win.cfg.Flags&FlagNavKeyboard == 0 {
		t.Error("default flags missing keyboard navigation")
	}
}
