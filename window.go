package imapp

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/gg"
)

// Window driver errors.
var (
	// ErrNoDriverAvailable is returned when no window driver is registered
	// or none reports itself available. Import a driver package to fix:
	//
	//	import _ "github.com/gogpu/imapp/driver/gogpu"
	ErrNoDriverAvailable = errors.New("imapp: no window driver available")

	// ErrWindowClosed is returned when operations are attempted on a
	// window that has been closed.
	ErrWindowClosed = errors.New("imapp: window is closed")

	// ErrIconUnsupported is returned by App.SetIcon when the active window
	// driver has no icon capability.
	ErrIconUnsupported = errors.New("imapp: window driver does not support icons")
)

// WindowConfig carries the parameters a driver needs to open a window.
type WindowConfig struct {
	// Width and Height are the initial window dimensions in pixels.
	Width, Height int

	// Title is the window (application) name.
	Title string

	// VSync requests vertical-sync frame pacing from the display driver.
	VSync bool

	// Flags are the IO configuration flags in effect at open time.
	Flags ConfigFlags
}

// FrameFunc renders one frame onto the supplied drawing context. The
// driver sizes the context to the current framebuffer and presents it
// after the function returns.
type FrameFunc func(dc *gg.Context)

// Window is the windowing/input boundary. A driver's window owns the
// native surface and the platform event queue.
//
// A Window is not safe for concurrent use; Run blocks the calling thread
// until the window closes.
type Window interface {
	// Run enters the frame loop: poll platform events, invoke fn once with
	// a framebuffer-sized drawing context, present, repeat. It returns
	// when the user closes the window, the platform signals shutdown, or
	// RequestClose is called.
	Run(fn FrameFunc) error

	// RequestClose asks the loop to exit after the current frame.
	RequestClose()

	// Close destroys the native window and its graphics context.
	// Close is idempotent.
	Close() error
}

// IconSetter is an optional capability of windows that can display an
// application icon. The pixel data is 8-bit RGBA, row-major.
type IconSetter interface {
	SetIcon(width, height int, rgba []byte) error
}

// TextureBackendProvider is an optional capability of windows whose
// graphics context can host Image textures. App installs the provided
// backend as the process-wide texture backend while the window is open.
type TextureBackendProvider interface {
	TextureBackend() TextureBackend
}

// WindowDriver opens windows for a particular windowing stack.
// Drivers register themselves via RegisterDriver, usually from an init
// function, and are selected by name or by priority.
type WindowDriver interface {
	// Name returns the driver identifier (e.g., "gogpu").
	Name() string

	// Open creates a window with the given configuration.
	Open(cfg WindowConfig) (Window, error)
}

// driverEntry represents a registered window driver.
type driverEntry struct {
	Name      string
	Priority  int
	Driver    WindowDriver
	Available func() bool
}

// driverRegistry is the global window driver registry.
var driverRegistry = struct {
	mu      sync.RWMutex
	entries map[string]*driverEntry
}{
	entries: make(map[string]*driverEntry),
}

// RegisterDriver adds a window driver to the global registry.
//
// Priority determines automatic selection order (higher = preferred);
// hardware windowing stacks register at 100, headless or fallback stacks
// lower. If available is nil the driver is assumed always available.
// Registering a name that already exists replaces the previous entry.
func RegisterDriver(name string, priority int, d WindowDriver, available func() bool) {
	if available == nil {
		available = func() bool { return true }
	}
	driverRegistry.mu.Lock()
	driverRegistry.entries[name] = &driverEntry{
		Name:      name,
		Priority:  priority,
		Driver:    d,
		Available: available,
	}
	driverRegistry.mu.Unlock()
}

// UnregisterDriver removes a window driver from the global registry.
func UnregisterDriver(name string) {
	driverRegistry.mu.Lock()
	delete(driverRegistry.entries, name)
	driverRegistry.mu.Unlock()
}

// Drivers returns the names of all available drivers sorted by priority
// (highest first).
func Drivers() []string {
	driverRegistry.mu.RLock()
	defer driverRegistry.mu.RUnlock()

	names := make([]string, 0, len(driverRegistry.entries))
	for name, e := range driverRegistry.entries {
		if e.Available() {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		pi := driverRegistry.entries[names[i]].Priority
		pj := driverRegistry.entries[names[j]].Priority
		if pi != pj {
			return pi > pj
		}
		return names[i] < names[j]
	})
	return names
}

// openWindow opens a window with a specific driver, or with the best
// available driver when name is empty.
func openWindow(name string, cfg WindowConfig) (Window, error) {
	if name != "" {
		driverRegistry.mu.RLock()
		e, ok := driverRegistry.entries[name]
		driverRegistry.mu.RUnlock()
		if !ok {
			return nil, fmt.Errorf("%w: driver %q not registered", ErrNoDriverAvailable, name)
		}
		if !e.Available() {
			return nil, fmt.Errorf("%w: driver %q not available", ErrNoDriverAvailable, name)
		}
		return e.Driver.Open(cfg)
	}

	names := Drivers()
	if len(names) == 0 {
		return nil, ErrNoDriverAvailable
	}

	var lastErr error
	for _, n := range names {
		driverRegistry.mu.RLock()
		e := driverRegistry.entries[n]
		driverRegistry.mu.RUnlock()
		if e == nil {
			continue
		}
		w, err := e.Driver.Open(cfg)
		if err == nil {
			Logger().Info("window opened", "driver", n, "width", cfg.Width, "height", cfg.Height)
			return w, nil
		}
		lastErr = err
	}
	if lastErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoDriverAvailable, lastErr)
	}
	return nil, ErrNoDriverAvailable
}
