package imapp

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
)

// App errors.
var (
	// ErrAppClosed is returned by Run after Close has been called.
	ErrAppClosed = errors.New("imapp: app is closed")

	// ErrAlreadyRunning is returned by Run when the loop is already
	// active on another call.
	ErrAlreadyRunning = errors.New("imapp: app is already running")
)

// App owns the native window, the IO/style state, and an ordered stack of
// render layers, and drives the frame loop.
//
// One App per process: the window's graphics context is process-wide
// state, and the active texture backend follows the open window. The type
// does not enforce single instantiation, but multiple concurrent Apps are
// outside the supported ownership model.
//
// App is not safe for concurrent use. Push all layers, then call Run from
// the same goroutine; defer Close to guarantee teardown.
type App struct {
	cfg    Config
	win    Window
	io     IO
	style  Style
	layers []Layer

	ownsBackend bool
	running     bool
	closed      bool
}

// New builds the application window. Window or context creation failures
// are returned as errors rather than aborting the process; there is
// nothing to recover inside imapp, so embedders typically treat them as
// fatal.
//
// The window driver is chosen per cfg.Driver, or by registration priority
// when unset. At least one driver package must be imported:
//
//	import _ "github.com/gogpu/imapp/driver/gogpu"
func New(cfg Config) (*App, error) {
	a := &App{
		cfg:   cfg,
		io:    IO{Flags: FlagNavKeyboard},
		style: DefaultStyle(),
	}

	win, err := openWindow(cfg.Driver, WindowConfig{
		Width:  cfg.Width,
		Height: cfg.Height,
		Title:  cfg.Title,
		VSync:  cfg.VSync,
		Flags:  a.io.Flags,
	})
	if err != nil {
		return nil, fmt.Errorf("imapp: window creation failed: %w", err)
	}
	a.win = win

	if tp, ok := win.(TextureBackendProvider); ok {
		SetTextureBackend(tp.TextureBackend())
		a.ownsBackend = true
	}

	return a, nil
}

// PushLayer transfers a layer into the application rendering stack,
// appending it after all previously pushed layers. The layer's OnAttach
// hook runs first; the back-reference to the App is bound after OnAttach
// returns, so the layer must not use App() during OnAttach.
//
// All layers must be pushed before Run; pushing while the loop is active
// is out of contract.
func (a *App) PushLayer(l Layer) {
	a.layers = append(a.layers, l)
	l.OnAttach()
	l.bindApp(a)
}

// Layers returns the number of layers on the rendering stack.
func (a *App) Layers() int {
	return len(a.layers)
}

// IO returns the mutable input/output configuration.
func (a *App) IO() *IO {
	return &a.io
}

// Style returns the mutable application style.
func (a *App) Style() *Style {
	return &a.style
}

// EnableDocking enables window docking.
func (a *App) EnableDocking() { a.io.Enable(FlagDockingEnable) }

// DisableDocking disables window docking.
func (a *App) DisableDocking() { a.io.Disable(FlagDockingEnable) }

// EnableViewports enables multi-window viewports.
func (a *App) EnableViewports() { a.io.Enable(FlagViewportsEnable) }

// DisableViewports disables multi-window viewports.
func (a *App) DisableViewports() { a.io.Disable(FlagViewportsEnable) }

// EnableGamepad enables gamepad navigation.
func (a *App) EnableGamepad() { a.io.Enable(FlagNavGamepad) }

// DisableGamepad disables gamepad navigation.
func (a *App) DisableGamepad() { a.io.Disable(FlagNavGamepad) }

// EnableKeyboard enables keyboard navigation. On by default.
func (a *App) EnableKeyboard() { a.io.Enable(FlagNavKeyboard) }

// DisableKeyboard disables keyboard navigation.
func (a *App) DisableKeyboard() { a.io.Disable(FlagNavKeyboard) }

// SetIcon sets the application icon from an image. It returns
// ErrIconUnsupported when the active window driver has no icon
// capability.
func (a *App) SetIcon(img *Image) error {
	is, ok := a.win.(IconSetter)
	if !ok {
		return ErrIconUnsupported
	}
	return is.SetIcon(img.Width(), img.Height(), img.rgba())
}

// RequestClose asks the render loop to exit after the current frame.
func (a *App) RequestClose() {
	if a.win != nil {
		a.win.RequestClose()
	}
}

// Run starts the application loop. All layers must be pushed before
// calling Run.
//
// Each iteration the window driver polls platform events and supplies a
// framebuffer-sized drawing context; the App clears it with the style's
// clear color and invokes every layer's Render hook in push order; the
// driver then composes and presents the frame. Run blocks until the
// window is closed by the user, the platform signals shutdown, or
// RequestClose is called.
//
// No render-hook failure is caught: a panic inside a hook propagates out
// of Run. Frame pacing is delegated to vertical sync when enabled.
func (a *App) Run() error {
	if a.closed {
		return ErrAppClosed
	}
	if a.running {
		return ErrAlreadyRunning
	}
	a.running = true
	defer func() { a.running = false }()

	// With viewports, square corners and an opaque background keep
	// detached platform windows visually identical to the main one.
	// Checked here, not in New, so flags set after construction count.
	if a.io.Has(FlagViewportsEnable) {
		a.style.WindowRounding = 0
		a.style.ClearColor.A = 1
	}

	return a.win.Run(func(dc *gg.Context) {
		dc.ClearWithColor(a.style.ClearColor)
		for _, l := range a.layers {
			l.Render(dc)
		}
	})
}

// Close tears the application down: every layer's OnKill hook runs in
// push order while the window and GPU context are still alive, then the
// texture backend is cleared and the native window is destroyed.
//
// Close is idempotent and should be deferred right after New.
func (a *App) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true

	for _, l := range a.layers {
		l.OnKill()
	}

	if a.ownsBackend {
		SetTextureBackend(nil)
		a.ownsBackend = false
	}

	if a.win != nil {
		if err := a.win.Close(); err != nil {
			return fmt.Errorf("imapp: window close failed: %w", err)
		}
		a.win = nil
	}
	return nil
}
