// Package gogpu provides the default imapp window driver, backed by the
// gogpu/gogpu windowing stack and the gg/ggcanvas presentation path.
//
// Import it for side effects:
//
//	import _ "github.com/gogpu/imapp/driver/gogpu"
//
// The driver registers itself under the name "gogpu" at priority 100 and
// exposes a texture backend bridged to the window's GPU context, so
// imapp.Image.Upload works while a window is open.
package gogpu

import (
	"fmt"
	"sync/atomic"

	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg/gpu" // enable GPU acceleration for gg rendering
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"

	"github.com/gogpu/imapp"
)

// DriverName is the registry name of this driver.
const DriverName = "gogpu"

func init() {
	imapp.RegisterDriver(DriverName, 100, &Driver{}, nil)
}

// Driver opens gogpu-backed windows. It implements imapp.WindowDriver.
type Driver struct{}

// Name returns the driver identifier.
func (*Driver) Name() string { return DriverName }

// Open creates a native window with a GPU surface.
func (*Driver) Open(cfg imapp.WindowConfig) (imapp.Window, error) {
	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(cfg.Title).
		WithSize(cfg.Width, cfg.Height).
		WithContinuousRender(true))
	if app == nil {
		return nil, fmt.Errorf("gogpu: window creation failed")
	}

	return &window{
		app: app,
		tb:  newTextureBackend(),
	}, nil
}

// window wraps a gogpu.App plus the canvas that carries composed frames
// onto its surface. It implements imapp.Window, imapp.TextureBackendProvider.
type window struct {
	app    *gogpu.App
	tb     *textureBackend
	canvas *ggcanvas.Canvas

	closeRequested atomic.Bool
	closed         bool
}

// Run enters the gogpu event/render loop. Each draw callback sizes the
// canvas to the framebuffer, binds the frame's texture creator for Image
// uploads, lets the shell draw, and presents the canvas to the surface.
func (w *window) Run(fn imapp.FrameFunc) error {
	if w.closed {
		return imapp.ErrWindowClosed
	}

	w.app.OnDraw(func(dc *gogpu.Context) {
		if w.closeRequested.Load() {
			w.app.Quit()
			return
		}

		width, height := dc.Width(), dc.Height()
		if width <= 0 || height <= 0 {
			return
		}

		if w.canvas == nil {
			provider := w.app.GPUContextProvider()
			if provider == nil {
				return
			}
			c, err := ggcanvas.New(provider, width, height)
			if err != nil {
				imapp.Logger().Warn("canvas creation failed", "err", err)
				return
			}
			w.canvas = c
			imapp.Logger().Debug("canvas created", "width", width, "height", height)
		}

		if cw, ch := w.canvas.Size(); cw != width || ch != height {
			if err := w.canvas.Resize(width, height); err != nil {
				imapp.Logger().Warn("canvas resize failed", "err", err)
				return
			}
		}

		// Bind the frame's texture creator before the render hooks run,
		// so Image.Upload inside a hook reaches a live GPU context.
		drawer := dc.AsTextureDrawer()
		w.tb.bind(drawer.TextureCreator())

		if err := w.canvas.Draw(func(cc *gg.Context) { fn(cc) }); err != nil {
			imapp.Logger().Warn("frame draw failed", "err", err)
			return
		}
		if err := w.canvas.RenderTo(drawer); err != nil {
			imapp.Logger().Warn("frame present failed", "err", err)
		}
	})

	return w.app.Run()
}

// RequestClose asks the loop to exit after the current frame.
func (w *window) RequestClose() {
	w.closeRequested.Store(true)
}

// Close destroys the canvas and the native window. Idempotent.
func (w *window) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if w.canvas != nil {
		_ = w.canvas.Close()
		w.canvas = nil
	}
	w.app.Quit()
	return nil
}

// TextureBackend exposes the window's texture backend for Image uploads.
func (w *window) TextureBackend() imapp.TextureBackend {
	return w.tb
}
