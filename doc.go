// Package imapp provides a small application shell for the GoGPU ecosystem.
//
// # Overview
//
// imapp wraps window creation, the per-frame event/render loop, and an
// immediate-mode drawing context (github.com/gogpu/gg) into a minimal
// "create window, push render layers, run" API. It also provides an Image
// pixel-buffer type with file decode/encode and GPU texture upload helpers.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/imapp"
//	    _ "github.com/gogpu/imapp/driver/gogpu" // register the window driver
//	)
//
//	type hello struct{ imapp.BaseLayer }
//
//	func (hello) Render(dc *gg.Context) {
//	    dc.SetRGB(1, 0, 0)
//	    dc.DrawCircle(256, 256, 100)
//	    dc.Fill()
//	}
//
//	func main() {
//	    app, err := imapp.New(imapp.DefaultConfig().WithTitle("hello"))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer app.Close()
//
//	    app.PushLayer(&hello{})
//	    if err := app.Run(); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Architecture
//
// The shell is organized into:
//   - App: owns the native window and an ordered stack of Layers
//   - Layer: a per-frame render unit with attach/render/kill hooks
//   - Image/Pixel: an RGBA pixel buffer with codec I/O and texture upload
//   - Window drivers: pluggable windowing backends (driver/gogpu by default)
//
// Each frame the window driver polls platform events, hands the shell a
// framebuffer-sized *gg.Context, the App clears it and invokes every layer's
// Render hook in push order, and the driver presents the composed frame.
//
// # Concurrency
//
// The render loop is single-threaded and cooperative. Layer hooks run to
// completion one after another; a hook that blocks stalls the whole frame.
// Image and texture operations must be issued from the thread that owns the
// graphics context.
package imapp

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
