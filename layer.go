package imapp

import "github.com/gogpu/gg"

// Layer is a pluggable per-frame render unit owned by an App.
//
// Implementations embed BaseLayer, which supplies no-op hook defaults and
// the back-reference to the owning App:
//
//	type sceneLayer struct {
//	    imapp.BaseLayer
//	}
//
//	func (l *sceneLayer) Render(dc *gg.Context) {
//	    dc.SetRGB(1, 0, 0)
//	    dc.DrawCircle(100, 100, 50)
//	    dc.Fill()
//	}
//
// Hooks run on the render loop's thread. A hook that blocks stalls the
// whole frame pipeline; a panic inside a hook propagates out of Run.
type Layer interface {
	// OnAttach is called once, when the layer is pushed onto an App.
	// It runs before the App back-reference is bound, so App() still
	// returns nil inside OnAttach.
	OnAttach()

	// Render is called once per frame, in push order, with the frame's
	// drawing context.
	Render(dc *gg.Context)

	// OnKill is called on every layer, in push order, when the App is
	// closed. The window and GPU context are still alive during OnKill,
	// so layers may release GPU resources here.
	OnKill()

	// bindApp is unexported so that layer implementations must embed
	// BaseLayer; the App binds itself at push time.
	bindApp(a *App)
}

// BaseLayer provides default no-op lifecycle hooks and the back-reference
// to the owning App. Embed it in every Layer implementation.
type BaseLayer struct {
	app *App
}

// OnAttach is a no-op default.
func (b *BaseLayer) OnAttach() {}

// Render is a no-op default.
func (b *BaseLayer) Render(*gg.Context) {}

// OnKill is a no-op default.
func (b *BaseLayer) OnKill() {}

// App returns the App that owns this layer. It is nil until the layer has
// been pushed (and nil for the whole of OnAttach). The reference is
// non-owning; it must not be used to extend the App's lifetime.
func (b *BaseLayer) App() *App {
	return b.app
}

func (b *BaseLayer) bindApp(a *App) {
	b.app = a
}
