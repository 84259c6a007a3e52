package imapp

import "github.com/gogpu/gg"

// Style holds the application's visual settings. It is exposed mutably
// through App.Style; changes take effect on the next frame.
type Style struct {
	// ClearColor is the frame background color.
	ClearColor gg.RGBA

	// WindowRounding is the corner radius hint for decorated windows.
	// Run forces it to zero when viewports are enabled.
	WindowRounding float64
}

// DefaultStyle returns the default application style: the familiar
// slate-blue clear color on square-cornered windows.
func DefaultStyle() Style {
	return Style{
		ClearColor:     gg.RGBA{R: 0.45, G: 0.55, B: 0.60, A: 1.0},
		WindowRounding: 0,
	}
}
