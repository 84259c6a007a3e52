package imapp

// Config holds the application window configuration. Build one with
// DefaultConfig and the With* methods:
//
//	cfg := imapp.DefaultConfig().
//	    WithTitle("plotter").
//	    WithSize(1280, 720)
type Config struct {
	// Width and Height are the initial window dimensions in pixels.
	Width, Height int

	// Title is the window name.
	Title string

	// VSync requests vertical-sync frame pacing (on by default).
	VSync bool

	// Driver selects a window driver by name. Empty means the best
	// available registered driver.
	Driver string
}

// DefaultConfig returns the default application configuration:
// a 1280x720 vsynced window titled "imapp".
func DefaultConfig() Config {
	return Config{
		Width:  1280,
		Height: 720,
		Title:  "imapp",
		VSync:  true,
	}
}

// WithSize sets the initial window dimensions.
func (c Config) WithSize(width, height int) Config {
	c.Width = width
	c.Height = height
	return c
}

// WithTitle sets the window title.
func (c Config) WithTitle(title string) Config {
	c.Title = title
	return c
}

// WithVSync toggles vertical-sync frame pacing.
func (c Config) WithVSync(enabled bool) Config {
	c.VSync = enabled
	return c
}

// WithDriver selects a window driver by name instead of automatic
// priority-based selection.
func (c Config) WithDriver(name string) Config {
	c.Driver = name
	return c
}
