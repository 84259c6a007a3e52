package imapp

// ConfigFlags is a bitmask of IO configuration toggles. Each flag is
// independently switchable via the Enable/Disable helpers on App.
type ConfigFlags uint32

const (
	// FlagNavKeyboard enables keyboard navigation. On by default.
	FlagNavKeyboard ConfigFlags = 1 << iota

	// FlagNavGamepad enables gamepad navigation. Off by default.
	FlagNavGamepad

	// FlagDockingEnable enables window docking. Off by default.
	FlagDockingEnable

	// FlagViewportsEnable enables multi-window viewports. Off by default.
	// When set, Run squares off window corners and forces an opaque
	// background so detached platform windows match the main one.
	FlagViewportsEnable
)

// IO holds the application's input/output configuration state. It is
// exposed mutably through App.IO so the embedding program can adjust
// flags after construction but before Run.
type IO struct {
	Flags ConfigFlags
}

// Has reports whether all the given flags are set.
func (io *IO) Has(f ConfigFlags) bool {
	return io.Flags&f == f
}

// Enable sets the given flags.
func (io *IO) Enable(f ConfigFlags) {
	io.Flags |= f
}

// Disable clears the given flags.
func (io *IO) Disable(f ConfigFlags) {
	io.Flags &^= f
}
