package imapp

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Width != 1280 || cfg.Height != 720 {
		t.Errorf("default size = %dx%d, want 1280x720", cfg.Width, cfg.Height)
	}
	if cfg.Title != "imapp" {
		t.Errorf("default title = %q", cfg.Title)
	}
	if !cfg.VSync {
		t.Error("vsync not on by default")
	}
	if cfg.Driver != "" {
		t.Errorf("default driver = %q, want automatic selection", cfg.Driver)
	}
}

func TestConfigBuilderDoesNotMutateReceiver(t *testing.T) {
	base := DefaultConfig()
	derived := base.WithSize(100, 200).WithTitle("changed").WithVSync(false).WithDriver("x")

	if base.Width != 1280 || base.Title != "imapp" || !base.VSync || base.Driver != "" {
		t.Errorf("base config mutated: %+v", base)
	}
	if derived.Width != 100 || derived.Height != 200 || derived.Title != "changed" ||
		derived.VSync || derived.Driver != "x" {
		t.Errorf("derived config wrong: %+v", derived)
	}
}
