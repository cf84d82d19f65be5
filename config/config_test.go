package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	if cfg.Screen.Width != 800 || cfg.Screen.Height != 600 {
		t.Errorf("expected 800x600 screen, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.World.NumWorms != 12 {
		t.Errorf("expected 12 worms, got %d", cfg.World.NumWorms)
	}
	if cfg.Worm.Segments != 20 {
		t.Errorf("expected 20 segments, got %d", cfg.Worm.Segments)
	}
	if cfg.Worm.Radius != 6.0 {
		t.Errorf("expected radius 6.0, got %v", cfg.Worm.Radius)
	}
	if cfg.Render.Title != "hello worms :P" {
		t.Errorf("unexpected title %q", cfg.Render.Title)
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	userYAML := []byte("world:\n  num_worms: 3\n")
	if err := os.WriteFile(path, userYAML, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading user config: %v", err)
	}

	// Overridden field
	if cfg.World.NumWorms != 3 {
		t.Errorf("expected override num_worms=3, got %d", cfg.World.NumWorms)
	}
	// Untouched fields keep defaults
	if cfg.Screen.Width != 800 {
		t.Errorf("expected default width 800, got %d", cfg.Screen.Width)
	}
	if cfg.World.WrapMargin != 20.0 {
		t.Errorf("expected default wrap_margin 20.0, got %v", cfg.World.WrapMargin)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestDerivedValues(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Derived.ScreenW32 != 800 || cfg.Derived.ScreenH32 != 600 {
		t.Errorf("expected derived 800x600, got %vx%v", cfg.Derived.ScreenW32, cfg.Derived.ScreenH32)
	}
	// 5 seconds at 60 fps
	if cfg.Derived.TicksPerWindow != 300 {
		t.Errorf("expected 300 ticks per window, got %d", cfg.Derived.TicksPerWindow)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("writing yaml: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("reloading written yaml: %v", err)
	}
	if back.World.NumWorms != cfg.World.NumWorms || back.Worm.Radius != cfg.Worm.Radius {
		t.Error("round-tripped config does not match original")
	}
}
