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

	if cfg.Geometry.Segments != 128 {
		t.Errorf("expected 128 segments, got %d", cfg.Geometry.Segments)
	}
	if cfg.Water.BigWavesElevation != 0.2 {
		t.Errorf("expected elevation 0.2, got %f", cfg.Water.BigWavesElevation)
	}
	if cfg.Water.BigWavesFrequency != [2]float64{4.0, 1.6} {
		t.Errorf("unexpected frequency %v", cfg.Water.BigWavesFrequency)
	}
	if cfg.Water.DepthColor != "#186691" || cfg.Water.SurfaceColor != "#8bd8ff" {
		t.Errorf("unexpected colors %s %s", cfg.Water.DepthColor, cfg.Water.SurfaceColor)
	}
	if cfg.Panel.Width != 340 {
		t.Errorf("expected panel width 340, got %d", cfg.Panel.Width)
	}
}

func TestDerivedValues(t *testing.T) {
	cfg := Defaults()

	if cfg.Derived.Aspect != float32(1280)/float32(720) {
		t.Errorf("unexpected aspect %f", cfg.Derived.Aspect)
	}
	if cfg.Derived.FOV32 != 75 {
		t.Errorf("expected fov 75, got %f", cfg.Derived.FOV32)
	}
}

func TestLoadOverridesOnlyPresentFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("water:\n  big_wave_speed: 2.5\nscreen:\n  width: 800\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading override: %v", err)
	}

	if cfg.Water.BigWaveSpeed != 2.5 {
		t.Errorf("expected overridden speed 2.5, got %f", cfg.Water.BigWaveSpeed)
	}
	if cfg.Screen.Width != 800 {
		t.Errorf("expected overridden width 800, got %d", cfg.Screen.Width)
	}
	// Untouched fields keep defaults
	if cfg.Screen.Height != 720 {
		t.Errorf("expected default height 720, got %d", cfg.Screen.Height)
	}
	if cfg.Water.ColorMultiplier != 5.0 {
		t.Errorf("expected default multiplier 5, got %f", cfg.Water.ColorMultiplier)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero segments", "geometry:\n  segments: 0\n"},
		{"negative screen", "screen:\n  width: -1\n"},
		{"bad clip planes", "camera:\n  near: 5\n  far: 1\n"},
		{"damping out of range", "controls:\n  damping_factor: 1.5\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg := Defaults()
	cfg.Water.BigWaveSpeed = 1.25

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("writing snapshot: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("reloading snapshot: %v", err)
	}
	if loaded.Water.BigWaveSpeed != 1.25 {
		t.Errorf("expected 1.25 after reload, got %f", loaded.Water.BigWaveSpeed)
	}
}

func TestCfgPanicsBeforeInit(t *testing.T) {
	saved := global
	global = nil
	defer func() {
		global = saved
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Cfg()
}
