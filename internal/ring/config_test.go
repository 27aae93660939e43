package ring

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigValidation(t *testing.T) {
	if err := DefaultConfig(4).Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	bad := []Config{
		{},
		func() Config { c := DefaultConfig(4); c.Count = 0; return c }(),
		func() Config { c := DefaultConfig(4); c.NormalRadius = 0; return c }(),
		func() Config { c := DefaultConfig(4); c.FadeRadiusDelta = 0; return c }(),
		func() Config { c := DefaultConfig(4); c.FadeAngleDelta = -10; return c }(),
		func() Config { c := DefaultConfig(4); c.FadeDuration = -1; return c }(),
		func() Config { c := DefaultConfig(4); c.RotationDuration = 0; return c }(),
		func() Config { c := DefaultConfig(4); c.RotationThreshold = 0; return c }(),
	}
	for i, cfg := range bad {
		if err := cfg.Validate(); err == nil {
			t.Errorf("config %d should fail validation: %+v", i, cfg)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ring.json")
	data := `{
		"count": 6,
		"normalRadius": 0.4,
		"fadeRadiusDelta": 0.1,
		"fadeAngleDelta": 30,
		"fadeDuration": 0.3,
		"rotationDuration": 0.25,
		"rotationThreshold": 0.08
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Count != 6 {
		t.Errorf("expected count 6, got %d", cfg.Count)
	}
	if !floatEquals(cfg.RotationThreshold, 0.08) {
		t.Errorf("expected threshold 0.08, got %v", cfg.RotationThreshold)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ring.json")
	if err := os.WriteFile(path, []byte(`{"count": 0}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for zero-count config")
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
