package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultRegionConfigIsValid(t *testing.T) {
	if err := DefaultRegionConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := parseRegion(GetDefaultYAML("region"))
	if err != nil {
		t.Fatalf("embedded yaml should parse: %v", err)
	}
	if cfg != DefaultRegionConfig() {
		t.Errorf("embedded yaml = %+v, expected %+v", cfg, DefaultRegionConfig())
	}
	if GetDefaultYAML("breakout") != nil {
		t.Error("unknown game should have no embedded yaml")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*RegionConfig)
		valid  bool
	}{
		{"defaults", func(*RegionConfig) {}, true},
		{"single cell step", func(c *RegionConfig) { c.Arena.GridCount = 1 }, true},
		{"odd grid", func(c *RegionConfig) { c.Arena.GridCount = 7 }, true},
		{"zero wall", func(c *RegionConfig) { c.Arena.WallThickness = 0 }, true},
		{"zero grid", func(c *RegionConfig) { c.Arena.GridCount = 0 }, false},
		{"negative grid", func(c *RegionConfig) { c.Arena.GridCount = -4 }, false},
		{"zero brick", func(c *RegionConfig) { c.Arena.BrickWidth = 0 }, false},
		{"negative wall", func(c *RegionConfig) { c.Arena.WallThickness = -1 }, false},
		{"zero radius", func(c *RegionConfig) { c.Players.Radius = 0 }, false},
		{"start column past grid", func(c *RegionConfig) { c.Players.StartColumn = 31 }, false},
		{"zero red heading", func(c *RegionConfig) { c.Players.RedHeading = Vector{} }, false},
		{"zero blue heading", func(c *RegionConfig) { c.Players.BlueHeading = Vector{} }, false},
		{"level above one", func(c *RegionConfig) { c.Difficulty.InitialLevel = 1.5 }, false},
		{"negative multiplier", func(c *RegionConfig) { c.Difficulty.Scaling.SpeedMultiplier = -1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRegionConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadRegionCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "region.yaml")
	data := []byte("arena:\n  grid_count: 10\nplayers:\n  radius: 5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRegion(path)
	if err != nil {
		t.Fatalf("LoadRegion() failed: %v", err)
	}
	if cfg.Arena.GridCount != 10 || cfg.Players.Radius != 5 {
		t.Errorf("custom values not applied: %+v", cfg)
	}
	// Keys absent from the file keep their defaults
	if cfg.Arena.BrickWidth != 20 || cfg.Players.RedHeading != (Vector{X: 100, Y: 100}) {
		t.Errorf("defaults lost for unset keys: %+v", cfg)
	}
}

func TestLoadRegionErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadRegion(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("arena: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRegion(bad); err == nil {
		t.Error("malformed yaml should fail")
	}

	degenerate := filepath.Join(dir, "degenerate.yaml")
	if err := os.WriteFile(degenerate, []byte("arena:\n  grid_count: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRegion(degenerate); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("degenerate arena: err = %v, expected ErrInvalidConfig", err)
	}
}

func TestLoadRegionSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults
	cfg, err := LoadRegion("")
	if err != nil {
		t.Fatalf("LoadRegion() failed: %v", err)
	}
	if cfg != DefaultRegionConfig() {
		t.Errorf("expected embedded defaults, got %+v", cfg)
	}

	// Local configs directory
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o750); err != nil {
		t.Fatal(err)
	}
	local := []byte("arena:\n  grid_count: 12\n")
	if err := os.WriteFile(filepath.Join(work, "configs", "region.yaml"), local, 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadRegion("")
	if cfg.Arena.GridCount != 12 {
		t.Errorf("local config: grid_count = %d, expected 12", cfg.Arena.GridCount)
	}

	// User directory wins over local
	userDir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(userDir, 0o750); err != nil {
		t.Fatal(err)
	}
	user := []byte("arena:\n  grid_count: 14\n")
	if err := os.WriteFile(filepath.Join(userDir, "region.yaml"), user, 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadRegion("")
	if cfg.Arena.GridCount != 14 {
		t.Errorf("user config: grid_count = %d, expected 14", cfg.Arena.GridCount)
	}
}

func TestApplyRegionPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0.3},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultRegionConfig()
			ApplyRegionPreset(&cfg, tt.preset)
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tt.enabled)
			}
			if cfg.Difficulty.InitialLevel != tt.level {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tt.level)
			}
		})
	}

	cfg := DefaultRegionConfig()
	ApplyRegionPreset(&cfg, "")
	if cfg != DefaultRegionConfig() {
		t.Error("empty preset should leave the config unchanged")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should yield empty")
	}
}
