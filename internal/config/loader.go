package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRegion loads Region Capture configuration.
// Search order: customPath -> ~/.arcade/configs/region.yaml -> ./configs/region.yaml -> embedded default
//
// Files are decoded over DefaultRegionConfig, so a partial file only
// overrides the keys it sets. The result is validated.
func LoadRegion(customPath string) (RegionConfig, error) {
	cfg, err := loadRegion(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadRegion(customPath string) (RegionConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultRegionConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseRegion(data)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("region.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseRegion(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "region.yaml")); err == nil {
		if cfg, err := parseRegion(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseRegion(defaultRegionYAML)
	if err != nil {
		return DefaultRegionConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseRegion(data []byte) (RegionConfig, error) {
	cfg := DefaultRegionConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultRegionConfig(), err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyRegionPreset modifies the config based on a difficulty preset.
func ApplyRegionPreset(cfg *RegionConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}
