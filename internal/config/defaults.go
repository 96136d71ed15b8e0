package config

import (
	_ "embed"
)

//go:embed defaults/region.yaml
var defaultRegionYAML []byte

// DefaultRegionConfig returns the default Region Capture configuration.
func DefaultRegionConfig() RegionConfig {
	return RegionConfig{
		Arena: RegionArena{
			BrickWidth:    20,
			GridCount:     30,
			WallThickness: 40,
		},
		Players: RegionPlayers{
			Radius:      10,
			StartColumn: 0,
			RedHeading:  Vector{X: 100, Y: 100},
			BlueHeading: Vector{X: -100, Y: -100},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.3,
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "region":
		return defaultRegionYAML
	default:
		return nil
	}
}
