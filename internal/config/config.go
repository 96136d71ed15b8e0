// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for configurations that cannot
// produce a playable arena.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// RegionConfig contains all configuration for the Region Capture game.
type RegionConfig struct {
	Arena      RegionArena      `yaml:"arena"`
	Players    RegionPlayers    `yaml:"players"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RegionArena defines the arena and grid geometry in world units.
type RegionArena struct {
	BrickWidth    float64 `yaml:"brick_width"`
	GridCount     int     `yaml:"grid_count"` // cells per side is grid_count + 1
	WallThickness float64 `yaml:"wall_thickness"`
}

// RegionPlayers defines the two players.
type RegionPlayers struct {
	Radius      float64 `yaml:"radius"`
	StartColumn int     `yaml:"start_column"` // 0 = grid_count / 4
	RedHeading  Vector  `yaml:"red_heading"`
	BlueHeading Vector  `yaml:"blue_heading"`
}

// Vector is a 2D value in world units.
type Vector struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// IsZero reports whether both components are zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// DifficultyConfig scales the players' speed. The scale is fixed for the
// whole match; headings only ever change sign.
type DifficultyConfig struct {
	Enabled      bool          `yaml:"enabled"`
	InitialLevel float64       `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Scaling      ScalingConfig `yaml:"scaling"`
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables scaling.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate checks that the configuration describes a playable arena.
func (c RegionConfig) Validate() error {
	a := c.Arena
	switch {
	case a.GridCount < 1:
		return fmt.Errorf("%w: arena.grid_count must be at least 1, got %d", ErrInvalidConfig, a.GridCount)
	case a.BrickWidth <= 0:
		return fmt.Errorf("%w: arena.brick_width must be positive, got %g", ErrInvalidConfig, a.BrickWidth)
	case a.WallThickness < 0:
		return fmt.Errorf("%w: arena.wall_thickness must not be negative, got %g", ErrInvalidConfig, a.WallThickness)
	}

	p := c.Players
	switch {
	case p.Radius <= 0:
		return fmt.Errorf("%w: players.radius must be positive, got %g", ErrInvalidConfig, p.Radius)
	case p.StartColumn < 0 || p.StartColumn > a.GridCount:
		return fmt.Errorf("%w: players.start_column %d outside 0..%d", ErrInvalidConfig, p.StartColumn, a.GridCount)
	case p.RedHeading.IsZero():
		return fmt.Errorf("%w: players.red_heading must not be zero", ErrInvalidConfig)
	case p.BlueHeading.IsZero():
		return fmt.Errorf("%w: players.blue_heading must not be zero", ErrInvalidConfig)
	}

	d := c.Difficulty
	if d.InitialLevel < 0 || d.InitialLevel > 1 {
		return fmt.Errorf("%w: difficulty.initial_level must be within 0..1, got %g", ErrInvalidConfig, d.InitialLevel)
	}
	if d.Scaling.SpeedMultiplier < 0 {
		return fmt.Errorf("%w: difficulty.scaling.speed_multiplier must not be negative, got %g",
			ErrInvalidConfig, d.Scaling.SpeedMultiplier)
	}
	return nil
}
