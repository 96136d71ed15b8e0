package config

import "math"

// DifficultyManager derives speed from the configured difficulty level.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// Level returns the difficulty level, or 0 when scaling is disabled.
func (d *DifficultyManager) Level() float64 {
	if !d.cfg.Enabled {
		return 0
	}
	return d.initialLevel
}

// Speed scales a base speed from base to base * (1 + speedMultiplier).
func (d *DifficultyManager) Speed(baseSpeed float64) float64 {
	return baseSpeed * (1.0 + d.Level()*d.cfg.Scaling.SpeedMultiplier)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
