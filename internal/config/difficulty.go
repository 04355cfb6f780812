package config

import "math"

// DifficultyManager calculates dynamic game parameters based on score/time.
// With progression disabled and level 0 every method returns its base value
// unchanged.
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

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed scales a base rate from base to base * (1 + speed_multiplier).
// Also used for per-tick probabilities.
func (d *DifficultyManager) Speed(base float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	return base * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// GapSize shrinks a gap by up to gap_reduction, never below half its base.
func (d *DifficultyManager) GapSize(baseGap float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	result := baseGap - level*float64(d.cfg.Scaling.GapReduction)
	return math.Max(result, baseGap/2)
}

// Spacing shrinks obstacle spacing by up to spacing_reduction, never below
// half its base.
func (d *DifficultyManager) Spacing(baseSpacing float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	result := baseSpacing - level*float64(d.cfg.Scaling.SpacingReduction)
	return math.Max(result, baseSpacing/2)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
