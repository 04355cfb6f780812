package config

import "testing"

func TestDifficultyDisabledKeepsBase(t *testing.T) {
	dm := NewDifficultyManager(DefaultFlappyConfig().Difficulty)

	if dm.IsEnabled() {
		t.Fatal("defaults should keep progression disabled")
	}
	if got := dm.Speed(150, 100, 10000); got != 150 {
		t.Errorf("Speed() = %v, expected base 150", got)
	}
	if got := dm.GapSize(450, 100, 10000); got != 450 {
		t.Errorf("GapSize() = %v, expected base 450", got)
	}
	if got := dm.Spacing(200, 100, 10000); got != 200 {
		t.Errorf("Spacing() = %v, expected base 200", got)
	}
}

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0, GapReduction: 100, SpacingReduction: 40},
	}
	dm := NewDifficultyManager(cfg)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.0},
		{50, 0.5},
		{100, 1.0},
		{500, 1.0}, // clamped
	}

	for _, tc := range tests {
		if got := dm.Level(tc.score, 0); got != tc.expected {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}

	if got := dm.Speed(10, 100, 0); got != 20 {
		t.Errorf("Speed at max = %v, expected 20", got)
	}
	if got := dm.GapSize(450, 100, 0); got != 350 {
		t.Errorf("GapSize at max = %v, expected 350", got)
	}
	if got := dm.GapSize(120, 100, 0); got != 60 {
		t.Errorf("GapSize should floor at half the base, got %v", got)
	}
	if got := dm.Spacing(200, 50, 0); got != 180 {
		t.Errorf("Spacing at half = %v, expected 180", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 1000},
	}
	dm := NewDifficultyManager(cfg)

	if got := dm.Level(0, 500); got != 0.75 {
		t.Errorf("Level at half time = %v, expected 0.75", got)
	}

	cfg.Enabled = false
	dm = NewDifficultyManager(cfg)
	if got := dm.Level(0, 500); got != 0.5 {
		t.Errorf("disabled manager should stay at the initial level, got %v", got)
	}

	cfg.InitialLevel = 3
	dm = NewDifficultyManager(cfg)
	if got := dm.Level(0, 0); got != 1 {
		t.Errorf("initial level should clamp to 1, got %v", got)
	}
}
