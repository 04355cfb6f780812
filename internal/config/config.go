// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade.
package config

import "fmt"

// PongConfig contains all configuration for Pong.
type PongConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Paddles    PongPaddles      `yaml:"paddles"`
	Ball       PongBall         `yaml:"ball"`
	Gameplay   PongGameplay     `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ScreenConfig is the size of a game's world in pixels.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PongPaddles defines paddle geometry and speed.
type PongPaddles struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`        // pixels per tick
	LeftX       float64 `yaml:"left_x"`       // left paddle x
	RightMargin float64 `yaml:"right_margin"` // right paddle x = width - right_margin
}

// PongBall defines the ball.
type PongBall struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // pixels per tick along the direction vector
}

// PongGameplay defines match rules.
type PongGameplay struct {
	WinScore int `yaml:"win_score"` // 0 = endless
}

// FlappyConfig contains all configuration for Flappy Bird.
type FlappyConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Physics    FlappyPhysics    `yaml:"physics"`
	Pipes      FlappyPipes      `yaml:"pipes"`
	Bird       FlappyBird       `yaml:"bird"`
	Scenery    FlappyScenery    `yaml:"scenery"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyPhysics defines bird physics. Units are pixels and seconds.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	GravityScale float64 `yaml:"gravity_scale"`
	JumpVelocity float64 `yaml:"jump_velocity"`
	Ceiling      float64 `yaml:"ceiling"`       // max bird y
	RotationDiv  float64 `yaml:"rotation_div"`  // rotation = velocity / rotation_div
	MaxRotation  float64 `yaml:"max_rotation"`  // radians, symmetric
	GroundLevel  float64 `yaml:"ground_level"`  // y of the ground sprite centre
	GroundHeight float64 `yaml:"ground_height"` // ground sprite height
}

// FlappyPipes defines the pipe field.
type FlappyPipes struct {
	Count      int     `yaml:"count"`
	Speed      float64 `yaml:"speed"`   // pixels per second
	Spacing    float64 `yaml:"spacing"` // gap between pairs on x
	StartX     float64 `yaml:"start_x"`
	MinOffset  float64 `yaml:"min_offset"` // lower pipe y = -U[min_offset, max_offset)
	MaxOffset  float64 `yaml:"max_offset"`
	Gap        float64 `yaml:"gap"` // upper y = lower y + gap
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	ScreenSlop float64 `yaml:"screen_slop"` // recycled once x < -width/2 - screen_slop
}

// FlappyBird defines the bird sprite.
type FlappyBird struct {
	X             float64 `yaml:"x"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	FrameDuration float64 `yaml:"frame_duration"` // seconds per animation frame
}

// FlappyScenery defines the scrolling background and ground.
type FlappyScenery struct {
	BackgroundSpeed float64 `yaml:"background_speed"`
	GroundSpeed     float64 `yaml:"ground_speed"`
	WrapAt          float64 `yaml:"wrap_at"`
	BlinkInterval   float64 `yaml:"blink_interval"`
}

// CavernConfig contains all configuration for Cavern.
type CavernConfig struct {
	Robots     CavernRobots     `yaml:"robots"`
	Player     CavernPlayer     `yaml:"player"`
	Orbs       CavernOrbs       `yaml:"orbs"`
	Level      []string         `yaml:"level"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CavernRobots defines enemy waves and AI tuning.
type CavernRobots struct {
	Count               int     `yaml:"count"`                 // robots per wave
	AggressiveEvery     int     `yaml:"aggressive_every"`      // every n-th robot is aggressive, 0 = none
	BaseFireProbability float64 `yaml:"base_fire_probability"` // per tick once the fire timer is ready
	BoltSpeed           int     `yaml:"bolt_speed"`
}

// CavernPlayer defines the player.
type CavernPlayer struct {
	Lives        int `yaml:"lives"`
	Speed        int `yaml:"speed"`
	JumpVelocity int `yaml:"jump_velocity"`
	Invulnerable int `yaml:"invulnerable"` // ticks after a hit
	FireCooldown int `yaml:"fire_cooldown"`
	MaxOrbs      int `yaml:"max_orbs"`
	StartX       int `yaml:"start_x"`
	StartY       int `yaml:"start_y"`
}

// CavernOrbs defines blown orbs.
type CavernOrbs struct {
	Speed      int `yaml:"speed"`
	TravelTime int `yaml:"travel_time"` // ticks of horizontal travel before floating
	Lifetime   int `yaml:"lifetime"`
	Radius     int `yaml:"radius"`
	TrapPoints int `yaml:"trap_points"` // score for popping an orb with a robot inside
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Multiplier added to speed at max difficulty
	GapReduction     int     `yaml:"gap_reduction"`     // Gap size reduction at max difficulty
	SpacingReduction int     `yaml:"spacing_reduction"` // Spacing reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
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

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// applyPreset updates a difficulty block for a preset. Empty leaves it alone.
func applyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	switch {
	case preset == "":
	case IsFixedPreset(preset):
		d.Enabled = false
		d.InitialLevel = 0
	default:
		d.Enabled = true
		d.InitialLevel = InitialLevelForPreset(preset)
	}
}
