package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/cavern.yaml
var defaultCavernYAML []byte

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Screen: ScreenConfig{Width: 800, Height: 600},
		Paddles: PongPaddles{
			Width:       20,
			Height:      80,
			Speed:       10,
			LeftX:       20,
			RightMargin: 40,
		},
		Ball: PongBall{
			Radius: 15,
			Speed:  12,
		},
		Difficulty: DifficultyConfig{
			Enabled: false,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 36000, // 10 minutes at 60fps
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultFlappyConfig returns the default Flappy Bird configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Screen: ScreenConfig{Width: 800, Height: 512},
		Physics: FlappyPhysics{
			Gravity:      9.8,
			GravityScale: 150,
			JumpVelocity: 400,
			Ceiling:      260,
			RotationDiv:  600,
			MaxRotation:  0.5,
			GroundLevel:  -250,
			GroundHeight: 112,
		},
		Pipes: FlappyPipes{
			Count:      5,
			Speed:      150,
			Spacing:    200,
			StartX:     350,
			MinOffset:  70,
			MaxOffset:  280,
			Gap:        450,
			Width:      52,
			Height:     320,
			ScreenSlop: 26,
		},
		Bird: FlappyBird{
			Width:         34,
			Height:        24,
			FrameDuration: 0.2,
		},
		Scenery: FlappyScenery{
			BackgroundSpeed: 20,
			GroundSpeed:     150,
			WrapAt:          -288,
			BlinkInterval:   0.5,
		},
		Difficulty: DifficultyConfig{
			Enabled: false,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.0,
				GapReduction:     60,
				SpacingReduction: 30,
			},
		},
	}
}

// DefaultCavernLevel is the first level of the original layout.
// Rows are top to bottom; blank rows are open space.
var DefaultCavernLevel = []string{
	"XXXXX     XXXXXXXX     XXXXX",
	"",
	"",
	"",
	"",
	"   XXXXXXX        XXXXXXX   ",
	"",
	"",
	"",
	"   XXXXXXXXXXXXXXXXXXXXXX   ",
	"",
	"",
	"",
	"XXXXXXXXX          XXXXXXXXX",
	"",
	"",
	"",
}

// DefaultCavernConfig returns the default Cavern configuration.
func DefaultCavernConfig() CavernConfig {
	return CavernConfig{
		Robots: CavernRobots{
			Count:               4,
			AggressiveEvery:     3,
			BaseFireProbability: 0.002,
			BoltSpeed:           7,
		},
		Player: CavernPlayer{
			Lives:        3,
			Speed:        4,
			JumpVelocity: -16,
			Invulnerable: 100,
			FireCooldown: 20,
			MaxOrbs:      5,
			StartX:       400,
			StartY:       100,
		},
		Orbs: CavernOrbs{
			Speed:      4,
			TravelTime: 6,
			Lifetime:   250,
			Radius:     32,
			TrapPoints: 100,
		},
		Level: append([]string(nil), DefaultCavernLevel...),
		Difficulty: DifficultyConfig{
			Enabled: false,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 2.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "pong":
		return defaultPongYAML
	case "flappy":
		return defaultFlappyYAML
	case "cavern":
		return defaultCavernYAML
	default:
		return nil
	}
}
