package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load resolves a game's config.
// Search order: customPath -> ~/.arcade/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default.
// Files are decoded over the hard-coded defaults, so partial files are valid.
func load[T any](gameID, customPath string, defaults func() T) (T, error) {
	cfg := defaults()
	filename := gameID + ".yaml"

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := defaults()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(GetDefaultYAML(gameID), &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
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

// LoadPong loads Pong configuration.
func LoadPong(customPath string) (PongConfig, error) {
	return load("pong", customPath, DefaultPongConfig)
}

// LoadFlappy loads Flappy Bird configuration.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	return load("flappy", customPath, DefaultFlappyConfig)
}

// LoadCavern loads Cavern configuration.
func LoadCavern(customPath string) (CavernConfig, error) {
	return load("cavern", customPath, DefaultCavernConfig)
}

// ApplyPongPreset modifies the config based on a difficulty preset.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)

	// First to 11 outside of the endless default
	if preset != "" && !IsFixedPreset(preset) && cfg.Gameplay.WinScore == 0 {
		cfg.Gameplay.WinScore = 11
	}
}

// ApplyFlappyPreset modifies the config based on a difficulty preset.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)
}

// ApplyCavernPreset modifies the config based on a difficulty preset.
func ApplyCavernPreset(cfg *CavernConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Robots.AggressiveEvery = 0
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Robots.AggressiveEvery = 2
	}
}
