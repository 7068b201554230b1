// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid  GridConfig `yaml:"grid"`
	Snake SnakeRules `yaml:"snake"`
	Food  FoodConfig `yaml:"food"`
}

// GridConfig defines the board dimensions. The playable interior is the
// rectangle minus a 1-cell border on all sides.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeRules defines snake movement parameters.
type SnakeRules struct {
	InitialLength  int `yaml:"initial_length"`
	MoveEveryTicks int `yaml:"move_every_ticks"`
}

// FoodConfig defines food placement parameters.
type FoodConfig struct {
	// MaxPlaceAttempts caps rejection sampling before the board is
	// declared full.
	MaxPlaceAttempts int `yaml:"max_place_attempts"`
}

// DodgeConfig contains all configuration for the Dodge game.
type DodgeConfig struct {
	Player  DodgePlayer   `yaml:"player"`
	Spawner SpawnerConfig `yaml:"spawner"`
	Sim     SimConfig     `yaml:"sim"`
}

// DodgePlayer defines the player's fixed column.
type DodgePlayer struct {
	Column int `yaml:"column"`
}

// SpawnerConfig defines asteroid spawn cadence and speed range.
// The effective spawn interval is
// max(min_interval, base_interval - score/difficulty_threshold),
// so the cadence shortens as the score grows.
type SpawnerConfig struct {
	BaseInterval        int `yaml:"base_interval"`
	MinInterval         int `yaml:"min_interval"`
	DifficultyThreshold int `yaml:"difficulty_threshold"`
	MaxSpeed            int `yaml:"max_speed"`
}

// SimConfig defines simulation timing.
type SimConfig struct {
	MoveEveryTicks int `yaml:"move_every_ticks"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown values map to
// the empty preset, which leaves the config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplySnakePreset modifies the snake config based on a difficulty preset.
// Snake has no score-driven progression; presets only set the base speed.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Snake.MoveEveryTicks = 8
	case DifficultyNormal:
		cfg.Snake.MoveEveryTicks = 6
	case DifficultyHard:
		cfg.Snake.MoveEveryTicks = 4
	}
}

// ApplyDodgePreset modifies the dodge config based on a difficulty preset.
// The fixed preset disables difficulty scaling entirely by zeroing the
// threshold, keeping the spawn interval constant.
func ApplyDodgePreset(cfg *DodgeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawner.BaseInterval = 7
	case DifficultyNormal:
		cfg.Spawner.BaseInterval = 5
	case DifficultyHard:
		cfg.Spawner.BaseInterval = 3
	case DifficultyFixed:
		cfg.Spawner.DifficultyThreshold = 0
	}
}
