package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  40,
			Height: 20,
		},
		Snake: SnakeRules{
			InitialLength:  3,
			MoveEveryTicks: 6,
		},
		Food: FoodConfig{
			MaxPlaceAttempts: 2000,
		},
	}
}

// DefaultDodgeConfig returns the default Dodge configuration.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Player: DodgePlayer{
			Column: 2,
		},
		Spawner: SpawnerConfig{
			BaseInterval:        5,
			MinInterval:         2,
			DifficultyThreshold: 100,
			MaxSpeed:            2,
		},
		Sim: SimConfig{
			MoveEveryTicks: 6,
		},
	}
}
