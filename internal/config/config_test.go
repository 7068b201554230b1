package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSnakeConfig(t *testing.T) {
	cfg := DefaultSnakeConfig()

	if cfg.Grid.Width != 40 || cfg.Grid.Height != 20 {
		t.Errorf("Default grid = %dx%d, expected 40x20", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Snake.InitialLength != 3 {
		t.Errorf("Default initial length = %d, expected 3", cfg.Snake.InitialLength)
	}
	if cfg.Food.MaxPlaceAttempts <= 0 {
		t.Error("Food placement must have a positive retry cap")
	}
}

func TestDefaultDodgeConfig(t *testing.T) {
	cfg := DefaultDodgeConfig()

	if cfg.Spawner.BaseInterval != 5 {
		t.Errorf("Default base interval = %d, expected 5", cfg.Spawner.BaseInterval)
	}
	if cfg.Spawner.MinInterval != 2 {
		t.Errorf("Default min interval = %d, expected 2", cfg.Spawner.MinInterval)
	}
	if cfg.Spawner.DifficultyThreshold != 100 {
		t.Errorf("Default threshold = %d, expected 100", cfg.Spawner.DifficultyThreshold)
	}
	if cfg.Spawner.MaxSpeed != 2 {
		t.Errorf("Default max speed = %d, expected 2", cfg.Spawner.MaxSpeed)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	// The embedded YAML is the source of truth at runtime; it must agree
	// with the hardcoded fallback.
	snake, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if snake != DefaultSnakeConfig() {
		t.Errorf("Embedded snake defaults %+v differ from hardcoded %+v", snake, DefaultSnakeConfig())
	}

	dodge, err := LoadDodge("")
	if err != nil {
		t.Fatalf("LoadDodge() failed: %v", err)
	}
	if dodge != DefaultDodgeConfig() {
		t.Errorf("Embedded dodge defaults %+v differ from hardcoded %+v", dodge, DefaultDodgeConfig())
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")

	data := []byte("grid:\n  width: 60\n  height: 30\nsnake:\n  initial_length: 5\n  move_every_ticks: 4\nfood:\n  max_place_attempts: 100\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}

	if cfg.Grid.Width != 60 || cfg.Grid.Height != 30 {
		t.Errorf("Grid = %dx%d, expected 60x30", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Snake.InitialLength != 5 {
		t.Errorf("InitialLength = %d, expected 5", cfg.Snake.InitialLength)
	}
}

func TestLoadSnakeMissingCustomPath(t *testing.T) {
	_, err := LoadSnake(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("Expected error for missing custom config path")
	}
}

func TestApplySnakePreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		expected int
	}{
		{DifficultyEasy, 8},
		{DifficultyNormal, 6},
		{DifficultyHard, 4},
	}

	for _, tt := range tests {
		cfg := DefaultSnakeConfig()
		ApplySnakePreset(&cfg, tt.preset)
		if cfg.Snake.MoveEveryTicks != tt.expected {
			t.Errorf("Preset %s: MoveEveryTicks = %d, expected %d",
				tt.preset, cfg.Snake.MoveEveryTicks, tt.expected)
		}
	}

	// Fixed preset leaves snake untouched
	cfg := DefaultSnakeConfig()
	ApplySnakePreset(&cfg, DifficultyFixed)
	if cfg != DefaultSnakeConfig() {
		t.Error("Fixed preset should not modify snake config")
	}
}

func TestApplyDodgePreset(t *testing.T) {
	cfg := DefaultDodgeConfig()
	ApplyDodgePreset(&cfg, DifficultyHard)
	if cfg.Spawner.BaseInterval != 3 {
		t.Errorf("Hard preset: BaseInterval = %d, expected 3", cfg.Spawner.BaseInterval)
	}

	cfg = DefaultDodgeConfig()
	ApplyDodgePreset(&cfg, DifficultyFixed)
	if cfg.Spawner.DifficultyThreshold != 0 {
		t.Error("Fixed preset should disable difficulty scaling")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("easy") != DifficultyEasy {
		t.Error("ParsePreset(easy) failed")
	}
	if ParsePreset("bogus") != "" {
		t.Error("Unknown preset should map to empty")
	}
	if ParsePreset("") != "" {
		t.Error("Empty preset should map to empty")
	}
}
