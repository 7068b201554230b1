package dodge

import "github.com/vovakirdan/grid-arcade/internal/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Score     int
	Player    core.Point
	Asteroids int
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	}

	count := 0
	if g.field != nil {
		count = len(g.field.Asteroids())
	}

	return Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		Player:    g.player,
		Asteroids: count,
		State:     state,
	}
}
