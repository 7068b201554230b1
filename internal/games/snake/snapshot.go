package snake

import "github.com/vovakirdan/grid-arcade/internal/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StateBoardFull   GameStateType = "board_full"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	Head     core.Point
	Dir      core.Direction
	Food     core.Point
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.boardFull:
		state = StateBoardFull
	case g.gameOver:
		state = StateGameOver
	}

	var head core.Point
	if len(g.snake) > 0 {
		head = g.snake[0]
	}

	return Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		SnakeLen: len(g.snake),
		Head:     head,
		Dir:      g.direction,
		Food:     g.food,
		State:    state,
	}
}
