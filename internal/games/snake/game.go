// Package snake implements the classic snake game on a bounded grid.
// The snake is a single-life game: once it dies there is no restart.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

// Visual characters for rendering
const (
	HeadChar = 'O'
	BodyChar = 'o'
	FoodChar = '*'
)

// Game implements the Snake game.
type Game struct {
	cfg            config.SnakeConfig
	rng            *rand.Rand
	tick           uint64
	score          int
	moveEveryTicks int
	moveTicker     int // Counts ticks until the next move

	// Board state
	grid core.Grid
	food core.Point

	// Snake state, head at index 0. pendingGrowth counts moves on which
	// the tail is kept instead of popped: the snake starts as a single
	// segment and grows to its configured initial length, then by one
	// per food eaten.
	snake         []core.Point
	direction     core.Direction
	nextDir       core.Direction // Buffered direction for the next move
	pendingGrowth int

	// Screen placement
	screenW   int
	screenH   int
	offsetX   int
	offsetY   int
	hudHeight int

	// Game state flags
	gameOver  bool
	boardFull bool
	paused    bool
	tooSmall  bool
}

// configPath and difficultyPreset are set from the CLI before creation.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a new Snake game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Restartable reports that snake is a single-life game: the restart
// action after game over is not honored.
func (g *Game) Restartable() bool {
	return false
}

// MinScreenSize returns the smallest terminal that can host the board.
func MinScreenSize() (w, h int) {
	cfg := config.DefaultSnakeConfig()
	return cfg.Grid.Width + 2, cfg.Grid.Height + 2
}

// Reset initializes the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadSnake(configPath)
	if err != nil {
		cfg = config.DefaultSnakeConfig()
	}
	if difficultyPreset != "" {
		config.ApplySnakePreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.tick = 0
	g.score = 0
	g.moveEveryTicks = cfg.Snake.MoveEveryTicks
	g.moveTicker = 0
	g.gameOver = false
	g.boardFull = false
	g.paused = false
	g.screenW = rt.ScreenW
	g.screenH = rt.ScreenH
	g.hudHeight = 2

	// The interior excludes a 1-cell border on every side.
	g.grid = core.NewGrid(cfg.Grid.Width, cfg.Grid.Height, 1, 1)

	requiredW := cfg.Grid.Width
	requiredH := cfg.Grid.Height + g.hudHeight
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.offsetX = (g.screenW - cfg.Grid.Width) / 2
	g.offsetY = g.hudHeight

	g.initSnake()
	g.placeFood()
}

// initSnake places a single head segment in the middle of the interior
// with growth pending up to the configured initial length.
func (g *Game) initSnake() {
	start := core.Point{X: g.grid.Width / 2, Y: g.grid.Height / 2}
	g.snake = []core.Point{start}
	g.direction = core.DirRight
	g.nextDir = core.DirRight
	g.pendingGrowth = core.Max(0, g.cfg.Snake.InitialLength-1)
}

// occupies checks whether the snake body contains the given point.
func (g *Game) occupies(p core.Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// placeFood rejection-samples a random interior cell not occupied by the
// snake. The retry cap guards against spinning when the snake has nearly
// filled the board; hitting it raises the board-full condition.
func (g *Game) placeFood() {
	for i := 0; i < g.cfg.Food.MaxPlaceAttempts; i++ {
		p := g.grid.RandomInterior(g.rng)
		if !g.occupies(p) {
			g.food = p
			return
		}
	}
	g.food = core.Point{X: -1, Y: -1}
	g.boardFull = true
	g.gameOver = true
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.processInput(in)

	g.moveTicker++
	if g.moveTicker >= g.moveEveryTicks {
		g.moveTicker = 0
		g.advance()
	}

	return core.StepResult{State: g.State()}
}

// processInput buffers a direction change for the next move. A request
// that would reverse the current direction is dropped.
func (g *Game) processInput(in core.InputFrame) {
	requested := g.nextDir

	switch {
	case in.Has(core.ActionUp):
		requested = core.DirUp
	case in.Has(core.ActionDown):
		requested = core.DirDown
	case in.Has(core.ActionLeft):
		requested = core.DirLeft
	case in.Has(core.ActionRight):
		requested = core.DirRight
	}

	g.nextDir = g.direction.Apply(requested)
}

// advance moves the snake one cell. The candidate head is computed and
// validated against the un-mutated body before anything is committed, so
// an illegal move leaves the state untouched.
func (g *Game) advance() {
	g.direction = g.nextDir

	newHead := g.snake[0].Add(g.direction.Delta())

	// Loss conditions: the candidate head leaves the interior or lands
	// on the pre-move body.
	if !g.grid.Contains(newHead) || g.occupies(newHead) {
		g.gameOver = true
		return
	}

	ateFood := newHead == g.food

	// Commit: insert the head, then settle growth.
	g.snake = append([]core.Point{newHead}, g.snake...)

	if ateFood {
		g.score++
		g.pendingGrowth++
		g.placeFood()
	}

	if g.pendingGrowth > 0 {
		g.pendingGrowth--
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need at least %dx%d", g.grid.Width, g.grid.Height+g.hudHeight))
		return
	}

	dst.DrawBorder(g.offsetX, g.offsetY, g.grid.Width, g.grid.Height)

	for i, seg := range g.snake {
		ch := BodyChar
		if i == 0 {
			ch = HeadChar
		}
		dst.SetColored(g.offsetX+seg.X, g.offsetY+seg.Y, ch, core.ColorGreen)
	}

	if g.grid.Contains(g.food) {
		dst.SetColored(g.offsetX+g.food.X, g.offsetY+g.food.Y, FoodChar, core.ColorRed)
	}

	switch {
	case g.boardFull:
		g.renderOverlay(dst, "Board full!", fmt.Sprintf("Final Score: %d  |  Press Q to quit", g.score))
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Final Score: %d  |  Press Q to quit", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake | Score: %d  Length: %d", g.score, len(g.snake))
	dst.DrawTextColored(0, 0, hud, core.ColorCyan)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY + 1; y < boxY+boxH-1; y++ {
		for x := boxX + 1; x < boxX+boxW-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBorder(boxX, boxY, boxW, boxH)

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
