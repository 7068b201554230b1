// Package dodge implements a side-scrolling obstacle-dodge game.
// Asteroids scroll in from the right; the player holds a fixed column
// and steers up and down to avoid them. Every asteroid that leaves the
// screen scores a point.
package dodge

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

// Visual characters for rendering
const (
	PlayerChar   = '>'
	AsteroidChar = '▓'
	BorderChar   = '═'
)

// Game implements the Dodge game.
type Game struct {
	cfg            config.DodgeConfig
	rng            *rand.Rand
	tick           uint64
	score          int
	moveEveryTicks int
	moveTicker     int

	grid   core.Grid
	player core.Point // X is fixed, Y steered by the player
	field  *Field

	// Screen placement
	screenW   int
	screenH   int
	offsetY   int
	hudHeight int

	// Game state flags
	gameOver bool
	paused   bool
	tooSmall bool
}

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

// New creates a new Dodge game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("dodge", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "dodge"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Asteroid Dodge"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadDodge(configPath)
	if err != nil {
		cfg = config.DefaultDodgeConfig()
	}
	if difficultyPreset != "" {
		config.ApplyDodgePreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.tick = 0
	g.score = 0
	g.moveEveryTicks = core.Max(1, cfg.Sim.MoveEveryTicks)
	g.moveTicker = 0
	g.gameOver = false
	g.paused = false
	g.screenW = rt.ScreenW
	g.screenH = rt.ScreenH
	g.hudHeight = 2

	boardH := rt.ScreenH - g.hudHeight
	requiredW := cfg.Player.Column + 10
	if rt.ScreenW < requiredW || boardH < 5 {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	// The board spans the full width; the top and bottom rows are border.
	g.grid = core.NewGrid(rt.ScreenW, boardH, 0, 1)
	g.offsetY = g.hudHeight

	g.player = core.Point{X: cfg.Player.Column, Y: g.grid.Height / 2}

	if g.field == nil {
		g.field = NewField(rt.Seed, g.grid, cfg.Spawner)
	} else {
		g.field.grid = g.grid
		g.field.cfg = cfg.Spawner
		g.field.Reset(rt.Seed)
	}
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

	// Player movement reacts to every key event; a tick without input
	// leaves the row untouched.
	if in.Has(core.ActionUp) {
		g.movePlayer(-1)
	}
	if in.Has(core.ActionDown) {
		g.movePlayer(1)
	}

	g.moveTicker++
	if g.moveTicker >= g.moveEveryTicks {
		g.moveTicker = 0
		g.advance()
	}

	return core.StepResult{State: g.State()}
}

// movePlayer shifts the player's row, clamped to the interior.
func (g *Game) movePlayer(dy int) {
	g.player.Y = core.Clamp(g.player.Y+dy, g.grid.MinRow(), g.grid.MaxRow())
}

// advance runs one simulation move in fixed order: move all asteroids,
// cull the ones that left the screen (scoring each), spawn, then check
// the survivors against the player.
func (g *Game) advance() {
	g.field.Move()
	g.score += g.field.Cull()
	g.field.MaybeSpawn(g.score)

	if g.field.CollidesWith(g.player) {
		g.gameOver = true
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	// Border rows delimit the playable band.
	dst.DrawHLine(0, g.offsetY, g.grid.Width, BorderChar)
	dst.DrawHLine(0, g.offsetY+g.grid.Height-1, g.grid.Width, BorderChar)

	for _, a := range g.field.Asteroids() {
		color := core.ColorYellow
		if a.Speed > 1 {
			color = core.ColorBrightYellow
		}
		dst.SetColored(a.Pos.X, g.offsetY+a.Pos.Y, AsteroidChar, color)
	}

	dst.SetColored(g.player.X, g.offsetY+g.player.Y, PlayerChar, core.ColorCyan)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over",
			fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Asteroid Dodge | Score: %d", g.score)
	dst.DrawTextColored(0, 0, hud, core.ColorCyan)

	interval := SpawnInterval(g.cfg.Spawner, g.score)
	cadence := fmt.Sprintf(" Spawn: 1/%d ", interval)
	dst.DrawText(dst.Width()-len(cadence)-1, 0, cadence)

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
