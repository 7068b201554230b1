package snake

import (
	"testing"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{
		Seed:    seed,
		ScreenW: 80,
		ScreenH: 24,
	})
	return g
}

func TestInitialState(t *testing.T) {
	g := newTestGame(12345)

	if g.gameOver {
		t.Fatal("Game should not start in game over state")
	}
	if len(g.snake) != 1 {
		t.Errorf("Snake should start as a single segment, got %d", len(g.snake))
	}
	if g.pendingGrowth != 2 {
		t.Errorf("pendingGrowth = %d, expected 2 for initial length 3", g.pendingGrowth)
	}
	if g.direction != core.DirRight {
		t.Errorf("Initial direction = %v, expected right", g.direction)
	}
	if !g.grid.Contains(g.food) {
		t.Errorf("Food at %v is outside the interior", g.food)
	}
}

func TestScenarioThreeMovesNoInput(t *testing.T) {
	// Grid 40x20, snake at row 10 col 20, direction right, food far away.
	// After 3 moves the body is [(10,23),(10,22),(10,21)] and the game
	// is still running.
	g := newTestGame(1)
	g.snake = []core.Point{{X: 20, Y: 10}}
	g.pendingGrowth = 2
	g.direction = core.DirRight
	g.nextDir = core.DirRight
	g.food = core.Point{X: 5, Y: 5}

	for i := 0; i < 3; i++ {
		g.advance()
	}

	expected := []core.Point{
		{X: 23, Y: 10},
		{X: 22, Y: 10},
		{X: 21, Y: 10},
	}
	if len(g.snake) != len(expected) {
		t.Fatalf("Snake length = %d, expected %d", len(g.snake), len(expected))
	}
	for i, p := range expected {
		if g.snake[i] != p {
			t.Errorf("Segment %d = %v, expected %v", i, g.snake[i], p)
		}
	}
	if g.gameOver {
		t.Error("Game should still be running")
	}
}

func TestWallCollisionLeavesBodyUnchanged(t *testing.T) {
	g := newTestGame(2)
	g.snake = []core.Point{{X: 1, Y: 5}, {X: 2, Y: 5}, {X: 3, Y: 5}}
	g.pendingGrowth = 0
	g.direction = core.DirLeft
	g.nextDir = core.DirLeft

	before := append([]core.Point(nil), g.snake...)

	// The candidate head lands in column 0, the border.
	g.advance()

	if !g.gameOver {
		t.Error("Moving into the border should end the game")
	}
	if len(g.snake) != len(before) {
		t.Fatalf("Body length changed on illegal move: %d vs %d", len(g.snake), len(before))
	}
	for i := range before {
		if g.snake[i] != before[i] {
			t.Errorf("Segment %d changed on illegal move: %v vs %v", i, g.snake[i], before[i])
		}
	}
}

func TestSelfCollision(t *testing.T) {
	g := newTestGame(3)
	// Head boxed in by its own body: moving up lands on a body segment.
	g.snake = []core.Point{
		{X: 5, Y: 5},
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
		{X: 6, Y: 4},
		{X: 5, Y: 4},
	}
	g.pendingGrowth = 0
	g.direction = core.DirUp
	g.nextDir = core.DirUp

	g.advance()

	if !g.gameOver {
		t.Error("Moving onto the body should end the game")
	}
}

func TestTailCellIsStillACollision(t *testing.T) {
	// The loss check runs against the pre-move body, so even the tail
	// cell (which would vacate this move) is fatal.
	g := newTestGame(4)
	g.snake = []core.Point{
		{X: 5, Y: 5},
		{X: 6, Y: 5},
		{X: 6, Y: 6},
		{X: 5, Y: 6},
	}
	g.pendingGrowth = 0
	g.direction = core.DirDown
	g.nextDir = core.DirDown

	g.advance()

	if !g.gameOver {
		t.Error("Moving onto the departing tail cell should end the game")
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := newTestGame(42)

	if g.direction != core.DirRight {
		t.Fatalf("Expected initial direction right, got %v", g.direction)
	}

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	g.Step(in)

	if g.nextDir == core.DirLeft {
		t.Error("Should not allow immediate reversal from right to left")
	}

	in.Clear()
	in.Set(core.ActionDown)
	g.Step(in)

	if g.nextDir != core.DirDown {
		t.Errorf("Expected nextDir down, got %v", g.nextDir)
	}
}

func TestIdleInputKeepsDirection(t *testing.T) {
	g := newTestGame(5)

	in := core.NewInputFrame()
	for i := 0; i < 10; i++ {
		g.Step(in)
		if g.nextDir != core.DirRight {
			t.Fatalf("Direction changed without input: %v", g.nextDir)
		}
	}
}

func TestFoodConsumption(t *testing.T) {
	g := newTestGame(6)
	g.snake = []core.Point{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}
	g.pendingGrowth = 0
	g.direction = core.DirRight
	g.nextDir = core.DirRight
	g.food = core.Point{X: 11, Y: 10}

	lenBefore := len(g.snake)
	g.advance()

	if g.score != 1 {
		t.Errorf("Score = %d, expected 1 after eating food", g.score)
	}
	if len(g.snake) != lenBefore+1 {
		t.Errorf("Length = %d, expected %d after eating food", len(g.snake), lenBefore+1)
	}
	if g.food == (core.Point{X: 11, Y: 10}) {
		t.Error("Food should be respawned after consumption")
	}
	if g.occupies(g.food) {
		t.Errorf("Respawned food at %v lies on the snake", g.food)
	}
}

func TestFoodPlacementValidity(t *testing.T) {
	g := newTestGame(999)

	for i := 0; i < 100; i++ {
		g.placeFood()

		if g.occupies(g.food) {
			t.Errorf("Food spawned on snake at %v", g.food)
		}
		if !g.grid.Contains(g.food) {
			t.Errorf("Food spawned outside interior at %v", g.food)
		}
	}
}

func TestNoDuplicateSegments(t *testing.T) {
	g := newTestGame(7)

	// Drive the game with a deterministic input pattern and check the
	// body after every tick.
	actions := []core.Action{core.ActionDown, core.ActionRight, core.ActionUp, core.ActionRight}
	in := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		in.Clear()
		if i%17 == 0 {
			in.Set(actions[(i/17)%len(actions)])
		}
		g.Step(in)

		seen := make(map[core.Point]bool, len(g.snake))
		for _, seg := range g.snake {
			if seen[seg] {
				t.Fatalf("Duplicate segment %v at tick %d", seg, i)
			}
			seen[seg] = true
		}
	}
}

func TestBoardFull(t *testing.T) {
	g := newTestGame(8)

	// Shrink the board to a 2x2 interior and fill it with the snake.
	g.grid = core.NewGrid(4, 4, 1, 1)
	g.snake = []core.Point{
		{X: 1, Y: 1},
		{X: 2, Y: 1},
		{X: 2, Y: 2},
		{X: 1, Y: 2},
	}

	g.placeFood()

	if !g.boardFull {
		t.Error("Expected board-full condition when no free cell exists")
	}
	if !g.gameOver {
		t.Error("Board full should end the game")
	}
	if g.food != (core.Point{X: -1, Y: -1}) {
		t.Errorf("Food = %v, expected sentinel (-1,-1)", g.food)
	}
	if g.Snapshot().State != StateBoardFull {
		t.Errorf("Snapshot state = %s, expected %s", g.Snapshot().State, StateBoardFull)
	}
}

func TestNotRestartable(t *testing.T) {
	g := newTestGame(9)

	if g.Restartable() {
		t.Error("Snake is a single-life game and must not be restartable")
	}
}

func TestDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 24}

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	in := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		in.Clear()
		if i == 20 {
			in.Set(core.ActionDown)
		}
		if i == 40 {
			in.Set(core.ActionLeft)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("Same seed and inputs diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestRenderSmokeTest(t *testing.T) {
	g := newTestGame(10)
	dst := core.NewScreen(80, 24)

	g.Render(dst)

	// The head must be drawn at its offset position.
	head := g.snake[0]
	if got := dst.Get(g.offsetX+head.X, g.offsetY+head.Y); got != HeadChar {
		t.Errorf("Head cell = %q, expected %q", got, HeadChar)
	}
	// The food must be drawn too.
	if got := dst.Get(g.offsetX+g.food.X, g.offsetY+g.food.Y); got != FoodChar {
		t.Errorf("Food cell = %q, expected %q", got, FoodChar)
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 20, ScreenH: 10})

	if !g.tooSmall {
		t.Error("A 20x10 screen cannot host a 40x20 board")
	}

	// Stepping a too-small game is a no-op, not a crash.
	in := core.NewInputFrame()
	res := g.Step(in)
	if res.State.GameOver {
		t.Error("Too-small window is not a loss condition")
	}
}
