package dodge

import (
	"math/rand"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
)

// Asteroid is an obstacle scrolling leftward across the board.
// Speed is drawn once at spawn and never changes.
type Asteroid struct {
	Pos   core.Point
	Speed int // Cells per move, 1..MaxSpeed
}

// Field owns the active asteroid set: movement, off-screen culling, and
// difficulty-scaled spawning.
type Field struct {
	asteroids []Asteroid
	rng       *rand.Rand
	grid      core.Grid
	cfg       config.SpawnerConfig
	ticker    int // Moves since the last spawn
}

// NewField creates an asteroid field over the given grid.
func NewField(seed int64, grid core.Grid, cfg config.SpawnerConfig) *Field {
	f := &Field{
		asteroids: make([]Asteroid, 0, 16),
		grid:      grid,
		cfg:       cfg,
	}
	f.Reset(seed)
	return f
}

// Reset clears all asteroids and reseeds the RNG.
func (f *Field) Reset(seed int64) {
	f.asteroids = f.asteroids[:0]
	f.rng = rand.New(rand.NewSource(seed))
	f.ticker = 0
}

// Asteroids returns the current active set.
func (f *Field) Asteroids() []Asteroid {
	return f.asteroids
}

// Move advances every asteroid leftward by its own speed.
func (f *Field) Move() {
	for i := range f.asteroids {
		f.asteroids[i].Pos.X -= f.asteroids[i].Speed
	}
}

// Cull removes asteroids whose column has gone negative and returns how
// many were removed. Each culled asteroid counts as dodged.
func (f *Field) Cull() int {
	kept := f.asteroids[:0]
	culled := 0
	for _, a := range f.asteroids {
		if a.Pos.X < 0 {
			culled++
			continue
		}
		kept = append(kept, a)
	}
	f.asteroids = kept
	return culled
}

// MaybeSpawn spawns a new asteroid when the difficulty-scaled cadence is
// due. The asteroid appears in the rightmost column at a random interior
// row with a random speed in [1, MaxSpeed].
func (f *Field) MaybeSpawn(score int) {
	f.ticker++
	if f.ticker < SpawnInterval(f.cfg, score) {
		return
	}
	f.ticker = 0

	f.asteroids = append(f.asteroids, Asteroid{
		Pos: core.Point{
			X: f.grid.Width - 1,
			Y: f.grid.MinRow() + f.rng.Intn(f.grid.InteriorHeight()),
		},
		Speed: 1 + f.rng.Intn(core.Max(1, f.cfg.MaxSpeed)),
	})
}

// CollidesWith reports whether any asteroid occupies the given position.
func (f *Field) CollidesWith(p core.Point) bool {
	for _, a := range f.asteroids {
		if a.Pos == p {
			return true
		}
	}
	return false
}

// SpawnInterval returns the number of moves between spawns at the given
// score: max(min_interval, base_interval - score/difficulty_threshold).
// The interval shrinks as the score grows, floored at min_interval.
// A zero threshold disables scaling.
func SpawnInterval(cfg config.SpawnerConfig, score int) int {
	interval := cfg.BaseInterval
	if cfg.DifficultyThreshold > 0 {
		interval -= score / cfg.DifficultyThreshold
	}
	return core.Max(cfg.MinInterval, interval)
}
