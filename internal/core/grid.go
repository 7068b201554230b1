package core

import "math/rand"

// Grid defines the playable bounds of a game board. The interior is the
// full rectangle minus the reserved border cells on each axis: snake
// reserves a 1-cell border on all sides, dodge reserves only the top and
// bottom rows. A Grid is immutable after creation.
type Grid struct {
	Width  int
	Height int
	InsetX int // Border columns reserved on the left and right
	InsetY int // Border rows reserved on the top and bottom
}

// NewGrid creates a grid with the given dimensions and border insets.
func NewGrid(width, height, insetX, insetY int) Grid {
	return Grid{Width: width, Height: height, InsetX: insetX, InsetY: insetY}
}

// Contains reports whether the point lies within the playable interior.
func (g Grid) Contains(p Point) bool {
	return p.X >= g.InsetX && p.X < g.Width-g.InsetX &&
		p.Y >= g.InsetY && p.Y < g.Height-g.InsetY
}

// InteriorWidth returns the number of playable columns.
func (g Grid) InteriorWidth() int {
	return g.Width - 2*g.InsetX
}

// InteriorHeight returns the number of playable rows.
func (g Grid) InteriorHeight() int {
	return g.Height - 2*g.InsetY
}

// MinRow returns the first playable row.
func (g Grid) MinRow() int {
	return g.InsetY
}

// MaxRow returns the last playable row.
func (g Grid) MaxRow() int {
	return g.Height - g.InsetY - 1
}

// RandomInterior samples a uniformly random point within the interior.
func (g Grid) RandomInterior(rng *rand.Rand) Point {
	return Point{
		X: g.InsetX + rng.Intn(g.InteriorWidth()),
		Y: g.InsetY + rng.Intn(g.InteriorHeight()),
	}
}
