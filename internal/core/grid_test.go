package core

import (
	"math/rand"
	"testing"
)

func TestGridContainsFullBorder(t *testing.T) {
	// Snake-style grid: 1-cell border on all sides
	g := NewGrid(40, 20, 1, 1)

	inside := []Point{
		{X: 1, Y: 1},
		{X: 38, Y: 18},
		{X: 20, Y: 10},
	}
	for _, p := range inside {
		if !g.Contains(p) {
			t.Errorf("Contains(%v) = false, expected true", p)
		}
	}

	outside := []Point{
		{X: 0, Y: 10},  // Left border column
		{X: 39, Y: 10}, // Right border column
		{X: 20, Y: 0},  // Top border row
		{X: 20, Y: 19}, // Bottom border row
		{X: -1, Y: 5},
		{X: 40, Y: 5},
	}
	for _, p := range outside {
		if g.Contains(p) {
			t.Errorf("Contains(%v) = true, expected false", p)
		}
	}
}

func TestGridContainsRowBorder(t *testing.T) {
	// Dodge-style grid: only top and bottom rows reserved
	g := NewGrid(80, 24, 0, 1)

	if !g.Contains(Point{X: 0, Y: 1}) {
		t.Error("Column 0 should be playable when InsetX is 0")
	}
	if !g.Contains(Point{X: 79, Y: 22}) {
		t.Error("Last column should be playable when InsetX is 0")
	}
	if g.Contains(Point{X: 40, Y: 0}) {
		t.Error("Top row should be reserved")
	}
	if g.Contains(Point{X: 40, Y: 23}) {
		t.Error("Bottom row should be reserved")
	}

	if g.MinRow() != 1 || g.MaxRow() != 22 {
		t.Errorf("MinRow/MaxRow = %d/%d, expected 1/22", g.MinRow(), g.MaxRow())
	}
}

func TestGridInteriorSize(t *testing.T) {
	g := NewGrid(40, 20, 1, 1)

	if g.InteriorWidth() != 38 {
		t.Errorf("InteriorWidth() = %d, expected 38", g.InteriorWidth())
	}
	if g.InteriorHeight() != 18 {
		t.Errorf("InteriorHeight() = %d, expected 18", g.InteriorHeight())
	}
}

func TestGridRandomInterior(t *testing.T) {
	g := NewGrid(40, 20, 1, 1)
	rng := rand.New(rand.NewSource(42))

	// Every sample must land inside the interior
	for i := 0; i < 1000; i++ {
		p := g.RandomInterior(rng)
		if !g.Contains(p) {
			t.Fatalf("RandomInterior() produced out-of-interior point %v", p)
		}
	}
}

func TestGridRandomInteriorDeterminism(t *testing.T) {
	g := NewGrid(40, 20, 1, 1)

	rng1 := rand.New(rand.NewSource(7))
	rng2 := rand.New(rand.NewSource(7))

	for i := 0; i < 50; i++ {
		p1 := g.RandomInterior(rng1)
		p2 := g.RandomInterior(rng2)
		if p1 != p2 {
			t.Fatalf("Same seed produced different points: %v vs %v", p1, p2)
		}
	}
}
