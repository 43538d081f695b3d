// Package object holds the entities that live on the playing field: the
// snake, food, obstacles and power-ups.
package object

import (
	"fmt"

	"github.com/tomz197/snake/internal/physics"
	"golang.org/x/exp/rand"
)

// Rand is the randomness the field needs. *rand.Rand from
// golang.org/x/exp/rand satisfies it; tests can script it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a seeded generator for spawning.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Grid represents the field dimensions in pixels and its cell quantum.
type Grid struct {
	Width  int
	Height int
	Cell   int
}

// NewGrid validates the dimensions and returns a grid. A field smaller than
// one cell cannot host anything and is a programming error.
func NewGrid(width, height, cell int) Grid {
	if cell <= 0 || width < cell || height < cell {
		panic(fmt.Sprintf("object: invalid grid %dx%d cell %d", width, height, cell))
	}
	return Grid{Width: width, Height: height, Cell: cell}
}

// Cols returns the number of whole cells across.
func (g Grid) Cols() int { return g.Width / g.Cell }

// Rows returns the number of whole cells down.
func (g Grid) Rows() int { return g.Height / g.Cell }

// Center returns the cell-aligned middle of the field.
func (g Grid) Center() physics.Point {
	return physics.Point{
		X: g.Width / 2 / g.Cell * g.Cell,
		Y: g.Height / 2 / g.Cell * g.Cell,
	}
}

// WrapPosition folds p back onto the field (see physics.Wrap).
func (g Grid) WrapPosition(p physics.Point) physics.Point {
	return physics.WrapPoint(p, g.Width, g.Height, g.Cell)
}

// RandomCell picks a uniformly random cell-aligned position whose cell lies
// entirely inside the field.
func (g Grid) RandomCell(rng Rand) physics.Point {
	return physics.Point{
		X: rng.Intn((g.Width-g.Cell)/g.Cell+1) * g.Cell,
		Y: rng.Intn((g.Height-g.Cell)/g.Cell+1) * g.Cell,
	}
}

// Contains reports whether p lies on the field.
func (g Grid) Contains(p physics.Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}
