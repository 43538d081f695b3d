package object

import "github.com/tomz197/snake/internal/physics"

// Food is the single item the snake eats to grow.
type Food struct {
	Pos physics.Point
}

// NewFood places food on a random cell. It does not avoid the snake or
// obstacles.
func NewFood(g Grid, rng Rand) *Food {
	return &Food{Pos: g.RandomCell(rng)}
}

// EatenBy reports whether a head at head overlaps the food.
func (f *Food) EatenBy(head physics.Point, cell int) bool {
	return physics.Overlaps(head, f.Pos, cell)
}

// Relocate moves the food to a random cell other than its current one.
// A single-cell field has nowhere else to go and keeps the position.
func (f *Food) Relocate(g Grid, rng Rand) {
	if g.Cols()*g.Rows() <= 1 {
		return
	}
	prev := f.Pos
	for f.Pos == prev {
		f.Pos = g.RandomCell(rng)
	}
}
