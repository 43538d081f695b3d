// Package physics provides grid geometry and cell collision checks.
package physics

// Point is a position on the field in pixel units. Game objects always sit
// on multiples of the cell size.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Direction is a heading on the grid.
type Direction int

const (
	None Direction = iota // Stationary; only before the first steer of a round
	Up
	Down
	Left
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Vector returns the displacement of one step in d, scaled by cell.
func (d Direction) Vector(cell int) Point {
	switch d {
	case Up:
		return Point{Y: -cell}
	case Down:
		return Point{Y: cell}
	case Left:
		return Point{X: -cell}
	case Right:
		return Point{X: cell}
	default:
		return Point{}
	}
}

// Horizontal reports whether d moves along the X axis.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// Vertical reports whether d moves along the Y axis.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

// Reverses reports whether turning from current to next would send the
// snake back onto itself (opposite heading on the same axis).
func Reverses(current, next Direction) bool {
	switch current {
	case Up:
		return next == Down
	case Down:
		return next == Up
	case Left:
		return next == Right
	case Right:
		return next == Left
	default:
		return false
	}
}

// Wrap folds a coordinate back onto the field. Leaving past the far edge
// re-enters at 0; leaving past the near edge re-enters at bound-cell.
// The two sides are intentionally not symmetric when bound is not a
// multiple of cell.
func Wrap(pos, bound, cell int) int {
	if pos >= bound {
		return 0
	}
	if pos < 0 {
		return bound - cell
	}
	return pos
}

// WrapPoint applies Wrap to both axes.
func WrapPoint(p Point, width, height, cell int) Point {
	return Point{
		X: Wrap(p.X, width, cell),
		Y: Wrap(p.Y, height, cell),
	}
}

// Overlaps reports whether two cells of size cell overlap, i.e. their
// positions differ by less than one cell on both axes.
func Overlaps(a, b Point, cell int) bool {
	return abs(a.X-b.X) < cell && abs(a.Y-b.Y) < cell
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
