package object

import (
	"fmt"

	"github.com/tomz197/snake/internal/physics"
)

// Snake is the player-controlled body. Segments are ordered tail first,
// head last.
type Snake struct {
	Segments []physics.Point
	Target   int               // Length the body grows to
	Dir      physics.Direction // Current heading
	pending  physics.Direction // Requested heading for the next step
}

// NewSnake creates a stationary snake of length 1 at head.
func NewSnake(head physics.Point) *Snake {
	return &Snake{
		Segments: []physics.Point{head},
		Target:   1,
	}
}

// Head returns the newest segment.
func (s *Snake) Head() physics.Point {
	return s.Segments[len(s.Segments)-1]
}

// Len returns the current number of segments.
func (s *Snake) Len() int {
	return len(s.Segments)
}

// Moving reports whether the snake has a heading yet.
func (s *Snake) Moving() bool {
	return s.Dir != physics.None
}

// Steer records a heading change for the next step. The most recent
// accepted request wins. Reversals of the current heading are rejected and
// leave any earlier request in place.
func (s *Snake) Steer(d physics.Direction) bool {
	if d == physics.None || physics.Reverses(s.Dir, d) {
		return false
	}
	s.pending = d
	return true
}

// Pending returns the heading that will be applied on the next step.
func (s *Snake) Pending() physics.Direction {
	return s.pending
}

// ApplySteer turns the snake to the pending heading, if any.
func (s *Snake) ApplySteer() {
	if s.pending != physics.None && !physics.Reverses(s.Dir, s.pending) {
		s.Dir = s.pending
	}
	s.pending = physics.None
}

// NextHead returns where the head moves this step, wrapped onto the grid.
func (s *Snake) NextHead(g Grid) physics.Point {
	return g.WrapPosition(s.Head().Add(s.Dir.Vector(g.Cell)))
}

// Advance appends head and drops the oldest segment while the body is
// longer than Target.
func (s *Snake) Advance(head physics.Point) {
	s.mustBeValid()
	s.Segments = append(s.Segments, head)
	for len(s.Segments) > s.Target {
		s.Segments = s.Segments[1:]
	}
}

// Grow raises the target length by one. The body catches up on the next
// Advance.
func (s *Snake) Grow() {
	s.Target++
}

// HitsSelf reports whether the head shares a cell with any other segment.
func (s *Snake) HitsSelf() bool {
	head := s.Head()
	for _, seg := range s.Segments[:len(s.Segments)-1] {
		if seg == head {
			return true
		}
	}
	return false
}

// mustBeValid panics when the body invariants are broken.
func (s *Snake) mustBeValid() {
	if s.Target <= 0 {
		panic(fmt.Sprintf("object: snake target length %d", s.Target))
	}
	if len(s.Segments) == 0 {
		panic("object: snake has no segments")
	}
}
