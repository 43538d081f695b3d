package object

import "github.com/tomz197/snake/internal/physics"

// ObstacleCount is the number of blocking cells placed per Obstacles round.
const ObstacleCount = 5

// GenerateObstacles places count blocking cells at random positions. Cells
// may coincide with each other or with the starting position.
func GenerateObstacles(g Grid, rng Rand, count int) []physics.Point {
	if count < 0 {
		count = 0
	}
	obstacles := make([]physics.Point, 0, count)
	for i := 0; i < count; i++ {
		obstacles = append(obstacles, g.RandomCell(rng))
	}
	return obstacles
}

// HitsObstacle reports whether head overlaps any obstacle cell.
func HitsObstacle(head physics.Point, obstacles []physics.Point, cell int) bool {
	for _, o := range obstacles {
		if physics.Overlaps(head, o, cell) {
			return true
		}
	}
	return false
}
