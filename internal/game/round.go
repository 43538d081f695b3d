package game

import (
	"time"

	"github.com/google/uuid"
	"github.com/tomz197/snake/internal/achievement"
	"github.com/tomz197/snake/internal/config"
	"github.com/tomz197/snake/internal/object"
	"github.com/tomz197/snake/internal/physics"
)

// Termination tells why a round ended.
type Termination int

const (
	TerminationNone        Termination = iota // Round continues
	TerminationDeath                          // Self or obstacle collision
	TerminationTimeExpired                    // Time Trial countdown ran out
)

// String returns the termination name.
func (t Termination) String() string {
	switch t {
	case TerminationDeath:
		return "death"
	case TerminationTimeExpired:
		return "time-expired"
	default:
		return "none"
	}
}

// Outcome reports what happened during one step.
type Outcome struct {
	Termination Termination
	Ate         bool               // Food was eaten this step
	Collected   *object.PowerUp    // Pickup collected this step
	Unlocked    []achievement.Kind // Achievements unlocked this step
}

// Round is the simulation of one play session, from reset to death,
// time expiry or abandonment.
type Round struct {
	ID        string
	Mode      config.Mode
	Grid      object.Grid
	Snake     *object.Snake
	Food      *object.Food
	Obstacles []physics.Point
	PowerUps  *object.PowerUps
	Score     int
	Start     time.Time

	rng          object.Rand
	achievements *achievement.Tracker
}

// NewRound resets the field: a length 1 snake at the center, fresh food,
// obstacles in Obstacles mode and an empty power-up manager.
func NewRound(mode config.Mode, g object.Grid, rng object.Rand, now time.Time, tracker *achievement.Tracker) *Round {
	r := &Round{
		ID:           uuid.NewString(),
		Mode:         mode,
		Grid:         g,
		Snake:        object.NewSnake(g.Center()),
		Food:         object.NewFood(g, rng),
		PowerUps:     object.NewPowerUps(now),
		Start:        now,
		rng:          rng,
		achievements: tracker,
	}
	if mode == config.ModeObstacles {
		r.Obstacles = object.GenerateObstacles(g, rng, object.ObstacleCount)
	}
	return r
}

// Steer forwards a heading request to the snake.
func (r *Round) Steer(d physics.Direction) bool {
	return r.Snake.Steer(d)
}

// Step advances the round by one tick.
func (r *Round) Step(now time.Time) Outcome {
	var out Outcome

	r.Snake.ApplySteer()
	moving := r.Snake.Moving()
	head := r.Snake.Head()
	if moving {
		head = r.Snake.NextHead(r.Grid)
	}

	shielded := r.PowerUps.Has(object.PowerUpShield, now)

	switch r.Mode {
	case config.ModeTimeTrial:
		if now.Sub(r.Start) >= TimeTrialLimit {
			out.Termination = TerminationTimeExpired
			return out
		}
	case config.ModeObstacles:
		if object.HitsObstacle(head, r.Obstacles, r.Grid.Cell) && !shielded {
			out.Termination = TerminationDeath
			return out
		}
	}

	// A stationary snake neither moves nor runs into itself.
	if moving {
		r.Snake.Advance(head)
		if r.Snake.HitsSelf() && !shielded {
			out.Termination = TerminationDeath
			return out
		}
	}

	if r.Food.EatenBy(head, r.Grid.Cell) {
		r.Food.Relocate(r.Grid, r.rng)
		r.Snake.Grow()
		points := ScorePerFood
		if r.PowerUps.Has(object.PowerUpDoubleScore, now) {
			points *= DoubleScoreRate
		}
		r.Score += points
		out.Ate = true
	}

	// Speed pickups are collected and timed like the others but do not
	// change the tick rate.
	out.Collected = r.PowerUps.Tick(now, head, r.Grid, r.rng)
	out.Unlocked = r.achievements.Evaluate(r.Metrics(now))
	return out
}

// Elapsed returns the time since the round started.
func (r *Round) Elapsed(now time.Time) time.Duration {
	return now.Sub(r.Start)
}

// Remaining returns the Time Trial countdown, clamped at zero. It is zero
// in other modes.
func (r *Round) Remaining(now time.Time) time.Duration {
	if r.Mode != config.ModeTimeTrial {
		return 0
	}
	left := TimeTrialLimit - r.Elapsed(now)
	if left < 0 {
		return 0
	}
	return left
}

// Metrics returns the values achievements are judged on.
func (r *Round) Metrics(now time.Time) achievement.Metrics {
	return achievement.Metrics{
		Score:          r.Score,
		Elapsed:        r.Elapsed(now),
		Length:         r.Snake.Target,
		ActivePowerUps: r.PowerUps.ActiveCount(),
	}
}
