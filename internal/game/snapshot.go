package game

import (
	"time"

	"github.com/tomz197/snake/internal/achievement"
	"github.com/tomz197/snake/internal/config"
	"github.com/tomz197/snake/internal/object"
	"github.com/tomz197/snake/internal/physics"
)

// EffectView describes one active power-up effect.
type EffectView struct {
	Kind      object.PowerUpKind
	Remaining time.Duration
}

// AchievementView describes one achievement and whether it is unlocked.
type AchievementView struct {
	Name        string
	Description string
	Unlocked    bool
}

// Snapshot is a read-only copy of everything a renderer needs. It shares
// no memory with the game.
type Snapshot struct {
	State    State
	Settings config.Settings
	Grid     object.Grid

	// Round data; only meaningful when HasRound is set.
	HasRound  bool
	RoundID   string
	Mode      config.Mode
	Segments  []physics.Point
	Heading   physics.Direction
	Food      physics.Point
	Obstacles []physics.Point
	Pending   *object.PowerUp
	Effects   []EffectView
	Score     int
	Elapsed   time.Duration
	Remaining time.Duration // Time Trial countdown

	Termination  Termination
	NewHighScore bool

	Achievements []AchievementView
	Unlocked     []string // Achievements unlocked so far, in definition order
	Scores       []int
}

// Snapshot captures the current game for presentation.
func (g *Game) Snapshot() Snapshot {
	now := g.clock.Now()
	s := Snapshot{
		State:        g.state,
		Settings:     g.settings,
		Grid:         g.grid,
		Mode:         g.settings.Mode,
		Termination:  g.lastTermination,
		NewHighScore: g.lastHighScore,
		Scores:       g.Scores(),
	}

	for _, k := range achievement.All() {
		unlocked := g.tracker.Unlocked(k)
		s.Achievements = append(s.Achievements, AchievementView{
			Name:        k.Name(),
			Description: k.Description(),
			Unlocked:    unlocked,
		})
		if unlocked {
			s.Unlocked = append(s.Unlocked, k.Name())
		}
	}

	r := g.round
	if r == nil {
		return s
	}
	// A finished round is frozen at the moment it ended.
	if g.state == StateGameOver {
		now = g.endedAt
	}
	s.HasRound = true
	s.RoundID = r.ID
	s.Mode = r.Mode
	s.Segments = append([]physics.Point(nil), r.Snake.Segments...)
	s.Heading = r.Snake.Dir
	s.Food = r.Food.Pos
	s.Obstacles = append([]physics.Point(nil), r.Obstacles...)
	s.Score = r.Score
	s.Elapsed = r.Elapsed(now)
	s.Remaining = r.Remaining(now)
	if r.PowerUps.Pending != nil {
		p := *r.PowerUps.Pending
		s.Pending = &p
	}
	for _, p := range r.PowerUps.Active {
		if p.Expired(now) {
			continue
		}
		s.Effects = append(s.Effects, EffectView{Kind: p.Kind, Remaining: p.Remaining(now)})
	}
	return s
}
