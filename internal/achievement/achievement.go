// Package achievement evaluates the fixed set of per-round achievements.
package achievement

import "time"

// Kind identifies an achievement.
type Kind int

const (
	SpeedDemon Kind = iota
	SnakeMaster
	PowerPlayer
	HighScorer
	kindCount
)

// Thresholds.
const (
	speedDemonScore  = 100
	speedDemonWithin = 60 * time.Second
	snakeMasterLen   = 20
	powerPlayerCount = 5
	highScorerScore  = 500
)

// Metrics is the snapshot of round progress the predicates look at.
type Metrics struct {
	Score          int
	Elapsed        time.Duration
	Length         int // Target length of the snake
	ActivePowerUps int
}

type definition struct {
	name        string
	description string
	met         func(Metrics) bool
}

var definitions = [kindCount]definition{
	SpeedDemon: {
		name:        "Speed Demon",
		description: "Score 100 points in under 60 seconds",
		met: func(m Metrics) bool {
			return m.Score >= speedDemonScore && m.Elapsed <= speedDemonWithin
		},
	},
	SnakeMaster: {
		name:        "Snake Master",
		description: "Reach a length of 20",
		met:         func(m Metrics) bool { return m.Length >= snakeMasterLen },
	},
	PowerPlayer: {
		name:        "Power Player",
		description: "Collect 5 power-ups",
		met:         func(m Metrics) bool { return m.ActivePowerUps >= powerPlayerCount },
	},
	HighScorer: {
		name:        "High Scorer",
		description: "Score 500 points",
		met:         func(m Metrics) bool { return m.Score >= highScorerScore },
	},
}

// All returns every kind in display order.
func All() []Kind {
	return []Kind{SpeedDemon, SnakeMaster, PowerPlayer, HighScorer}
}

// Name returns the display name.
func (k Kind) Name() string { return definitions[k].name }

// Description returns what the player has to do.
func (k Kind) Description() string { return definitions[k].description }

// Met reports whether m satisfies the achievement.
func (k Kind) Met(m Metrics) bool { return definitions[k].met(m) }

// String implements fmt.Stringer.
func (k Kind) String() string { return k.Name() }

// Tracker holds which achievements have been unlocked. Unlocks last for the
// life of the tracker.
type Tracker struct {
	unlocked [kindCount]bool
}

// NewTracker returns a tracker with everything locked.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Evaluate checks every locked achievement against m and returns the kinds
// unlocked by this call.
func (t *Tracker) Evaluate(m Metrics) []Kind {
	var unlocked []Kind
	for _, k := range All() {
		if t.unlocked[k] {
			continue
		}
		if k.Met(m) {
			t.unlocked[k] = true
			unlocked = append(unlocked, k)
		}
	}
	return unlocked
}

// Unlocked reports whether k has been unlocked.
func (t *Tracker) Unlocked(k Kind) bool {
	return t.unlocked[k]
}

// UnlockedKinds returns the unlocked kinds in display order.
func (t *Tracker) UnlockedKinds() []Kind {
	var out []Kind
	for _, k := range All() {
		if t.unlocked[k] {
			out = append(out, k)
		}
	}
	return out
}
