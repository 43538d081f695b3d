package game

import "time"

// Game configuration constants.
// All tunable round parameters are centralized here for easy adjustment.

// Scoring
const (
	ScorePerFood    = 10
	DoubleScoreRate = 2
)

// Time Trial
const (
	TimeTrialLimit = 60 * time.Second
)
