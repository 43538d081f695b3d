package config

import "strings"

// Mode selects the rule set for a round.
type Mode int

const (
	ModeClassic   Mode = iota // Wrap-around field, no timer
	ModeTimeTrial             // Round ends when the countdown runs out
	ModeObstacles             // Static blocking cells
)

// String returns the persisted name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeTimeTrial:
		return "TIME_TRIAL"
	case ModeObstacles:
		return "OBSTACLES"
	default:
		return "CLASSIC"
	}
}

// Label returns a human readable name for menus.
func (m Mode) Label() string {
	switch m {
	case ModeTimeTrial:
		return "Time Trial"
	case ModeObstacles:
		return "Obstacles"
	default:
		return "Classic"
	}
}

// ParseMode converts a persisted mode name back into a Mode.
// ok is false for unknown names, in which case ModeClassic is returned.
func ParseMode(name string) (m Mode, ok bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "CLASSIC":
		return ModeClassic, true
	case "TIME_TRIAL":
		return ModeTimeTrial, true
	case "OBSTACLES":
		return ModeObstacles, true
	default:
		return ModeClassic, false
	}
}

// Speed bounds (ticks per second while playing).
const (
	MinSpeed     = 5
	MaxSpeed     = 30
	DefaultSpeed = 15
)

// Field and frame defaults.
const (
	DefaultWidth      = 800
	DefaultHeight     = 600
	DefaultCell       = 20
	DefaultFPS        = 60
	DefaultDifficulty = "Normal"
)

// Settings holds the player's preferences and the field geometry.
// Only Speed, Difficulty and Mode are persisted.
type Settings struct {
	Width      int    // Field width in pixels
	Height     int    // Field height in pixels
	Cell       int    // Grid quantum; every position is a multiple of it
	Speed      int    // Ticks per second while playing
	Difficulty string // Free-form label, carried through unchanged
	FPS        int    // Refresh rate for non-playing screens
	Mode       Mode
}

// DefaultSettings returns the settings used on first run or when the
// settings file cannot be read.
func DefaultSettings() Settings {
	return Settings{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Cell:       DefaultCell,
		Speed:      DefaultSpeed,
		Difficulty: DefaultDifficulty,
		FPS:        DefaultFPS,
		Mode:       ModeClassic,
	}
}

// ClampSpeed limits speed to [MinSpeed, MaxSpeed].
func ClampSpeed(speed int) int {
	if speed < MinSpeed {
		return MinSpeed
	}
	if speed > MaxSpeed {
		return MaxSpeed
	}
	return speed
}
