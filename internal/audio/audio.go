// Package audio defines the game's sound cues and the sink they are played
// through. Audio is best effort: callers log a failed cue and carry on.
package audio

import "errors"

// Cue is a discrete sound trigger.
type Cue int

const (
	CueEaten Cue = iota
	CueDied
	CueHighScore
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueEaten:
		return "eaten"
	case CueDied:
		return "died"
	case CueHighScore:
		return "highscore"
	default:
		return "unknown"
	}
}

// Cues lists every cue.
func Cues() []Cue {
	return []Cue{CueEaten, CueDied, CueHighScore}
}

// ErrUnknownCue is returned when a sink has nothing loaded for a cue.
var ErrUnknownCue = errors.New("audio: unknown cue")

// Sink receives sound cues.
type Sink interface {
	Play(c Cue) error
}

// Nop is a silent sink used when no audio device is available.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Cue) error { return nil }

var _ Sink = Nop{}
