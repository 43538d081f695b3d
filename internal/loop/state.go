package loop

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/snake/internal/draw"
	"github.com/tomz197/snake/internal/game"
	"github.com/tomz197/snake/internal/input"
)

// State holds everything the loop carries between frames. The game itself
// owns all simulation state; this only tracks input and timing around it.
type State struct {
	Game     *game.Game
	Running  bool
	Pending  []game.Event // Events collected since the last tick
	NextTick time.Time

	stream       *input.Stream
	canvas       *draw.Canvas
	writer       *draw.ChunkWriter
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
}

// Queue adds events to be delivered on the next tick.
func (s *State) Queue(events ...game.Event) {
	s.Pending = append(s.Pending, events...)
}

// TickDue reports whether the game should tick at now. A pending quit is
// always delivered right away.
func (s *State) TickDue(now time.Time) bool {
	if !now.Before(s.NextTick) {
		return true
	}
	for _, ev := range s.Pending {
		if ev.Kind == game.EventQuit {
			return true
		}
	}
	return false
}

// Tick hands the pending events to the game and schedules the next tick.
func (s *State) Tick(now time.Time) {
	events := s.Pending
	s.Pending = nil
	s.Running = s.Game.Tick(events)
	s.NextTick = now.Add(s.Game.TickInterval())
}
