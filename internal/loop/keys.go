package loop

import (
	"github.com/tomz197/snake/internal/game"
	"github.com/tomz197/snake/internal/input"
)

// keyEvents maps keys without payload to game events.
var keyEvents = map[input.Key]game.EventKind{
	input.KeyQuit:    game.EventQuit,
	input.KeyUp:      game.EventUp,
	input.KeyDown:    game.EventDown,
	input.KeyLeft:    game.EventLeft,
	input.KeyRight:   game.EventRight,
	input.KeyConfirm: game.EventConfirm,
	input.KeyBack:    game.EventBack,
	input.KeyEscape:  game.EventEscape,
	input.KeyMode:    game.EventMode,
}

// Events converts decoded presses into game events, keeping their order.
func Events(presses []input.Press) []game.Event {
	events := make([]game.Event, 0, len(presses))
	for _, p := range presses {
		if p.Key == input.KeyDigit {
			events = append(events, game.Select(p.Digit))
			continue
		}
		if kind, ok := keyEvents[p.Key]; ok {
			events = append(events, game.Key(kind))
		}
	}
	return events
}
