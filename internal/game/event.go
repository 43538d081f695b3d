package game

import "github.com/tomz197/snake/internal/physics"

// EventKind is an abstract input the state machine understands.
type EventKind int

const (
	EventQuit    EventKind = iota // Leave the game from any state
	EventSelect                   // Numbered menu choice, see Event.N
	EventUp                       // Arrow up: steer, or raise speed in settings
	EventDown                     // Arrow down: steer, or lower speed in settings
	EventLeft                     // Arrow left: steer
	EventRight                    // Arrow right: steer
	EventBack                     // Return to the menu from a sub-screen
	EventEscape                   // Abandon a round, or quit from game over
	EventMode                     // Change mode in settings, main menu from game over
	EventConfirm                  // Play again from game over
)

// Event is one discrete input.
type Event struct {
	Kind EventKind
	N    int // Choice number for EventSelect
}

// Select returns a numbered menu choice event.
func Select(n int) Event {
	return Event{Kind: EventSelect, N: n}
}

// Key returns an event of the given kind with no payload.
func Key(kind EventKind) Event {
	return Event{Kind: kind}
}

// direction maps steering events to headings.
func (e Event) direction() physics.Direction {
	switch e.Kind {
	case EventUp:
		return physics.Up
	case EventDown:
		return physics.Down
	case EventLeft:
		return physics.Left
	case EventRight:
		return physics.Right
	default:
		return physics.None
	}
}
