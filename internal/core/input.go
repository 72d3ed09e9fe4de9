package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone Action = iota
	ActionPlay        // P - start or restart a round
	ActionQuit        // Q - leave the game
	ActionFlap        // Space - upward impulse
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPlay:
		return "Play"
	case ActionQuit:
		return "Quit"
	case ActionFlap:
		return "Flap"
	default:
		return "Unknown"
	}
}

// DefaultQueueSize bounds the number of key presses buffered between ticks.
const DefaultQueueSize = 8

// InputQueue buffers discrete key presses that arrive between ticks.
// The game consumes at most one action per tick, so taps that land in the
// same frame are delivered on consecutive ticks instead of being dropped.
type InputQueue struct {
	actions []Action
	limit   int
}

// NewInputQueue creates a queue holding at most limit actions.
// A non-positive limit falls back to DefaultQueueSize.
func NewInputQueue(limit int) *InputQueue {
	if limit <= 0 {
		limit = DefaultQueueSize
	}
	return &InputQueue{
		actions: make([]Action, 0, limit),
		limit:   limit,
	}
}

// Push appends an action. ActionNone is ignored, and presses beyond the
// limit are dropped so a held key cannot build an unbounded backlog.
func (q *InputQueue) Push(a Action) {
	if a == ActionNone || len(q.actions) >= q.limit {
		return
	}
	q.actions = append(q.actions, a)
}

// Pop removes and returns the oldest action, or ActionNone when empty.
func (q *InputQueue) Pop() Action {
	if len(q.actions) == 0 {
		return ActionNone
	}
	a := q.actions[0]
	q.actions = append(q.actions[:0], q.actions[1:]...)
	return a
}
