package tetris

import "fmt"

// Phase is the game state a collaborator driving a Board is in.
// Running is the initial phase and GameOver is terminal.
type Phase uint8

const (
	PhaseRunning Phase = iota
	PhaseClearingLines
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseClearingLines:
		return "clearing_lines"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event triggers a phase transition.
type Event uint8

const (
	// EventRowsFilled: a locked piece completed one or more rows.
	EventRowsFilled Event = iota
	// EventRowsCollapsed: the filled rows were removed.
	EventRowsCollapsed
	// EventSpawnBlocked: the promoted piece overlaps the stack.
	EventSpawnBlocked
)

func (e Event) String() string {
	switch e {
	case EventRowsFilled:
		return "rows_filled"
	case EventRowsCollapsed:
		return "rows_collapsed"
	case EventSpawnBlocked:
		return "spawn_blocked"
	default:
		return "unknown"
	}
}

// Next returns the phase the event leads to.
// Panics on a transition the state machine does not define.
func (p Phase) Next(e Event) Phase {
	switch {
	case p == PhaseRunning && e == EventRowsFilled:
		return PhaseClearingLines
	case p == PhaseRunning && e == EventSpawnBlocked:
		return PhaseGameOver
	case p == PhaseClearingLines && e == EventRowsCollapsed:
		return PhaseRunning
	}
	panic(fmt.Sprintf("tetris: no transition from %v on %v", p, e))
}

// Terminal reports whether no event leaves the phase.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver
}
