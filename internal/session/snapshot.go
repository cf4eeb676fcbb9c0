package session

import "github.com/vovakirdan/blocchi/internal/tetris"

// Snapshot captures the complete session state for determinism testing.
type Snapshot struct {
	Tick   uint64
	Phase  tetris.Phase
	Paused bool
	Lines  int
	Pieces int
	Cursor tetris.Cell
	Board  tetris.Snapshot
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	s.mustBeReset()
	return Snapshot{
		Tick:   s.tick,
		Phase:  s.phase,
		Paused: s.paused,
		Lines:  s.lines,
		Pieces: s.pieces,
		Cursor: s.cursor,
		Board:  s.board.Snapshot(),
	}
}
