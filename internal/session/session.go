// Package session drives a tetris.Board one tick at a time. It owns the
// Running / ClearingLines / GameOver state machine, paces gravity and the
// row-clear animation in ticks, and turns semantic input into board intents.
// A session is deterministic: equal seeds and equal input frames produce equal
// snapshots.
package session

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blocchi/internal/core"
	"github.com/vovakirdan/blocchi/internal/tetris"
)

// State is the externally visible status of a session.
type State struct {
	Phase  tetris.Phase
	Paused bool
	Lines  int // rows cleared since the last reset
	Pieces int // pieces locked since the last reset
	Tick   uint64
}

// GameOver reports whether the session has reached its terminal phase.
func (s State) GameOver() bool {
	return s.Phase.Terminal()
}

// StepResult is returned by Step after each tick. Besides the state it
// carries the facts that happened during the tick.
type StepResult struct {
	State       State
	Locked      bool // a piece was written into the grid
	DropRows    int  // rows travelled by a hard drop
	RowsFilled  int  // rows completed by the lock, clearing starts
	RowsCleared int  // rows removed when the clear animation finished
	Spawned     bool // a new piece came into play
	Quit        bool // the input asked to end the session
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger lock, clear and game-over events go to.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// Session is one game on one board.
type Session struct {
	cfg    core.RuntimeConfig
	board  *tetris.Board
	logger *log.Logger

	phase  tetris.Phase
	paused bool
	tick   uint64
	lines  int
	pieces int

	gravityTicks int // ticks since the last gravity step
	clearTicks   int // ticks since the last clear-animation step
	cursor       tetris.Cell
}

// New returns a session. Call Reset before Step.
func New(opts ...Option) *Session {
	s := &Session{
		logger: log.New(io.Discard),
		cursor: tetris.NoCell,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reset starts a new game with a fresh board seeded from cfg.
func (s *Session) Reset(cfg core.RuntimeConfig) {
	s.resetWithBoard(cfg, tetris.New(cfg.Seed))
}

func (s *Session) resetWithBoard(cfg core.RuntimeConfig, b *tetris.Board) {
	s.cfg = cfg.Normalized()
	s.board = b
	s.board.Spawn()
	s.restart()
	s.logger.Debug("session reset", "seed", s.cfg.Seed, "current", s.board.Current().Shape, "next", s.board.Next().Shape)
}

// restart clears the per-game counters. The board keeps its random source so
// a restarted game continues the same deterministic piece stream.
func (s *Session) restart() {
	s.phase = tetris.PhaseRunning
	s.paused = false
	s.tick = 0
	s.lines = 0
	s.pieces = 0
	s.gravityTicks = 0
	s.clearTicks = 0
	s.cursor = tetris.NoCell
}

// Config returns the runtime config the session was reset with.
func (s *Session) Config() core.RuntimeConfig {
	return s.cfg
}

// Board returns the board for inspection. Callers must not mutate it; use
// Clone for lookahead.
func (s *Session) Board() *tetris.Board {
	s.mustBeReset()
	return s.board
}

// State returns the current session state.
func (s *Session) State() State {
	return State{
		Phase:  s.phase,
		Paused: s.paused,
		Lines:  s.lines,
		Pieces: s.pieces,
		Tick:   s.tick,
	}
}

// ClearCursor returns the last cell consumed by the clear animation, or
// NoCell when no animation step has run.
func (s *Session) ClearCursor() tetris.Cell {
	return s.cursor
}

// Step advances the session by one tick.
func (s *Session) Step(in core.InputFrame) StepResult {
	s.mustBeReset()
	s.tick++

	if in.Has(core.ActionQuit) {
		return StepResult{State: s.State(), Quit: true}
	}

	if in.Has(core.ActionRestart) && s.phase.Terminal() {
		s.board.Reset()
		s.restart()
		s.logger.Debug("session restarted", "current", s.board.Current().Shape)
		return StepResult{State: s.State(), Spawned: true}
	}

	if in.Has(core.ActionPause) && !s.phase.Terminal() {
		s.paused = !s.paused
	}

	if s.paused || s.phase.Terminal() {
		return StepResult{State: s.State()}
	}

	var res StepResult
	switch s.phase {
	case tetris.PhaseRunning:
		s.stepRunning(in, &res)
	case tetris.PhaseClearingLines:
		s.stepClearing(&res)
	}
	res.State = s.State()
	return res
}

func (s *Session) stepRunning(in core.InputFrame, res *StepResult) {
	switch {
	case in.Has(core.ActionLeft) && !in.Has(core.ActionRight):
		s.board.Move(tetris.DirLeft)
	case in.Has(core.ActionRight) && !in.Has(core.ActionLeft):
		s.board.Move(tetris.DirRight)
	}
	if in.Has(core.ActionRotate) {
		s.board.Rotate()
	}

	if in.Has(core.ActionHardDrop) {
		rows, _ := s.board.HardDrop()
		res.DropRows = rows
		s.lock(res)
		return
	}

	interval := s.cfg.DescendEvery
	if in.Has(core.ActionSoftDrop) {
		interval = min(interval, s.cfg.SoftDropEvery)
	}
	s.gravityTicks++
	if s.gravityTicks < interval {
		return
	}
	s.gravityTicks = 0
	if s.board.Descend().Locked {
		s.lock(res)
	}
}

// lock writes the settled piece and either starts the clear animation or
// brings the next piece in.
func (s *Session) lock(res *StepResult) {
	piece := s.board.Current()
	filled := s.board.LockAndCheckLines()
	s.pieces++
	s.gravityTicks = 0
	res.Locked = true
	s.logger.Debug("piece locked", "shape", piece.Shape, "rotation", piece.Rotation, "row", piece.Anchor.Row, "col", piece.Anchor.Col)

	if filled > 0 {
		res.RowsFilled = filled
		s.phase = s.phase.Next(tetris.EventRowsFilled)
		s.cursor = tetris.NoCell
		s.clearTicks = 0
		return
	}
	s.advance(res)
}

func (s *Session) stepClearing(res *StepResult) {
	s.clearTicks++
	if s.clearTicks < s.cfg.ClearStepEvery {
		return
	}
	s.clearTicks = 0

	if c, ok := s.board.FilledCellAfter(s.cursor); ok {
		s.cursor = c
		return
	}

	cleared := s.board.CollapseFilledRows()
	s.lines += cleared
	res.RowsCleared = cleared
	s.cursor = tetris.NoCell
	s.phase = s.phase.Next(tetris.EventRowsCollapsed)
	s.logger.Debug("rows cleared", "rows", cleared, "lines", s.lines)
	s.advance(res)
}

func (s *Session) advance(res *StepResult) {
	if s.board.Advance() == tetris.SpawnBlocked {
		s.phase = s.phase.Next(tetris.EventSpawnBlocked)
		s.logger.Debug("game over", "pieces", s.pieces, "lines", s.lines, "tick", s.tick)
		return
	}
	res.Spawned = true
}

func (s *Session) mustBeReset() {
	if s.board == nil {
		panic("session: Step before Reset")
	}
}
