// Package tetris is the falling-block puzzle engine: the occupancy grid, the
// current and next piece, and the rules for moving, rotating, descending,
// locking and clearing rows.
//
// The engine is synchronous and single-threaded. Every intent either commits
// fully or leaves the board untouched; timing and presentation belong to the
// caller. Contract breaches (using a board before Spawn, locking a piece that
// has not settled, asking for an orientation a shape lacks) panic. Ordinary
// negative results such as a blocked move are returned as values.
package tetris

import "math/rand"

type lockState uint8

const (
	lockNone    lockState = iota
	lockSettled           // last descend returned Locked
	lockWritten           // settled cells are in the grid, waiting for Advance
)

// Board owns the grid, the piece queue and the random source pieces are drawn
// from. One Board serves one game session.
type Board struct {
	grid  Grid
	queue Queue
	rng   Source
	lock  lockState
}

// NewBoard returns an uninitialized board drawing pieces from rng.
// Call Spawn before any gameplay intent.
func NewBoard(rng Source) *Board {
	if rng == nil {
		panic("tetris: nil random source")
	}
	return &Board{rng: rng}
}

// New returns a board seeded with seed, with its first two pieces drawn.
func New(seed int64) *Board {
	b := NewBoard(rand.New(rand.NewSource(seed)))
	b.Spawn()
	return b
}

// Spawn draws the current and next pieces. Calling it again is a no-op.
func (b *Board) Spawn() {
	b.queue.Spawn(b.rng)
}

// Ready reports whether Spawn has run.
func (b *Board) Ready() bool {
	return b.queue.Spawned()
}

// Reset empties the grid and draws two fresh pieces.
func (b *Board) Reset() {
	b.grid.Clear()
	b.queue = Queue{}
	b.lock = lockNone
	b.queue.Spawn(b.rng)
}

// Current returns a copy of the piece in play.
func (b *Board) Current() Piece {
	b.mustBeReady()
	return b.queue.current
}

// Next returns a copy of the upcoming piece.
func (b *Board) Next() Piece {
	b.mustBeReady()
	return b.queue.next
}

// CurrentCells returns the cells the piece in play covers.
func (b *Board) CurrentCells() [4]Cell {
	return b.Current().Cells()
}

// NextCells returns the cells the upcoming piece will cover when it spawns.
func (b *Board) NextCells() [4]Cell {
	return b.Next().Cells()
}

// Move shifts the current piece one column left or right.
func (b *Board) Move(d Direction) MoveOutcome {
	b.mustBePlayable()
	return b.settleAfter(b.queue.current.TryMove(d, &b.grid))
}

// Rotate turns the current piece to its next orientation.
func (b *Board) Rotate() MoveOutcome {
	b.mustBePlayable()
	return b.settleAfter(b.queue.current.TryRotate(&b.grid))
}

// settleAfter clears a pending settle once the piece has moved, since it may
// be able to descend again.
func (b *Board) settleAfter(out MoveOutcome) MoveOutcome {
	if out == Moved {
		b.lock = lockNone
	}
	return out
}

// Descend moves the current piece down one row. A Locked outcome means the
// piece has settled; follow it with LockAndCheckLines.
func (b *Board) Descend() DescendOutcome {
	b.mustBePlayable()
	out := b.queue.current.TryDescend(&b.grid)
	if out.Locked {
		b.lock = lockSettled
	}
	return out
}

// HardDrop descends the current piece until it settles. It returns the number
// of rows travelled and the Locked outcome.
func (b *Board) HardDrop() (int, DescendOutcome) {
	rows := 0
	for {
		out := b.Descend()
		if out.Locked {
			return rows, out
		}
		rows++
	}
}

// LockAndCheckLines writes the settled piece into the grid and returns the
// number of filled rows. It does not clear them; see CollapseFilledRows.
func (b *Board) LockAndCheckLines() int {
	b.mustBeReady()
	if b.lock != lockSettled {
		panic("tetris: lock without a settled piece")
	}
	for _, c := range b.queue.current.Cells() {
		b.grid.Occupy(c)
	}
	b.lock = lockWritten
	return b.grid.CountFilledRows()
}

// Advance brings the next piece into play. SpawnBlocked means the new piece
// overlaps the stack and the game is over.
func (b *Board) Advance() SpawnOutcome {
	b.mustBeReady()
	if b.lock == lockSettled {
		panic("tetris: advance before the settled piece was locked")
	}
	b.lock = lockNone
	return b.queue.Advance(b.rng, &b.grid)
}

// Locked reports whether the current piece has been written into the grid
// and is waiting for Advance.
func (b *Board) Locked() bool {
	return b.lock == lockWritten
}

// FilledCellAfter steps the clear-animation cursor. See Grid.FilledCellAfter.
func (b *Board) FilledCellAfter(cursor Cell) (Cell, bool) {
	return b.grid.FilledCellAfter(cursor)
}

// CollapseFilledRows removes the filled rows and returns how many there were.
func (b *Board) CollapseFilledRows() int {
	b.mustBeReady()
	return b.grid.CollapseFilledRows()
}

// IsOccupied reports whether the cell holds a settled block.
func (b *Board) IsOccupied(c Cell) bool {
	return b.grid.IsOccupied(c)
}

// CountFilledRows returns the number of completely occupied rows.
func (b *Board) CountFilledRows() int {
	return b.grid.CountFilledRows()
}

// Grid returns a copy of the grid.
func (b *Board) Grid() Grid {
	return b.grid
}

// Stats returns the per-shape draw counters.
func (b *Board) Stats() *Stats {
	return b.queue.Stats()
}

// Clone returns an independent copy of the board for lookahead. The clone
// shares the random source, so advancing it perturbs the original's draws.
func (b *Board) Clone() *Board {
	c := *b
	if b.queue.stats != nil {
		c.queue.stats = b.queue.stats.clone()
	}
	return &c
}

// Snapshot captures the board for determinism checks.
type Snapshot struct {
	Current    Piece
	Next       Piece
	Cells      [NumCells]bool
	Occupied   int
	FilledRows int
	Drawn      int
}

// Snapshot returns the board state as a comparable value.
func (b *Board) Snapshot() Snapshot {
	b.mustBeReady()
	return Snapshot{
		Current:    b.queue.current,
		Next:       b.queue.next,
		Cells:      b.grid.cells,
		Occupied:   b.grid.OccupiedCount(),
		FilledRows: b.grid.CountFilledRows(),
		Drawn:      b.queue.stats.Total(),
	}
}

func (b *Board) mustBeReady() {
	if !b.queue.Spawned() {
		panic("tetris: board used before spawn")
	}
}

func (b *Board) mustBePlayable() {
	b.mustBeReady()
	if b.lock == lockWritten {
		panic("tetris: current piece is locked, advance first")
	}
}
