package tetris

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardPanicsBeforeSpawn(t *testing.T) {
	b := NewBoard(script(ShapeI))
	require.False(t, b.Ready())

	assert.Panics(t, func() { b.Current() })
	assert.Panics(t, func() { b.Next() })
	assert.Panics(t, func() { b.Move(DirLeft) })
	assert.Panics(t, func() { b.Rotate() })
	assert.Panics(t, func() { b.Descend() })
	assert.Panics(t, func() { b.LockAndCheckLines() })
	assert.Panics(t, func() { b.Advance() })
	assert.Panics(t, func() { NewBoard(nil) })

	b.Spawn()
	assert.True(t, b.Ready())
	assert.NotPanics(t, func() { b.Current() })
}

func TestBoardLockContract(t *testing.T) {
	t.Run("lock without settle", func(t *testing.T) {
		b := readyBoard(t, ShapeO, ShapeI)
		assert.Panics(t, func() { b.LockAndCheckLines() })
		b.Descend()
		assert.Panics(t, func() { b.LockAndCheckLines() })
	})

	t.Run("advance before lock", func(t *testing.T) {
		b := readyBoard(t, ShapeO, ShapeI)
		b.HardDrop()
		assert.Panics(t, func() { b.Advance() })
	})

	t.Run("intents after lock", func(t *testing.T) {
		b := readyBoard(t, ShapeO, ShapeI)
		b.HardDrop()
		b.LockAndCheckLines()
		require.True(t, b.Locked())

		assert.Panics(t, func() { b.Move(DirLeft) })
		assert.Panics(t, func() { b.Rotate() })
		assert.Panics(t, func() { b.Descend() })
		assert.Panics(t, func() { b.LockAndCheckLines() })

		assert.Equal(t, SpawnOK, b.Advance())
		assert.False(t, b.Locked())
		assert.NotPanics(t, func() { b.Move(DirLeft) })
	})

	t.Run("moving off a ledge clears the settle", func(t *testing.T) {
		b := readyBoard(t, ShapeO, ShapeI)
		b.grid.Occupy(CellIndex(2, 4))
		require.True(t, b.Descend().Locked)

		require.Equal(t, Moved, b.Move(DirRight))
		assert.Panics(t, func() { b.LockAndCheckLines() })
		assert.True(t, b.Descend().Descended())
	})
}

func TestLockFillsRowThenCollapse(t *testing.T) {
	b := readyBoard(t, ShapeI, ShapeO)
	fillRow(&b.grid, Rows-1, 4)
	b.grid.Occupy(CellIndex(18, 0))

	rows, out := b.HardDrop()
	require.True(t, out.Locked)
	assert.Equal(t, 16, rows)
	assert.Equal(t, []int{16, 17, 18, 19}, rowsOf(out.Cells))
	assert.False(t, b.IsOccupied(CellIndex(19, 4)), "settled piece is not written until lock")

	filled := b.LockAndCheckLines()
	require.Equal(t, 1, filled)
	for _, c := range out.Cells {
		assert.True(t, b.IsOccupied(c))
	}

	var cleared []Cell
	cursor := NoCell
	for {
		c, ok := b.FilledCellAfter(cursor)
		if !ok {
			break
		}
		cleared = append(cleared, c)
		cursor = c
	}
	require.Len(t, cleared, Columns)
	assert.Equal(t, CellIndex(19, 9), cleared[0])
	assert.Equal(t, CellIndex(19, 0), cleared[Columns-1])

	assert.Equal(t, 1, b.CollapseFilledRows())
	assert.Zero(t, b.CountFilledRows())

	g := b.Grid()
	assert.Equal(t, 4, g.OccupiedCount())
	assert.True(t, g.IsOccupied(CellIndex(19, 0)), "marker shifts down a row")
	for _, row := range []int{17, 18, 19} {
		assert.True(t, g.IsOccupied(CellIndex(row, 4)), "row %d", row)
	}

	assert.Equal(t, SpawnOK, b.Advance())
	assert.Equal(t, NewPiece(ShapeO), b.Current())
}

func TestAdvanceBlockedSpawn(t *testing.T) {
	b := readyBoard(t, ShapeO, ShapeT)
	for range 3 {
		require.Equal(t, Moved, b.Move(DirRight))
	}
	b.HardDrop()
	require.Zero(t, b.LockAndCheckLines())

	b.grid.Occupy(CellIndex(0, 5))
	assert.Equal(t, SpawnBlocked, b.Advance())
	assert.Equal(t, ShapeT, b.Current().Shape)
}

func TestHardDropFromSpawn(t *testing.T) {
	tests := []struct {
		shape    Shape
		wantRows int
	}{
		{ShapeI, 16},
		{ShapeO, 18},
		{ShapeT, 18},
		{ShapeJ, 17},
		{ShapeS, 18},
	}

	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			b := readyBoard(t, tt.shape, ShapeO)
			rows, out := b.HardDrop()
			assert.Equal(t, tt.wantRows, rows)
			assert.True(t, out.Locked)
			assert.Equal(t, Rows-1, b.Current().Bottom())
		})
	}
}

func TestBoardReset(t *testing.T) {
	b := readyBoard(t, ShapeO, ShapeI, ShapeT, ShapeJ)
	b.HardDrop()
	b.LockAndCheckLines()
	require.NotZero(t, b.Snapshot().Occupied)

	b.Reset()
	assert.Zero(t, b.Snapshot().Occupied)
	assert.False(t, b.Locked())
	assert.Equal(t, ShapeT, b.Current().Shape)
	assert.Equal(t, ShapeJ, b.Next().Shape)
	assert.Equal(t, 2, b.Stats().Total())
}

func TestBoardClone(t *testing.T) {
	b := New(3)
	before := b.Snapshot()

	c := b.Clone()
	c.HardDrop()
	c.LockAndCheckLines()
	c.Advance()

	assert.Equal(t, before.Cells, b.Snapshot().Cells)
	assert.Equal(t, before.Current, b.Current())
	assert.Equal(t, before.Drawn, b.Stats().Total())
	assert.Equal(t, 4, c.Snapshot().Occupied)
	assert.Equal(t, before.Drawn+1, c.Stats().Total())
}

func TestBoardDeterminism(t *testing.T) {
	play := func(seed int64) []Snapshot {
		b := New(seed)
		intents := rand.New(rand.NewSource(seed * 31))
		var snaps []Snapshot
		for range 2000 {
			if b.Locked() {
				b.CollapseFilledRows()
				if b.Advance() == SpawnBlocked {
					break
				}
			}
			switch intents.Intn(4) {
			case 0:
				b.Move(DirLeft)
			case 1:
				b.Move(DirRight)
			case 2:
				b.Rotate()
			default:
				if b.Descend().Locked {
					b.LockAndCheckLines()
				}
			}
			snaps = append(snaps, b.Snapshot())
		}
		return snaps
	}

	assert.Equal(t, play(42), play(42))
	assert.NotEqual(t, play(42), play(43))
}

func TestRandomPlayInvariants(t *testing.T) {
	b := New(11)
	intents := rand.New(rand.NewSource(5))
	locked, cleared := 0, 0

	for step := range 5000 {
		if b.Locked() {
			cleared += b.CollapseFilledRows()
			if b.Advance() == SpawnBlocked {
				break
			}
		}

		for _, c := range b.CurrentCells() {
			require.False(t, b.IsOccupied(c), "step %d: piece overlaps stack", step)
		}

		switch intents.Intn(5) {
		case 0:
			b.Move(DirLeft)
		case 1:
			b.Move(DirRight)
		case 2:
			b.Rotate()
		case 3:
			b.HardDrop()
			b.LockAndCheckLines()
			locked++
		default:
			if b.Descend().Locked {
				b.LockAndCheckLines()
				locked++
			}
		}

		g := b.Grid()
		if !b.Locked() {
			require.Zero(t, g.CountFilledRows(), "step %d", step)
		}
		require.Equal(t, 4*locked-Columns*cleared, g.OccupiedCount(), "step %d", step)
	}
	assert.Positive(t, locked)
}

func TestSnapshot(t *testing.T) {
	b := readyBoard(t, ShapeL, ShapeZ)
	s := b.Snapshot()
	assert.Equal(t, NewPiece(ShapeL), s.Current)
	assert.Equal(t, NewPiece(ShapeZ), s.Next)
	assert.Zero(t, s.Occupied)
	assert.Zero(t, s.FilledRows)
	assert.Equal(t, 2, s.Drawn)
}
