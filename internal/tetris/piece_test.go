package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDescendsToFloor(t *testing.T) {
	g := NewGrid()
	p := NewPiece(ShapeI)
	require.Equal(t, 4, p.Anchor.Col)

	for i := range 16 {
		out := p.TryDescend(g)
		require.True(t, out.Descended(), "descend %d", i+1)
	}

	out := p.TryDescend(g)
	require.True(t, out.Locked)
	assert.Equal(t, [4]Cell{
		CellIndex(16, 4),
		CellIndex(17, 4),
		CellIndex(18, 4),
		CellIndex(19, 4),
	}, out.Cells)
	assert.Equal(t, 16, p.Anchor.Row, "locked piece must not move")
	assert.Equal(t, Rows-1, p.Bottom())
}

func TestDescendBlockedByStack(t *testing.T) {
	g := NewGrid()
	g.Occupy(CellIndex(10, 4))
	p := NewPiece(ShapeO)

	for p.TryDescend(g).Descended() {
	}

	assert.Equal(t, 8, p.Anchor.Row)
	assert.Equal(t, []int{8, 9, 8, 9}, rowsOf(p.Cells()))
}

func TestTryMove(t *testing.T) {
	tests := []struct {
		name    string
		shape   Shape
		setup   func(g *Grid)
		moves   []Direction
		want    []MoveOutcome
		wantCol int
	}{
		{
			name:    "left on empty grid",
			shape:   ShapeO,
			moves:   []Direction{DirLeft},
			want:    []MoveOutcome{Moved},
			wantCol: 3,
		},
		{
			name:    "right on empty grid",
			shape:   ShapeO,
			moves:   []Direction{DirRight},
			want:    []MoveOutcome{Moved},
			wantCol: 5,
		},
		{
			name:    "O stops at right wall",
			shape:   ShapeO,
			moves:   []Direction{DirRight, DirRight, DirRight, DirRight, DirRight, DirRight},
			want:    []MoveOutcome{Moved, Moved, Moved, Moved, NotMoved, NotMoved},
			wantCol: 8,
		},
		{
			name:    "T stops at left wall",
			shape:   ShapeT,
			moves:   []Direction{DirLeft, DirLeft, DirLeft, DirLeft, DirLeft},
			want:    []MoveOutcome{Moved, Moved, Moved, Moved, NotMoved},
			wantCol: 1,
		},
		{
			name:  "blocked by stack",
			shape: ShapeO,
			setup: func(g *Grid) {
				g.Occupy(CellIndex(1, 3))
			},
			moves:   []Direction{DirLeft, DirRight},
			want:    []MoveOutcome{NotMoved, Moved},
			wantCol: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid()
			if tt.setup != nil {
				tt.setup(g)
			}
			p := NewPiece(tt.shape)
			for i, d := range tt.moves {
				assert.Equal(t, tt.want[i], p.TryMove(d, g), "move %d (%v)", i, d)
			}
			assert.Equal(t, tt.wantCol, p.Anchor.Col)
			assert.Equal(t, 0, p.Anchor.Row)
		})
	}
}

func TestFailedIntentsDoNotMutate(t *testing.T) {
	g := NewGrid()
	for row := 2; row < Rows; row++ {
		fillRow(g, row, 4)
	}

	p := NewPiece(ShapeI)
	before := p

	assert.Equal(t, NotMoved, p.TryMove(DirLeft, g))
	assert.Equal(t, before, p)

	// once inside the well neither turning nor sliding fits
	for range 2 {
		require.True(t, p.TryDescend(g).Descended())
	}
	before = p
	assert.Equal(t, NotMoved, p.TryRotate(g))
	assert.Equal(t, before, p)
	assert.Equal(t, NotMoved, p.TryMove(DirRight, g))
	assert.Equal(t, before, p)
}

func TestTryRotate(t *testing.T) {
	t.Run("I turns horizontal at spawn", func(t *testing.T) {
		g := NewGrid()
		p := NewPiece(ShapeI)

		require.Equal(t, Moved, p.TryRotate(g))
		assert.Equal(t, Rot90, p.Rotation)
		assert.Equal(t, Position{Row: 0, Col: 4}, p.Anchor)
		assert.ElementsMatch(t, []Cell{
			CellIndex(0, 1), CellIndex(0, 2), CellIndex(0, 3), CellIndex(0, 4),
		}, p.Cells())

		require.Equal(t, Moved, p.TryRotate(g))
		assert.Equal(t, Rot0, p.Rotation)
	})

	t.Run("T cannot turn above the top row", func(t *testing.T) {
		g := NewGrid()
		p := NewPiece(ShapeT)
		assert.Equal(t, NotMoved, p.TryRotate(g))
		assert.Equal(t, Rot0, p.Rotation)

		require.True(t, p.TryDescend(g).Descended())
		assert.Equal(t, Moved, p.TryRotate(g))
		assert.Equal(t, Rot90, p.Rotation)
	})

	t.Run("T walks the full cycle", func(t *testing.T) {
		g := NewGrid()
		p := NewPiece(ShapeT)
		p.Anchor = Position{Row: 10, Col: 5}
		for _, want := range []Rotation{Rot90, Rot180, Rot270, Rot0} {
			require.Equal(t, Moved, p.TryRotate(g))
			assert.Equal(t, want, p.Rotation)
		}
	})

	t.Run("no wall kick at the left wall", func(t *testing.T) {
		g := NewGrid()
		p := NewPiece(ShapeI)
		p.Anchor = Position{Row: 5, Col: 0}
		assert.Equal(t, NotMoved, p.TryRotate(g))
		assert.Equal(t, Position{Row: 5, Col: 0}, p.Anchor)
		assert.Equal(t, Rot0, p.Rotation)
	})

	t.Run("no wall kick at the right wall", func(t *testing.T) {
		g := NewGrid()
		p := NewPiece(ShapeL)
		p.Anchor = Position{Row: 5, Col: Columns - 1}
		// L at 270° reaches two columns right of the anchor
		p.Rotation = Rot180
		assert.Equal(t, NotMoved, p.TryRotate(g))
		assert.Equal(t, Rot180, p.Rotation)
	})

	t.Run("blocked by stack", func(t *testing.T) {
		g := NewGrid()
		p := NewPiece(ShapeS)
		p.Anchor = Position{Row: 5, Col: 4}
		g.Occupy(CellIndex(4, 3))
		assert.Equal(t, NotMoved, p.TryRotate(g))
		assert.Equal(t, Rot0, p.Rotation)
	})
}

func TestORotationIsIdentity(t *testing.T) {
	g := NewGrid()
	fillRow(g, 19)
	anchors := []Position{{0, 4}, {0, 0}, {0, 8}, {17, 0}, {10, 6}}

	for _, a := range anchors {
		p := NewPiece(ShapeO)
		p.Anchor = a
		before := p.Cells()

		assert.Equal(t, Moved, p.TryRotate(g), "anchor %v", a)
		assert.Equal(t, Rot0, p.Rotation)
		assert.Equal(t, a, p.Anchor)
		assert.Equal(t, before, p.Cells())
	}
}

func TestIsPlacementLegal(t *testing.T) {
	g := NewGrid()
	g.Occupy(CellIndex(3, 4))
	p := NewPiece(ShapeI)

	assert.False(t, p.IsPlacementLegal(Position{0, 4}, Rot0, g), "overlaps stack")
	assert.True(t, p.IsPlacementLegal(Position{0, 5}, Rot0, g))
	assert.False(t, p.IsPlacementLegal(Position{17, 5}, Rot0, g), "past the floor")
	assert.False(t, p.IsPlacementLegal(Position{-1, 5}, Rot0, g), "above the top")
	assert.False(t, p.IsPlacementLegal(Position{0, Columns}, Rot0, g), "past the right wall")
	assert.False(t, p.IsPlacementLegal(Position{5, 2}, Rot90, g), "past the left wall")
	assert.True(t, p.IsPlacementLegal(Position{5, 3}, Rot90, g))
}
