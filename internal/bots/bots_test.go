package bots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blocchi/internal/core"
	"github.com/vovakirdan/blocchi/internal/registry"
	"github.com/vovakirdan/blocchi/internal/session"
	"github.com/vovakirdan/blocchi/internal/tetris"
)

type shapes []tetris.Shape

type scripted struct {
	shapes shapes
	i      int
}

func (s *scripted) Intn(int) int {
	v := s.shapes[s.i%len(s.shapes)]
	s.i++
	return int(v)
}

func board(seq ...tetris.Shape) *tetris.Board {
	b := tetris.NewBoard(&scripted{shapes: seq})
	b.Spawn()
	return b
}

// place slides the current piece to col, hard drops it and advances.
func place(t *testing.T, b *tetris.Board, col int) {
	t.Helper()
	for b.Current().Anchor.Col > col {
		require.Equal(t, tetris.Moved, b.Move(tetris.DirLeft))
	}
	for b.Current().Anchor.Col < col {
		require.Equal(t, tetris.Moved, b.Move(tetris.DirRight))
	}
	b.HardDrop()
	b.LockAndCheckLines()
	b.CollapseFilledRows()
	require.Equal(t, tetris.SpawnOK, b.Advance())
}

func TestBuiltinsRegistered(t *testing.T) {
	for _, name := range []string{"idle", "random", "greedy"} {
		b, err := registry.Create(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, b.Name())
		assert.NotEmpty(t, b.Description())
	}
}

func TestMeasure(t *testing.T) {
	b := board(tetris.ShapeO)
	place(t, b, 0)
	place(t, b, 0)
	g := b.Grid()

	f := Measure(&g, 0)
	assert.Equal(t, Features{Height: 8, Holes: 0, Bumpiness: 4}, f)

	empty := tetris.NewGrid()
	assert.Equal(t, Features{Lines: 2}, Measure(empty, 2))
}

func TestMeasureCountsHoles(t *testing.T) {
	b := board(tetris.ShapeT, tetris.ShapeO)
	// T at spawn: flat row on top, stem below; the cells beside the stem are holes
	b.HardDrop()
	b.LockAndCheckLines()
	g := b.Grid()

	f := Measure(&g, 0)
	assert.Equal(t, 2, f.Holes)
	assert.Equal(t, 6, f.Height)
}

func TestWeightsScore(t *testing.T) {
	w := Weights{Height: -1, Lines: 10, Holes: -2, Bumpiness: -0.5}
	assert.InDelta(t, -1*3+10*1-2*2-0.5*4, w.Score(Features{Height: 3, Lines: 1, Holes: 2, Bumpiness: 4}), 1e-9)
}

func TestGreedyPrefersFlatIOnEmptyBoard(t *testing.T) {
	g := NewGreedy(DefaultWeights)
	best, ok := g.Best(board(tetris.ShapeI))
	require.True(t, ok)
	assert.Equal(t, tetris.Rot90, best.Rotation)
	assert.Contains(t, []int{3, 9}, best.Col)
}

func TestGreedyCompletesRows(t *testing.T) {
	b := board(tetris.ShapeO)
	for _, col := range []int{0, 2, 4, 6} {
		place(t, b, col)
	}

	g := NewGreedy(DefaultWeights)
	best, ok := g.Best(b)
	require.True(t, ok)
	assert.Equal(t, 8, best.Col)

	// steer with Decide until it asks for the drop
	for range tetris.Columns {
		f := g.Decide(b)
		if f.Has(core.ActionHardDrop) {
			break
		}
		require.True(t, f.Has(core.ActionRight), "got %v", f)
		b.Move(tetris.DirRight)
	}
	assert.Equal(t, 8, b.Current().Anchor.Col)

	b.HardDrop()
	assert.Equal(t, 2, b.LockAndCheckLines())
}

func TestGreedyRotatesBeforeSliding(t *testing.T) {
	b := board(tetris.ShapeI)
	b.Descend()
	g := NewGreedy(DefaultWeights)

	f := g.Decide(b)
	assert.True(t, f.Has(core.ActionRotate))
	assert.False(t, f.Has(core.ActionLeft) || f.Has(core.ActionRight))
}

func TestGreedyIgnoresLockedBoard(t *testing.T) {
	b := board(tetris.ShapeO)
	b.HardDrop()
	b.LockAndCheckLines()

	assert.True(t, NewGreedy(DefaultWeights).Decide(b).Empty())
}

func TestGreedyClearsLines(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 7

	s := session.New()
	s.Reset(cfg)
	g := NewGreedy(DefaultWeights)
	g.Reset(cfg.Seed)

	for range 100000 {
		res := s.Step(g.Decide(s.Board()))
		if res.State.GameOver() || res.State.Pieces >= 100 {
			break
		}
	}

	st := s.State()
	assert.False(t, st.GameOver(), "greedy should survive 100 pieces")
	assert.Greater(t, st.Lines, 10)
}

func TestRandomIsReproducible(t *testing.T) {
	a, b := NewRandom(), NewRandom()
	a.Reset(99)
	b.Reset(99)
	bd := board(tetris.ShapeT)

	var seen []core.InputFrame
	for range 200 {
		fa, fb := a.Decide(bd), b.Decide(bd)
		require.Equal(t, fa, fb)
		seen = append(seen, fa)
	}
	assert.Contains(t, seen, core.NewInputFrame(core.ActionHardDrop))
	assert.Contains(t, seen, core.InputFrame{})
}

func TestIdleDoesNothing(t *testing.T) {
	assert.True(t, Idle{}.Decide(board(tetris.ShapeO)).Empty())
}

func TestGreedyReplansAfterBoardReset(t *testing.T) {
	b := board(tetris.ShapeO)
	place(t, b, 0)

	g := NewGreedy(DefaultWeights)
	g.Decide(b)
	require.NotNil(t, g.plan)

	// same draw count and shape after the restart, different stack
	b.Reset()
	place(t, b, 8)
	require.Equal(t, 3, b.Stats().Total())

	want, ok := NewGreedy(DefaultWeights).Best(b)
	require.True(t, ok)
	g.Decide(b)
	assert.Equal(t, want, *g.plan)
}
