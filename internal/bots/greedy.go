package bots

import (
	"math"

	"github.com/vovakirdan/blocchi/internal/core"
	"github.com/vovakirdan/blocchi/internal/registry"
	"github.com/vovakirdan/blocchi/internal/tetris"
)

func init() {
	registry.Register("greedy", func() registry.Bot {
		return NewGreedy(DefaultWeights)
	})
}

// Placement is where a piece should end up: its orientation and anchor
// column before the hard drop.
type Placement struct {
	Rotation tetris.Rotation
	Col      int
	Score    float64
}

// planKey identifies the piece and the stack a plan was made for. The draw
// count restarts with the board, so the stack is part of the key.
type planKey struct {
	drawn int
	shape tetris.Shape
	stack [tetris.NumCells]bool
}

// Greedy tries every reachable orientation and column for the current piece
// on a cloned board, scores the resulting grid and steers the piece to the
// best one.
type Greedy struct {
	weights Weights
	plan    *Placement
	planFor planKey
}

// NewGreedy returns a greedy bot using the given weights.
func NewGreedy(w Weights) *Greedy {
	return &Greedy{weights: w}
}

func (g *Greedy) Name() string        { return "greedy" }
func (g *Greedy) Description() string { return "One-piece lookahead scored on height, lines, holes and bumpiness" }

// Reset drops the current plan.
func (g *Greedy) Reset(int64) {
	g.plan = nil
}

// Decide steers the current piece one step towards the planned placement:
// rotate first, then slide, then hard drop.
func (g *Greedy) Decide(b *tetris.Board) core.InputFrame {
	var f core.InputFrame
	if !b.Ready() || b.Locked() {
		return f
	}

	cur := b.Current()
	grid := b.Grid()

	key := planKey{drawn: b.Stats().Total(), shape: cur.Shape, stack: grid.Cells()}
	if g.plan == nil || g.planFor != key {
		best, ok := g.Best(b)
		if !ok {
			f.Set(core.ActionHardDrop)
			return f
		}
		g.plan = &best
		g.planFor = key
	}

	if cur.Rotation != g.plan.Rotation {
		next := tetris.NextRotation(cur.Shape, cur.Rotation)
		if cur.IsPlacementLegal(cur.Anchor, next, &grid) {
			f.Set(core.ActionRotate)
		} else {
			f.Set(core.ActionSoftDrop)
		}
		return f
	}

	var dir tetris.Direction
	switch {
	case cur.Anchor.Col > g.plan.Col:
		dir = tetris.DirLeft
		f.Set(core.ActionLeft)
	case cur.Anchor.Col < g.plan.Col:
		dir = tetris.DirRight
		f.Set(core.ActionRight)
	default:
		f.Set(core.ActionHardDrop)
		return f
	}

	// gravity may have carried the piece under an overhang
	slid := cur
	if slid.TryMove(dir, &grid) == tetris.NotMoved {
		f.Clear()
		f.Set(core.ActionHardDrop)
	}
	return f
}

// Best returns the highest scoring placement of the current piece. It
// reports false when the piece cannot reach any placement.
func (g *Greedy) Best(b *tetris.Board) (Placement, bool) {
	cur := b.Current()
	best := Placement{Score: math.Inf(-1)}
	found := false

	target := cur.Rotation
	for range tetris.Rotations(cur.Shape) {
		for col := range tetris.Columns {
			grid, lines, ok := simulate(b, target, col)
			if !ok {
				continue
			}
			score := g.weights.Score(Measure(grid, lines))
			if !found || score > best.Score {
				best = Placement{Rotation: target, Col: col, Score: score}
				found = true
			}
		}
		target = tetris.NextRotation(cur.Shape, target)
	}
	return best, found
}

// simulate plays the placement on a clone the same way Decide would steer it
// and returns the grid after the lock and collapse. The clone is never
// advanced so the shared random source is left untouched.
func simulate(b *tetris.Board, r tetris.Rotation, col int) (*tetris.Grid, int, bool) {
	c := b.Clone()

	for c.Current().Rotation != r {
		if c.Rotate() == tetris.Moved {
			continue
		}
		if c.Descend().Locked {
			return nil, 0, false
		}
	}

	for {
		anchor := c.Current().Anchor.Col
		if anchor == col {
			break
		}
		dir := tetris.DirRight
		if anchor > col {
			dir = tetris.DirLeft
		}
		if c.Move(dir) == tetris.NotMoved {
			return nil, 0, false
		}
	}

	c.HardDrop()
	c.LockAndCheckLines()
	lines := c.CollapseFilledRows()
	grid := c.Grid()
	return &grid, lines, true
}
