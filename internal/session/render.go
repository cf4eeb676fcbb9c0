package session

import (
	"fmt"

	"github.com/vovakirdan/blocchi/internal/core"
	"github.com/vovakirdan/blocchi/internal/tetris"
)

// Screen dimensions Render needs: the boxed well plus a side panel.
const (
	ScreenW = tetris.Columns + 2 + 14
	ScreenH = tetris.Rows + 2
)

const (
	runeEmpty   = '.'
	runeSettled = '#'
	runePiece   = '@'
	runeCleared = '*'
)

// Render draws the well, the current piece, the next-piece preview and the
// counters into dst.
func (s *Session) Render(dst *core.Screen) {
	s.mustBeReset()
	well := core.NewRect(0, 0, tetris.Columns+2, tetris.Rows+2)
	dst.DrawBox(well)
	inner := well.Inner()

	g := s.board.Grid()
	for c := tetris.Cell(0); c < tetris.NumCells; c++ {
		r := runeEmpty
		if g.IsOccupied(c) {
			r = runeSettled
			if s.consumed(&g, c) {
				r = runeCleared
			}
		}
		dst.Set(inner.X+c.Col(), inner.Y+c.Row(), r)
	}

	if !s.board.Locked() {
		for _, c := range s.board.CurrentCells() {
			dst.Set(inner.X+c.Col(), inner.Y+c.Row(), runePiece)
		}
	}

	panelX := well.Right() + 2
	dst.DrawText(panelX, 1, "NEXT")
	drawPreview(dst, panelX+1, 3, s.board.Next())

	dst.DrawText(panelX, 9, fmt.Sprintf("Lines  %d", s.lines))
	dst.DrawText(panelX, 10, fmt.Sprintf("Pieces %d", s.pieces))

	switch {
	case s.phase.Terminal():
		dst.DrawText(panelX, 12, "GAME OVER")
	case s.paused:
		dst.DrawText(panelX, 12, "PAUSED")
	case s.phase == tetris.PhaseClearingLines:
		dst.DrawText(panelX, 12, "CLEAR!")
	}
}

// consumed reports whether the clear animation has already passed the cell.
// The traversal runs in descending cell order, so every filled-row cell at or
// after the cursor is gone.
func (s *Session) consumed(g *tetris.Grid, c tetris.Cell) bool {
	return s.phase == tetris.PhaseClearingLines &&
		s.cursor != tetris.NoCell &&
		c >= s.cursor &&
		g.IsRowFilled(c.Row())
}

// drawPreview draws a piece in its spawn orientation with its bounding box's
// top-left corner at (x, y).
func drawPreview(dst *core.Screen, x, y int, p tetris.Piece) {
	DrawShape(dst, x, y, p.Shape, p.Rotation, runePiece)
}

// DrawShape draws one orientation of a shape with its bounding box's top-left
// corner at (x, y).
func DrawShape(dst *core.Screen, x, y int, shape tetris.Shape, r tetris.Rotation, fill rune) {
	offsets := tetris.Offsets(shape, r)
	minRow, minCol := offsets[0].Row, offsets[0].Col
	for _, o := range offsets {
		minRow = min(minRow, o.Row)
		minCol = min(minCol, o.Col)
	}
	for _, o := range offsets {
		dst.Set(x+o.Col-minCol, y+o.Row-minRow, fill)
	}
}
