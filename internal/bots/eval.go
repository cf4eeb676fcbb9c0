package bots

import "github.com/vovakirdan/blocchi/internal/tetris"

// Weights scores a grid after a placement. Positive weights reward, negative
// weights penalize.
type Weights struct {
	Height    float64 // sum of column heights
	Lines     float64 // rows cleared by the placement
	Holes     float64 // empty cells with a block somewhere above
	Bumpiness float64 // sum of height differences between neighbouring columns
}

// DefaultWeights are the classic hand-tuned values for a 10-wide well.
var DefaultWeights = Weights{
	Height:    -0.510066,
	Lines:     0.760666,
	Holes:     -0.35663,
	Bumpiness: -0.184483,
}

// Features are the measurements Weights are applied to.
type Features struct {
	Height    int
	Lines     int
	Holes     int
	Bumpiness int
}

// Score combines the features linearly.
func (w Weights) Score(f Features) float64 {
	return w.Height*float64(f.Height) +
		w.Lines*float64(f.Lines) +
		w.Holes*float64(f.Holes) +
		w.Bumpiness*float64(f.Bumpiness)
}

// Measure computes the features of a grid. lines is the number of rows the
// placement cleared.
func Measure(g *tetris.Grid, lines int) Features {
	var heights [tetris.Columns]int
	f := Features{Lines: lines}

	for col := range tetris.Columns {
		seen := false
		for row := range tetris.Rows {
			occupied := g.IsOccupied(tetris.CellIndex(row, col))
			switch {
			case occupied && !seen:
				seen = true
				heights[col] = tetris.Rows - row
			case !occupied && seen:
				f.Holes++
			}
		}
		f.Height += heights[col]
	}

	for col := 1; col < tetris.Columns; col++ {
		f.Bumpiness += abs(heights[col] - heights[col-1])
	}
	return f
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
