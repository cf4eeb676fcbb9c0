package tetris

import "testing"

// scriptedSource replays a fixed sequence of shapes.
type scriptedSource struct {
	shapes []Shape
	i      int
}

func script(shapes ...Shape) *scriptedSource {
	return &scriptedSource{shapes: shapes}
}

func (s *scriptedSource) Intn(n int) int {
	v := int(s.shapes[s.i%len(s.shapes)])
	s.i++
	if v >= n {
		panic("scripted shape out of range")
	}
	return v
}

// fillRow occupies every column of the row except the listed ones.
func fillRow(g *Grid, row int, except ...int) {
	for col := range Columns {
		skip := false
		for _, e := range except {
			if e == col {
				skip = true
			}
		}
		if !skip {
			g.Occupy(CellIndex(row, col))
		}
	}
}

// readyBoard returns a spawned board whose pieces come from the given shapes.
func readyBoard(t *testing.T, shapes ...Shape) *Board {
	t.Helper()
	b := NewBoard(script(shapes...))
	b.Spawn()
	return b
}

func rowsOf(cells [4]Cell) []int {
	rows := make([]int, 0, 4)
	for _, c := range cells {
		rows = append(rows, c.Row())
	}
	return rows
}
