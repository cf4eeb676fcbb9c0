package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blocchi/internal/core"
	"github.com/vovakirdan/blocchi/internal/session"
	"github.com/vovakirdan/blocchi/internal/tetris"
)

// cellW is the width of one rotation column in the shape table.
const cellW = 7

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Print every shape in every rotation",
	Long: `Prints the shape table: each tetromino in each orientation it supports,
with its spawn column. Rotation turns a piece clockwise around its anchor
without wall kicks. I, S and Z have two orientations, O has one.`,
	Run: runShapes,
}

func runShapes(cmd *cobra.Command, args []string) {
	fmt.Println(titleStyle.Render("Shapes"))
	fmt.Println()
	for _, s := range tetris.Shapes() {
		fmt.Printf("%s  %s\n", headerStyle.Render(s.String()), dimStyle.Render(fmt.Sprintf("spawn column %d", tetris.SpawnColumn(s))))
		fmt.Println(boardStyle.Render(shapeTable(s).String()))
		fmt.Println()
	}
}

// shapeTable draws every supported orientation of a shape side by side,
// each under its angle.
func shapeTable(s tetris.Shape) *core.Screen {
	rotations := tetris.Rotations(s)
	dst := core.NewScreen(cellW*len(rotations), 5)
	for i, r := range rotations {
		x := i * cellW
		dst.DrawText(x, 0, r.String())
		session.DrawShape(dst, x, 1, s, r, '#')
	}
	return dst
}
