package tetris

// Position is a (row, col) location on or off the playfield.
type Position struct {
	Row, Col int
}

// Add returns the position displaced by the offset.
func (p Position) Add(o Offset) Position {
	return Position{Row: p.Row + o.Row, Col: p.Col + o.Col}
}

// Piece is a tetromino: its shape, the anchor cell every offset is relative
// to, and its current orientation.
type Piece struct {
	Shape    Shape
	Anchor   Position
	Rotation Rotation
}

// NewPiece returns a piece of the shape at its spawn location: row 0, the
// shape's spawn column, spawn orientation.
func NewPiece(s Shape) Piece {
	return Piece{
		Shape:    s,
		Anchor:   Position{Row: 0, Col: SpawnColumn(s)},
		Rotation: Rot0,
	}
}

// PositionsAt returns the four positions the piece would cover at the given
// anchor and orientation. The positions may be off the playfield.
func (p Piece) PositionsAt(anchor Position, r Rotation) [4]Position {
	var out [4]Position
	for i, o := range Offsets(p.Shape, r) {
		out[i] = anchor.Add(o)
	}
	return out
}

// Positions returns the four positions the piece covers.
func (p Piece) Positions() [4]Position {
	return p.PositionsAt(p.Anchor, p.Rotation)
}

// Cells returns the four playfield cells the piece covers.
// The piece must be on the playfield.
func (p Piece) Cells() [4]Cell {
	var out [4]Cell
	for i, pos := range p.Positions() {
		out[i] = CellIndex(pos.Row, pos.Col)
	}
	return out
}

// IsPlacementLegal reports whether the piece could sit at the anchor and
// orientation: every cell on the playfield and none of them occupied.
func (p Piece) IsPlacementLegal(anchor Position, r Rotation, g *Grid) bool {
	for _, pos := range p.PositionsAt(anchor, r) {
		if !InBounds(pos.Row, pos.Col) {
			return false
		}
		if g.cells[pos.Row*Columns+pos.Col] {
			return false
		}
	}
	return true
}

// TryMove shifts the piece one column in the given direction if the target
// placement is legal.
func (p *Piece) TryMove(d Direction, g *Grid) MoveOutcome {
	target := Position{Row: p.Anchor.Row, Col: p.Anchor.Col + d.delta()}
	if !p.IsPlacementLegal(target, p.Rotation, g) {
		return NotMoved
	}
	p.Anchor = target
	return Moved
}

// TryRotate turns the piece to the next orientation of its rotation cycle
// around an unchanged anchor. There are no wall kicks: a blocked rotation is
// simply refused.
func (p *Piece) TryRotate(g *Grid) MoveOutcome {
	next := NextRotation(p.Shape, p.Rotation)
	if !p.IsPlacementLegal(p.Anchor, next, g) {
		return NotMoved
	}
	p.Rotation = next
	return Moved
}

// TryDescend moves the piece down one row. If the row below is off the
// playfield or occupied the piece stays put and the outcome is Locked with
// the cells it currently covers.
func (p *Piece) TryDescend(g *Grid) DescendOutcome {
	target := Position{Row: p.Anchor.Row + 1, Col: p.Anchor.Col}
	if !p.IsPlacementLegal(target, p.Rotation, g) {
		return DescendOutcome{Locked: true, Cells: p.Cells()}
	}
	p.Anchor = target
	return DescendOutcome{}
}

// Bottom returns the lowest row the piece covers.
func (p Piece) Bottom() int {
	bottom := p.Anchor.Row
	for _, pos := range p.Positions() {
		bottom = max(bottom, pos.Row)
	}
	return bottom
}
