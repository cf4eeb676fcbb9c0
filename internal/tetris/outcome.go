package tetris

// Direction is a lateral move direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// delta returns the column shift of the direction.
func (d Direction) delta() int {
	switch d {
	case DirLeft:
		return -1
	case DirRight:
		return 1
	default:
		panic("tetris: unknown direction")
	}
}

// MoveOutcome reports whether a move or rotation was applied.
type MoveOutcome int

const (
	NotMoved MoveOutcome = iota
	Moved
)

func (o MoveOutcome) String() string {
	if o == Moved {
		return "moved"
	}
	return "not moved"
}

// DescendOutcome is the result of a one-row descent attempt.
// When Locked is true the piece did not move and Cells holds the cells it
// occupies; the caller must write them into the grid.
type DescendOutcome struct {
	Locked bool
	Cells  [4]Cell
}

// Descended reports whether the piece moved down one row.
func (o DescendOutcome) Descended() bool {
	return !o.Locked
}

// SpawnOutcome reports whether the promoted piece fits the playfield.
type SpawnOutcome int

const (
	SpawnOK SpawnOutcome = iota
	SpawnBlocked
)

func (o SpawnOutcome) String() string {
	if o == SpawnBlocked {
		return "blocked"
	}
	return "ok"
}
