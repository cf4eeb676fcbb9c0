package tetris

import "fmt"

// Shape identifies one of the seven tetrominoes.
type Shape uint8

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeJ
	ShapeL
	ShapeS
	ShapeZ
)

// NumShapes is the number of distinct tetrominoes.
const NumShapes = 7

// String returns the conventional letter of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeO:
		return "O"
	case ShapeT:
		return "T"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	default:
		return "?"
	}
}

// Rotation is a clockwise quarter-turn count from the spawn orientation.
type Rotation uint8

const (
	Rot0 Rotation = iota
	Rot90
	Rot180
	Rot270
)

// Degrees returns the rotation angle in degrees.
func (r Rotation) Degrees() int {
	return int(r) * 90
}

// String returns the rotation as an angle, e.g. "90°".
func (r Rotation) String() string {
	return fmt.Sprintf("%d°", r.Degrees())
}

// Offset is a (row, col) displacement from a piece anchor.
// Rows grow downward, columns grow to the right.
type Offset struct {
	Row, Col int
}

// Turn returns the offset rotated a quarter turn clockwise about the anchor.
func (o Offset) Turn() Offset {
	return Offset{Row: o.Col, Col: -o.Row}
}

type shapeKey struct {
	shape    Shape
	rotation Rotation
}

// shapeTable holds the four anchor offsets of every supported orientation.
// Each orientation is the previous one of the same shape turned clockwise.
var shapeTable = map[shapeKey][4]Offset{
	// I: vertical bar, horizontal bar
	{ShapeI, Rot0}:  {{0, 0}, {1, 0}, {2, 0}, {3, 0}},
	{ShapeI, Rot90}: {{0, 0}, {0, -1}, {0, -2}, {0, -3}},

	// O: 2x2 square
	{ShapeO, Rot0}: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},

	// T: flat side up at spawn, stem below the anchor
	{ShapeT, Rot0}:   {{0, 0}, {1, 0}, {0, -1}, {0, 1}},
	{ShapeT, Rot90}:  {{0, 0}, {0, -1}, {-1, 0}, {1, 0}},
	{ShapeT, Rot180}: {{0, 0}, {-1, 0}, {0, 1}, {0, -1}},
	{ShapeT, Rot270}: {{0, 0}, {0, 1}, {1, 0}, {-1, 0}},

	// J: vertical bar with the foot to the left
	{ShapeJ, Rot0}:   {{0, 0}, {1, 0}, {2, 0}, {2, -1}},
	{ShapeJ, Rot90}:  {{0, 0}, {0, -1}, {0, -2}, {-1, -2}},
	{ShapeJ, Rot180}: {{0, 0}, {-1, 0}, {-2, 0}, {-2, 1}},
	{ShapeJ, Rot270}: {{0, 0}, {0, 1}, {0, 2}, {1, 2}},

	// L: vertical bar with the foot to the right
	{ShapeL, Rot0}:   {{0, 0}, {1, 0}, {2, 0}, {2, 1}},
	{ShapeL, Rot90}:  {{0, 0}, {0, -1}, {0, -2}, {1, -2}},
	{ShapeL, Rot180}: {{0, 0}, {-1, 0}, {-2, 0}, {-2, -1}},
	{ShapeL, Rot270}: {{0, 0}, {0, 1}, {0, 2}, {-1, 2}},

	// S and Z only alternate between their spawn and quarter-turn states.
	{ShapeS, Rot0}:  {{0, 0}, {1, 0}, {0, 1}, {1, -1}},
	{ShapeS, Rot90}: {{0, 0}, {0, -1}, {1, 0}, {-1, -1}},

	{ShapeZ, Rot0}:  {{0, 0}, {1, 0}, {0, -1}, {1, 1}},
	{ShapeZ, Rot90}: {{0, 0}, {0, -1}, {-1, 0}, {1, -1}},
}

// rotationCycles lists the orientations each shape cycles through, in order.
var rotationCycles = [NumShapes][]Rotation{
	ShapeI: {Rot0, Rot90},
	ShapeO: {Rot0},
	ShapeT: {Rot0, Rot90, Rot180, Rot270},
	ShapeJ: {Rot0, Rot90, Rot180, Rot270},
	ShapeL: {Rot0, Rot90, Rot180, Rot270},
	ShapeS: {Rot0, Rot90},
	ShapeZ: {Rot0, Rot90},
}

// spawnColumns is the anchor column of each shape when it enters the playfield.
var spawnColumns = [NumShapes]int{
	ShapeI: 4,
	ShapeO: 4,
	ShapeT: 5,
	ShapeJ: 5,
	ShapeL: 4,
	ShapeS: 4,
	ShapeZ: 5,
}

// Shapes returns every shape in table order.
func Shapes() []Shape {
	return []Shape{ShapeI, ShapeO, ShapeT, ShapeJ, ShapeL, ShapeS, ShapeZ}
}

// Offsets returns the anchor offsets of a shape in the given orientation.
// Panics if the shape does not support that orientation.
func Offsets(s Shape, r Rotation) [4]Offset {
	offsets, ok := shapeTable[shapeKey{s, r}]
	if !ok {
		panic(fmt.Sprintf("tetris: shape %v has no %v orientation", s, r))
	}
	return offsets
}

// Rotations returns the orientations a shape cycles through, starting at Rot0.
func Rotations(s Shape) []Rotation {
	mustBeShape(s)
	return append([]Rotation(nil), rotationCycles[s]...)
}

// Supports reports whether the shape has the given orientation.
func Supports(s Shape, r Rotation) bool {
	_, ok := shapeTable[shapeKey{s, r}]
	return ok
}

// NextRotation returns the orientation a clockwise rotate leads to.
// Panics if the shape does not support r.
func NextRotation(s Shape, r Rotation) Rotation {
	mustBeShape(s)
	cycle := rotationCycles[s]
	for i, rot := range cycle {
		if rot == r {
			return cycle[(i+1)%len(cycle)]
		}
	}
	panic(fmt.Sprintf("tetris: shape %v has no %v orientation", s, r))
}

// SpawnColumn returns the anchor column a new piece of the shape starts at.
func SpawnColumn(s Shape) int {
	mustBeShape(s)
	return spawnColumns[s]
}

func mustBeShape(s Shape) {
	if s >= NumShapes {
		panic(fmt.Sprintf("tetris: unknown shape %d", s))
	}
}
