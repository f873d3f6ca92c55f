package types

// Grid defaults
const (
	DefaultGridSize uint = 20
)

// DefaultSnakePos is the centre cell of the default grid (grid starts at 0,0).
var DefaultSnakePos = GridCoord{X: DefaultGridSize/2 - 1, Y: DefaultGridSize/2 - 1}

// GridCoord addresses one cell of the board. Coordinates are unsigned, so a
// step below zero wraps around and lands far outside the grid.
type GridCoord struct {
	X, Y uint
}

// Direction is a heading on the grid. The values are clockwise ordinals and
// turn legality is computed from their distance.
type Direction int

const (
	NoDirection Direction = iota - 1
	North
	East
	South
	West
)

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "none"
	}
}

// Step returns the cell one move away from c in direction d.
func (d Direction) Step(c GridCoord) GridCoord {
	switch d {
	case North:
		c.Y--
	case East:
		c.X++
	case South:
		c.Y++
	case West:
		c.X--
	}
	return c
}
