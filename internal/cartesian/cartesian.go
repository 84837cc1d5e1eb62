package cartesian

// Position is a signed grid coordinate. X is the column, Y the row counted from the top.
type Position struct {
	X int
	Y int
}

// Direction is a unit step across the grid.
type Direction struct {
	X int
	Y int
}

// Canonical directions. Gravity pulls along S.
var (
	NE = Direction{X: 1, Y: -1}
	E  = Direction{X: 1, Y: 0}
	SE = Direction{X: 1, Y: 1}
	S  = Direction{X: 0, Y: 1}
)

// Lines holds one direction per line orientation: vertical, horizontal and both diagonals.
var Lines = [4]Direction{S, E, NE, SE}

// Add returns the position translated by one step of d.
func (p Position) Add(d Direction) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Step translates p in place.
func (p *Position) Step(d Direction) {
	p.X += d.X
	p.Y += d.Y
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}
