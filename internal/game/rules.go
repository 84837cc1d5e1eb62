package game

import (
	"errors"

	"github.com/m-lima/connect4/internal/cartesian"
)

var (
	ErrOutOfBounds = errors.New("out of bounds")
	ErrColumnFull  = errors.New("column full")
)

// State is the outcome of the latest placement.
type State uint8

const (
	Ongoing State = iota
	Victory
	Tie
)

func (s State) String() string {
	switch s {
	case Victory:
		return "victory"
	case Tie:
		return "tie"
	default:
		return "ongoing"
	}
}

// Place drops token into column and reports the resulting state.
// The board is left untouched when an error is returned.
func Place(b *Board, token Token, column int) (State, error) {
	landing, err := b.FallPosition(column)
	if err != nil {
		return Ongoing, err
	}

	if err := b.SetCell(landing, token); err != nil {
		return Ongoing, err
	}

	return status(b, token, landing), nil
}

func status(b *Board, token Token, landing cartesian.Position) State {
	if tie(b, landing) {
		return Tie
	}
	if victory(b, token, landing) {
		return Victory
	}
	return Ongoing
}

// A column only fills up when its top cell is taken, so the top row is only
// worth scanning when the landing cell is on it.
func tie(b *Board, landing cartesian.Position) bool {
	if landing.Y != 0 {
		return false
	}
	for cell := range b.Iter(cartesian.Position{X: 0, Y: 0}, cartesian.E) {
		if cell == Empty {
			return false
		}
	}
	return true
}

// The landing cell is counted by both scans, so four in a row sums to five.
func victory(b *Board, token Token, landing cartesian.Position) bool {
	for _, d := range cartesian.Lines {
		run := b.Count(token.Cell(), landing, d) + b.Count(token.Cell(), landing, d.Reverse())
		if run > 4 {
			return true
		}
	}
	return false
}
