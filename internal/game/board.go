package game

import (
	"iter"
	"slices"

	"github.com/m-lima/connect4/internal/cartesian"
)

// Board is a square grid of cells stored column by column.
// The zero value is unusable; create boards with NewBoard.
type Board struct {
	cells []Cell
	size  int
}

// NewBoard allocates an empty board with size columns and size rows. A
// negative size gives an empty board.
func NewBoard(size int) *Board {
	size = max(size, 0)
	return &Board{
		cells: make([]Cell, size*size),
		size:  size,
	}
}

// Size is the side length of the board.
func (b *Board) Size() int {
	return b.size
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{
		cells: slices.Clone(b.cells),
		size:  b.size,
	}
}

func (b *Board) contains(p cartesian.Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < b.size && p.Y < b.size
}

func (b *Board) index(p cartesian.Position) int {
	return p.X*b.size + p.Y
}

// Cell returns the value at p. The boolean is false when p lies outside the board.
func (b *Board) Cell(p cartesian.Position) (Cell, bool) {
	if !b.contains(p) {
		return Empty, false
	}
	return b.cells[b.index(p)], true
}

// SetCell writes token at p.
func (b *Board) SetCell(p cartesian.Position, token Token) error {
	if !b.contains(p) {
		return ErrOutOfBounds
	}
	b.cells[b.index(p)] = token.Cell()
	return nil
}

// Iter yields the cells starting at p and stepping by d until the edge of the board.
func (b *Board) Iter(p cartesian.Position, d cartesian.Direction) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for {
			cell, ok := b.Cell(p)
			if !ok || !yield(cell) {
				return
			}
			p.Step(d)
		}
	}
}

// Count returns the length of the run of value starting at p (inclusive) along d.
func (b *Board) Count(value Cell, p cartesian.Position, d cartesian.Direction) int {
	count := 0
	for cell := range b.Iter(p, d) {
		if cell != value {
			break
		}
		count++
	}
	return count
}

// FallPosition is where a token dropped into column would land.
func (b *Board) FallPosition(column int) (cartesian.Position, error) {
	if column < 0 || column >= b.size {
		return cartesian.Position{}, ErrOutOfBounds
	}

	empty := b.Count(Empty, cartesian.Position{X: column, Y: 0}, cartesian.S)
	if empty == 0 {
		return cartesian.Position{}, ErrColumnFull
	}
	return cartesian.Position{X: column, Y: empty - 1}, nil
}

// Rows copies the board into a row-major matrix, top row first.
func (b *Board) Rows() [][]Cell {
	rows := make([][]Cell, b.size)
	for y := range rows {
		rows[y] = make([]Cell, b.size)
		for x := range rows[y] {
			rows[y][x] = b.cells[b.index(cartesian.Position{X: x, Y: y})]
		}
	}
	return rows
}
