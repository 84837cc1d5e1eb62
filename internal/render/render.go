// Package render draws boards as text for terminals.
package render

import (
	"fmt"
	"strings"

	"github.com/m-lima/connect4/internal/game"
	"github.com/mattn/go-runewidth"
)

// Glyph returns the drawing of a cell. Empty cells draw as blanks.
func Glyph(c game.Cell) string {
	token, ok := c.Token()
	if !ok {
		return ""
	}
	switch token {
	case game.White:
		return "▓▓"
	case game.Black:
		return "░░"
	default:
		return "??"
	}
}

// CellWidth is the number of terminal columns a cell takes under cond. The
// token glyphs use ambiguous-width runes, so it grows in East Asian mode.
func CellWidth(cond *runewidth.Condition) int {
	return max(cond.StringWidth(Glyph(game.White.Cell())), cond.StringWidth(Glyph(game.Black.Cell())))
}

// Board renders b with the terminal's default width rules.
func Board(b *game.Board) string {
	return BoardWith(runewidth.DefaultCondition, b)
}

// BoardWith renders the grid top row first, framed with pipes, followed by a
// rule and 1-based column numbers right-aligned under their cells.
func BoardWith(cond *runewidth.Condition, b *game.Board) string {
	width := CellWidth(cond)

	var sb strings.Builder
	for _, row := range b.Rows() {
		for _, cell := range row {
			sb.WriteByte('|')
			sb.WriteString(cond.FillRight(Glyph(cell), width))
		}
		sb.WriteString("|\n")
	}

	sb.WriteString(strings.Repeat("-", (width+1)*b.Size()+1))
	sb.WriteByte('\n')

	for i := range b.Size() {
		fmt.Fprintf(&sb, "%*d", width+1, i+1)
	}
	sb.WriteByte('\n')
	return sb.String()
}
