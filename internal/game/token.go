package game

// Token is the color of a player's piece.
type Token uint8

const (
	White Token = iota + 1
	Black
)

// Flip returns the opposing token.
func (t Token) Flip() Token {
	if t == White {
		return Black
	}
	return White
}

// Cell returns the cell value holding t.
func (t Token) Cell() Cell {
	return Cell(t)
}

func (t Token) String() string {
	switch t {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "unknown"
	}
}

// ParseToken is the inverse of Token.String.
func ParseToken(s string) (Token, bool) {
	switch s {
	case "white":
		return White, true
	case "black":
		return Black, true
	}
	return 0, false
}

// Cell is the content of a board slot: Empty or a Token.
type Cell uint8

// Empty marks an unoccupied cell.
const Empty Cell = 0

// Token reports the token held by the cell, if any.
func (c Cell) Token() (Token, bool) {
	if c == Empty {
		return 0, false
	}
	return Token(c), true
}

func (c Cell) String() string {
	if t, ok := c.Token(); ok {
		return t.String()
	}
	return ""
}
