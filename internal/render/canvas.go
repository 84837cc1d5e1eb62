package render

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/m-lima/connect4/internal/game"
	"github.com/m-lima/connect4/internal/match"
)

const (
	eraseLine = "\x1b[K"
	lineUp    = "\x1b[1A"
)

// Canvas is a terminal region that is redrawn in place. It remembers how many
// lines it has printed since the last Clear.
type Canvas struct {
	in     *bufio.Scanner
	out    io.Writer
	height int
}

// NewCanvas creates a canvas reading human input from in and drawing to out.
func NewCanvas(in io.Reader, out io.Writer) *Canvas {
	return &Canvas{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Height is the number of lines printed since the last Clear.
func (c *Canvas) Height() int {
	return c.height
}

// Clear erases every line printed since the last Clear and leaves the cursor
// where the first of them started.
func (c *Canvas) Clear() {
	for range c.height {
		fmt.Fprint(c.out, eraseLine+lineUp)
	}
	fmt.Fprint(c.out, eraseLine)
	c.height = 0
}

// Print writes s and counts the lines it occupies. A trailing newline is
// added if s lacks one.
func (c *Canvas) Print(s string) {
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	fmt.Fprint(c.out, s)
	c.height += strings.Count(s, "\n")
}

// Show redraws the board, with the last input error above it.
func (c *Canvas) Show(g *game.Game, err error) {
	c.Clear()
	if err != nil {
		c.Print("Error: " + err.Error())
	}
	c.Print(Board(g.Board()))
}

// Prompt asks for a 1-based column and returns it 0-based. An empty line asks
// again, q quits and the end of input quits.
func (c *Canvas) Prompt(ctx context.Context, token game.Token) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	fmt.Fprintf(c.out, "Select the column for %s (%s): ", token, Glyph(token.Cell()))
	c.height++

	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return 0, fmt.Errorf("failed to read input: %w", err)
		}
		return 0, match.ErrQuit
	}

	input := strings.TrimSpace(c.in.Text())
	switch input {
	case "":
		return 0, match.ErrRepeat
	case "q", "Q":
		return 0, match.ErrQuit
	}

	column, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("%w: not a number", match.ErrInvalidInput)
	}
	return column - 1, nil
}
