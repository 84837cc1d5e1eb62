package game

import (
	"testing"

	"github.com/m-lima/connect4/internal/cartesian"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceSequence(t *testing.T) {
	board := NewBoard(7)
	moves := []struct {
		token  Token
		column int
	}{
		{Black, 1}, {White, 2}, {Black, 3}, {White, 3}, {Black, 3}, {White, 3},
		{Black, 4}, {White, 1}, {Black, 2}, {White, 2},
	}

	for _, m := range moves {
		state, err := Place(board, m.token, m.column)
		require.NoError(t, err)
		require.Equal(t, Ongoing, state)
	}

	state, err := Place(board, White, 0)
	require.NoError(t, err)
	assert.Equal(t, Victory, state)
}

func TestPlaceErrors(t *testing.T) {
	board := NewBoard(7)
	for range 7 {
		_, err := Place(board, White, 3)
		require.NoError(t, err)
	}

	_, err := Place(board, Black, 3)
	assert.ErrorIs(t, err, ErrColumnFull)

	for _, column := range []int{7, 9, -1} {
		_, err = Place(board, Black, column)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	}
}

func TestPlaceVictory(t *testing.T) {
	type cell struct {
		x, y  int
		token Token
	}

	tests := []struct {
		name   string
		setup  []cell
		column int
		want   State
	}{
		{
			name:   "vertical four",
			setup:  []cell{{0, 6, White}, {0, 5, White}, {0, 4, White}},
			column: 0,
			want:   Victory,
		},
		{
			name:   "vertical three",
			setup:  []cell{{0, 6, White}, {0, 5, White}},
			column: 0,
			want:   Ongoing,
		},
		{
			name:   "horizontal four completed in the middle",
			setup:  []cell{{1, 6, White}, {2, 6, White}, {4, 6, White}},
			column: 3,
			want:   Victory,
		},
		{
			name:   "horizontal three",
			setup:  []cell{{1, 6, White}, {2, 6, White}, {4, 6, Black}},
			column: 3,
			want:   Ongoing,
		},
		{
			name: "rising diagonal",
			setup: []cell{
				{0, 6, White}, {1, 5, White}, {2, 4, White},
				{1, 6, Black}, {2, 6, Black}, {2, 5, Black}, {3, 6, Black}, {3, 5, Black}, {3, 4, Black},
			},
			column: 3,
			want:   Victory,
		},
		{
			name: "falling diagonal",
			setup: []cell{
				{6, 6, White}, {5, 5, White}, {4, 4, White},
				{5, 6, Black}, {4, 6, Black}, {4, 5, Black}, {3, 6, Black}, {3, 5, Black}, {3, 4, Black},
			},
			column: 3,
			want:   Victory,
		},
		{
			name: "diagonal three",
			setup: []cell{
				{1, 5, White}, {2, 4, White},
				{1, 6, Black}, {2, 6, Black}, {2, 5, Black}, {3, 6, Black}, {3, 5, Black}, {3, 4, Black},
			},
			column: 3,
			want:   Ongoing,
		},
		{
			name:   "run of the other token does not count",
			setup:  []cell{{0, 6, Black}, {0, 5, Black}, {0, 4, Black}},
			column: 0,
			want:   Ongoing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := NewBoard(7)
			for _, c := range tt.setup {
				require.NoError(t, board.SetCell(cartesian.Position{X: c.x, Y: c.y}, c.token))
			}

			got, err := Place(board, White, tt.column)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// tieColor alternates by column and by pairs of rows, which never lines up four.
func tieColor(x, y int) Token {
	if (x+y/2)%2 == 0 {
		return White
	}
	return Black
}

func TestPlaceTie(t *testing.T) {
	for _, size := range []int{5, 6, 7, 8} {
		board := NewBoard(size)
		placed := 0
		for x := range size {
			for y := size - 1; y >= 0; y-- {
				placed++
				state, err := Place(board, tieColor(x, y), x)
				require.NoError(t, err)
				if placed == size*size {
					assert.Equal(t, Tie, state, "size %d: last placement should tie", size)
				} else {
					require.Equal(t, Ongoing, state, "size %d: placement %d", size, placed)
				}
			}
		}
	}
}

func TestPlaceLeavesBoardOnError(t *testing.T) {
	board := NewBoard(5)
	for range 5 {
		_, err := Place(board, Black, 0)
		require.NoError(t, err)
	}
	before := board.Rows()

	_, err := Place(board, White, 0)
	require.ErrorIs(t, err, ErrColumnFull)
	assert.Equal(t, before, board.Rows())
}
