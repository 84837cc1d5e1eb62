package bot

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/m-lima/connect4/internal/cartesian"
	"github.com/m-lima/connect4/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBoard(t *testing.T, size int, black, white []int) *game.Board {
	t.Helper()
	board := game.NewBoard(size)
	for _, column := range black {
		_, err := game.Place(board, game.Black, column)
		require.NoError(t, err)
	}
	for _, column := range white {
		_, err := game.Place(board, game.White, column)
		require.NoError(t, err)
	}
	return board
}

func TestPlayScenarios(t *testing.T) {
	tests := []struct {
		name  string
		black []int
		white []int
		depth int
		want  []int
	}{
		{name: "immediate attack", black: []int{4, 5, 6}, white: []int{0, 0, 0}, depth: 0, want: []int{3}},
		{name: "immediate defence", black: []int{4, 5, 5}, white: []int{0, 0, 0}, depth: 1, want: []int{0}},
		{name: "planned attack", black: []int{0, 1}, white: []int{5, 5}, depth: 5, want: []int{3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := setupBoard(t, 7, tt.black, tt.white)
			for seed := range uint64(3) {
				b := New(game.Black, tt.depth, WithSeed(seed))
				assert.Contains(t, tt.want, b.Play(context.Background(), board), "seed %d", seed)
			}
		})
	}
}

func TestPlayDoesNotMutateBoard(t *testing.T) {
	board := setupBoard(t, 7, []int{0, 1}, []int{5, 5})
	before := board.Rows()

	New(game.Black, 3).Play(context.Background(), board)

	assert.Equal(t, before, board.Rows())
}

func TestPlaySkipsFullColumns(t *testing.T) {
	board := game.NewBoard(5)
	for column := range 4 {
		for y := range 5 {
			token := game.White
			if (column+y/2)%2 == 0 {
				token = game.Black
			}
			_, err := game.Place(board, token, column)
			require.NoError(t, err)
		}
	}

	for seed := range uint64(5) {
		b := New(game.White, 2, WithSeed(seed))
		assert.Equal(t, 4, b.Play(context.Background(), board), "seed %d", seed)
	}
}

func TestPlayFallback(t *testing.T) {
	board := game.NewBoard(7)

	for seed := range uint64(10) {
		column := New(game.White, 0, WithSeed(seed)).Play(context.Background(), board)
		assert.GreaterOrEqual(t, column, 0)
		assert.Less(t, column, 7)
	}
}

func TestPlayIsReproducible(t *testing.T) {
	board := setupBoard(t, 7, []int{3}, []int{3})

	first := New(game.Black, 2, WithSeed(42)).Play(context.Background(), board)
	for range 5 {
		assert.Equal(t, first, New(game.Black, 2, WithSeed(42)).Play(context.Background(), board))
	}
}

func TestPlayVerbose(t *testing.T) {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })

	board := setupBoard(t, 7, []int{4, 5, 5}, []int{0, 0, 0})
	New(game.Black, 1, WithVerbose(true)).Play(context.Background(), board)

	assert.Equal(t, 7, bytes.Count(buf.Bytes(), []byte("Candidate score")))
}

func TestNewClampsDepth(t *testing.T) {
	b := New(game.White, -3)
	assert.Equal(t, 0, b.Depth())
	assert.Equal(t, game.White, b.Token())
}

func TestPlayDropsPanickingCandidate(t *testing.T) {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })

	// Each candidate scores its own column index; column 6 blows up.
	t.Cleanup(func() { scoreTask = scoreBoard })
	scoreTask = func(board *game.Board, _ int, _ game.Token, _ int64) int64 {
		bottom := board.Size() - 1
		for x := range board.Size() {
			if cell, _ := board.Cell(cartesian.Position{X: x, Y: bottom}); cell == game.Black.Cell() {
				if x == 6 {
					panic("scoring failed")
				}
				return int64(x)
			}
		}
		return 0
	}

	for seed := range uint64(5) {
		column := New(game.Black, 1, WithSeed(seed), WithVerbose(true)).Play(context.Background(), game.NewBoard(7))
		assert.Equal(t, 5, column, "seed %d", seed)
	}
	assert.Equal(t, 5*6, bytes.Count(buf.Bytes(), []byte("Candidate score")))
	assert.Equal(t, 5, bytes.Count(buf.Bytes(), []byte("Scoring task aborted")))
}

func TestPlayEmptyBoard(t *testing.T) {
	for _, size := range []int{0, -1} {
		assert.Zero(t, New(game.Black, 2).Play(context.Background(), game.NewBoard(size)), "size %d", size)
	}
}
