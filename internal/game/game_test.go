package game

import (
	"testing"

	"github.com/m-lima/connect4/internal/cartesian"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		size int
		want State
	}{
		{name: "default board", size: 7, want: Ongoing},
		{name: "smallest playable board", size: MinSize, want: Ongoing},
		{name: "too small to win", size: MinSize - 1, want: Tie},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(tt.size)
			assert.Equal(t, tt.want, g.State())
			assert.Equal(t, tt.size, g.Size())
		})
	}
}

func TestGamePlace(t *testing.T) {
	g := New(7)
	for range 3 {
		state, err := g.Place(Black, 2)
		require.NoError(t, err)
		require.Equal(t, Ongoing, state)
	}

	_, err := g.Place(Black, 10)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Equal(t, Ongoing, g.State(), "a failed placement keeps the previous state")

	state, err := g.Place(Black, 2)
	require.NoError(t, err)
	assert.Equal(t, Victory, state)
	assert.Equal(t, Victory, g.State())
}

func TestGameClone(t *testing.T) {
	g := New(7)
	for range 3 {
		_, err := g.Place(White, 5)
		require.NoError(t, err)
	}

	copied := g.Clone()
	state, err := copied.Place(White, 5)
	require.NoError(t, err)
	assert.Equal(t, Victory, state)
	assert.Equal(t, Victory, copied.State())
	assert.Equal(t, Ongoing, g.State())

	cell, _ := g.Board().Cell(cartesian.Position{X: 5, Y: 3})
	assert.Equal(t, Empty, cell, "the original board is untouched")
}

func TestGameNegativeSize(t *testing.T) {
	g := New(-3)
	assert.Equal(t, Tie, g.State())
	assert.Zero(t, g.Size())
}
