package service

import (
	"context"
	"testing"

	"github.com/m-lima/connect4/internal/api/models"
	"github.com/m-lima/connect4/internal/bot"
	"github.com/m-lima/connect4/internal/game"
	"github.com/m-lima/connect4/internal/repository"
	"github.com/m-lima/connect4/pkg/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() GameService {
	return NewGameService(repository.NewGameRepository(), 2, bot.WithSeed(42))
}

func countTokens(msg proto.GameMessage) map[string]int {
	counts := map[string]int{}
	for _, row := range msg.Board {
		for _, cell := range row {
			if cell != "" {
				counts[cell]++
			}
		}
	}
	return counts
}

func depth(n int) *int {
	return &n
}

func TestGameService_CreateHumanFirst(t *testing.T) {
	msg, err := newService().Create(context.Background(), &models.CreateGameRequest{})
	require.NoError(t, err)

	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, 7, msg.Size)
	assert.Equal(t, "ongoing", msg.State)
	assert.Equal(t, "white", msg.Human)
	assert.Equal(t, "white", msg.Next)
	assert.Empty(t, countTokens(msg))
	assert.Nil(t, msg.LastColumn)
}

func TestGameService_CreateComputerFirst(t *testing.T) {
	msg, err := newService().Create(context.Background(), &models.CreateGameRequest{Size: 5, Depth: depth(1), Human: "black"})
	require.NoError(t, err)

	assert.Equal(t, 5, msg.Size)
	assert.Equal(t, "black", msg.Human)
	assert.Equal(t, "black", msg.Next)
	assert.Equal(t, map[string]int{"white": 1}, countTokens(msg))
	require.NotNil(t, msg.LastColumn)
}

func TestGameService_CreateRejectsUnknownToken(t *testing.T) {
	_, err := newService().Create(context.Background(), &models.CreateGameRequest{Human: "red"})
	assert.Error(t, err)
}

func TestGameService_MoveGetsReply(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	created, err := svc.Create(ctx, &models.CreateGameRequest{Size: 6})
	require.NoError(t, err)

	msg, err := svc.Move(ctx, created.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, "white", msg.Board[5][2])
	assert.Equal(t, map[string]int{"white": 1, "black": 1}, countTokens(msg))
	assert.Equal(t, "white", msg.Next)

	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, msg, fetched)
}

func TestGameService_MoveErrors(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	_, err := svc.Move(ctx, "missing", 0)
	assert.ErrorIs(t, err, ErrGameNotFound)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrGameNotFound)

	created, err := svc.Create(ctx, &models.CreateGameRequest{Size: 5})
	require.NoError(t, err)

	_, err = svc.Move(ctx, created.ID, 5)
	assert.ErrorIs(t, err, game.ErrOutOfBounds)

	_, err = svc.Move(ctx, created.ID, -1)
	assert.ErrorIs(t, err, game.ErrOutOfBounds)

	msg, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, countTokens(msg), "rejected moves leave the board alone")
}

func TestGameService_PlayToTheEnd(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	msg, err := svc.Create(ctx, &models.CreateGameRequest{Size: 5, Depth: depth(0)})
	require.NoError(t, err)

	for msg.State == "ongoing" {
		column := -1
		for x, cell := range msg.Board[0] {
			if cell == "" {
				column = x
				break
			}
		}
		require.GreaterOrEqual(t, column, 0)

		msg, err = svc.Move(ctx, msg.ID, column)
		require.NoError(t, err)
	}

	assert.Contains(t, []string{"victory", "tie"}, msg.State)
	assert.Empty(t, msg.Next)
	if msg.State == "victory" {
		assert.Contains(t, []string{"white", "black"}, msg.Winner)
	}

	_, err = svc.Move(ctx, msg.ID, 0)
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestGameService_MoveRollsBackWhenComputerCannotReply(t *testing.T) {
	svc := newService()
	created, err := svc.Create(context.Background(), &models.CreateGameRequest{Size: 5})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = svc.Move(ctx, created.ID, 2)
	assert.ErrorIs(t, err, ErrComputerMove)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, game.ErrColumnFull)
	assert.NotErrorIs(t, err, game.ErrOutOfBounds)

	msg, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Empty(t, countTokens(msg), "the human move is rolled back")
	assert.Equal(t, "white", msg.Next)
	assert.Nil(t, msg.LastColumn)

	msg, err = svc.Move(context.Background(), created.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, "white", msg.Board[4][2], "the human still plays white")
	assert.Equal(t, map[string]int{"white": 1, "black": 1}, countTokens(msg))
}

func TestGameService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	created, err := svc.Create(ctx, &models.CreateGameRequest{})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrGameNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), ErrGameNotFound)
}
