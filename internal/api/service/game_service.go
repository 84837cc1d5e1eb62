package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/m-lima/connect4/internal/api/models"
	"github.com/m-lima/connect4/internal/bot"
	"github.com/m-lima/connect4/internal/game"
	"github.com/m-lima/connect4/internal/repository"
	"github.com/m-lima/connect4/pkg/proto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("service.game")

const (
	defaultSize      = 7
	maxReplyAttempts = 64
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameOver     = errors.New("game over")
	// ErrComputerMove means the computer could not answer. The human move is rolled back.
	ErrComputerMove = errors.New("computer failed to move")
)

//go:generate mockgen -destination=mocks/mock_game_service.go -package=mocks github.com/m-lima/connect4/internal/api/service GameService

// GameService defines the game business logic for one human against the computer.
type GameService interface {
	Create(ctx context.Context, req *models.CreateGameRequest) (proto.GameMessage, error)
	Get(ctx context.Context, id string) (proto.GameMessage, error)
	Move(ctx context.Context, id string, column int) (proto.GameMessage, error)
	Delete(ctx context.Context, id string) error
}

type gameService struct {
	gameRepo repository.GameRepository
	maxDepth int
	botOpts  []bot.Option
}

// NewGameService creates a new GameService. Requested depths are capped at
// maxDepth, which is also the default.
func NewGameService(gameRepo repository.GameRepository, maxDepth int, botOpts ...bot.Option) GameService {
	return &gameService{
		gameRepo: gameRepo,
		maxDepth: maxDepth,
		botOpts:  botOpts,
	}
}

// Create starts a session. When the computer holds white it moves at once.
func (s *gameService) Create(ctx context.Context, req *models.CreateGameRequest) (proto.GameMessage, error) {
	ctx, span := tracer.Start(ctx, "GameService.Create")
	defer span.End()

	size := req.Size
	if size == 0 {
		size = defaultSize
	}
	depth := s.maxDepth
	if req.Depth != nil {
		depth = min(*req.Depth, s.maxDepth)
	}
	human := game.White
	if req.Human != "" {
		token, ok := game.ParseToken(req.Human)
		if !ok {
			return proto.GameMessage{}, fmt.Errorf("unknown token %q", req.Human)
		}
		human = token
	}

	session := models.NewSession(uuid.NewString(), size, human, bot.New(human.Flip(), depth, s.botOpts...))
	span.SetAttributes(
		attribute.String("game.id", session.ID),
		attribute.Int("board.size", size),
		attribute.Int("bot.depth", depth),
		attribute.String("game.human", human.String()),
	)

	session.Lock()
	defer session.Unlock()

	if human == game.Black {
		if err := s.reply(ctx, session); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "computer move failed")
			return proto.GameMessage{}, err
		}
	}

	if err := s.gameRepo.Create(ctx, session); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to store game")
		return proto.GameMessage{}, fmt.Errorf("failed to store game: %w", err)
	}

	slog.InfoContext(ctx, "Game created", "game.id", session.ID, "board.size", size, "bot.depth", depth, "game.human", human.String())
	return session.Message(), nil
}

// Get returns the current snapshot of a session.
func (s *gameService) Get(ctx context.Context, id string) (proto.GameMessage, error) {
	ctx, span := tracer.Start(ctx, "GameService.Get")
	defer span.End()
	span.SetAttributes(attribute.String("game.id", id))

	session, err := s.find(ctx, id)
	if err != nil {
		return proto.GameMessage{}, err
	}

	session.Lock()
	defer session.Unlock()
	return session.Message(), nil
}

// Move applies the human's move and, while the game goes on, the computer's reply.
func (s *gameService) Move(ctx context.Context, id string, column int) (proto.GameMessage, error) {
	ctx, span := tracer.Start(ctx, "GameService.Move")
	defer span.End()
	span.SetAttributes(attribute.String("game.id", id), attribute.Int("game.column", column))

	session, err := s.find(ctx, id)
	if err != nil {
		return proto.GameMessage{}, err
	}

	session.Lock()
	defer session.Unlock()

	if session.Game.State() != game.Ongoing {
		return proto.GameMessage{}, ErrGameOver
	}

	saved := session.Save()
	state, err := session.Place(column)
	if err != nil {
		return proto.GameMessage{}, fmt.Errorf("invalid move: %w", err)
	}

	if state == game.Ongoing {
		if err := s.reply(ctx, session); err != nil {
			session.Restore(saved)
			span.RecordError(err)
			span.SetStatus(codes.Error, "computer move failed")
			return proto.GameMessage{}, err
		}
	}

	msg := session.Message()
	if session.Game.State() != game.Ongoing {
		slog.InfoContext(ctx, "Game finished", "game.id", session.ID, "game.state", msg.State, "game.winner", msg.Winner)
	}
	return msg, nil
}

// Delete ends a session.
func (s *gameService) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "GameService.Delete")
	defer span.End()
	span.SetAttributes(attribute.String("game.id", id))

	err := s.gameRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrGameNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	slog.InfoContext(ctx, "Game deleted", "game.id", id)
	return nil
}

func (s *gameService) find(ctx context.Context, id string) (*models.Session, error) {
	session, err := s.gameRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load game: %w", err)
	}
	return session, nil
}

// reply lets the computer move. A shallow bot may pick a full column when it
// sees nothing better, so the pick is retried.
func (s *gameService) reply(ctx context.Context, session *models.Session) error {
	var rejected error
	for range maxReplyAttempts {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrComputerMove, err)
		}

		column := session.Bot.Play(ctx, session.Game.Board())
		if _, rejected = session.Place(column); rejected == nil {
			slog.DebugContext(ctx, "Computer replied", "game.id", session.ID, "bot.column", column)
			return nil
		}
	}
	return fmt.Errorf("%w: %d picks rejected, last: %v", ErrComputerMove, maxReplyAttempts, rejected)
}
