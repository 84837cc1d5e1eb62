package match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/m-lima/connect4/internal/game"
	"github.com/m-lima/connect4/internal/player"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("match")

var (
	// ErrQuit is returned by a Prompter when the human gives up.
	ErrQuit = errors.New("quit")
	// ErrRepeat is returned by a Prompter when the input should simply be asked again.
	ErrRepeat = errors.New("repeat")
	// ErrInvalidInput is wrapped by Prompter errors that should be shown before asking again.
	ErrInvalidInput = errors.New("invalid input")
)

//go:generate mockgen -destination=mocks/mock_match.go -package=mocks github.com/m-lima/connect4/internal/match Prompter,Display

// Prompter reads a column for a human player.
type Prompter interface {
	Prompt(ctx context.Context, token game.Token) (int, error)
}

// Display shows the game between turns. err is the problem with the previous
// input, if there was one.
type Display interface {
	Show(g *game.Game, err error)
}

// Result describes how a match ended.
type Result struct {
	State  game.State
	Winner game.Token
	Column int
	Quit   bool
}

func (r Result) String() string {
	switch {
	case r.Quit:
		return "Game abandoned"
	case r.State == game.Victory:
		return fmt.Sprintf("Player %s won by playing %d", r.Winner, r.Column+1)
	default:
		return "It's a draw..."
	}
}

// Match alternates turns between two players until the game is decided.
type Match struct {
	game     *game.Game
	white    player.Player
	black    player.Player
	prompter Prompter
	display  Display
}

// New creates a match on a fresh board of the given size. White moves first.
func New(size int, white, black player.Player, prompter Prompter, display Display) *Match {
	return &Match{
		game:     game.New(size),
		white:    white,
		black:    black,
		prompter: prompter,
		display:  display,
	}
}

// Game exposes the game being played.
func (m *Match) Game() *game.Game {
	return m.game
}

// Run plays the match to the end. Invalid input and rejected placements are
// shown and the turn is repeated. Any other Prompter error stops the match.
func (m *Match) Run(ctx context.Context) (Result, error) {
	ctx, span := tracer.Start(ctx, "match.Run", trace.WithAttributes(
		attribute.Int("board.size", m.game.Size()),
		attribute.String("match.white", m.white.String()),
		attribute.String("match.black", m.black.String()),
	))
	defer span.End()

	if m.game.State() != game.Ongoing {
		m.display.Show(m.game, nil)
		return Result{State: m.game.State()}, nil
	}

	token := game.White
	var inputErr error
	for {
		m.display.Show(m.game, inputErr)
		inputErr = nil

		column, err := m.next(ctx, token)
		switch {
		case errors.Is(err, ErrQuit):
			return Result{State: game.Ongoing, Quit: true}, nil
		case errors.Is(err, ErrRepeat):
			continue
		case errors.Is(err, ErrInvalidInput):
			inputErr = err
			continue
		case err != nil:
			return Result{}, fmt.Errorf("failed to read move for %s: %w", token, err)
		}

		state, err := m.game.Place(token, column)
		if err != nil {
			slog.DebugContext(ctx, "Rejected placement", "match.token", token.String(), "match.column", column, "error", err)
			inputErr = err
			continue
		}

		switch state {
		case game.Victory:
			m.display.Show(m.game, nil)
			return Result{State: state, Winner: token, Column: column}, nil
		case game.Tie:
			m.display.Show(m.game, nil)
			return Result{State: state, Column: column}, nil
		}
		token = token.Flip()
	}
}

func (m *Match) next(ctx context.Context, token game.Token) (int, error) {
	p := m.white
	if token == game.Black {
		p = m.black
	}

	switch p.Kind {
	case player.Computer:
		return p.Bot.Play(ctx, m.game.Board()), nil
	default:
		return m.prompter.Prompt(ctx, token)
	}
}
