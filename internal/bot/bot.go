package bot

import (
	"context"
	"log/slog"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/m-lima/connect4/internal/game"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("bot")
	meter  = otel.Meter("bot")

	playCounter, _    = meter.Int64Counter("connect4.bot.plays", metric.WithDescription("Moves chosen by the computer player"))
	searchDuration, _ = meter.Float64Histogram("connect4.bot.search.duration", metric.WithUnit("ms"))
)

// scoreTask scores a top-level candidate in its own goroutine.
var scoreTask = scoreBoard

// Bot is a computer player searching a fixed number of plies ahead.
// It keeps no board state between calls to Play.
type Bot struct {
	token   game.Token
	depth   int
	verbose bool

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures a Bot.
type Option func(*Bot)

// WithVerbose logs the score of every candidate column before choosing.
func WithVerbose(verbose bool) Option {
	return func(b *Bot) {
		b.verbose = verbose
	}
}

// WithSeed makes the exploration order and tie-breaking reproducible.
func WithSeed(seed uint64) Option {
	return func(b *Bot) {
		b.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// New creates a bot playing token. A negative depth is treated as zero.
func New(token game.Token, depth int, opts ...Option) *Bot {
	b := &Bot{
		token: token,
		depth: max(depth, 0),
		rng:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Token is the color the bot plays.
func (b *Bot) Token() game.Token {
	return b.token
}

// Depth is the number of plies searched.
func (b *Bot) Depth() int {
	return b.depth
}

// result is a candidate column whose score may still be computing.
type result struct {
	play
	resolved bool
}

// Play chooses a column for the bot on board. The board is not modified.
func (b *Bot) Play(ctx context.Context, board *game.Board) int {
	ctx, span := tracer.Start(ctx, "bot.Play", trace.WithAttributes(
		attribute.String("bot.token", b.token.String()),
		attribute.Int("bot.depth", b.depth),
		attribute.Int("board.size", board.Size()),
	))
	defer span.End()
	start := time.Now()

	size := board.Size()
	if size <= 0 {
		return 0
	}
	columns, fallback := b.draw(size)

	var wg sync.WaitGroup
	results := make([]*result, 0, size)
	for _, column := range columns {
		child := board.Clone()
		state, err := game.Place(child, b.token, column)
		if err != nil {
			continue
		}

		if state == game.Victory {
			results = append(results, &result{play: play{column: column, score: weight(b.depth)}, resolved: true})
			continue
		}
		if b.depth == 0 {
			continue
		}

		r := &result{play: play{column: column}}
		results = append(results, r)
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if p := recover(); p != nil {
					slog.ErrorContext(ctx, "Scoring task aborted", "bot.column", column, "panic", p)
				}
			}()
			r.score = scoreTask(child, b.depth-1, b.token.Flip(), -1)
			r.resolved = true
		}()
	}
	wg.Wait()

	best := play{column: fallback, score: math.MinInt64}
	for _, r := range results {
		if !r.resolved {
			continue
		}
		if b.verbose {
			slog.InfoContext(ctx, "Candidate score", "bot.token", b.token.String(), "bot.column", r.column, "bot.score", r.score)
		}
		best = better(best, r.play)
	}

	elapsed := time.Since(start)
	attrs := metric.WithAttributes(attribute.Int("bot.depth", b.depth))
	playCounter.Add(ctx, 1, attrs)
	searchDuration.Record(ctx, float64(elapsed.Microseconds())/1000, attrs)
	span.SetAttributes(attribute.Int("bot.column", best.column), attribute.Int64("bot.score", best.score))
	slog.DebugContext(ctx, "Bot chose column", "bot.token", b.token.String(), "bot.column", best.column, "bot.score", best.score, "elapsed", elapsed)

	return best.column
}

// draw returns a shuffled permutation of the columns and a random fallback column.
func (b *Bot) draw(size int) ([]int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	columns := make([]int, size)
	for i := range columns {
		columns[i] = i
	}
	b.rng.Shuffle(size, func(i, j int) {
		columns[i], columns[j] = columns[j], columns[i]
	})
	return columns, b.rng.IntN(size)
}
