package hub

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-lima/connect4/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	tracer = otel.Tracer("hub")
	meter  = otel.Meter("hub")
)

// Hub watches the live game sessions and closes the ones left idle.
type Hub struct {
	gameRepo repository.GameRepository
	ttl      time.Duration
	interval time.Duration
	now      func() time.Time
	expired  metric.Int64Counter
}

// NewHub creates a hub that closes sessions idle for longer than ttl, checking
// every interval.
func NewHub(gameRepo repository.GameRepository, ttl, interval time.Duration) *Hub {
	expired, err := meter.Int64Counter("connect4.sessions.expired",
		metric.WithDescription("Game sessions closed for inactivity"))
	if err != nil {
		otel.Handle(err)
	}

	return &Hub{
		gameRepo: gameRepo,
		ttl:      ttl,
		interval: interval,
		now:      time.Now,
		expired:  expired,
	}
}

// Run sweeps until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	slog.InfoContext(ctx, "Session hub started", "hub.ttl", h.ttl, "hub.interval", h.interval)
	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Session hub stopped")
			return
		case <-ticker.C:
			h.Sweep(ctx)
		}
	}
}

// Sweep closes the idle sessions once and reports how many were closed.
func (h *Hub) Sweep(ctx context.Context) int {
	ctx, span := tracer.Start(ctx, "hub.Sweep")
	defer span.End()

	removed := h.gameRepo.DeleteIdle(ctx, h.now().Add(-h.ttl))
	for _, id := range removed {
		slog.DebugContext(ctx, "Session closed due to inactivity", "game.id", id)
	}
	if len(removed) > 0 && h.expired != nil {
		h.expired.Add(ctx, int64(len(removed)))
	}

	span.SetAttributes(attribute.Int("hub.removed", len(removed)), attribute.Int("hub.remaining", h.gameRepo.Count(ctx)))
	return len(removed)
}
