package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/m-lima/connect4/internal/api/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("repository.game")

var (
	ErrNotFound = errors.New("game not found")
	ErrExists   = errors.New("game already exists")
)

// GameRepository defines the interface for game session storage.
type GameRepository interface {
	Create(ctx context.Context, session *models.Session) error
	FindByID(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) int
	DeleteIdle(ctx context.Context, before time.Time) []string
}

type memoryGameRepository struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

// NewGameRepository creates a GameRepository that keeps sessions in memory.
func NewGameRepository() GameRepository {
	return &memoryGameRepository{sessions: make(map[string]*models.Session)}
}

// Create stores a new session.
func (r *memoryGameRepository) Create(ctx context.Context, session *models.Session) error {
	_, span := tracer.Start(ctx, "GameRepository.Create")
	defer span.End()
	span.SetAttributes(attribute.String("game.id", session.ID))

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.ID]; ok {
		return ErrExists
	}
	r.sessions[session.ID] = session
	return nil
}

// FindByID retrieves a session.
func (r *memoryGameRepository) FindByID(ctx context.Context, id string) (*models.Session, error) {
	_, span := tracer.Start(ctx, "GameRepository.FindByID")
	defer span.End()
	span.SetAttributes(attribute.String("game.id", id))

	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return session, nil
}

// Delete forgets a session.
func (r *memoryGameRepository) Delete(ctx context.Context, id string) error {
	_, span := tracer.Start(ctx, "GameRepository.Delete")
	defer span.End()
	span.SetAttributes(attribute.String("game.id", id))

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(r.sessions, id)
	return nil
}

// Count reports how many sessions are stored.
func (r *memoryGameRepository) Count(context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// DeleteIdle forgets every session last active before the given time and
// returns their IDs.
func (r *memoryGameRepository) DeleteIdle(ctx context.Context, before time.Time) []string {
	_, span := tracer.Start(ctx, "GameRepository.DeleteIdle")
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	var removed []string
	for id, session := range r.sessions {
		if session.LastActive().Before(before) {
			delete(r.sessions, id)
			removed = append(removed, id)
		}
	}
	span.SetAttributes(attribute.Int("game.removed", len(removed)))
	return removed
}
