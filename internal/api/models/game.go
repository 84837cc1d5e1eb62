package models

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/m-lima/connect4/internal/bot"
	"github.com/m-lima/connect4/internal/game"
	"github.com/m-lima/connect4/pkg/proto"
)

// CreateGameRequest defines the body of a new game request. Zero values fall
// back to the server defaults.
type CreateGameRequest struct {
	Size  int    `json:"size" binding:"omitempty,gte=5,lte=16"`
	Depth *int   `json:"depth" binding:"omitempty,gte=0,lte=12"`
	Human string `json:"human" binding:"omitempty,token"`
}

// MoveRequest defines the body of a move request. Columns are 0-based.
type MoveRequest struct {
	Column *int `json:"column" binding:"required"`
}

// Session is a live game between one human and the computer. Callers must
// hold the lock while reading or changing it.
type Session struct {
	sync.Mutex

	ID         string
	Game       *game.Game
	Human      game.Token
	Bot        *bot.Bot
	Next       game.Token
	Winner     game.Token
	LastColumn int

	active atomic.Int64
}

// NewSession creates a session on a fresh board. White moves first.
func NewSession(id string, size int, human game.Token, b *bot.Bot) *Session {
	s := &Session{
		ID:         id,
		Game:       game.New(size),
		Human:      human,
		Bot:        b,
		Next:       game.White,
		LastColumn: -1,
	}
	s.Touch(time.Now())
	return s
}

// Touch records activity at t. It does not need the lock.
func (s *Session) Touch(t time.Time) {
	s.active.Store(t.UnixNano())
}

// LastActive reports the time of the last recorded activity. It does not need the lock.
func (s *Session) LastActive() time.Time {
	return time.Unix(0, s.active.Load())
}

// Place drops the token of the player to move and hands the turn over.
func (s *Session) Place(column int) (game.State, error) {
	state, err := s.Game.Place(s.Next, column)
	if err != nil {
		return state, err
	}

	s.LastColumn = column
	s.Touch(time.Now())
	if state == game.Victory {
		s.Winner = s.Next
	}
	s.Next = s.Next.Flip()
	return state, nil
}

// Snapshot is a saved copy of the game progress of a session.
type Snapshot struct {
	game       *game.Game
	next       game.Token
	winner     game.Token
	lastColumn int
}

// Save copies the game progress so it can be restored later.
func (s *Session) Save() Snapshot {
	return Snapshot{
		game:       s.Game.Clone(),
		next:       s.Next,
		winner:     s.Winner,
		lastColumn: s.LastColumn,
	}
}

// Restore rolls the game progress back to snap.
func (s *Session) Restore(snap Snapshot) {
	s.Game = snap.game
	s.Next = snap.next
	s.Winner = snap.winner
	s.LastColumn = snap.lastColumn
}

// Message snapshots the session for the wire.
func (s *Session) Message() proto.GameMessage {
	rows := s.Game.Board().Rows()
	board := make([][]string, len(rows))
	for y, row := range rows {
		board[y] = make([]string, len(row))
		for x, cell := range row {
			if token, ok := cell.Token(); ok {
				board[y][x] = token.String()
			}
		}
	}

	msg := proto.GameMessage{
		ID:    s.ID,
		Size:  s.Game.Size(),
		Board: board,
		State: s.Game.State().String(),
		Human: s.Human.String(),
	}
	if s.Game.State() == game.Ongoing {
		msg.Next = s.Next.String()
	}
	if s.Winner != 0 {
		msg.Winner = s.Winner.String()
	}
	if s.LastColumn >= 0 {
		column := s.LastColumn
		msg.LastColumn = &column
	}
	return msg
}
