package player

import (
	"fmt"

	"github.com/m-lima/connect4/internal/bot"
)

// Kind tells the orchestration loop where a player's moves come from.
type Kind uint8

const (
	Human Kind = iota
	Computer
)

func (k Kind) String() string {
	if k == Computer {
		return "computer"
	}
	return "human"
}

// Player is either a human or a computer player. Bot is only set for Computer.
type Player struct {
	Kind Kind
	Bot  *bot.Bot
}

// NewHuman returns a player whose moves are read from input.
func NewHuman() Player {
	return Player{Kind: Human}
}

// NewComputer returns a player whose moves are chosen by b.
func NewComputer(b *bot.Bot) Player {
	return Player{Kind: Computer, Bot: b}
}

func (p Player) String() string {
	if p.Kind == Computer && p.Bot != nil {
		return fmt.Sprintf("AI[level=%d]", p.Bot.Depth())
	}
	return "Human"
}
