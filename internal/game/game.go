package game

// MinSize is the smallest board on which a game can be decided by a run.
const MinSize = 5

// Game is a board together with the state produced by the latest placement.
type Game struct {
	board *Board
	state State
}

// New creates a game on an empty board of the given size. Boards smaller than
// MinSize start out tied.
func New(size int) *Game {
	state := Ongoing
	if size < MinSize {
		state = Tie
	}
	return &Game{
		board: NewBoard(size),
		state: state,
	}
}

// Place drops token into column, recording and returning the resulting state.
func (g *Game) Place(token Token, column int) (State, error) {
	state, err := Place(g.board, token, column)
	if err != nil {
		return g.state, err
	}
	g.state = state
	return state, nil
}

// Clone copies the game. The copy shares nothing with g.
func (g *Game) Clone() *Game {
	return &Game{
		board: g.board.Clone(),
		state: g.state,
	}
}

// State is the outcome of the latest placement.
func (g *Game) State() State {
	return g.state
}

// Size is the side length of the board.
func (g *Game) Size() int {
	return g.board.Size()
}

// Board exposes the board for reading. Callers must not mutate it.
func (g *Game) Board() *Board {
	return g.board
}
