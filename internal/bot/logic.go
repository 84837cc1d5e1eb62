package bot

import "github.com/m-lima/connect4/internal/game"

// play is a candidate column and its score.
type play struct {
	column int
	score  int64
}

// better keeps the later candidate on ties, so the shuffle decides between equal scores.
func better(best, next play) play {
	if next.score >= best.score {
		return next
	}
	return best
}

// weight is the value of a win with depth plies still left to search.
func weight(depth int) int64 {
	return int64(1) << depth
}

// scoreBoard sums the scores of every column token could play on board.
func scoreBoard(board *game.Board, depth int, token game.Token, factor int64) int64 {
	var sum int64
	for column := range board.Size() {
		sum += scoreForColumn(board.Clone(), column, depth, token, factor)
	}
	return sum
}

// scoreForColumn places token in column and scores the outcome. Wins are worth
// more the sooner they happen, and factor flips sign every ply so that the
// opponent's wins count against the bot. Every continuation is added up rather
// than only the best reply being kept.
func scoreForColumn(board *game.Board, column, depth int, token game.Token, factor int64) int64 {
	state, err := game.Place(board, token, column)
	if err != nil {
		return 0
	}

	switch {
	case state == game.Victory:
		return factor * weight(depth)
	case state == game.Ongoing && depth > 0:
		return scoreBoard(board, depth-1, token.Flip(), -factor)
	default:
		return 0
	}
}
