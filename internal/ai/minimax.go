package ai

import (
	"math"

	"github.com/playgrid/tictactoe-backend/internal/board"
	"github.com/playgrid/tictactoe-backend/internal/tictactoe"
)

// winScore is the base value of a decided position; the search depth is
// subtracted so faster wins and slower losses score better.
const winScore = 10

// MinimaxSelector searches every continuation and never loses: it forces at
// least a draw against perfect play and punishes any opponent mistake. With 9
// cells the full tree is small enough that pruning is not worth the code.
type MinimaxSelector struct{}

func NewMinimaxSelector() *MinimaxSelector {
	return &MinimaxSelector{}
}

func (that *MinimaxSelector) SelectMove(b board.Board, botMark, opponentMark string) (int, error) {
	bestCell, bestScore := -1, math.MinInt

	// Cells are scanned in ascending order and only a strictly better score
	// replaces the candidate, so ties keep the lowest index.
	for _, cell := range b.EmptyCells() {
		next := b
		next[cell] = botMark

		if score := minimax(next, botMark, opponentMark, 1, false); score > bestScore {
			bestScore = score
			bestCell = cell
		}
	}

	if bestCell < 0 {
		return -1, ErrNoAvailableMoves
	}

	return bestCell, nil
}

func minimax(b board.Board, botMark, opponentMark string, depth int, maximizing bool) int {
	switch {
	case tictactoe.HasWon(b, botMark):
		return winScore - depth
	case tictactoe.HasWon(b, opponentMark):
		return -winScore + depth
	case b.IsFull():
		return 0
	}

	if maximizing {
		best := math.MinInt

		for _, cell := range b.EmptyCells() {
			next := b
			next[cell] = botMark

			if score := minimax(next, botMark, opponentMark, depth+1, false); score > best {
				best = score
			}
		}

		return best
	}

	best := math.MaxInt

	for _, cell := range b.EmptyCells() {
		next := b
		next[cell] = opponentMark

		if score := minimax(next, botMark, opponentMark, depth+1, true); score < best {
			best = score
		}
	}

	return best
}
