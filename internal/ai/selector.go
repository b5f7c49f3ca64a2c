package ai

import (
	"errors"
	"math/rand"
	"time"

	"github.com/playgrid/tictactoe-backend/internal/board"
)

var ErrNoAvailableMoves = errors.New("no available moves")

// Strategy names accepted by New. They map onto the bot difficulty the config
// exposes.
const (
	StrategyRandom    = "random"
	StrategyHeuristic = "heuristic"
	StrategyMinimax   = "minimax"
)

// Selector picks the bot's next cell for the given board. Implementations
// return ErrNoAvailableMoves only when the board has no empty cell.
type Selector interface {
	SelectMove(b board.Board, botMark, opponentMark string) (int, error)
}

// New returns the selector registered under strategy. Unknown names fall back
// to minimax, the strongest option.
func New(strategy string, rng *rand.Rand) Selector {
	switch strategy {
	case StrategyRandom:
		return NewRandomSelector(rng)
	case StrategyHeuristic:
		return NewHeuristicSelector(rng)
	default:
		return NewMinimaxSelector()
	}
}

func defaultRand(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}

	return rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // not used for security
}
