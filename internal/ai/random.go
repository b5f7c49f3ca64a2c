package ai

import (
	"math/rand"

	"github.com/playgrid/tictactoe-backend/internal/board"
)

// RandomSelector plays a uniformly random empty cell. It is the "easy" bot.
type RandomSelector struct {
	rng *rand.Rand
}

// NewRandomSelector creates a random selector. A nil rng gets a time-seeded
// source.
func NewRandomSelector(rng *rand.Rand) *RandomSelector {
	return &RandomSelector{rng: defaultRand(rng)}
}

func (that *RandomSelector) SelectMove(b board.Board, _, _ string) (int, error) {
	availableCells := b.EmptyCells()
	if len(availableCells) == 0 {
		return -1, ErrNoAvailableMoves
	}

	return availableCells[that.rng.Intn(len(availableCells))], nil
}
