package ai

import (
	"math/rand"

	"github.com/playgrid/tictactoe-backend/internal/board"
	"github.com/playgrid/tictactoe-backend/internal/tictactoe"
)

// HeuristicSelector plays a fixed priority chain: win if possible, block the
// opponent's win, take the center, then a random free corner, then a random
// free edge. Strong but beatable, unlike the minimax selector.
type HeuristicSelector struct {
	rng *rand.Rand
}

// NewHeuristicSelector creates a heuristic selector. A nil rng gets a
// time-seeded source; tests inject a fixed seed to pin down the corner and
// edge picks.
func NewHeuristicSelector(rng *rand.Rand) *HeuristicSelector {
	return &HeuristicSelector{rng: defaultRand(rng)}
}

func (that *HeuristicSelector) SelectMove(b board.Board, botMark, opponentMark string) (int, error) {
	if b.IsFull() {
		return -1, ErrNoAvailableMoves
	}

	if cell, ok := finishingMove(b, botMark); ok {
		return cell, nil
	}

	if cell, ok := finishingMove(b, opponentMark); ok {
		return cell, nil
	}

	if b[board.Center] == board.EmptyCell {
		return board.Center, nil
	}

	if cell, ok := that.randomOpenCell(b, board.Corners); ok {
		return cell, nil
	}

	if cell, ok := that.randomOpenCell(b, board.Edges); ok {
		return cell, nil
	}

	// unreachable: a non-full board always has a center, corner or edge open
	return -1, ErrNoAvailableMoves
}

// finishingMove returns the empty cell that completes a line already holding
// two of mark. Lines are scanned in WinCombos order, so the first candidate in
// that fixed order wins ties.
func finishingMove(b board.Board, mark string) (int, bool) {
	for _, combo := range tictactoe.WinCombos {
		marks, empty := 0, -1

		for _, cell := range combo {
			switch b[cell] {
			case mark:
				marks++
			case board.EmptyCell:
				empty = cell
			}
		}

		if marks == 2 && empty >= 0 {
			return empty, true
		}
	}

	return -1, false
}

func (that *HeuristicSelector) randomOpenCell(b board.Board, cells []int) (int, bool) {
	open := make([]int, 0, len(cells))

	for _, cell := range cells {
		if b[cell] == board.EmptyCell {
			open = append(open, cell)
		}
	}

	if len(open) == 0 {
		return -1, false
	}

	return open[that.rng.Intn(len(open))], true
}
