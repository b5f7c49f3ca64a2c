package tictactoe

import "github.com/playgrid/tictactoe-backend/internal/board"

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"
)

// WinCombos lists the 8 winning lines: rows, then columns, then diagonals.
// The evaluator and the move selectors all iterate it in this order, so
// first-match tie-breaking is identical everywhere.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// HasWon reports whether mark occupies all three cells of at least one
// winning line.
func HasWon(b board.Board, mark string) bool {
	_, ok := WinningTriple(b, mark)
	return ok
}

// WinningTriple returns the first winning line fully occupied by mark, in
// WinCombos order.
func WinningTriple(b board.Board, mark string) ([3]int, bool) {
	for _, combo := range WinCombos {
		if b[combo[0]] == mark && b[combo[1]] == mark && b[combo[2]] == mark {
			return combo, true
		}
	}

	return [3]int{}, false
}

// DetermineResult returns the winning mark, PlayerTie on a full board without
// a winner, or an empty string while the game is still open.
func DetermineResult(b board.Board) string {
	for _, combo := range WinCombos {
		a, bb, c := b[combo[0]], b[combo[1]], b[combo[2]]
		if a != board.EmptyCell && a == bb && bb == c {
			return a
		}
	}

	if !b.IsFull() {
		return ""
	}

	return PlayerTie
}

// ToggleMark returns the opposing mark.
func ToggleMark(currentMark string) string {
	if currentMark == PlayerX {
		return PlayerO
	}

	return PlayerX
}
