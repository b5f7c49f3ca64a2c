package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playgrid/tictactoe-backend/internal/board"
)

func TestHasWon(t *testing.T) {
	t.Run("False on an empty board", func(t *testing.T) {
		var b board.Board

		assert.False(t, HasWon(b, PlayerX))
		assert.False(t, HasWon(b, PlayerO))
	})

	t.Run("True for every winning line", func(t *testing.T) {
		for _, combo := range WinCombos {
			var b board.Board
			for _, cell := range combo {
				b[cell] = PlayerX
			}

			assert.True(t, HasWon(b, PlayerX), "combo %v", combo)
			assert.False(t, HasWon(b, PlayerO), "combo %v", combo)
		}
	})

	t.Run("False when the line is mixed", func(t *testing.T) {
		b := board.Board{PlayerX, PlayerX, PlayerO, "", "", "", "", "", ""}

		assert.False(t, HasWon(b, PlayerX))
	})
}

func TestWinningTriple(t *testing.T) {
	t.Run("Returns the first matching line in fixed order", func(t *testing.T) {
		// Given: X holds both the top row and the left column
		b := board.Board{
			PlayerX, PlayerX, PlayerX,
			PlayerX, "", "",
			PlayerX, "", "",
		}

		// When: asking for the winning line
		combo, ok := WinningTriple(b, PlayerX)

		// Then: the row wins because rows come before columns
		require.True(t, ok)
		assert.Equal(t, [3]int{0, 1, 2}, combo)
	})

	t.Run("Reports no line without a win", func(t *testing.T) {
		var b board.Board

		_, ok := WinningTriple(b, PlayerX)
		assert.False(t, ok)
	})
}

func TestDetermineResult(t *testing.T) {
	t.Run("Winner mark when a line is complete", func(t *testing.T) {
		b := board.Board{PlayerO, PlayerO, PlayerO, "", "", "", "", "", ""}

		assert.Equal(t, PlayerO, DetermineResult(b))
	})

	t.Run("Empty result while the game is open", func(t *testing.T) {
		b := board.Board{PlayerX, PlayerO, PlayerX, "", PlayerO, "", "", PlayerX, ""}

		assert.Equal(t, "", DetermineResult(b))
	})

	t.Run("Tie on a full board without a winner", func(t *testing.T) {
		b := board.Board{
			PlayerX, PlayerO, PlayerX,
			PlayerX, PlayerX, PlayerO,
			PlayerO, PlayerX, PlayerO,
		}

		assert.Equal(t, PlayerTie, DetermineResult(b))
	})
}

func TestToggleMark(t *testing.T) {
	assert.Equal(t, PlayerO, ToggleMark(PlayerX))
	assert.Equal(t, PlayerX, ToggleMark(PlayerO))
}
