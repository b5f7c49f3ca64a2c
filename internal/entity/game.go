package entity

import (
	"errors"
	"fmt"

	"github.com/playgrid/tictactoe-backend/internal/apperror"
	"github.com/playgrid/tictactoe-backend/internal/board"
	"github.com/playgrid/tictactoe-backend/internal/tictactoe"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"
)

const (
	PvPType     = "pvp"
	WithBotType = "bot"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// MoveResult describes the outcome of a single successful move.
type MoveResult struct {
	GameOver bool   `json:"game_over"`
	Winner   string `json:"winner,omitempty"` // mark, or tictactoe.PlayerTie on a draw
}

// Game is the state machine around one board: waiting -> ongoing -> finished.
// Start is the only way in to ongoing; MakeMove is the only mutation after
// that.
type Game struct {
	ID      string      `json:"id"`
	Board   board.Board `json:"board"`
	Winner  string      `json:"winner"`
	Status  string      `json:"status"`
	Turn    string      `json:"player_turn"`
	Players []*Player   `json:"players,omitempty"`
	Type    string      `json:"type,omitempty"`
}

func NewGame(id, gameType string) *Game {
	return &Game{
		ID:     id,
		Turn:   tictactoe.PlayerX,
		Status: StatusWaiting,
		Type:   gameType,
	}
}

// Start (re-)enters the ongoing state with two players. The first player is
// always X and opens, the second is always O. The board and any previous
// result are cleared.
func (that *Game) Start(playerOne, playerTwo *Player) {
	playerOne.Mark = tictactoe.PlayerX
	playerOne.GameID = that.ID
	playerTwo.Mark = tictactoe.PlayerO
	playerTwo.GameID = that.ID

	that.Players = []*Player{playerOne, playerTwo}
	that.Board.Reset()
	that.Turn = tictactoe.PlayerX
	that.Winner = ""
	that.Status = StatusOngoing
}

// MakeMove places the current player's mark in cell and advances the state
// machine: a completed line finishes the game with a winner, a full board
// finishes it as a draw, anything else passes the turn.
func (that *Game) MakeMove(cell int) (MoveResult, error) {
	if that.IsFinished() {
		return MoveResult{GameOver: true, Winner: that.Winner}, apperror.ErrGameOver
	}

	if cell < 0 || cell >= board.Size {
		return MoveResult{}, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if !that.Board.SetCell(cell, that.Turn) {
		return MoveResult{}, apperror.ErrCellOccupied
	}

	that.updateState()

	return MoveResult{GameOver: that.IsFinished(), Winner: that.Winner}, nil
}

func (that *Game) updateState() {
	switch winner := tictactoe.DetermineResult(that.Board); winner {
	// one player wins
	case tictactoe.PlayerX, tictactoe.PlayerO:
		that.Winner = winner
		that.Status = StatusFinished
	// tie
	case tictactoe.PlayerTie:
		that.Winner = tictactoe.PlayerTie
		that.Status = StatusFinished
	// game continues
	default:
		that.Turn = tictactoe.ToggleMark(that.Turn)
	}
}

// CurrentPlayer returns the player holding the turn, or nil before Start.
func (that *Game) CurrentPlayer() *Player {
	for _, player := range that.Players {
		if player.Mark == that.Turn {
			return player
		}
	}

	return nil
}

// BotPlayer returns the computer player, or nil in a PvP game.
func (that *Game) BotPlayer() *Player {
	for _, player := range that.Players {
		if player.IsBot() {
			return player
		}
	}

	return nil
}

// IsBotTurn reports whether the game is against the computer and the computer
// holds the turn.
func (that *Game) IsBotTurn() bool {
	if !that.IsWithBot() || that.IsFinished() {
		return false
	}

	current := that.CurrentPlayer()

	return current != nil && current.IsBot()
}

// WinningLine returns the decided line for highlighting, if any.
func (that *Game) WinningLine() ([3]int, bool) {
	if that.Winner == "" || that.Winner == tictactoe.PlayerTie {
		return [3]int{}, false
	}

	return tictactoe.WinningTriple(that.Board, that.Winner)
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameOver
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}
