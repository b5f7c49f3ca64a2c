package service

import (
	"errors"
	"fmt"

	"github.com/playgrid/tictactoe-backend/internal/ai"
	"github.com/playgrid/tictactoe-backend/internal/apperror"
	"github.com/playgrid/tictactoe-backend/internal/entity"
	"github.com/playgrid/tictactoe-backend/internal/tictactoe"
)

var ErrBotNotFound = errors.New("bot player not found")

type BotService interface {
	MakeTurn(game *entity.Game) (entity.MoveResult, error)
}

type botService struct {
	selector ai.Selector
}

func NewBotService(selector ai.Selector) BotService {
	return &botService{
		selector: selector,
	}
}

// MakeTurn asks the selector for the computer's move and applies it. It is
// valid only while the computer actually holds the turn.
func (that *botService) MakeTurn(game *entity.Game) (entity.MoveResult, error) {
	if !game.IsBotTurn() {
		return entity.MoveResult{}, apperror.ErrNotBotTurn
	}

	botPlayer := game.BotPlayer()
	if botPlayer == nil {
		return entity.MoveResult{}, ErrBotNotFound
	}

	cell, err := that.selector.SelectMove(game.Board, botPlayer.Mark, tictactoe.ToggleMark(botPlayer.Mark))
	if err != nil {
		return entity.MoveResult{}, fmt.Errorf("bot failed to select move: %w", err)
	}

	result, err := game.MakeMove(cell)
	if err != nil {
		return result, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return result, nil
}
