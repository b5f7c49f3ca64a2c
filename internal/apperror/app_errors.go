package apperror

import "errors"

var (
	ErrGameOver          = errors.New("game is over")
	ErrGameIsNotStarted  = errors.New("game is not started")
	ErrCellOccupied      = errors.New("cell already taken")
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrNotBotTurn        = errors.New("not computer's turn")
	ErrGameAlreadyExists = errors.New("game already exists")
)
