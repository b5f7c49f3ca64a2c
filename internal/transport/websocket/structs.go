package websocket

import (
	"encoding/json"

	"github.com/playgrid/tictactoe-backend/internal/board"
	"github.com/playgrid/tictactoe-backend/internal/entity"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// PlayerInfo identifies the sender and, on first contact, carries the name to
// play under.
type PlayerInfo struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type PlayerPayload struct {
	Player PlayerInfo `json:"player"`
}

type NewGamePayload struct {
	Player PlayerInfo `json:"player"`
	Game   struct {
		Type string `json:"type"`
	} `json:"game"`
}

type JoinGamePayload struct {
	Player PlayerInfo `json:"player"`
	Game   struct {
		ID string `json:"id"`
	} `json:"game"`
}

type TurnPayload struct {
	Player PlayerInfo `json:"player"`
	Cell   int        `json:"cell"`
}

// GameResponse mirrors entity.Game for the wire, plus the decided line so
// clients can highlight it.
type GameResponse struct {
	ID          string             `json:"id"`
	Board       board.Board        `json:"board"`
	Turn        string             `json:"turn"`
	Winner      string             `json:"winner,omitempty"`
	Status      string             `json:"status"`
	Type        string             `json:"type,omitempty"`
	Players     []*entity.Player   `json:"players,omitempty"`
	WinningLine *[3]int            `json:"winning_line,omitempty"`
	Result      *entity.MoveResult `json:"result,omitempty"`
}

type ResponsePayload struct {
	Player *entity.Player `json:"player,omitempty"`
	Game   *GameResponse  `json:"game,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func newGameResponse(game *entity.Game, result *entity.MoveResult) *GameResponse {
	response := &GameResponse{
		ID:      game.ID,
		Board:   game.Board,
		Turn:    game.Turn,
		Winner:  game.Winner,
		Status:  game.Status,
		Type:    game.Type,
		Players: game.Players,
		Result:  result,
	}

	if line, ok := game.WinningLine(); ok {
		response.WinningLine = &line
	}

	return response
}
