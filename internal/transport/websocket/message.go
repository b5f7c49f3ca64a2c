package websocket

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/playgrid/tictactoe-backend/internal/ai"
	"github.com/playgrid/tictactoe-backend/internal/apperror"
)

func (that *Server) sendMessage(conn *websocket.Conn, action string, payload ResponsePayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	response := Message{
		Action:  action,
		Payload: raw,
	}

	if err = conn.WriteJSON(response); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendError(conn *websocket.Conn, action, reason string) {
	if err := that.sendMessage(conn, action, ResponsePayload{Error: reason}); err != nil {
		that.logger.Error("failed to send error response", "action", action, "error", err)
	}
}

// failureReason maps expected gameplay failures onto their fixed reason
// strings; anything else is reported as an internal error.
func failureReason(err error) string {
	for _, expected := range []error{
		apperror.ErrGameOver,
		apperror.ErrGameIsNotStarted,
		apperror.ErrCellOccupied,
		apperror.ErrInvalidCell,
		apperror.ErrNotYourTurn,
		apperror.ErrNotBotTurn,
		apperror.ErrGameAlreadyExists,
		ai.ErrNoAvailableMoves,
	} {
		if errors.Is(err, expected) {
			return expected.Error()
		}
	}

	return "internal error"
}
