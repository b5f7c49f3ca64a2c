package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
)

func (that *Server) handleConnect(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	var payload PlayerPayload

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal player info: %w", err)
	}

	player, err := that.players.GetOrCreatePlayer(ctx, payload.Player.ID)
	if err != nil {
		return fmt.Errorf("failed to get or create player: %w", err)
	}

	if player.ID == payload.Player.ID {
		that.logger.Info("player connected", "playerID", player.ID)
	} else {
		that.logger.Info("registered new player", "playerID", player.ID)
	}

	return that.sendMessage(conn, msg.Action, ResponsePayload{Player: player})
}

func (that *Server) handleNewGame(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	var payload NewGamePayload

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal new game payload: %w", err)
	}

	game, err := that.gamePlay.NewGame(ctx, payload.Player.ID, payload.Player.Name, payload.Game.Type)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID, "type", game.Type)

	return that.sendMessage(conn, msg.Action, ResponsePayload{Game: newGameResponse(game, nil)})
}

func (that *Server) handleJoinGame(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	var payload JoinGamePayload

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal join payload: %w", err)
	}

	game, err := that.gamePlay.JoinGameByID(ctx, payload.Game.ID, payload.Player.ID, payload.Player.Name)
	if err != nil {
		return fmt.Errorf("failed to join game: %w", err)
	}

	that.logger.Info("player joined game", "gameID", game.ID, "playerID", payload.Player.ID)

	return that.sendMessage(conn, msg.Action, ResponsePayload{Game: newGameResponse(game, nil)})
}

func (that *Server) handleGameTurn(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	var payload TurnPayload

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal turn payload: %w", err)
	}

	game, result, err := that.gamePlay.MakeTurn(ctx, payload.Player.ID, payload.Cell)
	if err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	response := ResponsePayload{Game: newGameResponse(game, &result)}
	if err = that.sendMessage(conn, msg.Action, response); err != nil {
		return err
	}

	// a finished game is archived by the service; free the seats once the
	// final state went out
	if result.GameOver {
		that.gamePlay.CleanupGame(ctx, game)
	}

	return nil
}

func (that *Server) handleGameState(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	var payload PlayerPayload

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal player info: %w", err)
	}

	game, err := that.gamePlay.CurrentGame(ctx, payload.Player.ID)
	if err != nil {
		return fmt.Errorf("failed to get current game: %w", err)
	}

	return that.sendMessage(conn, msg.Action, ResponsePayload{Game: newGameResponse(game, nil)})
}
